package apperrors

import "errors"

// Kind classifies an application error. The HTTP layer translates kinds to
// status codes in one place; domain code never produces status codes itself.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuth
	KindForbidden
	KindNotFound
	KindConflict
	KindConfiguration
	KindUpstreamAuth
	KindUpstream
	KindInternal
)

// Error is a typed application error carrying a client-safe message.
// UpstreamStatus is set only for KindUpstream, where the provider's own
// status code is passed through to the client.
type Error struct {
	Kind           Kind
	Message        string
	UpstreamStatus int
	Err            error // wrapped cause, logged server-side, never sent to clients
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Auth(message string) *Error {
	return &Error{Kind: KindAuth, Message: message}
}

func Forbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

func UpstreamAuth(message string) *Error {
	return &Error{Kind: KindUpstreamAuth, Message: message}
}

// Upstream wraps a provider failure, preserving its status and message.
func Upstream(status int, message string) *Error {
	return &Error{Kind: KindUpstream, Message: message, UpstreamStatus: status}
}

// Internal wraps an unexpected error. The cause is kept for logging; the
// client-visible message is fixed.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Internal server error", Err: err}
}

// KindOf returns the Kind of err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// As unwraps err into an *Error, or nil if err is untyped.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}
