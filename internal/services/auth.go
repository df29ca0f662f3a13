package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/logger"
	"github.com/weatherwize/weatherwize/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.UserDB, error)
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, username, passwordHash, role string) (int64, error)
	UpdateRole(ctx context.Context, id int64, role string) (int64, error)
}

// TokenGenerator defines an interface for issuing session tokens.
type TokenGenerator interface {
	Generate(ctx context.Context, userID int64, username, role string) (string, error)
}

// AuthService handles registration, login and admin role updates.
type AuthService struct {
	reader UserReader
	writer UserWriter
	tokens TokenGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, tokens TokenGenerator) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		tokens: tokens,
	}
}

// Register creates a new user. The requested role defaults to general and
// may never be admin: admin accounts come only from the role-update endpoint.
func (svc *AuthService) Register(ctx context.Context, username, password, requestedRole string) error {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return apperrors.Validation("Username and password are required")
	}

	role := strings.ToLower(requestedRole)
	if role == "" {
		role = models.RoleGeneral
	}
	if !models.IsSelfAssignableRole(role) {
		return apperrors.Validation("Role must be general or advanced for self-registration")
	}

	existing, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return apperrors.Internal(err)
	}
	if existing != nil {
		logger.Log.Infow("registration rejected, username taken", "username", username)
		return apperrors.Conflict("Username already exists")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return apperrors.Internal(err)
	}

	if _, err := svc.writer.Save(ctx, username, string(hashedPassword), role); err != nil {
		// The unique constraint closes the check-then-act race: a concurrent
		// duplicate insert affects no rows and comes back as ErrNoRows.
		if errors.Is(err, sql.ErrNoRows) {
			logger.Log.Infow("registration rejected, username taken", "username", username)
			return apperrors.Conflict("Username already exists")
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return apperrors.Internal(err)
	}

	return nil
}

// Login authenticates a user and returns a session token plus the public
// user view. Unknown usernames and wrong passwords are indistinguishable.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, *models.PublicUser, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", nil, apperrors.Validation("Username and password are required")
	}

	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", nil, apperrors.Internal(err)
	}
	if user == nil {
		logger.Log.Infow("login rejected", "username", username)
		return "", nil, apperrors.Auth("Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Infow("login rejected", "username", username)
		return "", nil, apperrors.Auth("Invalid credentials")
	}

	token, err := svc.tokens.Generate(ctx, user.ID, user.Username, user.Role)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", nil, apperrors.Internal(err)
	}

	return token, user.Public(), nil
}

// UpdateUserRole sets a user's role. Caller is responsible for admin
// authorization. Re-setting the current role succeeds.
func (svc *AuthService) UpdateUserRole(ctx context.Context, userID int64, newRole string) (*models.PublicUser, error) {
	if userID <= 0 {
		return nil, apperrors.Validation("Invalid user id")
	}
	if !models.IsValidRole(newRole) {
		return nil, apperrors.Validation("Invalid role. Use admin, general, or advanced.")
	}

	user, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.NotFound("User not found")
	}

	if _, err := svc.writer.UpdateRole(ctx, userID, newRole); err != nil {
		logger.Log.Errorw("failed to update role", "err", err)
		return nil, apperrors.Internal(err)
	}

	user.Role = newRole
	return user.Public(), nil
}
