package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/weatherwize/weatherwize/internal/apperrors"
	"github.com/weatherwize/weatherwize/internal/models"
)

// RoleUpdater defines the interface that the role-update service must implement.
type RoleUpdater interface {
	UpdateUserRole(ctx context.Context, userID int64, newRole string) (*models.PublicUser, error)
}

// UpdateRoleRequest represents the JSON body for a role update
// swagger:model UpdateRoleRequest
type UpdateRoleRequest struct {
	// New role: admin, general or advanced
	// required: true
	// default: advanced
	Role string `json:"role"`
}

// UpdateRoleResponse represents a successful role update response
// swagger:model UpdateRoleResponse
type UpdateRoleResponse struct {
	// Success message
	// default: User role updated successfully
	Message string `json:"message"`

	// Updated public user view
	User *models.PublicUser `json:"user"`
}

// NewUpdateRoleHandler returns an HTTP handler for the admin role update.
// @Summary Update a user's role
// @Description Sets the role of the user identified by id. Admin only.
// @Tags auth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param updateRoleRequest body handlers.UpdateRoleRequest true "Role update request"
// @Success 200 {object} handlers.UpdateRoleResponse "Role updated"
// @Failure 400 {object} handlers.ErrorResponse "Invalid id or role"
// @Failure 403 {object} handlers.ErrorResponse "Requires admin role"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /api/auth/users/{id}/role [put]
// @Security BearerAuth
func NewUpdateRoleHandler(svc RoleUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || userID <= 0 {
			writeError(w, r, apperrors.Validation("Invalid user id"))
			return
		}

		var req UpdateRoleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, r, apperrors.Validation("Invalid request body"))
			return
		}

		user, err := svc.UpdateUserRole(r.Context(), userID, req.Role)
		if err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, UpdateRoleResponse{
			Message: "User role updated successfully",
			User:    user,
		})
	}
}
