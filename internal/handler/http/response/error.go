package response

import (
	"errors"
	"net/http"

	"github.com/simon1400/barbitch-admin/internal/domain/auth"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/domain/user"
	"github.com/simon1400/barbitch-admin/internal/pkg/noona"
	"github.com/simon1400/barbitch-admin/internal/pkg/strapi"
	"github.com/simon1400/barbitch-admin/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Upstream failures surface as bad gateway, a whole period load
	// fails atomically.
	var strapiErr *strapi.StatusError
	if errors.As(err, &strapiErr) {
		BadGateway(w, "Record store request failed")
		return
	}
	var noonaErr *noona.StatusError
	if errors.As(err, &noonaErr) {
		BadGateway(w, "Booking platform request failed")
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrOwnerAccessRequired):
		Forbidden(w, "Owner access required")
	case errors.Is(err, user.ErrStaffAccessRequired):
		Forbidden(w, "Staff access required")

	// Staff domain errors
	case errors.Is(err, staff.ErrMemberNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrNameExists):
		Conflict(w, "Staff member with this name already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
