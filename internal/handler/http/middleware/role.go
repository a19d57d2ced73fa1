package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/simon1400/barbitch-admin/internal/domain/user"
	"github.com/simon1400/barbitch-admin/internal/handler/http/response"
)

// RequireOwner gates the company-wide financial screens.
func RequireOwner(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		role, ok := claims["role"].(string)
		if !ok || role != string(user.RoleOwner) {
			response.HandleError(w, user.ErrOwnerAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RequireStaff admits any role tied to a staff directory entry, plus
// the owner.
func RequireStaff(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		roleStr, ok := claims["role"].(string)
		if !ok || !user.ValidRole(roleStr) {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		if user.Role(roleStr) == user.RoleOwner {
			next.ServeHTTP(w, r)
			return
		}

		if staffID, _ := claims["staff_id"].(string); staffID == "" {
			response.HandleError(w, user.ErrStaffAccessRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
