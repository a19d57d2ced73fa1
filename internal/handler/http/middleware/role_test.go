package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/simon1400/barbitch-admin/internal/domain/user"
	"github.com/simon1400/barbitch-admin/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (*chi.Mux, jwt.Service) {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")

	ok := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(jwtSvc.JWTAuth()))
		r.Use(AuthRequired(jwtSvc.JWTAuth()))

		r.Group(func(r chi.Router) {
			r.Use(RequireOwner)
			r.Get("/owner", ok)
		})
		r.Group(func(r chi.Router) {
			r.Use(RequireStaff)
			r.Get("/staff", ok)
		})
	})
	return r, jwtSvc
}

func accessToken(t *testing.T, jwtSvc jwt.Service, role user.Role, staffID *string) string {
	t.Helper()
	token, _, err := jwtSvc.GenerateAccessToken("user-1", "someone@salon.cz", role, staffID)
	require.NoError(t, err)
	return token
}

func get(router *chi.Mux, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireOwner_AllowsOwner(t *testing.T) {
	router, jwtSvc := newTestRouter(t)
	token := accessToken(t, jwtSvc, user.RoleOwner, nil)

	rec := get(router, "/owner", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireOwner_RejectsMaster(t *testing.T) {
	router, jwtSvc := newTestRouter(t)
	staffID := "staff-1"
	token := accessToken(t, jwtSvc, user.RoleMaster, &staffID)

	rec := get(router, "/owner", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireOwner_RejectsAnonymous(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := get(router, "/owner", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireStaff_AllowsMasterWithStaffID(t *testing.T) {
	router, jwtSvc := newTestRouter(t)
	staffID := "staff-1"
	token := accessToken(t, jwtSvc, user.RoleMaster, &staffID)

	rec := get(router, "/staff", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireStaff_AllowsOwnerWithoutStaffID(t *testing.T) {
	router, jwtSvc := newTestRouter(t)
	token := accessToken(t, jwtSvc, user.RoleOwner, nil)

	rec := get(router, "/staff", token)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireStaff_RejectsMasterWithoutStaffID(t *testing.T) {
	router, jwtSvc := newTestRouter(t)
	token := accessToken(t, jwtSvc, user.RoleMaster, nil)

	rec := get(router, "/staff", token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
