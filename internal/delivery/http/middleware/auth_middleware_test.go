package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// stubAuthUsecase only resolves admins; the middleware never calls the
// other operations.
type stubAuthUsecase struct {
	admin *domain.Admin
	err   error
}

func (s *stubAuthUsecase) Login(context.Context, domain.LoginRequest) (*domain.Token, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthUsecase) GetAdmin(context.Context, string) (*domain.Admin, error) {
	return s.admin, s.err
}

func (s *stubAuthUsecase) ListAdmins(context.Context) ([]domain.Admin, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthUsecase) CreateAdmin(context.Context, domain.CreateAdminRequest) (*domain.Admin, error) {
	return nil, errors.New("not used")
}

func (s *stubAuthUsecase) DeleteAdmin(context.Context, string) error {
	return errors.New("not used")
}

func protectedRouter(tokens *auth.TokenService, authUC domain.AuthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/admin/me", middleware.AuthMiddleware(tokens, authUC), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue("shreeya")
	assert.NoError(t, err)

	get := func(r *gin.Engine, bearer string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/admin/me", nil)
		if bearer != "" {
			req.Header.Set("Authorization", "Bearer "+bearer)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	t.Run("Should reject a missing header with 401", func(t *testing.T) {
		r := protectedRouter(tokens, &stubAuthUsecase{})
		rec := get(r, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Should reject a token whose account no longer exists with 401", func(t *testing.T) {
		r := protectedRouter(tokens, &stubAuthUsecase{
			err: apperror.Unauthorized("Admin account no longer exists"),
		})
		rec := get(r, token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("Should return 500, not 401, when the admin lookup fails", func(t *testing.T) {
		r := protectedRouter(tokens, &stubAuthUsecase{
			err: apperror.Internal(errors.New("connection reset")),
		})
		rec := get(r, token)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})

	t.Run("Should pass a resolved admin through", func(t *testing.T) {
		r := protectedRouter(tokens, &stubAuthUsecase{
			admin: &domain.Admin{Username: "shreeya", Role: domain.RoleSuperadmin},
		})
		rec := get(r, token)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
