package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

const currentAdminKey = "CurrentAdmin"

// AuthMiddleware validates the bearer token and resolves the acting admin.
// The admin account is looked up on every request so a deleted account is
// locked out immediately, not when its token expires.
func AuthMiddleware(tokens *auth.TokenService, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			response.Error(c, http.StatusUnauthorized, "Authorization token required", nil)
			c.Abort()
			return
		}

		username, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			c.Abort()
			return
		}

		admin, err := authUC.GetAdmin(c.Request.Context(), username)
		if err != nil {
			// A store failure is not the caller's fault; only a missing
			// account invalidates the token.
			var appErr *apperror.AppError
			if errors.As(err, &appErr) && appErr.Code >= http.StatusInternalServerError {
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			} else {
				response.Error(c, http.StatusUnauthorized, "Invalid or expired token", nil)
			}
			c.Abort()
			return
		}

		c.Set(currentAdminKey, admin)
		c.Set(string(domain.KeyAdminUsername), admin.Username)
		c.Set(string(domain.KeyAdminRole), admin.Role)

		// Propagate the actor through the request context so usecases can
		// read it without touching gin.
		ctx := context.WithValue(c.Request.Context(), domain.KeyAdminUsername, admin.Username)
		ctx = context.WithValue(ctx, domain.KeyAdminRole, admin.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentAdmin returns the admin resolved by AuthMiddleware, or nil on
// unauthenticated routes.
func CurrentAdmin(c *gin.Context) *domain.Admin {
	v, ok := c.Get(currentAdminKey)
	if !ok {
		return nil
	}
	admin, _ := v.(*domain.Admin)
	return admin
}
