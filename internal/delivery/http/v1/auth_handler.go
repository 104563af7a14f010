package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// AuthHandler covers login, token introspection and admin account management.
type AuthHandler struct {
	authUC   domain.AuthUsecase
	notifier domain.Notifier
}

func NewAuthHandler(public, protected *gin.RouterGroup, authUC domain.AuthUsecase, notifier domain.Notifier, cfg *config.Config) {
	handler := &AuthHandler{
		authUC:   authUC,
		notifier: notifier,
	}

	// Login lives outside the protected group but under the same /admin path
	public.POST("/admin/login", middleware.LoginRateLimit(cfg), handler.Login)

	protected.GET("/verify", handler.Verify)
	protected.GET("/me", handler.Me)
	protected.POST("/logout-notify", handler.LogoutNotify)
	protected.GET("/users", handler.ListUsers)
	protected.POST("/users", handler.CreateUser)
	protected.DELETE("/users/:username", handler.DeleteUser)
}

// Login godoc
// @Summary      Admin Login
// @Description  Exchange username and password for a bearer token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      domain.LoginRequest  true  "Credentials"
// @Success      200          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Failure      429          {object}  response.Response
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	token, err := h.authUC.Login(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Login successful", token)
}

// Verify godoc
// @Summary      Verify Token
// @Description  Confirms the bearer token is still valid
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /admin/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	response.Success(c, http.StatusOK, "Token is valid", gin.H{"username": admin.Username})
}

// Me godoc
// @Summary      Current Admin
// @Description  Full account details of the token holder
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	admin := middleware.CurrentAdmin(c)
	response.Success(c, http.StatusOK, "Admin retrieved", admin)
}

// LogoutNotify godoc
// @Summary      Logout Notification
// @Description  Records a logout audit notification; the client discards the token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Router       /admin/logout-notify [post]
func (h *AuthHandler) LogoutNotify(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyAuth, "Logout")
	response.Success(c, http.StatusOK, "Logout recorded", nil)
}

// ListUsers godoc
// @Summary      List Admin Accounts
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.ListResponse
// @Router       /admin/users [get]
func (h *AuthHandler) ListUsers(c *gin.Context) {
	admins, err := h.authUC.ListAdmins(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, "Admins retrieved", admins, len(admins))
}

// CreateUser godoc
// @Summary      Create Admin Account
// @Tags         admin-users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        admin  body      domain.CreateAdminRequest  true  "New Admin"
// @Success      201    {object}  response.Response
// @Failure      409    {object}  response.Response
// @Router       /admin/users [post]
func (h *AuthHandler) CreateUser(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyAdmin, "Admin account creation")

	var req domain.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	admin, err := h.authUC.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Admin created", admin)
}

// DeleteUser godoc
// @Summary      Delete Admin Account
// @Description  Superadmin only; self-deletion is rejected
// @Tags         admin-users
// @Produce      json
// @Security     BearerAuth
// @Param        username  path      string  true  "Username"
// @Success      200       {object}  response.Response
// @Failure      403       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /admin/users/{username} [delete]
func (h *AuthHandler) DeleteUser(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyAdmin, "Admin account deletion")

	if err := h.authUC.DeleteAdmin(c.Request.Context(), c.Param("username")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Admin deleted", nil)
}
