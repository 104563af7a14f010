package v1

import (
	"net/http"

	"go-portfolio-backend/config"
	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC         domain.AuthUsecase
	ContentUC      domain.ContentUsecase
	SkillsUC       domain.SkillsUsecase
	ProjectUC      domain.ProjectUsecase
	JourneyUC      domain.JourneyUsecase
	MessageUC      domain.MessageUsecase
	NotificationUC domain.NotificationUsecase
	SearchUC       domain.SearchUsecase
	DashboardUC    domain.DashboardUsecase
	Tokens         *auth.TokenService
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Uploaded resumes are served as plain static files
	r.Static("/static/uploads", deps.Config.UploadDir)

	api := r.Group("/api")

	// Health Check
	api.GET("/", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "Portfolio API is running", nil)
	})

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Public routes
	NewPublicHandler(api, deps.ContentUC, deps.SkillsUC, deps.ProjectUC, deps.JourneyUC, deps.MessageUC)

	// Protected routes
	protected := api.Group("/admin")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.AuthUC))
	protected.Use(middleware.Audit(deps.NotificationUC))
	{
		NewAuthHandler(api, protected, deps.AuthUC, deps.NotificationUC, deps.Config)
		NewContentHandler(protected, deps.ContentUC)
		NewSkillsHandler(protected, deps.SkillsUC)
		NewProjectHandler(protected, deps.ProjectUC)
		NewJourneyHandler(protected, deps.JourneyUC)
		NewMessageHandler(protected, deps.MessageUC)
		NewNotificationHandler(protected, deps.NotificationUC)
		NewAdminPanelHandler(protected, deps.SearchUC, deps.DashboardUC)
		NewUploadHandler(protected, deps.Config)
	}

	return r
}
