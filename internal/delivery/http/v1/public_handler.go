package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// PublicHandler serves the visitor-facing portfolio content. Everything here
// is read-only except the contact form.
type PublicHandler struct {
	contentUC domain.ContentUsecase
	skillsUC  domain.SkillsUsecase
	projectUC domain.ProjectUsecase
	journeyUC domain.JourneyUsecase
	messageUC domain.MessageUsecase
}

func NewPublicHandler(
	public *gin.RouterGroup,
	contentUC domain.ContentUsecase,
	skillsUC domain.SkillsUsecase,
	projectUC domain.ProjectUsecase,
	journeyUC domain.JourneyUsecase,
	messageUC domain.MessageUsecase,
) {
	handler := &PublicHandler{
		contentUC: contentUC,
		skillsUC:  skillsUC,
		projectUC: projectUC,
		journeyUC: journeyUC,
		messageUC: messageUC,
	}

	public.GET("/profile", handler.GetProfile)
	public.GET("/skills", handler.GetSkills)
	public.GET("/projects", handler.GetProjects)
	public.GET("/education", handler.GetEducation)
	public.GET("/experience", handler.GetExperience)
	public.GET("/learning-journey", handler.GetLearningJourney)
	public.GET("/growth-mindset", handler.GetGrowthMindset)
	public.GET("/experiments", handler.GetExperiments)
	public.GET("/contact-section", handler.GetContactSection)
	public.GET("/footer", handler.GetFooter)
	public.POST("/contact", handler.SubmitContact)
}

// GetProfile godoc
// @Summary      Get Profile
// @Description  Public profile section of the portfolio
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /profile [get]
func (h *PublicHandler) GetProfile(c *gin.Context) {
	profile, err := h.contentUC.GetProfile(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile retrieved", profile)
}

// GetSkills godoc
// @Summary      Get Skills
// @Description  Skills grouped by category
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /skills [get]
func (h *PublicHandler) GetSkills(c *gin.Context) {
	skills, err := h.skillsUC.GetSkills(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills retrieved", skills)
}

// GetProjects godoc
// @Summary      List Projects
// @Description  All portfolio projects, newest first
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.ListResponse
// @Router       /projects [get]
func (h *PublicHandler) GetProjects(c *gin.Context) {
	projects, err := h.projectUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, "Projects retrieved", projects, len(projects))
}

func (h *PublicHandler) GetEducation(c *gin.Context) {
	education, err := h.contentUC.GetEducation(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education retrieved", education)
}

func (h *PublicHandler) GetExperience(c *gin.Context) {
	experience, err := h.contentUC.GetExperience(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience retrieved", experience)
}

// GetLearningJourney godoc
// @Summary      List Learning Phases
// @Description  Learning journey timeline, ordered ascending
// @Tags         public
// @Produce      json
// @Success      200  {object}  response.ListResponse
// @Router       /learning-journey [get]
func (h *PublicHandler) GetLearningJourney(c *gin.Context) {
	phases, err := h.journeyUC.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.List(c, http.StatusOK, "Learning journey retrieved", phases, len(phases))
}

func (h *PublicHandler) GetGrowthMindset(c *gin.Context) {
	gm, err := h.contentUC.GetGrowthMindset(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Growth mindset retrieved", gm)
}

func (h *PublicHandler) GetExperiments(c *gin.Context) {
	section, err := h.contentUC.GetExperiments(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiments retrieved", section)
}

func (h *PublicHandler) GetContactSection(c *gin.Context) {
	section, err := h.contentUC.GetContactSection(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact section retrieved", section)
}

func (h *PublicHandler) GetFooter(c *gin.Context) {
	footer, err := h.contentUC.GetFooter(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Footer retrieved", footer)
}

// SubmitContact godoc
// @Summary      Submit Contact Form
// @Description  Send a message through the contact form. This is a public endpoint.
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.CreateMessageRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /contact [post]
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req domain.CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	id, err := h.messageUC.Submit(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your message has been sent successfully!", gin.H{"id": id})
}
