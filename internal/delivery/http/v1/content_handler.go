package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// ContentHandler covers the replace-wholesale singleton sections of the
// admin panel.
type ContentHandler struct {
	contentUC domain.ContentUsecase
}

func NewContentHandler(protected *gin.RouterGroup, contentUC domain.ContentUsecase) {
	handler := &ContentHandler{contentUC: contentUC}

	protected.PUT("/profile", handler.UpdateProfile)
	protected.PUT("/education", handler.UpdateEducation)
	protected.PUT("/experience", handler.UpdateExperience)
	protected.PUT("/growth-mindset", handler.UpdateGrowthMindset)
	protected.PUT("/experiments", handler.UpdateExperiments)
	protected.PUT("/contact-section", handler.UpdateContactSection)
	protected.PUT("/footer", handler.UpdateFooter)
}

// UpdateProfile godoc
// @Summary      Update Profile
// @Description  Replaces the profile section wholesale
// @Tags         admin-content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        profile  body      domain.Profile  true  "Profile"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /admin/profile [put]
func (h *ContentHandler) UpdateProfile(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Profile update")

	var profile domain.Profile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateProfile(c.Request.Context(), &profile); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Profile updated", profile)
}

func (h *ContentHandler) UpdateEducation(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Education update")

	var education domain.Education
	if err := c.ShouldBindJSON(&education); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateEducation(c.Request.Context(), &education); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Education updated", education)
}

func (h *ContentHandler) UpdateExperience(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Experience update")

	var experience domain.Experience
	if err := c.ShouldBindJSON(&experience); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateExperience(c.Request.Context(), &experience); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experience updated", experience)
}

func (h *ContentHandler) UpdateGrowthMindset(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Growth mindset update")

	var gm domain.GrowthMindset
	if err := c.ShouldBindJSON(&gm); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateGrowthMindset(c.Request.Context(), &gm); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Growth mindset updated", gm)
}

func (h *ContentHandler) UpdateExperiments(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Experiments section update")

	var section domain.ExperimentsSection
	if err := c.ShouldBindJSON(&section); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateExperiments(c.Request.Context(), &section); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Experiments section updated", section)
}

func (h *ContentHandler) UpdateContactSection(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Contact section update")

	var section domain.ContactSection
	if err := c.ShouldBindJSON(&section); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateContactSection(c.Request.Context(), &section); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Contact section updated", section)
}

func (h *ContentHandler) UpdateFooter(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Footer update")

	var footer domain.Footer
	if err := c.ShouldBindJSON(&footer); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.contentUC.UpdateFooter(c.Request.Context(), &footer); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Footer updated", footer)
}
