package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SkillsHandler struct {
	skillsUC domain.SkillsUsecase
}

func NewSkillsHandler(protected *gin.RouterGroup, skillsUC domain.SkillsUsecase) {
	handler := &SkillsHandler{skillsUC: skillsUC}

	protected.PUT("/skills/:category", handler.UpdateCategory)
	protected.DELETE("/skills/:category", handler.DeleteCategory)
}

// UpdateCategory godoc
// @Summary      Update Skill Category
// @Description  Replaces the skill list of one category; a new category name creates it
// @Tags         admin-skills
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string                     true  "Category name"
// @Param        skills    body      domain.UpdateSkillsRequest true  "Skill list"
// @Success      200       {object}  response.Response
// @Failure      400       {object}  response.Response
// @Router       /admin/skills/{category} [put]
func (h *SkillsHandler) UpdateCategory(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifySkill, "Skill category update")

	var req domain.UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.skillsUC.UpdateCategory(c.Request.Context(), c.Param("category"), req.Skills); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skills updated", nil)
}

// DeleteCategory godoc
// @Summary      Delete Skill Category
// @Tags         admin-skills
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "Category name"
// @Success      200       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Router       /admin/skills/{category} [delete]
func (h *SkillsHandler) DeleteCategory(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifySkill, "Skill category deletion")

	if err := h.skillsUC.DeleteCategory(c.Request.Context(), c.Param("category")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Skill category deleted", nil)
}
