package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	projectUC domain.ProjectUsecase
}

func NewProjectHandler(protected *gin.RouterGroup, projectUC domain.ProjectUsecase) {
	handler := &ProjectHandler{projectUC: projectUC}

	protected.POST("/projects", handler.Create)
	protected.PUT("/projects/:id", handler.Update)
	protected.DELETE("/projects/:id", handler.Delete)
}

// Create godoc
// @Summary      Create Project
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        project  body      domain.CreateProjectRequest  true  "Project"
// @Success      201      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Router       /admin/projects [post]
func (h *ProjectHandler) Create(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyProject, "Project creation")

	var req domain.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	id, err := h.projectUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Project created", gin.H{"id": id})
}

// Update godoc
// @Summary      Update Project
// @Description  Partial update; at least one field is required
// @Tags         admin-projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                       true  "Project ID"
// @Param        project  body      domain.UpdateProjectRequest  true  "Fields to update"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Router       /admin/projects/{id} [put]
func (h *ProjectHandler) Update(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyProject, "Project update")

	var patch domain.UpdateProjectRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.projectUC.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project updated", nil)
}

// Delete godoc
// @Summary      Delete Project
// @Tags         admin-projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Project ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/projects/{id} [delete]
func (h *ProjectHandler) Delete(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyProject, "Project deletion")

	if err := h.projectUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project deleted", nil)
}
