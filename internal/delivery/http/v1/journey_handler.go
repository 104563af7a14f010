package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/middleware"
	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JourneyHandler struct {
	journeyUC domain.JourneyUsecase
}

func NewJourneyHandler(protected *gin.RouterGroup, journeyUC domain.JourneyUsecase) {
	handler := &JourneyHandler{journeyUC: journeyUC}

	protected.POST("/learning-journey", handler.Create)
	protected.PUT("/learning-journey/:id", handler.Update)
	protected.DELETE("/learning-journey/:id", handler.Delete)
}

// Create godoc
// @Summary      Create Learning Phase
// @Tags         admin-journey
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        phase  body      domain.CreatePhaseRequest  true  "Learning Phase"
// @Success      201    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Router       /admin/learning-journey [post]
func (h *JourneyHandler) Create(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Learning phase creation")

	var req domain.CreatePhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	id, err := h.journeyUC.Create(c.Request.Context(), req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Learning phase created", gin.H{"id": id})
}

// Update godoc
// @Summary      Update Learning Phase
// @Description  Partial update; at least one field is required
// @Tags         admin-journey
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id     path      string                     true  "Phase ID"
// @Param        phase  body      domain.UpdatePhaseRequest  true  "Fields to update"
// @Success      200    {object}  response.Response
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Router       /admin/learning-journey/{id} [put]
func (h *JourneyHandler) Update(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Learning phase update")

	var patch domain.UpdatePhaseRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.journeyUC.Update(c.Request.Context(), c.Param("id"), patch); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Learning phase updated", nil)
}

// Delete godoc
// @Summary      Delete Learning Phase
// @Tags         admin-journey
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Phase ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /admin/learning-journey/{id} [delete]
func (h *JourneyHandler) Delete(c *gin.Context) {
	middleware.SetAudit(c, domain.NotifyContent, "Learning phase deletion")

	if err := h.journeyUC.Delete(c.Request.Context(), c.Param("id")); err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Learning phase deleted", nil)
}
