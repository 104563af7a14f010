package v1

import (
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// AdminPanelHandler serves the cross-collection views: content search and
// the dashboard summary.
type AdminPanelHandler struct {
	searchUC    domain.SearchUsecase
	dashboardUC domain.DashboardUsecase
}

func NewAdminPanelHandler(protected *gin.RouterGroup, searchUC domain.SearchUsecase, dashboardUC domain.DashboardUsecase) {
	handler := &AdminPanelHandler{
		searchUC:    searchUC,
		dashboardUC: dashboardUC,
	}

	protected.GET("/search", handler.Search)
	protected.GET("/dashboard-summary", handler.DashboardSummary)
}

// Search godoc
// @Summary      Search Content
// @Description  Case-insensitive substring search across all content sections. Sections whose lookup fails are reported under errors while the rest still return hits.
// @Tags         admin-panel
// @Produce      json
// @Security     BearerAuth
// @Param        q    query     string  true  "Search query"
// @Success      200  {object}  response.Response{data=domain.SearchResults}
// @Failure      400  {object}  response.Response
// @Router       /admin/search [get]
func (h *AdminPanelHandler) Search(c *gin.Context) {
	results, err := h.searchUC.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Search completed", results)
}

// DashboardSummary godoc
// @Summary      Dashboard Summary
// @Description  Counters and recent messages for the admin landing page
// @Tags         admin-panel
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=domain.DashboardSummary}
// @Router       /admin/dashboard-summary [get]
func (h *AdminPanelHandler) DashboardSummary(c *gin.Context) {
	summary, err := h.dashboardUC.Summary(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Dashboard summary retrieved", summary)
}
