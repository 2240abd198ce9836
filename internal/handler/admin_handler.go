package handler

import (
	"net/http"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	isolationService service.IsolationService
}

// NewAdminHandler sets up the routing dependencies for admin endpoints
func NewAdminHandler(isolationService service.IsolationService) *AdminHandler {
	return &AdminHandler{isolationService: isolationService}
}

// RegisterRoutes binds the endpoints to the gin RouterGroup
func (h *AdminHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	admin := rg.Group("/admin", authn, middleware.RequireAdmin())
	{
		admin.GET("/verify-isolation", h.VerifyIsolation)
	}
}

// VerifyIsolation handles GET /api/admin/verify-isolation
// @Summary      Verify and repair data isolation
// @Description  Scans purchase orders and company profiles for rows without an owning user, reassigns them to the fallback admin and reports the counts. Safe to run repeatedly.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response{data=service.IsolationReport}
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /api/admin/verify-isolation [get]
func (h *AdminHandler) VerifyIsolation(c *gin.Context) {
	report, err := h.isolationService.VerifyAndRepair(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{
		"message": "Data isolation verification completed",
		"issues":  report,
		"fixed":   report.Fixed(),
	}))
}
