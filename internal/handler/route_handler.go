package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/routing"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/service"
	"github.com/sharmaakash12-2000/Delhi-Metro/pkg/response"
)

// RouteHandler handles HTTP requests for route queries
type RouteHandler struct {
	service *service.RouteService
}

// NewRouteHandler creates a new route handler
func NewRouteHandler(service *service.RouteService) *RouteHandler {
	return &RouteHandler{service: service}
}

// GetRoute handles GET /api/v1/route?from=&to=
func (h *RouteHandler) GetRoute(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		response.BadRequest(c, "Query parameters 'from' and 'to' are required")
		return
	}

	summary, err := h.service.Plan(from, to)
	if err != nil {
		var nre *routing.NoRouteFoundError
		if errors.As(err, &nre) {
			response.NotFound(c, nre.Error())
			return
		}
		response.InternalError(c, "Failed to compute route")
		return
	}

	response.Success(c, summary)
}

// Reload handles POST /api/v1/reload. Rebuilds the graph from the
// reference tables; queries in flight keep their snapshot.
func (h *RouteHandler) Reload(c *gin.Context) {
	if err := h.service.Rebuild(); err != nil {
		response.InternalError(c, "Failed to rebuild graph: "+err.Error())
		return
	}
	response.Success(c, gin.H{
		"warnings": h.service.Warnings(),
	})
}
