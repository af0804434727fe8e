package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sharmaakash12-2000/Delhi-Metro/internal/service"
	"github.com/sharmaakash12-2000/Delhi-Metro/pkg/response"
)

// StationHandler handles HTTP requests for stations and lines
type StationHandler struct {
	service *service.StationService
}

// NewStationHandler creates a new station handler
func NewStationHandler(service *service.StationService) *StationHandler {
	return &StationHandler{service: service}
}

// GetStations handles GET /api/v1/stations
func (h *StationHandler) GetStations(c *gin.Context) {
	stations, err := h.service.Stations()
	if err != nil {
		response.ServiceUnavailable(c, "Reference data not loaded")
		return
	}
	response.Success(c, gin.H{
		"stations": stations,
		"count":    len(stations),
	})
}

// GetLines handles GET /api/v1/lines
func (h *StationHandler) GetLines(c *gin.Context) {
	lines, err := h.service.Lines()
	if err != nil {
		response.ServiceUnavailable(c, "Reference data not loaded")
		return
	}
	response.Success(c, gin.H{
		"lines": lines,
		"count": len(lines),
	})
}
