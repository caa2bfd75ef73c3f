package handler

import (
	"context"
	"net/http"

	"suntimes-api/internal/models"

	"github.com/gin-gonic/gin"
)

// PresetHandler handles preset catalog requests
type PresetHandler struct {
	service PresetService
}

// PresetService interface for dependency injection
type PresetService interface {
	Presets(context.Context) ([]models.Preset, error)
}

// NewPresetHandler creates a new preset handler
func NewPresetHandler(svc PresetService) *PresetHandler {
	return &PresetHandler{service: svc}
}

// Presets handles GET /api/v1/presets requests
//
//	@Summary	List preset locations
//	@Tags		presets
//	@Produce	json
//	@Success	200	{array}	models.Preset
//	@Router		/api/v1/presets [get]
func (h *PresetHandler) Presets(c *gin.Context) {
	presets, err := h.service.Presets(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, presets)
}
