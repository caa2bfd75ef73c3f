package handler

import (
	"context"
	"net/http"

	"suntimes-api/internal/models"
	"suntimes-api/internal/service"
	"suntimes-api/internal/view"

	"github.com/gin-gonic/gin"
)

// SunTimesHandler handles sun times lookups
type SunTimesHandler struct {
	service  SunTimesService
	renderer *view.Renderer
}

// SunTimesService interface for dependency injection
type SunTimesService interface {
	Lookup(context.Context, service.LookupRequest) models.FetchOutcome
	Estimate(context.Context, service.LookupRequest) models.FetchOutcome
}

// SunTimesResponse is the rendered view plus the raw results
type SunTimesResponse struct {
	view.ViewModel
	Kind   models.ErrorKind `json:"kind,omitempty"`
	Result *models.SunTimes `json:"result,omitempty"`
}

// NewSunTimesHandler creates a new sun times handler
func NewSunTimesHandler(svc SunTimesService, renderer *view.Renderer) *SunTimesHandler {
	return &SunTimesHandler{service: svc, renderer: renderer}
}

// SunTimes handles GET /api/v1/sun-times requests
//
//	@Summary		Sun times for today and tomorrow
//	@Description	Custom lat/lng override the preset when both are given.
//	@Tags			sun-times
//	@Produce		json
//	@Param			lat		query		string	false	"custom latitude"
//	@Param			lng		query		string	false	"custom longitude"
//	@Param			preset	query		string	false	"preset id"
//	@Param			date	query		string	false	"first day, YYYY-MM-DD"
//	@Success		200		{object}	SunTimesResponse
//	@Failure		400		{object}	SunTimesResponse
//	@Failure		502		{object}	SunTimesResponse
//	@Router			/api/v1/sun-times [get]
func (h *SunTimesHandler) SunTimes(c *gin.Context) {
	h.respond(c, h.service.Lookup)
}

// Estimate handles GET /api/v1/sun-times/estimate requests
//
//	@Summary		Locally computed sun times estimate
//	@Tags			sun-times
//	@Produce		json
//	@Param			lat		query		string	false	"custom latitude"
//	@Param			lng		query		string	false	"custom longitude"
//	@Param			preset	query		string	false	"preset id"
//	@Param			date	query		string	false	"first day, YYYY-MM-DD"
//	@Success		200		{object}	SunTimesResponse
//	@Failure		400		{object}	SunTimesResponse
//	@Failure		422		{object}	SunTimesResponse
//	@Router			/api/v1/sun-times/estimate [get]
func (h *SunTimesHandler) Estimate(c *gin.Context) {
	h.respond(c, h.service.Estimate)
}

func (h *SunTimesHandler) respond(c *gin.Context, lookup func(context.Context, service.LookupRequest) models.FetchOutcome) {
	req, err := lookupRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	outcome := lookup(c.Request.Context(), req)

	resp := SunTimesResponse{
		ViewModel: h.renderer.Render(outcome),
		Result:    outcome.Result,
	}
	if outcome.Failure != nil {
		resp.Kind = outcome.Failure.Kind
	}

	c.JSON(statusFor(outcome.Failure), resp)
}
