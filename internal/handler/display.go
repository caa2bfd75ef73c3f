package handler

import (
	"context"
	"net/http"

	"suntimes-api/internal/models"
	"suntimes-api/internal/service"
	"suntimes-api/internal/view"

	"github.com/gin-gonic/gin"
)

// DisplayHandler drives the shared results display
type DisplayHandler struct {
	service LookupService
	display *view.Display
}

// LookupService interface for dependency injection
type LookupService interface {
	Lookup(context.Context, service.LookupRequest) models.FetchOutcome
}

// RefreshResponse reports whether a refresh reached the display
type RefreshResponse struct {
	Sequence uint64         `json:"sequence"`
	Applied  bool           `json:"applied"`
	Display  view.ViewModel `json:"display"`
}

// NewDisplayHandler creates a new display handler
func NewDisplayHandler(svc LookupService, display *view.Display) *DisplayHandler {
	return &DisplayHandler{service: svc, display: display}
}

// Display handles GET /api/v1/display requests
//
//	@Summary	Current contents of the results display
//	@Tags		display
//	@Produce	json
//	@Success	200	{object}	view.ViewModel
//	@Router		/api/v1/display [get]
func (h *DisplayHandler) Display(c *gin.Context) {
	c.JSON(http.StatusOK, h.display.Snapshot())
}

// Refresh handles POST /api/v1/display/refresh requests. A refresh that
// completes after a newer one was dispatched is dropped.
//
//	@Summary	Fetch sun times into the results display
//	@Tags		display
//	@Accept		x-www-form-urlencoded
//	@Produce	json
//	@Param		lat		formData	string	false	"custom latitude"
//	@Param		lng		formData	string	false	"custom longitude"
//	@Param		preset	formData	string	false	"preset id"
//	@Param		date	formData	string	false	"first day, YYYY-MM-DD"
//	@Success	200		{object}	RefreshResponse
//	@Failure	400		{object}	map[string]string
//	@Router		/api/v1/display/refresh [post]
func (h *DisplayHandler) Refresh(c *gin.Context) {
	req, err := lookupRequest(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seq := h.display.Dispatch()
	outcome := h.service.Lookup(c.Request.Context(), req)
	applied := h.display.Apply(seq, outcome)

	c.JSON(http.StatusOK, RefreshResponse{
		Sequence: seq,
		Applied:  applied,
		Display:  h.display.Snapshot(),
	})
}

// Clear handles DELETE /api/v1/display requests
//
//	@Summary	Reset the results display
//	@Tags		display
//	@Produce	json
//	@Success	200	{object}	view.ViewModel
//	@Router		/api/v1/display [delete]
func (h *DisplayHandler) Clear(c *gin.Context) {
	h.display.Clear()
	c.JSON(http.StatusOK, h.display.Snapshot())
}
