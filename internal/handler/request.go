package handler

import (
	"fmt"
	"net/http"
	"time"

	"suntimes-api/internal/models"
	"suntimes-api/internal/service"

	"github.com/gin-gonic/gin"
)

const dateLayout = "2006-01-02"

// lookupRequest reads the lookup input from the query string, falling back to
// form values so the same parameters work for POST requests.
func lookupRequest(c *gin.Context) (service.LookupRequest, error) {
	req := service.LookupRequest{
		CustomLat: param(c, "lat"),
		CustomLng: param(c, "lng"),
		PresetID:  param(c, "preset"),
	}
	if req.CustomLng == "" {
		req.CustomLng = param(c, "lon")
	}

	if date := param(c, "date"); date != "" {
		day, err := time.Parse(dateLayout, date)
		if err != nil {
			return service.LookupRequest{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD")
		}
		req.Date = day
	}

	return req, nil
}

func param(c *gin.Context, key string) string {
	if v, ok := c.GetQuery(key); ok {
		return v
	}
	return c.PostForm(key)
}

func statusFor(failure *models.Failure) int {
	if failure == nil {
		return http.StatusOK
	}
	switch failure.Kind {
	case models.ErrorKindInvalidInput:
		return http.StatusBadRequest
	case models.ErrorKindNetwork, models.ErrorKindAPI:
		return http.StatusBadGateway
	case models.ErrorKindUnavailable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
