package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"placebot/internal/models"
)

// GeoCodeHandler handles forward geocoding requests.
type GeoCodeHandler struct {
	service GeoCodeService
}

// GeoCodeService interface for dependency injection.
type GeoCodeService interface {
	Geocode(context.Context, string) ([]models.Location, error)
}

// NewGeoCodeHandler creates a new geocode handler.
func NewGeoCodeHandler(svc GeoCodeService) *GeoCodeHandler {
	return &GeoCodeHandler{service: svc}
}

// GeoCode handles GET /geocode requests.
//
//	@Summary	Forward geocode an address
//	@Tags		geocoding
//	@Produce	json
//	@Param		q	query		string	true	"free-form address query"
//	@Success	200	{array}		models.Location
//	@Failure	400	{object}	map[string]string
//	@Router		/geocode [get]
func (h *GeoCodeHandler) GeoCode(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameter 'q'"})
		return
	}

	locations, err := h.service.Geocode(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, locations)
}
