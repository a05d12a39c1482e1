package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"placebot/internal/models"
)

// PlaceHandler converts transient locations into standardized places.
type PlaceHandler struct{}

// NewPlaceHandler creates a new place handler.
func NewPlaceHandler() *PlaceHandler {
	return &PlaceHandler{}
}

// Compose handles POST /places requests.
//
//	@Summary	Map a location to a standardized place record
//	@Tags		places
//	@Accept		json
//	@Produce	json
//	@Param		location	body		models.Location	true	"location to standardize"
//	@Success	200			{object}	models.Place
//	@Failure	400			{object}	map[string]string
//	@Router		/places [post]
func (h *PlaceHandler) Compose(c *gin.Context) {
	var loc models.Location
	if err := c.ShouldBindJSON(&loc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location payload"})
		return
	}

	c.JSON(http.StatusOK, models.PlaceFromLocation(&loc))
}
