package main

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-dashboard/internal/geocode"
)

// GeocodeInput defines the query parameters for the geocode endpoint
type GeocodeInput struct {
	City string `form:"city" binding:"required"` // Free-text city name
}

// handleGeocode godoc
// @Summary Resolve a city name
// @Description Resolve a free-text city name to coordinates using the configured geocoder
// @Tags location
// @Produce json
// @Param city query string true "City name" example(Paris)
// @Success 200 {object} types.Location
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 504 {object} map[string]string
// @Router /api/geocode [get]
func (app *App) handleGeocode(c *gin.Context) {
	var input GeocodeInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	loc, err := app.geocodeService.Resolve(c.Request.Context(), input.City)
	if err != nil {
		if errors.Is(err, geocode.ErrTimeout) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "geocoding timed out"})
			return
		}

		// Not found and transport failures both surface as "city not found"
		app.logger.Info("city lookup failed", "city", input.City, "error", err)
		c.JSON(http.StatusNotFound, gin.H{"error": "city not found"})
		return
	}

	c.JSON(http.StatusOK, loc)
}
