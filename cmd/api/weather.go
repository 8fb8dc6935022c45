package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"weather-dashboard/internal/dashboard"
)

// WeatherInput defines the query parameters shared by the weather endpoints
type WeatherInput struct {
	City   string `form:"city"`                                              // Free-text city name
	Source string `form:"source" binding:"omitempty,oneof=openmeteo wttr"` // Preferred data source
}

// RefreshResponse reports whether a refresh replaced the dashboard view
type RefreshResponse struct {
	Committed bool           `json:"committed"`
	View      dashboard.View `json:"view"`
}

// handleGetWeather godoc
// @Summary Get weather for a city
// @Description Geocode the city, fetch from the primary source with a wttr.in fallback, and return the render model. Unavailable weather still answers 200 with a banner.
// @Tags weather
// @Produce json
// @Param city query string true "City name" example(Paris)
// @Param source query string false "Preferred data source" Enums(openmeteo, wttr)
// @Success 200 {object} dashboard.View
// @Failure 400 {object} map[string]string
// @Router /api/weather [get]
func (app *App) handleGetWeather(c *gin.Context) {
	var input WeatherInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.City) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "city is required"})
		return
	}

	view := app.dashboardService.Load(c.Request.Context(), dashboard.Request{
		City:   input.City,
		Source: input.Source,
	})

	c.JSON(http.StatusOK, view)
}

// handleGetDashboard godoc
// @Summary Get the current dashboard
// @Description Return the most recently committed dashboard view
// @Tags dashboard
// @Produce json
// @Success 200 {object} dashboard.View
// @Failure 404 {object} map[string]string
// @Router /api/dashboard [get]
func (app *App) handleGetDashboard(c *gin.Context) {
	view, ok := app.dashboardService.Latest()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "dashboard has not been refreshed yet"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// handleRefreshDashboard godoc
// @Summary Refresh the dashboard
// @Description Run the pipeline for a city and commit the result unless a newer refresh started meanwhile
// @Tags dashboard
// @Produce json
// @Param city query string false "City name, defaults to app.defaultCity"
// @Param source query string false "Preferred data source" Enums(openmeteo, wttr)
// @Success 200 {object} RefreshResponse
// @Failure 400 {object} map[string]string
// @Router /api/dashboard/refresh [post]
func (app *App) handleRefreshDashboard(c *gin.Context) {
	var input WeatherInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(input.City) == "" {
		input.City = app.cfg.App.DefaultCity
	}

	view, committed := app.dashboardService.Refresh(c.Request.Context(), dashboard.Request{
		City:   input.City,
		Source: input.Source,
	})

	c.JSON(http.StatusOK, RefreshResponse{
		Committed: committed,
		View:      view,
	})
}

// handleDashboardPage renders the HTML dashboard. A custom city overrides the preset.
func (app *App) handleDashboardPage(c *gin.Context) {
	var input WeatherInput
	if err := c.ShouldBindQuery(&input); err != nil {
		input.Source = ""
	}

	city := strings.TrimSpace(c.Query("custom"))
	if city == "" {
		city = strings.TrimSpace(input.City)
	}
	if city == "" {
		city = app.cfg.App.DefaultCity
	}

	view := app.dashboardService.Load(c.Request.Context(), dashboard.Request{
		City:   city,
		Source: input.Source,
	})

	c.HTML(http.StatusOK, dashboard.PageTemplate, dashboard.NewPage(view, app.cfg.App.PresetCities))
}
