package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Dashboard page
	app.router.GET("/", app.handleDashboardPage)

	api := app.router.Group("/api")
	{
		api.GET("/geocode", app.handleGeocode)
		api.GET("/weather", app.handleGetWeather)
		api.GET("/dashboard", app.handleGetDashboard)
		api.POST("/dashboard/refresh", app.handleRefreshDashboard)
	}

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
