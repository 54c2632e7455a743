// Package http provides the HTTP handler layer for the hotel search API.
package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all hotel search API routes.
func RegisterRoutes(e *echo.Echo, h *HotelHandler) {
	// Health check endpoint
	e.GET("/health", h.Health)

	// Hotel search endpoint
	e.POST("/hotelresults", h.SearchHotels)

	// Swagger documentation
	e.GET("/swagger/*", echoSwagger.WrapHandler)
}

// RegisterRoutesWithMiddleware registers routes with custom middleware.
// The health endpoint stays outside the middleware chain.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *HotelHandler, middleware ...echo.MiddlewareFunc) {
	e.GET("/health", h.Health)

	g := e.Group("", middleware...)
	g.POST("/hotelresults", h.SearchHotels)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
}
