// Package routes wires HTTP endpoints to their controllers
package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yalcin/gatherly/internal/app/controllers"
	"github.com/yalcin/gatherly/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	eventController *controllers.EventController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	v1.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Public Event routes ---
	events := v1.Group("/events")
	{
		events.GET("", eventController.GetEvents)
		events.GET("/:id", eventController.GetEventByID)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		eventsProtected := authenticated.Group("/events")
		{
			eventsProtected.POST("", eventController.CreateEvent)
			eventsProtected.PATCH("/:id", eventController.UpdateEvent)
			eventsProtected.DELETE("/:id", eventController.DeleteEvent)
			eventsProtected.POST("/:id/join", eventController.JoinEvent)
			eventsProtected.POST("/:id/leave", eventController.LeaveEvent)

			eventsProtected.GET("/user/me", eventController.GetMyEvents)
			eventsProtected.GET("/user/me/calendar", eventController.GetMyCalendar)
		}
	}
}
