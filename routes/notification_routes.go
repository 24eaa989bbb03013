package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
)

// RegisterNotificationRoutes registers all notification-related routes
func RegisterNotificationRoutes(e *echo.Echo, db *mongo.Client) {
	notificationController := controllers.NewNotificationController(db)

	r := e.Group("/api")
	r.Use(middleware.JWTMiddleware())

	r.GET("/notifications", notificationController.GetMyNotifications)
	r.PUT("/notifications/:id/read", notificationController.MarkRead)
	r.POST("/users/fcm-token", notificationController.UpdateUserFCMToken)
}
