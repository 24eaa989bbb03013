package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/websocket"
)

// RegisterChatRoutes sets up the per-listing conversation routes. All of
// them require a session.
func RegisterChatRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	chatController := controllers.NewChatController(db, hub)

	r := e.Group("/api/chat")
	r.Use(middleware.JWTMiddleware())
	r.Use(middleware.ActivityTracker(db))

	r.POST("/:domain/messages", chatController.SendMessage)
	r.GET("/:domain/thread/:listingId", chatController.GetThread)
	r.GET("/:domain/inbox", chatController.OwnerInbox)
	r.POST("/:domain/reply", chatController.OwnerReply)
	r.DELETE("/:domain/messages/:id", chatController.DeleteMessage)
}
