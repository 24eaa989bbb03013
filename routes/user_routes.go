package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/utils"
	"github.com/ssamratd571/localexplorer/websocket"
)

// RegisterUserRoutes sets up profile routes and the websocket endpoint
func RegisterUserRoutes(e *echo.Echo, db *mongo.Client, userController *controllers.UserController, hub *websocket.Hub) {
	r := e.Group("/api")
	r.Use(middleware.JWTMiddleware())
	r.Use(middleware.ActivityTracker(db))

	r.GET("/users/profile", userController.GetProfile)
	r.PUT("/users/profile", userController.UpdateProfile)
	r.POST("/users/profile-photo", userController.UploadProfilePhoto)

	admin := r.Group("/admin", middleware.RequireAdmin())
	admin.GET("/users", userController.ListUsers)

	r.GET("/ws", func(c echo.Context) error {
		user, err := utils.GetUserFromToken(c, db)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, models.Response{
				Status:  http.StatusUnauthorized,
				Message: "Unauthorized",
			})
		}
		return websocket.HandleWebSocket(c, hub, user.ID)
	})

	// Unauthenticated websocket endpoint; clients authenticate in-band
	// with an AUTH:<token> frame.
	e.GET("/ws", func(c echo.Context) error {
		return websocket.HandleWebSocket(c, hub, primitive.NilObjectID)
	})
}
