package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/services"
	"github.com/ssamratd571/localexplorer/websocket"
)

// SetupRoutes configures all API routes by calling individual route
// registration functions.
func SetupRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub, cloud *services.CloudinaryService) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "ok",
		})
	})

	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)

	RegisterAuthRoutes(e, db, authController)
	RegisterUserRoutes(e, db, userController, hub)
	RegisterCatalogRoutes(e, db, cloud)
	RegisterChatRoutes(e, db, hub)
	RegisterOrderRoutes(e, db, hub)
	RegisterFavoriteRoutes(e, db)
	RegisterNotificationRoutes(e, db)
	RegisterFileRoutes(e)
}
