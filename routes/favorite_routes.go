package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
)

// RegisterFavoriteRoutes sets up the per-user favorite routes.
func RegisterFavoriteRoutes(e *echo.Echo, db *mongo.Client) {
	favoriteController := controllers.NewFavoriteController(db)

	r := e.Group("/api/favorites")
	r.Use(middleware.JWTMiddleware())
	r.Use(middleware.ActivityTracker(db))

	r.GET("", favoriteController.GetFavorites)
	r.POST("/:domain/:id/toggle", favoriteController.Toggle)
}
