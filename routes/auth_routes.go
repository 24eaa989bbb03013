package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
)

// RegisterAuthRoutes sets up authentication and session routes
func RegisterAuthRoutes(e *echo.Echo, db *mongo.Client, authController *controllers.AuthController) {
	// Public authentication routes
	e.POST("/api/auth/register", authController.Register)
	e.POST("/api/auth/login", authController.Login)
	e.POST("/api/auth/google", authController.GoogleSignIn)
	e.POST("/api/auth/refresh-token", authController.RefreshToken)
	e.GET("/api/auth/validate-token", authController.ValidateSession)

	// Session routes behind the JWT middleware
	r := e.Group("/api/auth")
	r.Use(middleware.JWTMiddleware())
	r.POST("/logout", authController.Logout)
	r.GET("/me", authController.Me)
}
