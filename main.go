package main

import (
	"log"
	"mime"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/routes"
	"github.com/ssamratd571/localexplorer/services"
	"github.com/ssamratd571/localexplorer/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	config.InitFirebase()
	config.ConnectRedis()
	client := config.ConnectDB()

	wsHub := websocket.NewHub()
	go wsHub.Run()

	cloud := services.NewCloudinaryService()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	rateLimiter := middleware.NewRateLimiter()

	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(middleware.GlobalCORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeaders())
	e.Use(httpsRedirect())

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "LocalExplorer backend is running",
			"version": "1.0",
		})
	})

	routes.SetupRoutes(e, client, wsHub, cloud)

	// Background maintenance loops
	go middleware.CleanupBlacklist()
	go func() {
		for {
			middleware.MarkInactiveUsers(client, 30*time.Minute)
			time.Sleep(5 * time.Minute)
		}
	}()

	os.MkdirAll("uploads", 0755)
	os.MkdirAll("uploads/listings", 0755)
	os.MkdirAll("uploads/thumbnails", 0755)
	os.MkdirAll("uploads/profiles", 0755)

	e.Static("/uploads", "uploads")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

// httpsRedirect sends plain-HTTP requests arriving through the proxy back
// over HTTPS.
func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}
