package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/services"
)

// RegisterCatalogRoutes sets up the four listing catalogs. Browsing is
// public; creating and deleting listings requires a session.
func RegisterCatalogRoutes(e *echo.Echo, db *mongo.Client, cloud *services.CloudinaryService) {
	hotelController := controllers.NewHotelController(db, cloud)
	carController := controllers.NewCarController(db, cloud)
	cuisineController := controllers.NewCuisineController(db, cloud)
	shoppingController := controllers.NewShoppingController(db, cloud)
	mediaController := controllers.NewMediaController(cloud)

	// Public browse routes
	e.GET("/api/hotels", hotelController.GetHotels)
	e.GET("/api/hotels/:id", hotelController.GetHotel)
	e.GET("/api/cars", carController.GetCars)
	e.GET("/api/cars/:id", carController.GetCar)
	e.GET("/api/cuisine", cuisineController.GetCuisine)
	e.GET("/api/cuisine/:id", cuisineController.GetCuisineListing)
	e.GET("/api/shopping", shoppingController.GetProducts)
	e.GET("/api/shopping/:id", shoppingController.GetProduct)

	// Protected listing management
	r := e.Group("/api")
	r.Use(middleware.JWTMiddleware())
	r.Use(middleware.ActivityTracker(db))

	r.POST("/hotels", hotelController.CreateHotel)
	r.DELETE("/hotels/:id", hotelController.DeleteHotel)
	r.POST("/cars", carController.CreateCar)
	r.DELETE("/cars/:id", carController.DeleteCar)
	r.POST("/cuisine", cuisineController.CreateCuisine)
	r.DELETE("/cuisine/:id", cuisineController.DeleteCuisine)
	r.POST("/shopping", shoppingController.CreateProduct)
	r.DELETE("/shopping/:id", shoppingController.DeleteProduct)

	r.POST("/upload", mediaController.Upload)
}
