package routes

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/controllers"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/websocket"
)

// RegisterOrderRoutes sets up booking creation, order creation, the merged
// order feeds and the approval workflow.
func RegisterOrderRoutes(e *echo.Echo, db *mongo.Client, hub *websocket.Hub) {
	bookingController := controllers.NewBookingController(db, hub)
	orderController := controllers.NewOrderController(db, hub)

	r := e.Group("/api")
	r.Use(middleware.JWTMiddleware())
	r.Use(middleware.ActivityTracker(db))

	r.POST("/bookings/hotel", bookingController.CreateHotelBooking)
	r.POST("/bookings/car", bookingController.CreateCarBooking)

	r.POST("/orders/cuisine", orderController.CreateCuisineOrder)
	r.POST("/orders/shopping", orderController.CreateShoppingOrder)

	r.GET("/orders/my", orderController.MyOrders)
	r.GET("/orders/owner", orderController.OwnerOrders)

	r.PUT("/orders/:kind/:id/status", orderController.UpdateStatus)
	r.PUT("/orders/:kind/:id/cancel", orderController.Cancel)
}
