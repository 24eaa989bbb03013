package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/middleware"
	"github.com/ssamratd571/localexplorer/models"
	"github.com/ssamratd571/localexplorer/utils"
	"github.com/ssamratd571/localexplorer/websocket"
)

// Order kinds as they appear in merged feeds and on the status routes.
const (
	OrderKindHotel    = "hotel"
	OrderKindCar      = "car"
	OrderKindCuisine  = "cuisine"
	OrderKindShopping = "shopping"
)

// OrderController handles cuisine/shopping orders and the merged order
// feeds plus the shared approval workflow.
type OrderController struct {
	db  *mongo.Client
	hub *websocket.Hub
}

// NewOrderController creates a new order controller
func NewOrderController(db *mongo.Client, hub *websocket.Hub) *OrderController {
	return &OrderController{db: db, hub: hub}
}

// CreateCuisineOrder creates a pending dish order. The unit price is the
// stored variant price; totals are never taken from the client.
func (oc *OrderController) CreateCuisineOrder(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req models.CuisineOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Validation failed: " + err.Error(),
		})
	}

	cuisineID, err := primitive.ObjectIDFromHex(req.CuisineID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid cuisine ID",
		})
	}

	user, err := utils.GetUserFromToken(c, oc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var cuisine models.Cuisine
	err = config.GetCollection(oc.db, "cuisine").FindOne(ctx, bson.M{"_id": cuisineID}).Decode(&cuisine)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Cuisine listing not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch cuisine listing: " + err.Error(),
		})
	}

	item, ok := cuisine.MenuItemByName(req.ItemName)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown menu item: " + req.ItemName,
		})
	}

	unitPrice := item.VariantPrice(req.Variant)
	if unitPrice <= 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "The requested variant is not available for " + req.ItemName,
		})
	}

	now := time.Now()
	order := models.Order{
		ID:          primitive.NewObjectID(),
		OrderType:   models.OrderTypeCuisine,
		ListingID:   req.CuisineID,
		ListingName: cuisine.DisplayName(),
		OwnerUID:    cuisine.OwnerUID,
		UserUID:     claims.UserID,
		UserName:    user.DisplayName,
		Phone:       req.Phone,
		ItemName:    req.ItemName,
		Variant:     req.Variant,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice * float64(req.Quantity),
		Address:     req.Address,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := config.GetCollection(oc.db, "orders").InsertOne(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create order: " + err.Error(),
		})
	}

	notifyOwnerNewOrder(oc.db, oc.hub, cuisine.OwnerUID,
		"New food order",
		fmt.Sprintf("%s ordered %dx %s (%s)", user.DisplayName, req.Quantity, req.ItemName, req.Variant),
		order)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Order placed",
		Data:    order,
	})
}

// CreateShoppingOrder creates a pending product order in shoppingOrders.
func (oc *OrderController) CreateShoppingOrder(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	var req models.ShoppingOrderRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Validation failed: " + err.Error(),
		})
	}

	productID, err := primitive.ObjectIDFromHex(req.ProductID)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid product ID",
		})
	}

	user, err := utils.GetUserFromToken(c, oc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var product models.ShoppingProduct
	err = config.GetCollection(oc.db, "shopping").FindOne(ctx, bson.M{"_id": productID}).Decode(&product)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Product not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch product: " + err.Error(),
		})
	}

	unitPrice := product.UnitPrice()
	if unitPrice <= 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "This product has no price and cannot be ordered",
		})
	}

	now := time.Now()
	order := models.Order{
		ID:          primitive.NewObjectID(),
		OrderType:   models.OrderTypeShopping,
		ListingID:   req.ProductID,
		ListingName: product.Name,
		OwnerUID:    product.OwnerUID,
		UserUID:     claims.UserID,
		UserName:    user.DisplayName,
		Phone:       req.Phone,
		ItemName:    product.Name,
		Quantity:    req.Quantity,
		UnitPrice:   unitPrice,
		TotalPrice:  unitPrice * float64(req.Quantity),
		Address:     req.Address,
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := config.GetCollection(oc.db, "shoppingOrders").InsertOne(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to create order: " + err.Error(),
		})
	}

	notifyOwnerNewOrder(oc.db, oc.hub, product.OwnerUID,
		"New product order",
		fmt.Sprintf("%s ordered %dx %s", user.DisplayName, req.Quantity, product.Name),
		order)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Order placed",
		Data:    order,
	})
}

// collectOrders merges all four collections into summary rows, filtered on
// one side (customer or owner) of the documents.
func collectOrders(ctx context.Context, db *mongo.Client, customerUID, ownerUID string) ([]models.OrderSummary, error) {
	summaries := make([]models.OrderSummary, 0)

	hotelFilter := bson.M{}
	sideFilter := bson.M{}
	if customerUID != "" {
		hotelFilter["userId"] = customerUID
		sideFilter["userUid"] = customerUID
	}
	if ownerUID != "" {
		hotelFilter["ownerUid"] = ownerUID
		sideFilter["ownerUid"] = ownerUID
	}

	var hotelBookings []models.HotelBooking
	cursor, err := config.GetCollection(db, "hotelBookings").Find(ctx, hotelFilter)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &hotelBookings); err != nil {
		return nil, err
	}
	for _, b := range hotelBookings {
		summaries = append(summaries, models.OrderSummary{
			ID:          b.ID.Hex(),
			Kind:        OrderKindHotel,
			ListingID:   b.HotelID,
			ListingName: b.HotelName,
			OwnerUID:    b.OwnerUID,
			UserUID:     b.UserID,
			UserName:    b.UserName,
			Detail:      fmt.Sprintf("%s (%s), %d guests, %s to %s", b.RoomCategory, b.ACType, b.Guests, b.CheckIn, b.CheckOut),
			TotalPrice:  b.TotalPrice,
			Status:      b.Status,
			CheckInQR:   b.CheckInQR,
			CreatedAt:   b.CreatedAt,
		})
	}

	var carBookings []models.CarBooking
	cursor, err = config.GetCollection(db, "bookings").Find(ctx, sideFilter)
	if err != nil {
		return nil, err
	}
	if err := cursor.All(ctx, &carBookings); err != nil {
		return nil, err
	}
	for _, b := range carBookings {
		summaries = append(summaries, models.OrderSummary{
			ID:          b.ID.Hex(),
			Kind:        OrderKindCar,
			ListingID:   b.CarID,
			ListingName: b.CarName,
			OwnerUID:    b.OwnerUID,
			UserUID:     b.UserUID,
			UserName:    b.UserName,
			Detail:      fmt.Sprintf("%s %s, %d days, %s to %s", b.VehicleCategory, b.TariffName, b.TripDays, b.PickupDate, b.ReturnDate),
			TotalPrice:  b.EstimatedRent,
			Status:      b.Status,
			CheckInQR:   b.CheckInQR,
			CreatedAt:   b.CreatedAt,
		})
	}

	// The orders collection holds cuisine orders plus legacy shopping
	// documents; orderType tells them apart. New shopping orders live in
	// shoppingOrders.
	for _, collName := range []string{"orders", "shoppingOrders"} {
		var orders []models.Order
		cursor, err = config.GetCollection(db, collName).Find(ctx, sideFilter)
		if err != nil {
			return nil, err
		}
		if err := cursor.All(ctx, &orders); err != nil {
			return nil, err
		}
		for _, o := range orders {
			kind := OrderKindCuisine
			if o.OrderType == models.OrderTypeShopping {
				kind = OrderKindShopping
			}
			detail := fmt.Sprintf("%dx %s", o.Quantity, o.ItemName)
			if o.Variant != "" {
				detail = fmt.Sprintf("%dx %s (%s)", o.Quantity, o.ItemName, o.Variant)
			}
			summaries = append(summaries, models.OrderSummary{
				ID:          o.ID.Hex(),
				Kind:        kind,
				ListingID:   o.ListingID,
				ListingName: o.ListingName,
				OwnerUID:    o.OwnerUID,
				UserUID:     o.UserUID,
				UserName:    o.UserName,
				Detail:      detail,
				TotalPrice:  o.TotalPrice,
				Status:      o.Status,
				CreatedAt:   o.CreatedAt,
			})
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}

// MyOrders returns the caller's orders and bookings across all four
// domains, newest first.
func (oc *OrderController) MyOrders(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summaries, err := collectOrders(ctx, oc.db, claims.UserID, "")
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch orders: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Orders retrieved",
		Data:    summaries,
	})
}

// OwnerOrders returns everything placed against the caller's listings,
// newest first.
func (oc *OrderController) OwnerOrders(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summaries, err := collectOrders(ctx, oc.db, "", claims.UserID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch orders: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Orders retrieved",
		Data:    summaries,
	})
}

// orderDoc is the slice of an order/booking document the status workflow
// needs, regardless of which collection it lives in.
type orderDoc struct {
	ID          primitive.ObjectID `bson:"_id"`
	OwnerUID    string             `bson:"ownerUid"`
	UserUID     string             `bson:"userUid,omitempty"`
	UserID      string             `bson:"userId,omitempty"`
	UserEmail   string             `bson:"userEmail,omitempty"`
	ListingName string             `bson:"-"`
	HotelName   string             `bson:"hotelName,omitempty"`
	CarName     string             `bson:"carName,omitempty"`
	OrderName   string             `bson:"listingName,omitempty"`
	Status      string             `bson:"status"`
}

func (d orderDoc) customerUID() string {
	if d.UserUID != "" {
		return d.UserUID
	}
	return d.UserID
}

func (d orderDoc) listingName() string {
	switch {
	case d.HotelName != "":
		return d.HotelName
	case d.CarName != "":
		return d.CarName
	}
	return d.OrderName
}

// findOrderForUpdate resolves an order kind + id to its document and
// collection. Shopping falls back to the legacy orders collection.
func findOrderForUpdate(ctx context.Context, db *mongo.Client, kind string, id primitive.ObjectID) (orderDoc, *mongo.Collection, error) {
	var collections []string
	switch kind {
	case OrderKindHotel:
		collections = []string{"hotelBookings"}
	case OrderKindCar:
		collections = []string{"bookings"}
	case OrderKindCuisine:
		collections = []string{"orders"}
	case OrderKindShopping:
		collections = []string{"shoppingOrders", "orders"}
	default:
		return orderDoc{}, nil, fmt.Errorf("unknown order kind %q", kind)
	}

	for _, name := range collections {
		coll := config.GetCollection(db, name)
		var doc orderDoc
		err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
		if err == nil {
			return doc, coll, nil
		}
		if err != mongo.ErrNoDocuments {
			return orderDoc{}, nil, err
		}
	}
	return orderDoc{}, nil, mongo.ErrNoDocuments
}

// notifyStatusChange fans a terminal status out to the customer over
// websocket, FCM, in-app notification and email. All channels are
// best-effort.
func (oc *OrderController) notifyStatusChange(doc orderDoc, kind, status, note string) {
	customerUID := doc.customerUID()
	if customerUID == "" {
		return
	}

	title := "Order " + status
	body := fmt.Sprintf("Your %s order for %s was %s", kind, doc.listingName(), status)
	if note != "" {
		body += ": " + note
	}

	payload := map[string]interface{}{
		"orderId": doc.ID.Hex(),
		"kind":    kind,
		"status":  status,
	}

	if id, err := primitive.ObjectIDFromHex(customerUID); err == nil {
		if err := oc.hub.NotifyOrderStatus(id, payload); err != nil {
			log.Printf("Websocket status push to %s skipped: %v", customerUID, err)
		}
	}
	utils.NotifyUserByUID(oc.db, customerUID, title, body, models.NotificationOrderStatus, payload)

	email := doc.UserEmail
	if email == "" {
		if id, err := primitive.ObjectIDFromHex(customerUID); err == nil {
			var user models.User
			if err := config.GetCollection(oc.db, "users").FindOne(context.Background(), bson.M{"_id": id}).Decode(&user); err == nil {
				email = user.Email
			}
		}
	}
	if email != "" {
		utils.SendEmail(email, title, body)
	}
}

// UpdateStatus moves a pending order/booking to a terminal status. Owner
// only. The filter includes the current status, so a concurrent decision
// cannot overwrite an already-terminal state. Approved bookings get a
// check-in QR code.
func (oc *OrderController) UpdateStatus(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	kind := c.Param("kind")
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	var req models.StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if req.Status != models.StatusApproved && req.Status != models.StatusRejected {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Status must be approved or rejected",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, coll, err := findOrderForUpdate(ctx, oc.db, kind, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch order: " + err.Error(),
		})
	}

	if doc.OwnerUID != claims.UserID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the listing owner can decide this order",
		})
	}
	if !models.CanTransition(doc.Status, req.Status) {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Order is already " + doc.Status,
		})
	}

	set := bson.M{
		"status":    req.Status,
		"updatedAt": time.Now(),
	}
	if req.Note != "" {
		set["statusNote"] = req.Note
	}
	if req.Status == models.StatusApproved && (kind == OrderKindHotel || kind == OrderKindCar) {
		if qrCode, err := utils.GenerateCheckInQR(kind, id.Hex()); err == nil {
			set["checkInQR"] = qrCode
		} else {
			log.Printf("Check-in QR generation failed for %s %s: %v", kind, id.Hex(), err)
		}
	}

	// Match on the current status so two racing decisions cannot both win
	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": bson.A{models.StatusPending, ""}},
	}
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to update order: " + err.Error(),
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Order was already decided",
		})
	}

	go oc.notifyStatusChange(doc, kind, req.Status, req.Note)

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order " + req.Status,
		Data: map[string]interface{}{
			"id":     id.Hex(),
			"kind":   kind,
			"status": req.Status,
		},
	})
}

// Cancel lets the customer withdraw a still-pending order or booking.
func (oc *OrderController) Cancel(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	kind := c.Param("kind")
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid order ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, coll, err := findOrderForUpdate(ctx, oc.db, kind, id)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Order not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch order: " + err.Error(),
		})
	}

	if doc.customerUID() != claims.UserID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the customer can cancel this order",
		})
	}
	if !models.CanTransition(doc.Status, models.StatusCancelled) {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Order is already " + doc.Status,
		})
	}

	filter := bson.M{
		"_id":    id,
		"status": bson.M{"$in": bson.A{models.StatusPending, ""}},
	}
	update := bson.M{"$set": bson.M{
		"status":    models.StatusCancelled,
		"updatedAt": time.Now(),
	}}
	result, err := coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to cancel order: " + err.Error(),
		})
	}
	if result.MatchedCount == 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: "Order was already decided",
		})
	}

	// Tell the owner the request is gone
	if doc.OwnerUID != "" {
		utils.NotifyUserByUID(oc.db, doc.OwnerUID,
			"Order cancelled",
			fmt.Sprintf("A %s order for %s was cancelled by the customer", kind, doc.listingName()),
			models.NotificationOrderStatus,
			map[string]interface{}{"orderId": id.Hex(), "kind": kind})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Order cancelled",
	})
}
