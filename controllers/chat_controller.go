package controllers

import (
	"context"
	"log"
	"net/http"
	"strings"
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

// ChatController handles per-listing owner/customer conversations
type ChatController struct {
	db  *mongo.Client
	hub *websocket.Hub
}

// NewChatController creates a new chat controller
func NewChatController(db *mongo.Client, hub *websocket.Hub) *ChatController {
	return &ChatController{db: db, hub: hub}
}

// resolveChatDomain validates the :domain path param and returns the backing
// collection name.
func resolveChatDomain(c echo.Context) (domain, collection string, ok bool) {
	domain = c.Param("domain")
	collection, ok = utils.ChatCollectionFor(domain)
	return domain, collection, ok
}

// listingCollectionFor maps a chat domain to the collection its listings
// live in.
func listingCollectionFor(domain string) (string, bool) {
	switch domain {
	case models.ChatDomainHotel:
		return "hotels", true
	case models.ChatDomainCar:
		return "cars", true
	case models.ChatDomainCuisine:
		return "cuisine", true
	case models.ChatDomainShopping:
		return "shopping", true
	}
	return "", false
}

// lookupListingOwner resolves a listing's ownerUid and display name from the
// stored document. Thread routing must not trust a client-sent owner.
func lookupListingOwner(ctx context.Context, db *mongo.Client, domain, listingID string) (ownerUID, name string, err error) {
	collection, ok := listingCollectionFor(domain)
	if !ok {
		return "", "", mongo.ErrNoDocuments
	}

	id, err := primitive.ObjectIDFromHex(listingID)
	if err != nil {
		return "", "", mongo.ErrNoDocuments
	}

	var doc struct {
		OwnerUID       string `bson:"ownerUid"`
		HotelName      string `bson:"hotelName"`
		CarName        string `bson:"carName"`
		RestaurantName string `bson:"restaurantName"`
		Name           string `bson:"name"`
	}
	if err := config.GetCollection(db, collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		return "", "", err
	}

	for _, n := range []string{doc.HotelName, doc.CarName, doc.RestaurantName, doc.Name} {
		if n != "" {
			name = n
			break
		}
	}
	return doc.OwnerUID, name, nil
}

// SendMessage appends a customer message to a conversation. The conversation
// key is derived server-side; the first message creates the thread.
func (cc *ChatController) SendMessage(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	domain, collection, ok := resolveChatDomain(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown chat domain: " + domain,
		})
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Text) == "" || req.ListingID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "listingId and a non-empty text are required",
		})
	}

	user, err := utils.GetUserFromToken(c, cc.db)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "User not found",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ownerUID, listingName, err := lookupListingOwner(ctx, cc.db, domain, req.ListingID)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Listing not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch listing: " + err.Error(),
		})
	}
	if listingName == "" {
		listingName = req.ListingName
	}

	msg := models.ChatMessage{
		ID:              primitive.NewObjectID(),
		ConversationKey: utils.DeriveConversationKey(domain, req.ListingID, claims.UserID),
		ListingID:       req.ListingID,
		ListingName:     listingName,
		OwnerUID:        ownerUID,
		UserUID:         claims.UserID,
		UserName:        user.DisplayName,
		SenderUID:       claims.UserID,
		SenderType:      models.SenderUser,
		Text:            strings.TrimSpace(req.Text),
		CreatedAt:       time.Now(),
	}
	if domain == models.ChatDomainShopping {
		msg.Context = models.ChatDomainShopping
	}

	if _, err := config.GetCollection(cc.db, collection).InsertOne(ctx, msg); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send message: " + err.Error(),
		})
	}

	cc.pushChatMessage(msg.OwnerUID, msg)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Message sent",
		Data:    msg,
	})
}

// pushChatMessage delivers a message over websocket and the notification
// channels. Both are best-effort.
func (cc *ChatController) pushChatMessage(recipientUID string, msg models.ChatMessage) {
	if recipientUID == "" {
		return
	}
	if id, err := primitive.ObjectIDFromHex(recipientUID); err == nil {
		if err := cc.hub.NotifyChatMessage(id, msg); err != nil {
			log.Printf("Websocket chat push to %s skipped: %v", recipientUID, err)
		}
	}
	utils.NotifyUserByUID(cc.db, recipientUID,
		"New message",
		msg.UserName+": "+msg.Text,
		models.NotificationChatMessage,
		map[string]interface{}{
			"conversationKey": msg.ConversationKey,
			"listingId":       msg.ListingID,
		})
}

// GetThread returns one conversation, oldest first. Only the two
// participants may read it.
func (cc *ChatController) GetThread(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	domain, collection, ok := resolveChatDomain(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown chat domain: " + domain,
		})
	}

	listingID := c.Param("listingId")
	userUID := c.QueryParam("userUid")
	if userUID == "" {
		userUID = claims.UserID
	}
	key := utils.DeriveConversationKey(domain, listingID, userUID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(cc.db, collection).Find(ctx, bson.M{"conversationKey": key})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch thread: " + err.Error(),
		})
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode thread: " + err.Error(),
		})
	}

	// A non-participant asking for someone else's thread gets nothing
	if len(messages) > 0 {
		first := messages[0]
		if claims.UserID != first.UserUID && claims.UserID != first.OwnerUID && claims.Role != models.RoleAdmin {
			return c.JSON(http.StatusForbidden, models.Response{
				Status:  http.StatusForbidden,
				Message: "Not a participant in this conversation",
			})
		}
	}

	utils.SortMessages(messages)
	if messages == nil {
		messages = []models.ChatMessage{}
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Thread retrieved",
		Data:    messages,
	})
}

// OwnerInbox returns the caller's threads for one domain, grouped one row
// per conversation, newest activity first. Cuisine and shopping share a
// collection, so the Context discriminator keeps their inboxes separate.
func (cc *ChatController) OwnerInbox(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	domain, collection, ok := resolveChatDomain(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown chat domain: " + domain,
		})
	}

	filter := bson.M{"ownerUid": claims.UserID}
	switch domain {
	case models.ChatDomainShopping:
		filter["context"] = models.ChatDomainShopping
	case models.ChatDomainCuisine:
		filter["context"] = bson.M{"$ne": models.ChatDomainShopping}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(cc.db, collection).Find(ctx, filter)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch inbox: " + err.Error(),
		})
	}
	defer cursor.Close(ctx)

	var messages []models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to decode inbox: " + err.Error(),
		})
	}

	threads := utils.GroupThreads(messages)
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Inbox retrieved",
		Data:    threads,
	})
}

// OwnerReply appends an owner message to an existing thread. Ownership of
// the thread is checked against its stored ownerUid.
func (cc *ChatController) OwnerReply(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	domain, collection, ok := resolveChatDomain(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown chat domain: " + domain,
		})
	}

	var req models.SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Text) == "" || req.ListingID == "" || req.UserUID == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "listingId, userUid and a non-empty text are required",
		})
	}

	key := utils.DeriveConversationKey(domain, req.ListingID, req.UserUID)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := config.GetCollection(cc.db, collection)

	var existing models.ChatMessage
	err := coll.FindOne(ctx, bson.M{"conversationKey": key}).Decode(&existing)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Conversation not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch conversation: " + err.Error(),
		})
	}
	if existing.OwnerUID != claims.UserID {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the listing owner can reply to this conversation",
		})
	}

	msg := models.ChatMessage{
		ID:              primitive.NewObjectID(),
		ConversationKey: key,
		ListingID:       existing.ListingID,
		ListingName:     existing.ListingName,
		OwnerUID:        existing.OwnerUID,
		UserUID:         existing.UserUID,
		UserName:        existing.UserName,
		SenderUID:       claims.UserID,
		SenderType:      models.SenderOwner,
		Text:            strings.TrimSpace(req.Text),
		Context:         existing.Context,
		CreatedAt:       time.Now(),
	}

	if _, err := coll.InsertOne(ctx, msg); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send reply: " + err.Error(),
		})
	}

	cc.pushChatMessage(msg.UserUID, msg)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Reply sent",
		Data:    msg,
	})
}

// DeleteMessage removes a single message. Only the listing owner may delete
// messages in their threads.
func (cc *ChatController) DeleteMessage(c echo.Context) error {
	claims := middleware.GetUserFromToken(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Unauthorized",
		})
	}

	domain, collection, ok := resolveChatDomain(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Unknown chat domain: " + domain,
		})
	}

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid message ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	coll := config.GetCollection(cc.db, collection)

	var msg models.ChatMessage
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&msg); err != nil {
		if err == mongo.ErrNoDocuments {
			return c.JSON(http.StatusNotFound, models.Response{
				Status:  http.StatusNotFound,
				Message: "Message not found",
			})
		}
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch message: " + err.Error(),
		})
	}

	if msg.OwnerUID != claims.UserID && claims.Role != models.RoleAdmin {
		return c.JSON(http.StatusForbidden, models.Response{
			Status:  http.StatusForbidden,
			Message: "Only the listing owner can delete messages",
		})
	}

	if _, err := coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to delete message: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Message deleted",
	})
}
