package websocket

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ssamratd571/localexplorer/middleware"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleWebSocket handles the WebSocket connection
func HandleWebSocket(c echo.Context, hub *Hub, userID primitive.ObjectID) error {
	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}

	// Create client with potentially nil userID (will be set after authentication)
	client := &Client{
		UserID:        userID,
		Conn:          conn,
		Authenticated: userID != primitive.NilObjectID,
	}

	hub.register <- client

	// Send a welcome message
	if client.Authenticated {
		conn.WriteJSON(Notification{
			Type:    "connected",
			Message: "WebSocket connection established",
			UserID:  userID.Hex(),
		})
	} else {
		conn.WriteJSON(Notification{
			Type:         "connected",
			Message:      "WebSocket connection established. Please authenticate to receive notifications.",
			RequiresAuth: true,
		})
	}

	// Handle disconnection
	go func() {
		defer func() {
			hub.unregister <- client
		}()

		for {
			messageType, message, err := conn.ReadMessage()
			if err != nil {
				break
			}

			// Handle authentication message (format: "AUTH:token_here")
			if messageType == websocket.TextMessage {
				messageStr := string(message)
				if strings.HasPrefix(messageStr, "AUTH:") {
					tokenString := strings.TrimPrefix(messageStr, "AUTH:")
					uid, err := userIDFromToken(tokenString)
					if err != nil {
						conn.WriteJSON(Notification{
							Type:         "auth_response",
							Message:      "Authentication failed: " + err.Error(),
							RequiresAuth: true,
						})
						continue
					}

					hub.AuthenticateClient(client, uid)
					conn.WriteJSON(Notification{
						Type:    "auth_response",
						Message: "Authenticated",
						UserID:  uid.Hex(),
					})
					continue
				}
			}
		}
	}()

	return nil
}

// userIDFromToken validates a raw JWT and extracts the user id.
func userIDFromToken(tokenString string) (primitive.ObjectID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &middleware.JwtCustomClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(middleware.GetJWTSecret()), nil
	})
	if err != nil || !token.Valid {
		return primitive.NilObjectID, jwt.ErrSignatureInvalid
	}

	claims, ok := token.Claims.(*middleware.JwtCustomClaims)
	if !ok {
		return primitive.NilObjectID, jwt.ErrSignatureInvalid
	}
	return primitive.ObjectIDFromHex(claims.UserID)
}
