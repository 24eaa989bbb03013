package utils

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"

	"github.com/ssamratd571/localexplorer/config"
	"github.com/ssamratd571/localexplorer/models"
)

// SaveNotification saves a notification to the database
func SaveNotification(db *mongo.Client, userID primitive.ObjectID, title, message, notifType string, data interface{}) error {
	collection := config.GetCollection(db, "notifications")

	notification := models.Notification{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      notifType,
		Data:      data,
		IsRead:    false,
		CreatedAt: time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), notification)
	return err
}

// SendEmail sends a plain-text email through the configured SMTP relay.
// Failures are logged, not fatal: email is best-effort alongside the
// websocket and FCM channels.
func SendEmail(to, subject, body string) error {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")
	if smtpHost == "" || to == "" {
		return nil
	}
	smtpPort := 2525
	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		fmt.Sscanf(portStr, "%d", &smtpPort)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", smtpUser)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(smtpHost, smtpPort, smtpUser, smtpPass)
	if err := d.DialAndSend(m); err != nil {
		log.Printf("Failed to send email to %s: %v", to, err)
		return err
	}
	return nil
}

// SendFCMNotificationToUser sends a Firebase Cloud Messaging notification to a user
func SendFCMNotificationToUser(db *mongo.Client, userID primitive.ObjectID, title, message string, data map[string]interface{}) error {
	// Get user's FCM token from database
	collection := config.GetCollection(db, "users")
	var user models.User
	err := collection.FindOne(context.Background(), bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		return fmt.Errorf("failed to find user: %w", err)
	}

	if user.FCMToken == "" {
		log.Printf("User %s has no FCM token", userID.Hex())
		return fmt.Errorf("user has no FCM token")
	}

	if config.FirebaseApp == nil {
		log.Printf("Firebase app is not initialized")
		return fmt.Errorf("firebase app not initialized")
	}

	ctx := context.Background()
	client, err := config.FirebaseApp.Messaging(ctx)
	if err != nil {
		log.Printf("Error getting messaging client: %v", err)
		return fmt.Errorf("failed to initialize messaging client: %w", err)
	}

	notificationData := map[string]string{
		"type":      models.NotificationOrderStatus,
		"timestamp": time.Now().Format(time.RFC3339),
	}
	// Override/merge with provided data
	if data != nil {
		for key, value := range data {
			if str, ok := value.(string); ok {
				notificationData[key] = str
			} else {
				notificationData[key] = ""
			}
		}
	}

	fcmMessage := &messaging.Message{
		Token: user.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  message,
		},
		Data: notificationData,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: "localexplorer_fcm_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  message,
					},
					Sound:    "default",
					Badge:    func() *int { v := 1; return &v }(),
					Category: "ORDER_UPDATE",
				},
			},
		},
	}

	response, err := client.Send(ctx, fcmMessage)
	if err != nil {
		log.Printf("Error sending FCM notification to user: %v", err)
		return fmt.Errorf("failed to send FCM notification: %w", err)
	}

	log.Printf("FCM notification sent successfully to user %s: %s", userID.Hex(), response)
	return nil
}

// NotifyUserByUID resolves a user by the string uid stored on listings and
// orders, then saves an in-app notification and pushes over FCM. Used by
// the chat and order flows where only the uid string is at hand.
func NotifyUserByUID(db *mongo.Client, uid, title, message, notifType string, data map[string]interface{}) {
	userID, err := primitive.ObjectIDFromHex(uid)
	if err != nil {
		log.Printf("Cannot notify user %q: %v", uid, err)
		return
	}
	if err := SaveNotification(db, userID, title, message, notifType, data); err != nil {
		log.Printf("Failed to save notification for %s: %v", uid, err)
	}
	if err := SendFCMNotificationToUser(db, userID, title, message, data); err != nil {
		log.Printf("FCM push to %s skipped: %v", uid, err)
	}
}
