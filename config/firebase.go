package config

import (
	"context"
	"encoding/base64"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

var FirebaseApp *firebase.App

// InitFirebase initializes the Firebase Admin SDK. Push notifications are
// disabled (not fatal) when no credentials are configured.
func InitFirebase() {
	ctx := context.Background()

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	config := &firebase.Config{
		ProjectID: projectID,
	}

	// Check for base64 encoded credentials first
	if base64Creds := os.Getenv("FIREBASE_CREDENTIALS_BASE64"); base64Creds != "" {
		log.Printf("Using Firebase credentials from base64 environment variable")
		decoded, err := base64.StdEncoding.DecodeString(base64Creds)
		if err != nil {
			log.Fatalf("Error decoding base64 credentials: %v", err)
		}

		opt := option.WithCredentialsJSON(decoded)
		app, err := firebase.NewApp(ctx, config, opt)
		if err != nil {
			log.Fatalf("error initializing firebase app: %v\n", err)
		}
		FirebaseApp = app
		return
	}

	// Fallback to file-based credentials
	credFile := os.Getenv("GOOGLE_APPLICATION_CREDENTIALS")
	if credFile == "" {
		if _, err := os.Stat("firebase-adminsdk.json"); err == nil {
			credFile = "firebase-adminsdk.json"
		}
	}

	if credFile == "" {
		log.Println("No Firebase credentials configured; push notifications disabled")
		return
	}

	log.Printf("Using Firebase credentials file: %s", credFile)
	opt := option.WithCredentialsFile(credFile)

	app, err := firebase.NewApp(ctx, config, opt)
	if err != nil {
		log.Fatalf("error initializing firebase app: %v\n", err)
	}
	FirebaseApp = app
}
