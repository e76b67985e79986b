// utils/firebase.go
package utils

import (
	"context"

	"handyhub/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

var FCMClient *messaging.Client

// FirebaseInit initializes the Firebase App and Messaging client. Push
// notifications are best-effort: if no credentials are configured, the
// client stays nil and senders must skip dispatch.
func FirebaseInit() {
	if config.AppConfig.FirebaseCredentialsFile == "" {
		GetLogger().Warn("firebase: no credentials configured, push notifications disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		GetLogger().Sugar().Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		GetLogger().Sugar().Fatalf("firebase: error getting Messaging client: %v", err)
	}

	FCMClient = client
}
