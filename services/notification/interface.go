package notification

import (
	"context"
	"fmt"

	"handyhub/utils"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// NotificationService defines methods for sending FCM pushes. Accounts live
// in an external identity service, so delivery is topic-based: each user and
// provider app subscribes to its own topic on login.
type NotificationService interface {
	SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error
	SendProviderPush(ctx context.Context, providerID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct{}

func NewDefaultNotificationService() *DefaultNotificationService {
	return &DefaultNotificationService{}
}

// SendUserPush sends a push to the user's personal topic.
func (s *DefaultNotificationService) SendUserPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	return s.sendToTopic(ctx, "user."+userID, "user", title, body, data)
}

// SendProviderPush sends a push to the provider's personal topic, with high
// priority so new-booking alerts surface promptly.
func (s *DefaultNotificationService) SendProviderPush(ctx context.Context, providerID, title, body string, data map[string]string) error {
	return s.sendToTopic(ctx, "provider."+providerID, "provider", title, body, data)
}

func (s *DefaultNotificationService) sendToTopic(ctx context.Context, topic, role, title, body string, data map[string]string) error {
	if utils.FCMClient == nil {
		utils.GetLogger().Debug("push skipped, FCM not configured", zap.String("topic", topic))
		return nil
	}

	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}

	msg := &messaging.Message{
		Topic: topic,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority",
				Sound:     "default",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority":  "10",
				"apns-push-type": "alert",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: "default"},
			},
		},
	}

	response, err := utils.FCMClient.Send(ctx, msg)
	if err != nil {
		return fmt.Errorf("failed to send FCM message to %s: %w", topic, err)
	}
	utils.GetLogger().Debug("push sent", zap.String("topic", topic), zap.String("response", response))
	return nil
}
