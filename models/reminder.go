package models

// ReminderPayload is the asynq task body for a scheduled appointment reminder.
type ReminderPayload struct {
	BookingID  string `json:"bookingId"`
	UserID     string `json:"userId"`
	ProviderID string `json:"providerId"`
	ServiceID  string `json:"serviceId"`
	FireDate   string `json:"fireDate"` // RFC3339 timestamp the reminder fires for
	Title      string `json:"title"`
	Body       string `json:"body"`
}
