package models

import "time"

// Review is a customer's rating of a completed booking. Reviews are
// immutable once created, and a booking can carry at most one.
type Review struct {
	ID         string    `bson:"id" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	ServiceID  string    `bson:"service_id" json:"service_id"`
	ProviderID string    `bson:"provider_id" json:"provider_id"`
	BookingID  string    `bson:"booking_id" json:"booking_id"` // Unique: one review per booking
	Rating     int       `bson:"rating" json:"rating"`         // Integer in [1,5]
	Comment    string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}
