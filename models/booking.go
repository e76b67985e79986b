package models

import (
	"fmt"
	"time"
)

// BookingStatus represents the current state of a booking in its lifecycle.
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

// ActiveBookingStatuses are the statuses that occupy a slot. At most one
// booking in any of these statuses may exist per (service_id, date).
var ActiveBookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusInProgress,
}

// IsValid returns true if the status is a recognized booking status.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// IsActive returns true if a booking in this status occupies its slot.
func (s BookingStatus) IsActive() bool {
	for _, active := range ActiveBookingStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// IsTerminal returns true if no further transitions are possible from this status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// String returns the string representation of the status.
func (s BookingStatus) String() string {
	return string(s)
}

// ParseBookingStatus converts a string to a BookingStatus, returning an error if invalid.
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid booking status: %s", s)
	}
	return status, nil
}

// PaymentStatus tracks payment state on a booking. It is a passive field:
// nothing in the booking lifecycle branches on it.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

// Booking represents an appointment a customer holds against a service.
type Booking struct {
	ID            string        `bson:"id" json:"id"`                         // Unique booking identifier (UUID)
	UserID        string        `bson:"user_id" json:"user_id"`               // Customer who made the booking
	ProviderID    string        `bson:"provider_id" json:"provider_id"`       // Owner of the booked service
	ServiceID     string        `bson:"service_id" json:"service_id"`         // Service being booked
	Date          time.Time     `bson:"date" json:"date"`                     // Appointment timestamp (UTC)
	Status        BookingStatus `bson:"status" json:"status"`                 // Lifecycle status
	Notes         string        `bson:"notes,omitempty" json:"notes,omitempty"`
	TotalPrice    float64       `bson:"total_price" json:"total_price"`       // Service price snapshot at creation, never recalculated
	PaymentStatus PaymentStatus `bson:"payment_status" json:"payment_status"`
	CreatedAt     time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time     `bson:"updated_at" json:"updated_at"`
}
