package bookingRepo

import (
	"context"
	"errors"
	"time"

	"handyhub/models"
)

// ErrSlotTaken is returned when an active booking already occupies the
// requested (service, date) slot.
var ErrSlotTaken = errors.New("slot already booked")

// ErrNotFound is returned when no booking matches the given ID.
var ErrNotFound = errors.New("booking not found")

// ErrStaleStatus is returned when a guarded status update finds the booking
// in a different status than expected.
var ErrStaleStatus = errors.New("booking status changed concurrently")

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking, claiming its slot atomically.
	// Returns ErrSlotTaken when an active booking already holds the slot.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// GetByUser retrieves all bookings made by a customer, newest first.
	GetByUser(userID string) ([]models.Booking, error)
	// GetByProvider retrieves all bookings against a provider's services, newest first.
	GetByProvider(providerID string) ([]models.Booking, error)
	// GetAll retrieves every booking, newest first.
	GetAll() ([]models.Booking, error)
	// HasActiveBooking reports whether an active booking occupies (serviceID, date).
	HasActiveBooking(serviceID string, date time.Time) (bool, error)
	// UpdateStatus moves a booking to the target status, guarded on the
	// expected current status. Returns the updated booking, or
	// ErrStaleStatus when the guard no longer matches.
	UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error)
	// Delete removes a booking record by its ID.
	Delete(id string) error
}
