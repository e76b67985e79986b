package booking

import (
	"context"
	"time"

	bookingRepo "handyhub/database/repository/booking"
	reviewRepo "handyhub/database/repository/review"
	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
	"handyhub/services/notification"
)

// CreateBookingRequest holds all information required to create a booking.
type CreateBookingRequest struct {
	ServiceID string    `json:"service_id"`
	Date      time.Time `json:"date"`
	Notes     string    `json:"notes"`
}

// BookingService is the core booking lifecycle API. Every call takes the
// authenticated principal explicitly; there is no ambient request state.
type BookingService interface {
	// CreateBooking books a slot for the principal against a service.
	CreateBooking(ctx context.Context, principal models.Principal, req CreateBookingRequest) (*models.Booking, error)
	// CheckAvailable reports whether the exact (service, date) slot is free.
	CheckAvailable(serviceID string, date time.Time) (bool, error)
	// Transition moves a booking to the target status on behalf of the principal.
	Transition(ctx context.Context, principal models.Principal, bookingID string, target models.BookingStatus) (*models.Booking, error)
	// DeleteBooking hard-deletes an unreviewed booking.
	DeleteBooking(ctx context.Context, principal models.Principal, bookingID string) error
	// GetBooking retrieves a booking the principal is party to.
	GetBooking(principal models.Principal, bookingID string) (*models.Booking, error)
	// ListUserBookings lists the principal's bookings as a customer.
	ListUserBookings(principal models.Principal) ([]models.Booking, error)
	// ListProviderBookings lists bookings against the principal's services.
	ListProviderBookings(principal models.Principal) ([]models.Booking, error)
	// ListAllBookings lists every booking; admin only.
	ListAllBookings(principal models.Principal) ([]models.Booking, error)
}

// ReminderScheduler enqueues an appointment reminder for a confirmed booking.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking) error
}

// DefaultBookingService is the default, store-backed implementation.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
	ReviewRepo  reviewRepo.ReviewRepository
	// Notifier and Reminders are best-effort side channels; either may be
	// nil and neither participates in the core contract.
	Notifier  notification.NotificationService
	Reminders ReminderScheduler
}
