package reviewRepo

import (
	"errors"

	"handyhub/models"
)

// ErrDuplicate is returned when the booking already carries a review.
var ErrDuplicate = errors.New("booking already reviewed")

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// Create inserts a new review. Returns ErrDuplicate when a review for
	// the same booking already exists.
	Create(review *models.Review) error
	// GetByBookingID retrieves the review linked to a booking, or nil when
	// the booking has none.
	GetByBookingID(bookingID string) (*models.Review, error)
	// GetByService retrieves all reviews for a service, newest first.
	GetByService(serviceID string) ([]models.Review, error)
	// Aggregates computes the mean rating and review count over all
	// reviews currently linked to the service.
	Aggregates(serviceID string) (mean float64, count int, err error)
}
