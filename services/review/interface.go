package review

import (
	"context"

	bookingRepo "handyhub/database/repository/booking"
	reviewRepo "handyhub/database/repository/review"
	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
)

// SubmitReviewRequest carries a customer's review of a completed booking.
type SubmitReviewRequest struct {
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
}

// ReviewService manages reviews and the denormalized rating on services.
type ReviewService interface {
	// SubmitReview records a review against a completed booking and
	// recomputes the service's rating.
	SubmitReview(ctx context.Context, principal models.Principal, req SubmitReviewRequest) (*models.Review, error)
	// ListServiceReviews lists a service's reviews, newest first.
	ListServiceReviews(serviceID string) ([]models.Review, error)
	// RecomputeRating recomputes a service's denormalized rating fields from
	// its reviews. Exposed for repair jobs; SubmitReview calls it itself.
	RecomputeRating(serviceID string) error
}

// DefaultReviewService is the default, store-backed implementation.
type DefaultReviewService struct {
	Repo        reviewRepo.ReviewRepository
	BookingRepo bookingRepo.BookingRepository
	ServiceRepo serviceRepo.ServiceRepository
}
