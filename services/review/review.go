package review

import (
	"context"
	"errors"
	"math"
	"time"

	bookingRepo "handyhub/database/repository/booking"
	reviewRepo "handyhub/database/repository/review"
	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
	"handyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitReview records the principal's review of their completed booking,
// then recomputes the service's rating aggregates. One review per booking;
// concurrent duplicates lose on the unique index and surface as Conflict.
func (s *DefaultReviewService) SubmitReview(ctx context.Context, principal models.Principal, req SubmitReviewRequest) (*models.Review, error) {
	if req.BookingID == "" {
		return nil, utils.Validationf("booking id is required")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, utils.Validationf("rating must be between 1 and 5")
	}

	b, err := s.BookingRepo.GetByID(req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NotFoundf("booking %s not found", req.BookingID)
		}
		return nil, utils.InternalError(err)
	}

	if b.UserID != principal.UserID {
		return nil, utils.Forbiddenf("only the booking's customer may review it")
	}
	if b.Status != models.BookingStatusCompleted {
		return nil, utils.InvalidOperationf("booking is %s, only completed bookings can be reviewed", b.Status)
	}

	existing, err := s.Repo.GetByBookingID(req.BookingID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if existing != nil {
		return nil, utils.Conflictf("booking already reviewed")
	}

	r := &models.Review{
		ID:         uuid.New().String(),
		UserID:     principal.UserID,
		ServiceID:  b.ServiceID,
		ProviderID: b.ProviderID,
		BookingID:  b.ID,
		Rating:     req.Rating,
		Comment:    req.Comment,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(r); err != nil {
		if errors.Is(err, reviewRepo.ErrDuplicate) {
			return nil, utils.Conflictf("booking already reviewed")
		}
		return nil, utils.InternalError(err)
	}

	utils.GetLogger().Info("review submitted",
		zap.String("reviewId", r.ID),
		zap.String("bookingId", b.ID),
		zap.String("serviceId", b.ServiceID),
		zap.Int("rating", r.Rating),
	)

	if err := s.RecomputeRating(b.ServiceID); err != nil {
		// The review itself is durable; the aggregate converges on the next
		// successful recompute for this service.
		utils.GetLogger().Error("failed to recompute service rating",
			zap.String("serviceId", b.ServiceID), zap.Error(err))
	}

	return r, nil
}

// ListServiceReviews lists a service's reviews, newest first.
func (s *DefaultReviewService) ListServiceReviews(serviceID string) ([]models.Review, error) {
	if serviceID == "" {
		return nil, utils.Validationf("service id is required")
	}
	out, err := s.Repo.GetByService(serviceID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return out, nil
}

// RecomputeRating fully recomputes the service's denormalized rating from
// the review store: the mean over all current reviews, rounded to one
// decimal, and the review count. Always a full recompute, never an
// incremental patch, so concurrent submissions converge.
func (s *DefaultReviewService) RecomputeRating(serviceID string) error {
	mean, count, err := s.Repo.Aggregates(serviceID)
	if err != nil {
		return utils.InternalError(err)
	}

	rating := math.Round(mean*10) / 10
	if err := s.ServiceRepo.UpdateRating(serviceID, rating, count); err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return utils.NotFoundf("service %s not found", serviceID)
		}
		return utils.InternalError(err)
	}

	s.invalidateServiceCache(serviceID)
	return nil
}

// invalidateServiceCache drops the cached service snapshot so catalog reads
// pick up the fresh rating. Best effort.
func (s *DefaultReviewService) invalidateServiceCache(serviceID string) {
	client := utils.CacheClient
	if client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Del(ctx, utils.ServiceCacheKey(serviceID)).Err(); err != nil {
		utils.GetLogger().Warn("failed to invalidate service cache",
			zap.String("serviceId", serviceID), zap.Error(err))
	}
}
