package booking

import (
	"context"
	"errors"

	bookingRepo "handyhub/database/repository/booking"
	"handyhub/models"
	"handyhub/utils"

	"go.uber.org/zap"
)

// DeleteBooking hard-deletes a booking. Only the booking's customer, its
// provider, or an admin may delete, and only while no review references it.
func (s *DefaultBookingService) DeleteBooking(ctx context.Context, principal models.Principal, bookingID string) error {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return utils.NotFoundf("booking %s not found", bookingID)
		}
		return utils.InternalError(err)
	}

	if _, ok := actorRole(principal, b); !ok {
		return utils.Forbiddenf("not a party to this booking")
	}

	review, err := s.ReviewRepo.GetByBookingID(bookingID)
	if err != nil {
		return utils.InternalError(err)
	}
	if review != nil {
		return utils.InvalidOperationf("booking has a review and cannot be deleted")
	}

	if err := s.Repo.Delete(bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return utils.NotFoundf("booking %s not found", bookingID)
		}
		return utils.InternalError(err)
	}

	utils.GetLogger().Info("booking deleted",
		zap.String("bookingId", bookingID),
		zap.String("deletedBy", principal.UserID),
	)
	return nil
}
