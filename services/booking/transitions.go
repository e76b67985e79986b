package booking

import (
	"context"
	"errors"

	bookingRepo "handyhub/database/repository/booking"
	"handyhub/models"
	"handyhub/utils"

	"go.uber.org/zap"
)

// permittedTargets is the role-scoped transition permission matrix. It is a
// flat permitted set per role, not an adjacency table: any listed target is
// accepted regardless of the booking's current status (a provider may move
// a booking straight from pending to completed). Current-state checks are
// limited to terminal immutability and the re-cancel rule below.
var permittedTargets = map[models.Role]map[models.BookingStatus]struct{}{
	models.RoleUser: {
		models.BookingStatusCancelled: {},
	},
	models.RoleProvider: {
		models.BookingStatusConfirmed:  {},
		models.BookingStatusInProgress: {},
		models.BookingStatusCompleted:  {},
		models.BookingStatusCancelled:  {},
	},
	models.RoleAdmin: {
		models.BookingStatusPending:    {},
		models.BookingStatusConfirmed:  {},
		models.BookingStatusInProgress: {},
		models.BookingStatusCompleted:  {},
		models.BookingStatusCancelled:  {},
	},
}

// actorRole resolves the principal's role relative to this booking: the
// booking's customer acts as user, its provider as provider, and admins act
// as admin regardless of relationship. Anyone else has no standing.
func actorRole(principal models.Principal, b *models.Booking) (models.Role, bool) {
	if principal.IsAdmin() {
		return models.RoleAdmin, true
	}
	switch principal.UserID {
	case b.UserID:
		return models.RoleUser, true
	case b.ProviderID:
		return models.RoleProvider, true
	}
	return "", false
}

// Transition moves a booking to the target status on behalf of the
// principal. A rejected transition commits nothing, including updated_at.
func (s *DefaultBookingService) Transition(ctx context.Context, principal models.Principal, bookingID string, target models.BookingStatus) (*models.Booking, error) {
	if !target.IsValid() {
		return nil, utils.Validationf("invalid booking status %q", target)
	}

	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NotFoundf("booking %s not found", bookingID)
		}
		return nil, utils.InternalError(err)
	}

	role, ok := actorRole(principal, b)
	if !ok {
		return nil, utils.Forbiddenf("not a party to this booking")
	}

	if _, allowed := permittedTargets[role][target]; !allowed {
		return nil, utils.InvalidTransitionf("role %s may not set status %s", role, target)
	}

	if b.Status.IsTerminal() {
		if target == models.BookingStatusCancelled {
			return nil, utils.InvalidOperationf("booking is already %s and cannot be cancelled", b.Status)
		}
		return nil, utils.InvalidTransitionf("no transition out of terminal status %s", b.Status)
	}

	updated, err := s.Repo.UpdateStatus(bookingID, b.Status, target)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrStaleStatus):
			return nil, utils.Conflictf("booking status changed concurrently, retry")
		case errors.Is(err, bookingRepo.ErrNotFound):
			return nil, utils.NotFoundf("booking %s not found", bookingID)
		}
		return nil, utils.InternalError(err)
	}

	utils.GetLogger().Info("booking transitioned",
		zap.String("bookingId", updated.ID),
		zap.String("from", b.Status.String()),
		zap.String("to", updated.Status.String()),
		zap.String("actorRole", string(role)),
	)

	s.afterTransition(updated)
	return updated, nil
}
