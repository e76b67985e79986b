package booking

import (
	"context"
	"errors"
	"time"

	bookingRepo "handyhub/database/repository/booking"
	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
	"handyhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CheckAvailable reports whether the exact (service, date) slot is free of
// active bookings. Only exact-timestamp collision is checked; the service's
// declared availability window is not consulted.
func (s *DefaultBookingService) CheckAvailable(serviceID string, date time.Time) (bool, error) {
	if serviceID == "" {
		return false, utils.Validationf("service id is required")
	}
	if date.IsZero() {
		return false, utils.Validationf("date is required")
	}

	taken, err := s.Repo.HasActiveBooking(serviceID, date)
	if err != nil {
		return false, utils.InternalError(err)
	}
	return !taken, nil
}

// CreateBooking validates the request, checks the slot, and persists the
// booking atomically. Each check is a hard precondition, applied in order.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, principal models.Principal, req CreateBookingRequest) (*models.Booking, error) {
	if req.ServiceID == "" {
		return nil, utils.Validationf("service id is required")
	}
	if req.Date.IsZero() {
		return nil, utils.Validationf("date is required")
	}

	// 1. The service must exist and be active.
	svc, err := s.ServiceRepo.GetByID(req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrNotFound) {
			return nil, utils.NotFoundf("service %s not found", req.ServiceID)
		}
		return nil, utils.InternalError(err)
	}
	if !svc.IsActive {
		return nil, utils.NotFoundf("service %s not found", req.ServiceID)
	}

	// 2. A provider cannot book their own service.
	if svc.ProviderID == principal.UserID {
		return nil, utils.InvalidOperationf("cannot book your own service")
	}

	// 3. The slot must be free. The insert below re-checks inside a
	// transaction, so this read is only a fast path for the common case.
	// TODO: also validate req.Date against the service's declared
	// availability window (days and hours) before the slot check.
	taken, err := s.Repo.HasActiveBooking(req.ServiceID, req.Date)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	if taken {
		return nil, utils.Conflictf("slot unavailable")
	}

	// 4. Persist with the price snapshotted off the service.
	now := time.Now()
	newBooking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        principal.UserID,
		ProviderID:    svc.ProviderID,
		ServiceID:     svc.ID,
		Date:          req.Date.UTC(),
		Status:        models.BookingStatusPending,
		Notes:         req.Notes,
		TotalPrice:    svc.Price,
		PaymentStatus: models.PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.Repo.Create(ctx, newBooking); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			return nil, utils.Conflictf("slot unavailable")
		}
		return nil, utils.InternalError(err)
	}

	utils.GetLogger().Info("booking created",
		zap.String("bookingId", newBooking.ID),
		zap.String("serviceId", svc.ID),
		zap.String("userId", principal.UserID),
		zap.Time("date", newBooking.Date),
	)
	return newBooking, nil
}
