package booking

import (
	"errors"

	bookingRepo "handyhub/database/repository/booking"
	"handyhub/models"
	"handyhub/utils"
)

// GetBooking retrieves a single booking. Only the booking's customer, its
// provider, or an admin may read it.
func (s *DefaultBookingService) GetBooking(principal models.Principal, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, utils.NotFoundf("booking %s not found", bookingID)
		}
		return nil, utils.InternalError(err)
	}
	if _, ok := actorRole(principal, b); !ok {
		return nil, utils.Forbiddenf("not a party to this booking")
	}
	return b, nil
}

// ListUserBookings lists the principal's own bookings as a customer,
// newest appointment first.
func (s *DefaultBookingService) ListUserBookings(principal models.Principal) ([]models.Booking, error) {
	out, err := s.Repo.GetByUser(principal.UserID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return out, nil
}

// ListProviderBookings lists bookings made against the principal's services.
func (s *DefaultBookingService) ListProviderBookings(principal models.Principal) ([]models.Booking, error) {
	out, err := s.Repo.GetByProvider(principal.UserID)
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return out, nil
}

// ListAllBookings returns every booking in the store. Admin only.
func (s *DefaultBookingService) ListAllBookings(principal models.Principal) ([]models.Booking, error) {
	if !principal.IsAdmin() {
		return nil, utils.Forbiddenf("admin access required")
	}
	out, err := s.Repo.GetAll()
	if err != nil {
		return nil, utils.InternalError(err)
	}
	return out, nil
}
