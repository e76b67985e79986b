package booking

import (
	"context"
	"sync"
	"time"

	bookingRepo "handyhub/database/repository/booking"
	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
)

// fakeBookingRepo is an in-memory BookingRepository with the same slot and
// guard semantics as the Mongo implementation.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]models.Booking

	// beforeUpdate, when set, runs inside UpdateStatus before the guard
	// check, to simulate a concurrent status change.
	beforeUpdate func(r *fakeBookingRepo)
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[string]models.Booking)}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.bookings {
		if existing.ServiceID == b.ServiceID && existing.Date.Equal(b.Date) && existing.Status.IsActive() {
			return bookingRepo.ErrSlotTaken
		}
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	out := b
	return &out, nil
}

func (r *fakeBookingRepo) GetByUser(userID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetByProvider(providerID string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProviderID == providerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) GetAll() ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeBookingRepo) HasActiveBooking(serviceID string, date time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ServiceID == serviceID && b.Date.Equal(date) && b.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	if r.beforeUpdate != nil {
		r.beforeUpdate(r)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if b.Status != from {
		return nil, bookingRepo.ErrStaleStatus
	}
	b.Status = to
	b.UpdatedAt = time.Now()
	r.bookings[id] = b
	out := b
	return &out, nil
}

func (r *fakeBookingRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[id]; !ok {
		return bookingRepo.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

// setStatus force-sets a booking's status, bypassing the guard.
func (r *fakeBookingRepo) setStatus(id string, status models.BookingStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := r.bookings[id]
	b.Status = status
	r.bookings[id] = b
}

// fakeServiceRepo is an in-memory ServiceRepository.
type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]models.Service
}

func newFakeServiceRepo(services ...models.Service) *fakeServiceRepo {
	r := &fakeServiceRepo{services: make(map[string]models.Service)}
	for _, s := range services {
		r.services[s.ID] = s
	}
	return r
}

func (r *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return nil, serviceRepo.ErrNotFound
	}
	out := s
	return &out, nil
}

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Service
	for _, s := range r.services {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeServiceRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.services[id]
	if !ok {
		return serviceRepo.ErrNotFound
	}
	s.Rating = rating
	s.ReviewCount = reviewCount
	r.services[id] = s
	return nil
}

// fakeReviewRepo covers the single lookup DeleteBooking needs.
type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews map[string]models.Review // keyed by booking ID
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[string]models.Review)}
}

func (r *fakeReviewRepo) Create(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reviews[review.BookingID] = *review
	return nil
}

func (r *fakeReviewRepo) GetByBookingID(bookingID string) (*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rv, ok := r.reviews[bookingID]
	if !ok {
		return nil, nil
	}
	out := rv
	return &out, nil
}

func (r *fakeReviewRepo) GetByService(serviceID string) ([]models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Review
	for _, rv := range r.reviews {
		if rv.ServiceID == serviceID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Aggregates(serviceID string) (float64, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var sum, count int
	for _, rv := range r.reviews {
		if rv.ServiceID == serviceID {
			sum += rv.Rating
			count++
		}
	}
	if count == 0 {
		return 0, 0, nil
	}
	return float64(sum) / float64(count), count, nil
}
