package review

import (
	"context"
	"sync"
	"testing"
	"time"

	bookingRepo "handyhub/database/repository/booking"
	reviewRepo "handyhub/database/repository/review"
	serviceRepo "handyhub/database/repository/service"
	"handyhub/models"
	"handyhub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBookingRepo serves GetByID from a fixed set; the review service never
// writes bookings.
type stubBookingRepo struct {
	bookings map[string]models.Booking
}

func (r *stubBookingRepo) GetByID(id string) (*models.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	out := b
	return &out, nil
}

func (r *stubBookingRepo) Create(ctx context.Context, b *models.Booking) error { return nil }
func (r *stubBookingRepo) GetByUser(string) ([]models.Booking, error)          { return nil, nil }
func (r *stubBookingRepo) GetByProvider(string) ([]models.Booking, error)      { return nil, nil }
func (r *stubBookingRepo) GetAll() ([]models.Booking, error)                   { return nil, nil }
func (r *stubBookingRepo) HasActiveBooking(string, time.Time) (bool, error)    { return false, nil }
func (r *stubBookingRepo) UpdateStatus(string, models.BookingStatus, models.BookingStatus) (*models.Booking, error) {
	return nil, nil
}
func (r *stubBookingRepo) Delete(string) error { return nil }

// fakeReviewRepo enforces the one-review-per-booking rule under a lock, the
// way the unique index does.
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
	if _, exists := r.reviews[review.BookingID]; exists {
		return reviewRepo.ErrDuplicate
	}
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

// fakeServiceRepo records rating updates.
type fakeServiceRepo struct {
	mu       sync.Mutex
	services map[string]models.Service
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

func (r *fakeServiceRepo) GetAll() ([]models.Service, error) { return nil, nil }

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

const (
	bookingID = "booking-1"
	serviceID = "service-1"
	userID    = "user-1"
)

func newTestService(status models.BookingStatus) (*DefaultReviewService, *fakeServiceRepo) {
	services := &fakeServiceRepo{services: map[string]models.Service{
		serviceID: {ID: serviceID, ProviderID: "provider-1", Name: "Deep Cleaning", IsActive: true},
	}}
	bookings := &stubBookingRepo{bookings: map[string]models.Booking{
		bookingID: {
			ID:         bookingID,
			UserID:     userID,
			ProviderID: "provider-1",
			ServiceID:  serviceID,
			Status:     status,
		},
	}}
	svc := &DefaultReviewService{
		Repo:        newFakeReviewRepo(),
		BookingRepo: bookings,
		ServiceRepo: services,
	}
	return svc, services
}

func owner() models.Principal {
	return models.Principal{UserID: userID, Role: models.RoleUser}
}

func TestSubmitReviewUpdatesRating(t *testing.T) {
	svc, services := newTestService(models.BookingStatusCompleted)

	r, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
		BookingID: bookingID,
		Rating:    4,
		Comment:   "solid work",
	})
	require.NoError(t, err)
	assert.Equal(t, serviceID, r.ServiceID)
	assert.Equal(t, 4, r.Rating)

	s, err := services.GetByID(serviceID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.Rating)
	assert.Equal(t, 1, s.ReviewCount)
}

func TestSubmitReviewRatingBounds(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusCompleted)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
			BookingID: bookingID,
			Rating:    rating,
		})
		assert.Equal(t, utils.KindValidation, utils.KindOf(err), "rating %d", rating)
	}
}

func TestSubmitReviewUnknownBooking(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusCompleted)

	_, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
		BookingID: "missing",
		Rating:    5,
	})
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestSubmitReviewOnlyBookingOwner(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusCompleted)

	stranger := models.Principal{UserID: "someone-else", Role: models.RoleUser}
	_, err := svc.SubmitReview(context.Background(), stranger, SubmitReviewRequest{
		BookingID: bookingID,
		Rating:    5,
	})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))

	// Even the booking's provider may not review it.
	prov := models.Principal{UserID: "provider-1", Role: models.RoleProvider}
	_, err = svc.SubmitReview(context.Background(), prov, SubmitReviewRequest{
		BookingID: bookingID,
		Rating:    5,
	})
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestSubmitReviewRequiresCompletedBooking(t *testing.T) {
	for _, status := range []models.BookingStatus{
		models.BookingStatusPending,
		models.BookingStatusConfirmed,
		models.BookingStatusInProgress,
		models.BookingStatusCancelled,
	} {
		svc, _ := newTestService(status)
		_, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
			BookingID: bookingID,
			Rating:    5,
		})
		assert.Equal(t, utils.KindInvalidOperation, utils.KindOf(err), "status %s", status)
	}
}

func TestSubmitReviewDuplicateRejected(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusCompleted)

	_, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
		BookingID: bookingID,
		Rating:    5,
	})
	require.NoError(t, err)

	_, err = svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
		BookingID: bookingID,
		Rating:    3,
	})
	assert.Equal(t, utils.KindConflict, utils.KindOf(err))
}

func TestSubmitReviewConcurrentDuplicates(t *testing.T) {
	svc, services := newTestService(models.BookingStatusCompleted)

	const n = 8
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
				BookingID: bookingID,
				Rating:    5,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded int
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.Equal(t, utils.KindConflict, utils.KindOf(err))
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one review per booking")

	s, err := services.GetByID(serviceID)
	require.NoError(t, err)
	assert.Equal(t, 1, s.ReviewCount)
	assert.Equal(t, 5.0, s.Rating)
}

func TestRecomputeRatingRoundsToOneDecimal(t *testing.T) {
	svc, services := newTestService(models.BookingStatusCompleted)

	// Seed reviews directly; 3, 4, 4 has mean 3.666... which must round to 3.7.
	repo := svc.Repo.(*fakeReviewRepo)
	for i, rating := range []int{3, 4, 4} {
		require.NoError(t, repo.Create(&models.Review{
			ID:        "r-" + string(rune('a'+i)),
			BookingID: "b-" + string(rune('a'+i)),
			ServiceID: serviceID,
			Rating:    rating,
		}))
	}

	require.NoError(t, svc.RecomputeRating(serviceID))

	s, err := services.GetByID(serviceID)
	require.NoError(t, err)
	assert.Equal(t, 3.7, s.Rating)
	assert.Equal(t, 3, s.ReviewCount)
}

func TestRecomputeRatingEmptyService(t *testing.T) {
	svc, services := newTestService(models.BookingStatusCompleted)

	require.NoError(t, svc.RecomputeRating(serviceID))

	s, err := services.GetByID(serviceID)
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.Rating)
	assert.Equal(t, 0, s.ReviewCount)
}

func TestRecomputeRatingUnknownService(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusCompleted)

	err := svc.RecomputeRating("missing")
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestListServiceReviews(t *testing.T) {
	svc, _ := newTestService(models.BookingStatusCompleted)

	_, err := svc.SubmitReview(context.Background(), owner(), SubmitReviewRequest{
		BookingID: bookingID,
		Rating:    5,
		Comment:   "great",
	})
	require.NoError(t, err)

	out, err := svc.ListServiceReviews(serviceID)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "great", out[0].Comment)

	_, err = svc.ListServiceReviews("")
	assert.Equal(t, utils.KindValidation, utils.KindOf(err))
}
