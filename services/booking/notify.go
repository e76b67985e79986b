package booking

import (
	"context"
	"fmt"
	"time"

	"handyhub/models"
	"handyhub/utils"

	"go.uber.org/zap"
)

// statusTitles maps a new booking status to the push notification title the
// customer sees. Statuses not listed produce no push.
var statusTitles = map[models.BookingStatus]string{
	models.BookingStatusConfirmed:  "Booking Confirmed!",
	models.BookingStatusInProgress: "Your Appointment Has Started",
	models.BookingStatusCompleted:  "Appointment Completed",
	models.BookingStatusCancelled:  "Booking Cancelled",
}

// afterTransition dispatches best-effort side effects of a committed
// transition: a push to the customer, and a scheduled reminder when the
// booking was just confirmed. Failures are logged, never surfaced.
func (s *DefaultBookingService) afterTransition(b *models.Booking) {
	if s.Notifier != nil {
		if title, ok := statusTitles[b.Status]; ok {
			booking := *b
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				body := fmt.Sprintf("Your appointment on %s is now %s.",
					booking.Date.Format("2 January, 3:04 PM"), booking.Status)
				data := map[string]string{
					"type":      "booking_status",
					"bookingId": booking.ID,
					"serviceId": booking.ServiceID,
					"status":    booking.Status.String(),
					"date":      booking.Date.Format(time.RFC3339),
				}
				if err := s.Notifier.SendUserPush(ctx, booking.UserID, title, body, data); err != nil {
					utils.GetLogger().Warn("failed to push booking status",
						zap.String("bookingId", booking.ID), zap.Error(err))
				}
			}()
		}
	}

	if s.Reminders != nil && b.Status == models.BookingStatusConfirmed {
		if err := s.Reminders.ScheduleBookingReminder(b); err != nil {
			utils.GetLogger().Warn("failed to schedule booking reminder",
				zap.String("bookingId", b.ID), zap.Error(err))
		}
	}
}
