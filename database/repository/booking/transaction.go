package bookingRepo

import (
	"context"
	"errors"
	"fmt"

	"handyhub/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts the booking inside a session transaction. The availability
// re-check and the insert commit as one unit; the partial unique index on
// (service_id, date) backstops any race the transaction isolation misses.
func (r *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		count, err := r.coll.CountDocuments(sc, activeSlotFilter(booking.ServiceID, booking.Date))
		if err != nil {
			return fmt.Errorf("slot check failed: %w", err)
		}
		if count > 0 {
			return ErrSlotTaken
		}

		if _, err := r.coll.InsertOne(sc, booking); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				return ErrSlotTaken
			}
			return fmt.Errorf("insert booking failed: %w", err)
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		if errors.Is(err, ErrSlotTaken) {
			return ErrSlotTaken
		}
		return fmt.Errorf("booking transaction failed: %w", err)
	}

	return nil
}
