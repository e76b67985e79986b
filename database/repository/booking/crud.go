// File: database/repository/booking/crud.go
package bookingRepo

import (
	"fmt"
	"time"

	"handyhub/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UpdateStatus moves a booking to the target status, guarded on the expected
// current status so that concurrent transitions cannot silently overwrite
// each other. Returns the updated document.
func (r *MongoBookingRepo) UpdateStatus(id string, from, to models.BookingStatus) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id, "status": from}
	update := bson.M{"$set": bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Booking
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("failed to update booking %s: %w", id, err)
	}

	// Disambiguate: missing booking vs. a status guard mismatch.
	if _, getErr := r.GetByID(id); getErr != nil {
		return nil, getErr
	}
	return nil, ErrStaleStatus
}

// Delete removes a booking document by its ID.
func (r *MongoBookingRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
