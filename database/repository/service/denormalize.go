package serviceRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// UpdateRating sets the denormalized rating fields on a service document.
// The values are always a full recompute over the reviews collection, so a
// plain $set is safe: whichever concurrent recompute lands last wrote a
// value derived from the complete review set at its read time.
func (r *MongoServiceRepo) UpdateRating(id string, rating float64, reviewCount int) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": id}
	update := bson.M{"$set": bson.M{
		"rating":       rating,
		"review_count": reviewCount,
		"updated_at":   time.Now(),
	}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update rating for service %s: %w", id, err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
