package reviewRepo

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Aggregates computes the mean rating and count over all reviews currently
// linked to the service. Rounding to one decimal happens at the caller; the
// pipeline returns the exact mean.
func (r *MongoReviewRepo) Aggregates(serviceID string) (float64, int, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := []bson.M{
		{"$match": bson.M{"service_id": serviceID}},
		{"$group": bson.M{
			"_id":   nil,
			"mean":  bson.M{"$avg": "$rating"},
			"count": bson.M{"$sum": 1},
		}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to aggregate reviews for service %s: %w", serviceID, err)
	}
	defer cursor.Close(ctx)

	var result struct {
		Mean  float64 `bson:"mean"`
		Count int     `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("failed to decode review aggregates: %w", err)
		}
	}
	// No documents means no reviews: mean 0, count 0.
	return result.Mean, result.Count, nil
}
