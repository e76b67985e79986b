package models

import "time"

// AvailabilityWindow is the provider's declared weekly schedule for a service.
// It is informational: booking only enforces exact-slot collision, not the
// declared days and hours.
type AvailabilityWindow struct {
	Days      []string `bson:"days" json:"days"`             // Lowercase weekday names, e.g. "monday"
	StartTime string   `bson:"start_time" json:"start_time"` // "HH:MM", 24h clock
	EndTime   string   `bson:"end_time" json:"end_time"`     // "HH:MM", 24h clock
}

// Service is a bookable listing owned by a provider. The catalog itself is
// managed elsewhere; this process reads snapshots and maintains the
// denormalized rating fields.
type Service struct {
	ID           string             `bson:"id" json:"id"`
	ProviderID   string             `bson:"provider_id" json:"provider_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Availability AvailabilityWindow `bson:"availability" json:"availability"`
	// Rating and ReviewCount are a denormalized cache over the reviews
	// collection. They are always fully recomputed on review writes, never
	// incrementally patched.
	Rating      float64   `bson:"rating" json:"rating"`             // Mean review rating in [0,5], one decimal
	ReviewCount int       `bson:"review_count" json:"review_count"` // Number of reviews backing Rating
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
