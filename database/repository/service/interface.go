package serviceRepo

import (
	"errors"

	"handyhub/models"
)

// ErrNotFound is returned when no service matches the given ID.
var ErrNotFound = errors.New("service not found")

// ServiceRepository defines read access to the service catalog plus the one
// write this process owns: the denormalized rating fields. Catalog CRUD
// belongs to an external system sharing the collection.
type ServiceRepository interface {
	// GetByID retrieves a service snapshot by its unique ID.
	GetByID(id string) (*models.Service, error)
	// GetAll retrieves all active services.
	GetAll() ([]models.Service, error)
	// UpdateRating sets the denormalized rating and review count.
	UpdateRating(id string, rating float64, reviewCount int) error
}
