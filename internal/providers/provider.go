package providers

import (
	"context"

	"github.com/you/skyfinder/internal/models"
)

// FlightProvider answers a flight search for one set of criteria.
type FlightProvider interface {
	Name() string
	Search(ctx context.Context, c models.Criteria) ([]models.Offer, error)
}
