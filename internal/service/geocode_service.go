package service

import (
	"context"
	"fmt"
	"strings"

	"placebot/internal/models"
)

// GeoCodeService contains the core business logic for forward geocoding.
type GeoCodeService struct {
	provider GeoCodeProvider
}

// GeoCodeProvider interface for dependency injection. Both the PostGIS
// repository and the Nominatim client implement it.
type GeoCodeProvider interface {
	SearchLocationsByText(ctx context.Context, query string) ([]models.Location, error)
}

// NewGeoCodeService creates a new geo code service.
func NewGeoCodeService(provider GeoCodeProvider) *GeoCodeService {
	return &GeoCodeService{provider: provider}
}

// Geocode searches for locations matching a free-form address query.
func (s *GeoCodeService) Geocode(ctx context.Context, address string) ([]models.Location, error) {
	if strings.TrimSpace(address) == "" {
		return nil, fmt.Errorf("service: address cannot be empty")
	}

	locations, err := s.provider.SearchLocationsByText(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("service: failed to search locations: %w", err)
	}

	return locations, nil
}
