package service

import (
	"context"
	"fmt"

	"placebot/internal/models"
)

// ReverseGeoCodeService contains the core business logic for reverse
// geocoding.
type ReverseGeoCodeService struct {
	provider ReverseGeoCodeProvider
}

// ReverseGeoCodeProvider interface for dependency injection.
type ReverseGeoCodeProvider interface {
	FindNearestLocation(ctx context.Context, lat, lon float64) (*models.Location, error)
}

// NewReverseGeoCodeService creates a new reverse geo code service.
func NewReverseGeoCodeService(provider ReverseGeoCodeProvider) *ReverseGeoCodeService {
	return &ReverseGeoCodeService{provider: provider}
}

// ReverseGeocode finds the nearest address to the given coordinates. A nil
// location with nil error means no address is known near the point.
func (s *ReverseGeoCodeService) ReverseGeocode(ctx context.Context, lat, lon float64) (*models.Location, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("service: invalid latitude: %f", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("service: invalid longitude: %f", lon)
	}

	location, err := s.provider.FindNearestLocation(ctx, lat, lon)
	if err != nil {
		return nil, fmt.Errorf("service: failed to find nearest location: %w", err)
	}

	return location, nil
}
