package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/repository"
	validation "github.com/go-ozzo/ozzo-validation"
)

const (
	defaultSearchRadius   = 500.0
	defaultMaxResultCount = 10
)

// PlacesClient is the upstream places/geocoding API.
type PlacesClient interface {
	Geocode(ctx context.Context, city string) (lat, lng float64, err error)
	SearchNearby(ctx context.Context, lat, lng, radius float64, maxResultCount int) ([]domain.Restaurant, error)
}

type RestaurantService struct {
	client   PlacesClient
	cache    repository.PlaceCacheRepository
	cacheTTL time.Duration
}

func NewRestaurantService(client PlacesClient, cache repository.PlaceCacheRepository, cacheTTL time.Duration) *RestaurantService {
	return &RestaurantService{
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *RestaurantService) SearchByCity(ctx context.Context, city string, radius float64, maxResultCount int) ([]domain.Restaurant, error) {
	if city == "" {
		return nil, domain.ErrMissingLocation
	}

	lat, lng, err := s.client.Geocode(ctx, city)
	if err != nil {
		return nil, err
	}

	return s.SearchByCoordinates(ctx, lat, lng, radius, maxResultCount)
}

func (s *RestaurantService) SearchByCoordinates(ctx context.Context, lat, lng, radius float64, maxResultCount int) ([]domain.Restaurant, error) {
	if lat == 0 && lng == 0 {
		return nil, domain.ErrMissingLocation
	}
	if err := validation.Validate(lat, validation.Min(-90.0), validation.Max(90.0)); err != nil {
		return nil, fmt.Errorf("%w: latitude %v", domain.ErrInvalidCoordinates, lat)
	}
	if err := validation.Validate(lng, validation.Min(-180.0), validation.Max(180.0)); err != nil {
		return nil, fmt.Errorf("%w: longitude %v", domain.ErrInvalidCoordinates, lng)
	}

	if radius <= 0 {
		radius = defaultSearchRadius
	}
	if maxResultCount <= 0 {
		maxResultCount = defaultMaxResultCount
	}

	key := fmt.Sprintf("%.4f:%.4f:%.0f:%d", lat, lng, radius, maxResultCount)
	if restaurants, ok := s.fromCache(ctx, key); ok {
		return restaurants, nil
	}

	restaurants, err := s.client.SearchNearby(ctx, lat, lng, radius, maxResultCount)
	if err != nil {
		return nil, err
	}

	s.storeCache(ctx, key, restaurants)

	return restaurants, nil
}

func (s *RestaurantService) fromCache(ctx context.Context, key string) ([]domain.Restaurant, bool) {
	entry, err := s.cache.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	if time.Since(entry.FetchedAt) > s.cacheTTL {
		return nil, false
	}

	var restaurants []domain.Restaurant
	if err := json.Unmarshal(entry.Results, &restaurants); err != nil {
		return nil, false
	}
	return restaurants, true
}

// Cache writes are best-effort; a failure never fails the search.
func (s *RestaurantService) storeCache(ctx context.Context, key string, restaurants []domain.Restaurant) {
	results, err := json.Marshal(restaurants)
	if err != nil {
		return
	}

	entry := &domain.PlaceCache{
		Key:       key,
		Results:   results,
		FetchedAt: time.Now(),
	}
	if err := s.cache.Put(ctx, entry); err != nil {
		log.Printf("ERROR [RestaurantService] failed to cache search results: %v", err)
	}
}
