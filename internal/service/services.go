package service

import (
	"github.com/dcamargo/restaurant-finder/internal/config"
	"github.com/dcamargo/restaurant-finder/internal/places"
	"github.com/dcamargo/restaurant-finder/internal/repository"
)

type Services struct {
	Auth        *AuthService
	User        *UserService
	Transaction *TransactionService
	Restaurant  *RestaurantService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	// Deny-list session registry; see DESIGN.md for the variant decision.
	authority := NewDenyListAuthority(repos.TokenBlacklist)

	placesClient := places.NewClient(places.Config{
		APIKey:          cfg.MapsAPIKey,
		PlacesAPIURL:    cfg.PlacesAPIURL,
		GeocodingAPIURL: cfg.GeocodingAPIURL,
	})

	return &Services{
		Auth:        NewAuthService(repos.User, authority, cfg),
		User:        NewUserService(repos.User),
		Transaction: NewTransactionService(repos.Transaction, repos.User),
		Restaurant:  NewRestaurantService(placesClient, repos.PlaceCache, cfg.PlaceCacheTTL),
	}
}
