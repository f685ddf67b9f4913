// Package places talks to the Google Maps Platform Geocoding and Places v1
// APIs and maps their responses to the application's restaurant view.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dcamargo/restaurant-finder/internal/domain"
)

type Config struct {
	APIKey          string
	PlacesAPIURL    string
	GeocodingAPIURL string
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type searchNearbyRequest struct {
	IncludedTypes       []string `json:"includedTypes"`
	MaxResultCount      int      `json:"maxResultCount"`
	LocationRestriction struct {
		Circle struct {
			Center struct {
				Latitude  float64 `json:"latitude"`
				Longitude float64 `json:"longitude"`
			} `json:"center"`
			Radius float64 `json:"radius"`
		} `json:"circle"`
	} `json:"locationRestriction"`
}

type searchNearbyResponse struct {
	Places []struct {
		DisplayName struct {
			Text string `json:"text"`
		} `json:"displayName"`
		FormattedAddress string  `json:"formattedAddress"`
		Rating           float64 `json:"rating"`
		GoogleMapsURI    string  `json:"googleMapsUri"`
	} `json:"places"`
}

// Geocode resolves a city name to coordinates. Returns ErrCityNotFound when
// the geocoder has no results for the address.
func (c *Client) Geocode(ctx context.Context, city string) (lat, lng float64, err error) {
	query := url.Values{}
	query.Set("address", city)
	query.Set("key", c.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.GeocodingAPIURL+"?"+query.Encode(), nil)
	if err != nil {
		return 0, 0, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, 0, fmt.Errorf("geocoding request failed (status %d): %s", resp.StatusCode, string(body))
	}

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(result.Results) == 0 {
		return 0, 0, domain.ErrCityNotFound
	}

	location := result.Results[0].Geometry.Location
	return location.Lat, location.Lng, nil
}

// SearchNearby queries the Places v1 searchNearby endpoint for restaurants
// within radius meters of the given coordinates.
func (c *Client) SearchNearby(ctx context.Context, lat, lng, radius float64, maxResultCount int) ([]domain.Restaurant, error) {
	var body searchNearbyRequest
	body.IncludedTypes = []string{"restaurant"}
	body.MaxResultCount = maxResultCount
	body.LocationRestriction.Circle.Center.Latitude = lat
	body.LocationRestriction.Circle.Center.Longitude = lng
	body.LocationRestriction.Circle.Radius = radius

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.PlacesAPIURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", c.cfg.APIKey)
	req.Header.Set("X-Goog-FieldMask", "*")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("places request failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var result searchNearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if len(result.Places) == 0 {
		return nil, domain.ErrNoRestaurants
	}

	restaurants := make([]domain.Restaurant, 0, len(result.Places))
	for _, place := range result.Places {
		restaurants = append(restaurants, domain.Restaurant{
			Name:     place.DisplayName.Text,
			Address:  place.FormattedAddress,
			Rating:   place.Rating,
			MoreInfo: place.GoogleMapsURI,
		})
	}

	return restaurants, nil
}
