package places_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dcamargo/restaurant-finder/internal/domain"
	"github.com/dcamargo/restaurant-finder/internal/places"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Geocode(t *testing.T) {
	var gotAddress, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[{"geometry":{"location":{"lat":4.60971,"lng":-74.08175}}}]}`))
	}))
	defer server.Close()

	client := places.NewClient(places.Config{
		APIKey:          "test-key",
		GeocodingAPIURL: server.URL,
	})

	lat, lng, err := client.Geocode(context.Background(), "Bogotá")
	require.NoError(t, err)
	assert.Equal(t, "Bogotá", gotAddress)
	assert.Equal(t, "test-key", gotKey)
	assert.InDelta(t, 4.60971, lat, 1e-9)
	assert.InDelta(t, -74.08175, lng, 1e-9)
}

func TestClient_GeocodeCityNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[]}`))
	}))
	defer server.Close()

	client := places.NewClient(places.Config{GeocodingAPIURL: server.URL})

	_, _, err := client.Geocode(context.Background(), "Nowhere")
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestClient_GeocodeUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	}))
	defer server.Close()

	client := places.NewClient(places.Config{GeocodingAPIURL: server.URL})

	_, _, err := client.Geocode(context.Background(), "Bogotá")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestClient_SearchNearby(t *testing.T) {
	var gotBody map[string]interface{}
	var gotAPIKey, gotFieldMask string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAPIKey = r.Header.Get("X-Goog-Api-Key")
		gotFieldMask = r.Header.Get("X-Goog-FieldMask")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places":[
			{"displayName":{"text":"La Puerta Falsa"},"formattedAddress":"Calle 11 #6-50, Bogotá","rating":4.6,"googleMapsUri":"https://maps.google.com/?cid=222"}
		]}`))
	}))
	defer server.Close()

	client := places.NewClient(places.Config{
		APIKey:       "test-key",
		PlacesAPIURL: server.URL,
	})

	restaurants, err := client.SearchNearby(context.Background(), 4.60971, -74.08175, 500, 10)
	require.NoError(t, err)

	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "*", gotFieldMask)
	assert.Equal(t, []interface{}{"restaurant"}, gotBody["includedTypes"])
	assert.EqualValues(t, 10, gotBody["maxResultCount"])

	require.Len(t, restaurants, 1)
	assert.Equal(t, "La Puerta Falsa", restaurants[0].Name)
	assert.Equal(t, "Calle 11 #6-50, Bogotá", restaurants[0].Address)
	assert.InDelta(t, 4.6, restaurants[0].Rating, 1e-9)
	assert.Equal(t, "https://maps.google.com/?cid=222", restaurants[0].MoreInfo)
}

func TestClient_SearchNearbyNoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := places.NewClient(places.Config{PlacesAPIURL: server.URL})

	_, err := client.SearchNearby(context.Background(), 0, 0, 500, 10)
	assert.ErrorIs(t, err, domain.ErrNoRestaurants)
}
