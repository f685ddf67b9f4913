package testutil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// FakePlaces is an httptest stand-in for the Google Geocoding and Places v1
// APIs. Geocoding for the address "nowhere" yields no results; everything
// else resolves to Bogotá. SearchCalls counts upstream hits so tests can
// verify the cache short-circuits repeats.
type FakePlaces struct {
	server *httptest.Server

	mu          sync.Mutex
	searchCalls int
}

func NewFakePlaces(t *testing.T) *FakePlaces {
	t.Helper()

	fp := &FakePlaces{}

	mux := http.NewServeMux()
	mux.HandleFunc("/geocode/json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.EqualFold(r.URL.Query().Get("address"), "nowhere") {
			w.Write([]byte(`{"results":[]}`))
			return
		}
		w.Write([]byte(`{"results":[{"geometry":{"location":{"lat":4.60971,"lng":-74.08175}}}]}`))
	})
	mux.HandleFunc("/places:searchNearby", func(w http.ResponseWriter, r *http.Request) {
		fp.mu.Lock()
		fp.searchCalls++
		fp.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"places":[
			{"displayName":{"text":"El Buen Sabor"},"formattedAddress":"Cra. 7 #32-16, Bogotá","rating":4.5,"googleMapsUri":"https://maps.google.com/?cid=111"},
			{"displayName":{"text":"La Puerta Falsa"},"formattedAddress":"Calle 11 #6-50, Bogotá","rating":4.6,"googleMapsUri":"https://maps.google.com/?cid=222"}
		]}`))
	})

	fp.server = httptest.NewServer(mux)
	t.Cleanup(fp.server.Close)

	return fp
}

func (fp *FakePlaces) GeocodingURL() string {
	return fp.server.URL + "/geocode/json"
}

func (fp *FakePlaces) PlacesURL() string {
	return fp.server.URL + "/places:searchNearby"
}

func (fp *FakePlaces) SearchCalls() int {
	fp.mu.Lock()
	defer fp.mu.Unlock()
	return fp.searchCalls
}
