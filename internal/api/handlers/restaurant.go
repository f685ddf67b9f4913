package handlers

import (
	"net/http"
	"strconv"

	"github.com/dcamargo/restaurant-finder/internal/service"
)

type RestaurantHandler struct {
	restaurantService *service.RestaurantService
}

func NewRestaurantHandler(restaurantService *service.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{restaurantService: restaurantService}
}

// Search proxies the nearby-restaurant lookup, by city name or by
// coordinates.
func (h *RestaurantHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	radius, _ := strconv.ParseFloat(query.Get("radius"), 64)
	maxResultCount, _ := strconv.Atoi(query.Get("maxResultCount"))

	if city := query.Get("city"); city != "" {
		restaurants, err := h.restaurantService.SearchByCity(r.Context(), city, radius, maxResultCount)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, restaurants)
		return
	}

	lat, _ := strconv.ParseFloat(query.Get("lat"), 64)
	lng, _ := strconv.ParseFloat(query.Get("lng"), 64)

	restaurants, err := h.restaurantService.SearchByCoordinates(r.Context(), lat, lng, radius, maxResultCount)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, restaurants)
}
