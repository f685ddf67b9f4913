package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Restaurant is the trimmed-down view of a place returned by the search proxy.
type Restaurant struct {
	Name     string  `json:"name"`
	Address  string  `json:"address,omitempty"`
	Rating   float64 `json:"rating,omitempty"`
	MoreInfo string  `json:"more_info,omitempty"`
}

// PlaceCache stores the serialized results of a places search keyed by the
// normalized query parameters, so repeated searches within the TTL skip the
// upstream API call.
type PlaceCache struct {
	Key       string         `json:"key" gorm:"primary_key"`
	Results   datatypes.JSON `json:"results" gorm:"not null"`
	FetchedAt time.Time      `json:"fetchedAt" gorm:"not null"`
}
