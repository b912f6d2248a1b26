package models

import "strings"

// Category classifies a candidate place. Duration and scoring tables key off
// it; anything the place source invents collapses to CategoryOther.
type Category string

const (
	CategoryLandmark   Category = "landmark"
	CategoryMuseum     Category = "museum"
	CategoryRestaurant Category = "restaurant"
	CategoryNature     Category = "nature"
	CategoryNightlife  Category = "nightlife"
	CategoryShopping   Category = "shopping"
	CategoryCultural   Category = "cultural"
	CategoryCafe       Category = "cafe"
	CategoryOther      Category = "other"
)

// ParseCategory normalizes a raw category string to a known Category.
func ParseCategory(raw string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryLandmark, CategoryMuseum, CategoryRestaurant, CategoryNature,
		CategoryNightlife, CategoryShopping, CategoryCultural, CategoryCafe:
		return c
	default:
		return CategoryOther
	}
}

// Coordinates is a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CandidatePlace is a point of interest proposed by the place source, not yet
// scored or scheduled. The engine treats it as immutable input; optional
// fields are pointers so "unknown" stays distinguishable from zero.
type CandidatePlace struct {
	ID          string   `json:"place_id"`
	Name        string   `json:"name"`
	Category    Category `json:"category"`
	Lat         *float64 `json:"lat"`
	Lng         *float64 `json:"lng"`
	Rating      *float64 `json:"rating"`             // 0-5 stars
	ReviewCount *int     `json:"user_ratings_total"` // review volume behind the rating
	OpenNow     *bool    `json:"open_now"`           // open-hours indicator; nil = unknown
	Why         string   `json:"why"`                // one-line recommendation reason
	Address     *string  `json:"formatted_address"`
	PhotoURL    *string  `json:"photo_url"`
	Tags        []string `json:"types"`
}

// Coordinates returns the candidate's location and whether one is known.
func (p CandidatePlace) Coordinates() (Coordinates, bool) {
	if p.Lat == nil || p.Lng == nil {
		return Coordinates{}, false
	}
	return Coordinates{Lat: *p.Lat, Lng: *p.Lng}, true
}
