package models

// The types below are the response contract the presentation layer renders
// directly. Field names, nesting and nullability must not change without a
// version bump.

// TimeSlot is the concrete visiting window of a scheduled place.
type TimeSlot struct {
	Arrival         string `json:"arrival"`   // e.g. "9:30 AM"
	Departure       string `json:"departure"` // e.g. "11:00 AM"
	DurationMinutes int    `json:"duration_minutes"`
}

// ItineraryPlace is a scored place bound to a concrete time slot.
type ItineraryPlace struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	Coordinates Coordinates `json:"coordinates"`
	Time        TimeSlot    `json:"time"`
	Score       float64     `json:"score"`
	Why         string      `json:"why"`
	Note        string      `json:"note,omitempty"` // explains a suppressed score
	Address     *string     `json:"address"`
	PhotoURL    *string     `json:"photo_url"`
	Rating      *float64    `json:"rating"`
	ReviewCount *int        `json:"review_count"`
}

// DaySummary aggregates one day's statistics.
type DaySummary struct {
	NumPlaces         int     `json:"num_places"`
	TotalScore        float64 `json:"total_score"`
	TravelTimeMinutes int     `json:"travel_time_minutes"`
	VisitTimeMinutes  int     `json:"visit_time_minutes"`
	TotalTimeMinutes  int     `json:"total_time_minutes"`
	StartTime         *string `json:"start_time"` // nil on a free day
	EndTime           *string `json:"end_time"`
}

// DayPlan is one day's ordered schedule. An empty Places slice is a valid
// free day, not an error.
type DayPlan struct {
	DayNumber int              `json:"day_number"`
	Date      string           `json:"date"`
	Weather   *WeatherSnapshot `json:"weather,omitempty"`
	Places    []ItineraryPlace `json:"places"`
	Summary   DaySummary       `json:"summary"`
}

// TripSummary is the overall trip statistics block.
type TripSummary struct {
	City          string  `json:"city"`
	NumDays       int     `json:"num_days"`
	StartDate     string  `json:"start_date"`
	EndDate       string  `json:"end_date"`
	TotalPlaces   int     `json:"total_places"`
	TotalScore    float64 `json:"total_score"`
	PlacesDropped int     `json:"places_dropped"`
	Vibe          string  `json:"vibe"`
}

// ItineraryResponse is the full generate response.
type ItineraryResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error,omitempty"`
	Trip    TripSummary  `json:"trip"`
	Days    []DayPlan    `json:"days"`
	Hotel   *Coordinates `json:"hotel"`
}
