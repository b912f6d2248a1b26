package models

// TripRequest is the inbound generate request.
type TripRequest struct {
	City      string       `json:"city" binding:"required"`
	StartDate string       `json:"start_date" binding:"required"` // YYYY-MM-DD
	EndDate   string       `json:"end_date" binding:"required"`   // YYYY-MM-DD
	Vibe      string       `json:"vibe"`
	Hotel     *Coordinates `json:"hotel"`
}

// DayContext carries everything the scorer and sequencer need to know about
// one calendar day: the date, the (possibly absent) forecast, the time budget
// window and the anchor the day's tour starts from.
type DayContext struct {
	DayNumber int    // 1-based
	Date      string // YYYY-MM-DD
	Weather   *WeatherSnapshot
	StartMin  int // day window start, minutes from midnight
	EndMin    int // day window end, minutes from midnight
	Anchor    Coordinates
}

// BudgetMinutes is the day's total time budget.
func (d DayContext) BudgetMinutes() int {
	return d.EndMin - d.StartMin
}
