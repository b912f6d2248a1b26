package itinerary

import (
	"time"

	"voyago/models"

	"go.uber.org/zap"
)

const dateFormat = "2006-01-02"

// BuildInput is one itinerary build's already-resolved inputs. The engine
// performs no I/O; collaborator fetching happens at the service boundary and
// a missing weather entry simply leaves that day's context without a
// snapshot.
type BuildInput struct {
	City       string
	Vibe       string
	StartDate  time.Time
	NumDays    int
	Hotel      *models.Coordinates
	Candidates []models.CandidatePlace
	Weather    map[string]*models.WeatherSnapshot // keyed by YYYY-MM-DD
}

// Engine builds a multi-day itinerary. One build is a pure function of its
// input; implementations hold no per-request state.
type Engine interface {
	Build(in BuildInput) *models.ItineraryResponse
}

// DefaultEngine is the production implementation.
type DefaultEngine struct {
	Cfg    Config
	Logger *zap.Logger
}

func (e *DefaultEngine) logger() *zap.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return zap.L()
}

// Build scores every (candidate, day) pair, allocates candidates across the
// trip's days, sequences each day and aggregates the trip summary. It always
// produces a response: degraded inputs yield free days and dropped places,
// never an error.
func (e *DefaultEngine) Build(in BuildInput) *models.ItineraryResponse {
	anchor, anchorKnown := resolveAnchor(in)

	days := make([]models.DayContext, in.NumDays)
	for i := range days {
		date := in.StartDate.AddDate(0, 0, i).Format(dateFormat)
		days[i] = models.DayContext{
			DayNumber: i + 1,
			Date:      date,
			Weather:   in.Weather[date],
			StartMin:  e.Cfg.DayStartMin,
			EndMin:    e.Cfg.DayEndMin,
			Anchor:    anchor,
		}
	}

	scores := make([][]ScoredPlace, len(days))
	for d, day := range days {
		scores[d] = make([]ScoredPlace, len(in.Candidates))
		for i, cand := range in.Candidates {
			scores[d][i] = e.Cfg.Score(cand, day, in.Vibe)
		}
	}

	alloc := e.Cfg.Allocate(scores, days)
	dropped := alloc.Dropped

	resp := &models.ItineraryResponse{
		Success: true,
		Days:    make([]models.DayPlan, len(days)),
	}
	var totalPlaces int
	var totalScore float64
	for d, day := range days {
		seq := e.Cfg.Sequence(alloc.ByDay[d], day)
		dropped = append(dropped, seq.Dropped...)

		summary := models.DaySummary{
			NumPlaces:         len(seq.Places),
			TotalScore:        round1(seq.TotalScore),
			TravelTimeMinutes: seq.TravelMinutes,
			VisitTimeMinutes:  seq.VisitMinutes,
			TotalTimeMinutes:  seq.TravelMinutes + seq.VisitMinutes,
		}
		if len(seq.Places) > 0 {
			start := seq.Places[0].Time.Arrival
			end := seq.Places[len(seq.Places)-1].Time.Departure
			summary.StartTime = &start
			summary.EndTime = &end
		}

		resp.Days[d] = models.DayPlan{
			DayNumber: day.DayNumber,
			Date:      day.Date,
			Weather:   day.Weather,
			Places:    seq.Places,
			Summary:   summary,
		}
		totalPlaces += len(seq.Places)
		totalScore += seq.TotalScore
	}

	log := e.logger()
	for _, dp := range dropped {
		log.Debug("candidate dropped",
			zap.String("place", dp.Place.Name),
			zap.String("reason", string(dp.Reason)),
			zap.String("note", dp.Note))
	}

	resp.Trip = models.TripSummary{
		City:          in.City,
		NumDays:       in.NumDays,
		StartDate:     in.StartDate.Format(dateFormat),
		EndDate:       in.StartDate.AddDate(0, 0, in.NumDays-1).Format(dateFormat),
		TotalPlaces:   totalPlaces,
		TotalScore:    round1(totalScore),
		PlacesDropped: len(dropped),
		Vibe:          in.Vibe,
	}
	if anchorKnown {
		resp.Hotel = &anchor
	}
	return resp
}

// resolveAnchor picks the hotel when supplied, else the centroid of the
// candidates with known coordinates.
func resolveAnchor(in BuildInput) (models.Coordinates, bool) {
	if in.Hotel != nil {
		return *in.Hotel, true
	}
	var latSum, lngSum float64
	var n int
	for _, cand := range in.Candidates {
		if coords, ok := cand.Coordinates(); ok {
			latSum += coords.Lat
			lngSum += coords.Lng
			n++
		}
	}
	if n == 0 {
		return models.Coordinates{}, false
	}
	return models.Coordinates{Lat: latSum / float64(n), Lng: lngSum / float64(n)}, true
}
