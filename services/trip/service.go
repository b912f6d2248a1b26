package trip

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"voyago/models"
	"voyago/services/itinerary"
	"voyago/services/places"
	"voyago/services/weather"

	"go.uber.org/zap"
)

const dateFormat = "2006-01-02"

// Service turns a trip request into a built itinerary.
type Service interface {
	BuildItinerary(ctx context.Context, req models.TripRequest) (*models.ItineraryResponse, error)
}

// DefaultTripService validates the request, fetches candidates and weather
// concurrently, and hands the resolved inputs to the engine. Collaborator
// failures degrade the build instead of failing it: no candidates means free
// days, no forecast means weather-neutral scoring.
type DefaultTripService struct {
	Places  places.Source
	Weather weather.Source
	Engine  itinerary.Engine
	Logger  *zap.Logger
	MaxDays int
}

func (s *DefaultTripService) BuildItinerary(ctx context.Context, req models.TripRequest) (*models.ItineraryResponse, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, NewInputError("EMPTY_CITY", "city must not be empty")
	}

	start, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		return nil, NewInputError("BAD_START_DATE", fmt.Sprintf("start_date %q is not a valid YYYY-MM-DD date", req.StartDate))
	}
	end, err := time.Parse(dateFormat, req.EndDate)
	if err != nil {
		return nil, NewInputError("BAD_END_DATE", fmt.Sprintf("end_date %q is not a valid YYYY-MM-DD date", req.EndDate))
	}
	if end.Before(start) {
		return nil, NewInputError("DATE_ORDER", "end_date must not be before start_date")
	}

	numDays := int(end.Sub(start).Hours()/24) + 1
	if s.MaxDays > 0 && numDays > s.MaxDays {
		return nil, NewInputError("TRIP_TOO_LONG", fmt.Sprintf("trip length %d days exceeds the maximum of %d", numDays, s.MaxDays))
	}

	var (
		wg         sync.WaitGroup
		candidates []models.CandidatePlace
		forecasts  = make(map[string]*models.WeatherSnapshot)
		fmu        sync.Mutex
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		got, err := s.Places.Candidates(ctx, city, req.Vibe)
		if err != nil {
			s.Logger.Warn("candidate fetch failed, building with none",
				zap.String("city", city), zap.Error(err))
			return
		}
		candidates = got
	}()

	for i := 0; i < numDays; i++ {
		date := start.AddDate(0, 0, i)
		wg.Add(1)
		go func(date time.Time) {
			defer wg.Done()
			snap, err := s.Weather.Forecast(ctx, city, date)
			if err != nil {
				s.Logger.Warn("forecast fetch failed, planning without weather",
					zap.String("city", city),
					zap.String("date", date.Format(dateFormat)),
					zap.Error(err))
				return
			}
			if snap == nil {
				return
			}
			fmu.Lock()
			forecasts[date.Format(dateFormat)] = snap
			fmu.Unlock()
		}(date)
	}
	wg.Wait()

	resp := s.Engine.Build(itinerary.BuildInput{
		City:       city,
		Vibe:       req.Vibe,
		StartDate:  start,
		NumDays:    numDays,
		Hotel:      req.Hotel,
		Candidates: candidates,
		Weather:    forecasts,
	})

	s.Logger.Info("itinerary built",
		zap.String("city", city),
		zap.Int("days", numDays),
		zap.Int("places", resp.Trip.TotalPlaces),
		zap.Int("dropped", resp.Trip.PlacesDropped))
	return resp, nil
}
