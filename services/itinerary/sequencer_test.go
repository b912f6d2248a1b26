package itinerary

import (
	"testing"
	"time"

	"voyago/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseClock(t *testing.T, s string) int {
	t.Helper()
	ts, err := time.Parse("3:04 PM", s)
	require.NoError(t, err)
	return ts.Hour()*60 + ts.Minute()
}

func anchorDay() models.DayContext {
	return models.DayContext{
		DayNumber: 1,
		Date:      "2026-09-01",
		StartMin:  540,
		EndMin:    1320,
		Anchor:    models.Coordinates{Lat: 0, Lng: 0},
	}
}

func placedAt(name string, cat models.Category, score, km float64) ScoredPlace {
	lat := km / 111.195
	return ScoredPlace{
		Place: models.CandidatePlace{
			ID:       name,
			Name:     name,
			Category: cat,
			Lat:      fptr(lat),
			Lng:      fptr(0),
		},
		Score: score,
	}
}

func TestSequenceWindowOrdering(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()

	// All at the anchor, so ordering is driven purely by category windows
	// and score: the museum opens the day, the cafe slots in after, and
	// nightlife waits for the evening.
	assigned := []ScoredPlace{
		placedAt("Club", models.CategoryNightlife, 70, 0),
		placedAt("Cafe", models.CategoryCafe, 50, 0),
		placedAt("Museum", models.CategoryMuseum, 80, 0),
	}
	seq := cfg.Sequence(assigned, day)

	require.Len(t, seq.Places, 3)
	assert.Equal(t, "Museum", seq.Places[0].Name)
	assert.Equal(t, "Cafe", seq.Places[1].Name)
	assert.Equal(t, "Club", seq.Places[2].Name)

	assert.Equal(t, "9:00 AM", seq.Places[0].Time.Arrival)
	assert.Equal(t, "11:00 AM", seq.Places[0].Time.Departure)
	assert.Equal(t, "11:00 AM", seq.Places[1].Time.Arrival)
	assert.Equal(t, "11:30 AM", seq.Places[1].Time.Departure)

	// Nightlife starts no earlier than its window even though the clock
	// freed up at 11:30 AM.
	assert.Equal(t, "6:00 PM", seq.Places[2].Time.Arrival)
	assert.Equal(t, "8:00 PM", seq.Places[2].Time.Departure)

	assert.Equal(t, 270, seq.VisitMinutes)
	assert.Equal(t, 0, seq.TravelMinutes)
	assert.InDelta(t, 200, seq.TotalScore, 1e-9)
	assert.Empty(t, seq.Dropped)
}

func TestSequenceDurationsMatchSlots(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()

	seq := cfg.Sequence([]ScoredPlace{
		placedAt("A", models.CategoryLandmark, 80, 2),
		placedAt("B", models.CategoryLandmark, 70, 4),
	}, day)

	require.Len(t, seq.Places, 2)
	for _, p := range seq.Places {
		assert.Equal(t, cfg.VisitMinutes(models.CategoryLandmark), p.Time.DurationMinutes)
	}
	// Nearest first, then onward.
	assert.Equal(t, "A", seq.Places[0].Name)
	assert.Equal(t, "B", seq.Places[1].Name)
}

func TestSequenceAnchorLegNotBilled(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()

	// A is ~2 km out (20 min hop), B another ~2 km beyond it. Only the
	// A-to-B leg counts toward the day's travel total.
	seq := cfg.Sequence([]ScoredPlace{
		placedAt("A", models.CategoryLandmark, 80, 2),
		placedAt("B", models.CategoryLandmark, 70, 4),
	}, day)

	require.Len(t, seq.Places, 2)
	assert.Equal(t, 20, seq.TravelMinutes)
	assert.Equal(t, 90, seq.VisitMinutes)
}

func TestSequenceConsecutiveTimesRespectTravel(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()

	// Three stops strung out from the anchor, so every hop has real travel.
	seq := cfg.Sequence([]ScoredPlace{
		placedAt("A", models.CategoryLandmark, 80, 2),
		placedAt("B", models.CategoryCultural, 75, 5),
		placedAt("C", models.CategoryMuseum, 70, 8),
	}, day)

	require.Len(t, seq.Places, 3)
	for i, p := range seq.Places {
		arr := parseClock(t, p.Time.Arrival)
		dep := parseClock(t, p.Time.Departure)
		assert.Equal(t, arr+p.Time.DurationMinutes, dep, "place %s", p.Name)
		if i == 0 {
			continue
		}
		prev := seq.Places[i-1]
		travel := cfg.TravelMinutes(prev.Coordinates, p.Coordinates)
		assert.GreaterOrEqual(t, arr, parseClock(t, prev.Time.Departure)+travel,
			"%s -> %s", prev.Name, p.Name)
	}
}

func TestSequenceInfeasibleDropped(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()
	day.EndMin = 600 // one hour of day; a museum visit cannot finish

	seq := cfg.Sequence([]ScoredPlace{
		placedAt("Museum", models.CategoryMuseum, 80, 0),
	}, day)

	assert.Empty(t, seq.Places)
	require.Len(t, seq.Dropped, 1)
	assert.Equal(t, DropInfeasible, seq.Dropped[0].Reason)
}

func TestSequenceLateWindowMissed(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()
	day.EndMin = 1140 // day ends 7:00 PM, before a nightlife visit can finish

	seq := cfg.Sequence([]ScoredPlace{
		placedAt("Club", models.CategoryNightlife, 80, 0),
	}, day)

	assert.Empty(t, seq.Places)
	require.Len(t, seq.Dropped, 1)
	assert.Equal(t, DropInfeasible, seq.Dropped[0].Reason)
}

func TestSequenceUnknownCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	day := anchorDay()

	sp := ScoredPlace{
		Place: models.CandidatePlace{ID: "x", Name: "Mystery", Category: models.CategoryCafe},
		Score: 60,
	}
	seq := cfg.Sequence([]ScoredPlace{sp}, day)

	require.Len(t, seq.Places, 1)
	// Rendered at the anchor with zero travel.
	assert.Equal(t, day.Anchor, seq.Places[0].Coordinates)
	assert.Equal(t, 0, seq.TravelMinutes)
}

func TestSequenceEmptyDay(t *testing.T) {
	cfg := DefaultConfig()
	seq := cfg.Sequence(nil, anchorDay())

	assert.Empty(t, seq.Places)
	assert.Empty(t, seq.Dropped)
	assert.Zero(t, seq.TravelMinutes)
	assert.Zero(t, seq.VisitMinutes)
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "9:30 AM", formatClock(570))
	assert.Equal(t, "12:00 PM", formatClock(720))
	assert.Equal(t, "12:05 AM", formatClock(5))
	assert.Equal(t, "10:00 PM", formatClock(1320))
}
