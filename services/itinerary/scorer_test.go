package itinerary

import (
	"testing"

	"voyago/models"

	"github.com/stretchr/testify/assert"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

// placeAt builds a rated candidate offset north of the origin by km.
func placeAt(name string, cat models.Category, rating float64, km float64) models.CandidatePlace {
	lat := km / 111.195
	return models.CandidatePlace{
		ID:       name,
		Name:     name,
		Category: cat,
		Lat:      fptr(lat),
		Lng:      fptr(0),
		Rating:   fptr(rating),
	}
}

func clearDay() models.DayContext {
	return models.DayContext{
		DayNumber: 1,
		Date:      "2026-09-01",
		StartMin:  540,
		EndMin:    1320,
		Anchor:    models.Coordinates{Lat: 0, Lng: 0},
	}
}

func TestScoreBaseFromRating(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	sp := cfg.Score(placeAt("A", models.CategoryMuseum, 4.5, 1), day, "")
	assert.InDelta(t, 90, sp.Score, 1e-9)
	assert.Empty(t, sp.Note)

	// Missing rating falls back to the unrated base, not zero.
	unrated := placeAt("B", models.CategoryMuseum, 0, 1)
	unrated.Rating = nil
	sp = cfg.Score(unrated, day, "")
	assert.InDelta(t, cfg.UnratedBase, sp.Score, 1e-9)
}

func TestScoreMonotoneInRating(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()
	day.Weather = &models.WeatherSnapshot{Condition: "Rain", TempC: 3}

	// Distance, weather, social proof and vibe are all held fixed; only the
	// rating moves. A better-rated place never scores worse.
	prev := -1.0
	for _, rating := range []float64{0, 1.0, 2.5, 3.0, 4.2, 5.0} {
		p := placeAt("Park", models.CategoryNature, rating, 6)
		p.ReviewCount = iptr(1500)
		got := cfg.Score(p, day, "outdoors").Score
		assert.GreaterOrEqual(t, got, prev, "rating %.1f", rating)
		prev = got
	}
}

func TestScoreRatingClamped(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	sp := cfg.Score(placeAt("A", models.CategoryMuseum, 9.9, 1), day, "")
	assert.InDelta(t, 100, sp.Score, 1e-9)

	sp = cfg.Score(placeAt("B", models.CategoryMuseum, -2, 1), day, "")
	assert.Zero(t, sp.Score)
}

func TestScoreDistanceDecay(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	near := cfg.Score(placeAt("near", models.CategoryMuseum, 4.0, 2), day, "")
	mid := cfg.Score(placeAt("mid", models.CategoryMuseum, 4.0, 6), day, "")
	far := cfg.Score(placeAt("far", models.CategoryMuseum, 4.0, 12), day, "")

	// No penalty inside the comfort radius, monotone decay beyond it.
	assert.InDelta(t, 80, near.Score, 1e-9)
	assert.Greater(t, near.Score, mid.Score)
	assert.Greater(t, mid.Score, far.Score)

	// A materially suppressed score carries an explanatory note.
	assert.Empty(t, near.Note)
	assert.Contains(t, far.Note, "km from your hotel")
}

func TestScoreDistantLandmarkFallsBelowThreshold(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	p := placeAt("Château", models.CategoryLandmark, 4.8, 12)
	p.ReviewCount = iptr(5000)
	sp := cfg.Score(p, day, "")

	assert.Less(t, sp.Score, cfg.MinScore)
	assert.Contains(t, sp.Note, "km from your hotel")
}

func TestScoreMissingCoordinates(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	p := models.CandidatePlace{Name: "Mystery", Category: models.CategoryMuseum, Rating: fptr(4.0)}
	sp := cfg.Score(p, day, "")
	assert.InDelta(t, 80*cfg.NoCoordsMultiplier, sp.Score, 1e-9)
}

func TestScoreWeatherPenalties(t *testing.T) {
	cfg := DefaultConfig()

	rainy := clearDay()
	rainy.Weather = &models.WeatherSnapshot{Condition: "Rain", TempC: 15}

	outdoor := placeAt("Park", models.CategoryNature, 4.0, 1)
	sp := cfg.Score(outdoor, rainy, "")
	assert.InDelta(t, 80*cfg.RainMultiplier, sp.Score, 1e-9)
	assert.Contains(t, sp.Note, "rain expected")

	// Indoor categories ignore the forecast.
	indoor := placeAt("Gallery", models.CategoryMuseum, 4.0, 1)
	sp = cfg.Score(indoor, rainy, "")
	assert.InDelta(t, 80, sp.Score, 1e-9)
	assert.Empty(t, sp.Note)

	// Cold compounds with precipitation.
	cold := clearDay()
	cold.Weather = &models.WeatherSnapshot{Condition: "Snow", TempC: -3}
	sp = cfg.Score(outdoor, cold, "")
	assert.InDelta(t, 80*cfg.RainMultiplier*cfg.ColdMultiplier, sp.Score, 1e-9)
	assert.Contains(t, sp.Note, "snow expected")
	assert.Contains(t, sp.Note, "cold day")
}

func TestScoreOutdoorByTag(t *testing.T) {
	cfg := DefaultConfig()
	rainy := clearDay()
	rainy.Weather = &models.WeatherSnapshot{Condition: "Rain", TempC: 15}

	tagged := placeAt("Garden Cafe", models.CategoryCafe, 4.0, 1)
	tagged.Tags = []string{"garden"}
	sp := cfg.Score(tagged, rainy, "")
	assert.InDelta(t, 80*cfg.RainMultiplier, sp.Score, 1e-9)
}

func TestScoreNoWeatherIsNeutral(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	sp := cfg.Score(placeAt("Park", models.CategoryNature, 4.0, 1), day, "")
	assert.InDelta(t, 80, sp.Score, 1e-9)
}

func TestScoreClosedPlace(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	p := placeAt("Shut", models.CategoryMuseum, 4.0, 1)
	p.OpenNow = bptr(false)
	sp := cfg.Score(p, day, "")
	assert.InDelta(t, 80*cfg.ClosedMultiplier, sp.Score, 1e-9)
	assert.Contains(t, sp.Note, "listed as closed")
}

func TestScoreSocialProof(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	p := placeAt("A", models.CategoryMuseum, 4.0, 1)

	p.ReviewCount = iptr(50)
	assert.InDelta(t, 80, cfg.Score(p, day, "").Score, 1e-9)

	p.ReviewCount = iptr(150)
	assert.InDelta(t, 85, cfg.Score(p, day, "").Score, 1e-9)

	p.ReviewCount = iptr(2500)
	assert.InDelta(t, 90, cfg.Score(p, day, "").Score, 1e-9)
}

func TestScoreVibeBonus(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	restaurant := placeAt("Bistro", models.CategoryRestaurant, 4.0, 1)
	museum := placeAt("Gallery", models.CategoryMuseum, 4.0, 1)

	assert.InDelta(t, 88, cfg.Score(restaurant, day, "foodie").Score, 1e-9)
	assert.InDelta(t, 80, cfg.Score(museum, day, "foodie").Score, 1e-9)

	// No vibe means no bonus anywhere.
	assert.InDelta(t, 80, cfg.Score(restaurant, day, "").Score, 1e-9)
}

func TestScoreVibeMatchesTag(t *testing.T) {
	cfg := DefaultConfig()
	day := clearDay()

	p := placeAt("Rooftop", models.CategoryOther, 4.0, 1)
	p.Tags = []string{"romantic", "bar"}
	assert.InDelta(t, 88, cfg.Score(p, day, "Romantic getaway").Score, 1e-9)
}
