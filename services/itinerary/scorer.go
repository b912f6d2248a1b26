package itinerary

import (
	"fmt"
	"math"
	"strings"

	"voyago/models"
)

// A distance multiplier at or below this is considered a material penalty
// and earns the place an explanatory note.
const materialPenalty = 0.5

// ScoredPlace is a candidate with its utility for one specific day, plus an
// optional note explaining a materially suppressed score.
type ScoredPlace struct {
	Place models.CandidatePlace
	Score float64
	Note  string
}

// Score computes the utility of a candidate for one day of the trip.
//
// The base quality signal (rating scaled to 0-100) is attenuated by
// multiplicative distance, weather and open-hours penalties, then topped up
// with additive social-proof and vibe bonuses. A note is attached only when
// a penalty materially suppressed the score, so healthy recommendations stay
// unannotated. The same candidate can rate differently on a rainy day than
// on a clear one, which is why scoring is per day context.
func (c Config) Score(p models.CandidatePlace, day models.DayContext, vibe string) ScoredPlace {
	base := c.UnratedBase
	if p.Rating != nil {
		r := *p.Rating
		if r < 0 {
			r = 0
		}
		if r > 5 {
			r = 5
		}
		base = r * 20
	}

	mult := 1.0
	var notes []string

	if coords, ok := p.Coordinates(); ok {
		d := Distance(coords, day.Anchor)
		dm := 1.0
		if d > c.ComfortRadiusKm {
			dm = math.Exp(-c.DistanceDecay * (d - c.ComfortRadiusKm))
		}
		if d > c.HardRadiusKm {
			dm *= c.FarMultiplier
		}
		if dm <= materialPenalty {
			notes = append(notes, fmt.Sprintf("%.1f km from your hotel", d))
		}
		mult *= dm
	} else {
		// Unknown location: moderate penalty rather than exclusion.
		mult *= c.NoCoordsMultiplier
	}

	if day.Weather != nil && c.isOutdoor(p) {
		if _, bad := c.BadConditions[day.Weather.Condition]; bad {
			mult *= c.RainMultiplier
			notes = append(notes, fmt.Sprintf("%s expected", strings.ToLower(day.Weather.Condition)))
		}
		if day.Weather.TempC < c.ColdThresholdC {
			mult *= c.ColdMultiplier
			notes = append(notes, fmt.Sprintf("cold day (%.0f°C)", day.Weather.TempC))
		}
	}

	if p.OpenNow != nil && !*p.OpenNow {
		mult *= c.ClosedMultiplier
		notes = append(notes, "listed as closed")
	}

	score := base * mult

	if p.ReviewCount != nil {
		switch {
		case *p.ReviewCount >= c.SocialHighReviews:
			score += c.SocialBonusHigh
		case *p.ReviewCount >= c.SocialMidReviews:
			score += c.SocialBonusMid
		}
	}

	if vibe != "" && c.vibeMatches(vibe, p) {
		score += c.VibeBonus
	}

	if score < 0 {
		score = 0
	}

	return ScoredPlace{Place: p, Score: score, Note: strings.Join(notes, "; ")}
}

// isOutdoor reports whether weather materially affects a visit to the place.
func (c Config) isOutdoor(p models.CandidatePlace) bool {
	switch p.Category {
	case models.CategoryNature, models.CategoryLandmark:
		return true
	}
	for _, t := range p.Tags {
		if _, ok := c.OutdoorTags[strings.ToLower(t)]; ok {
			return true
		}
	}
	return false
}
