package places

import (
	"context"

	"voyago/models"
)

// Source proposes candidate places for a city and optional vibe. Callers
// must treat an error or empty result as "zero candidates", never as fatal:
// the itinerary still builds, with free days.
type Source interface {
	Candidates(ctx context.Context, city, vibe string) ([]models.CandidatePlace, error)
}
