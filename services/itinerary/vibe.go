package itinerary

import (
	"strings"
	"unicode"

	"voyago/models"
)

// vibeMatches reports whether the trip vibe favours this candidate, either
// through the keyword affinity table or a direct tag hit. A miss is neutral,
// never a penalty.
func (c Config) vibeMatches(vibe string, p models.CandidatePlace) bool {
	tags := make(map[string]struct{}, len(p.Tags))
	for _, t := range p.Tags {
		tags[strings.ToLower(t)] = struct{}{}
	}
	for _, tok := range tokenize(vibe) {
		if cats, ok := c.VibeAffinity[tok]; ok {
			for _, cat := range cats {
				if cat == p.Category {
					return true
				}
			}
		}
		if _, ok := tags[tok]; ok {
			return true
		}
	}
	return false
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}
