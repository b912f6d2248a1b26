package itinerary

import (
	"voyago/models"
)

// SequencedDay is one day's ordered schedule with aggregates, plus any
// assigned places the day could not actually fit once real travel times and
// category windows were applied.
type SequencedDay struct {
	Places        []models.ItineraryPlace
	TravelMinutes int
	VisitMinutes  int
	TotalScore    float64
	Dropped       []DroppedPlace
}

// Sequence orders a day's assigned places and pins concrete arrival and
// departure times.
//
// The tour is a nearest-feasible-neighbour heuristic: starting from the
// anchor, repeatedly take the place reachable at the earliest clock time
// (travel plus any wait for its category window), breaking ties by shorter
// travel, then higher score, then name. Day-sized instances of at most
// MaxStops make this greedy tour close to optimal; an exact tour solver is
// unwarranted engineering at this scale. Waiting for a window means evening
// categories naturally land at the end of the day. Places that can no longer
// start before the day (or their window) closes are demoted to dropped
// rather than failing the whole day; the allocator's capacity estimate is
// approximate and this is the safety net.
func (c Config) Sequence(assigned []ScoredPlace, day models.DayContext) SequencedDay {
	var out SequencedDay
	remaining := make([]ScoredPlace, len(assigned))
	copy(remaining, assigned)

	cur := day.Anchor
	clock := day.StartMin
	first := true

	for len(remaining) > 0 {
		bestIdx := -1
		var bestArrival, bestTravel int
		for i, sp := range remaining {
			coords, ok := sp.Place.Coordinates()
			if !ok {
				coords = day.Anchor // unknown location: treat as at the anchor
			}
			travel := c.TravelMinutes(cur, coords)
			visit := c.VisitMinutes(sp.Place.Category)
			earliest, latest := c.windowFor(sp.Place.Category, day, visit)
			arrival := clock + travel
			if arrival < earliest {
				arrival = earliest
			}
			if arrival > latest || arrival+visit > day.EndMin {
				continue
			}
			if bestIdx == -1 || less(arrival, travel, sp, bestArrival, bestTravel, remaining[bestIdx]) {
				bestIdx, bestArrival, bestTravel = i, arrival, travel
			}
		}

		if bestIdx == -1 {
			for _, sp := range remaining {
				out.Dropped = append(out.Dropped, DroppedPlace{
					Place:  sp.Place,
					Reason: DropInfeasible,
					Note:   "could not fit into the day schedule",
				})
			}
			break
		}

		sp := remaining[bestIdx]
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)

		coords, ok := sp.Place.Coordinates()
		if !ok {
			coords = day.Anchor
		}
		visit := c.VisitMinutes(sp.Place.Category)
		departure := bestArrival + visit

		out.Places = append(out.Places, models.ItineraryPlace{
			ID:          sp.Place.ID,
			Name:        sp.Place.Name,
			Category:    string(sp.Place.Category),
			Coordinates: coords,
			Time: models.TimeSlot{
				Arrival:         formatClock(bestArrival),
				Departure:       formatClock(departure),
				DurationMinutes: visit,
			},
			Score:       round1(sp.Score),
			Why:         sp.Place.Why,
			Note:        sp.Note,
			Address:     sp.Place.Address,
			PhotoURL:    sp.Place.PhotoURL,
			Rating:      sp.Place.Rating,
			ReviewCount: sp.Place.ReviewCount,
		})
		out.VisitMinutes += visit
		if !first {
			// Travel out from the anchor is not billed to the day total.
			out.TravelMinutes += bestTravel
		}
		first = false
		out.TotalScore += sp.Score

		clock = departure
		cur = coords
	}

	return out
}

// less implements the deterministic pick order: earliest arrival, then
// shorter travel, then higher score, then name.
func less(arrival, travel int, sp ScoredPlace, bestArrival, bestTravel int, best ScoredPlace) bool {
	if arrival != bestArrival {
		return arrival < bestArrival
	}
	if travel != bestTravel {
		return travel < bestTravel
	}
	if sp.Score != best.Score {
		return sp.Score > best.Score
	}
	return sp.Place.Name < best.Place.Name
}

// windowFor clamps a category's preferred start window to the day. An
// inverted window collapses onto its earliest start rather than becoming
// unsatisfiable.
func (c Config) windowFor(cat models.Category, day models.DayContext, visit int) (int, int) {
	earliest, latest := day.StartMin, day.EndMin-visit
	if w, ok := c.CategoryWindows[cat]; ok {
		if w.EarliestStart > earliest {
			earliest = w.EarliestStart
		}
		if w.LatestStart < latest {
			latest = w.LatestStart
		}
	}
	if latest < earliest {
		latest = earliest
	}
	return earliest, latest
}
