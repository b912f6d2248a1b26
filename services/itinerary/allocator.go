package itinerary

import (
	"sort"

	"voyago/models"
)

// DropReason distinguishes, for diagnostics, why a candidate was left out of
// the final schedule. Externally all reasons collapse into the single
// places_dropped count.
type DropReason string

const (
	DropBelowThreshold DropReason = "below_threshold"
	DropNoCapacity     DropReason = "no_capacity"
	DropInfeasible     DropReason = "infeasible"
)

// DroppedPlace is a candidate considered but excluded. Dropped places are
// always retained and counted, never silently discarded.
type DroppedPlace struct {
	Place  models.CandidatePlace
	Reason DropReason
	Note   string
}

// Allocation is the allocator's partition of candidates across days.
type Allocation struct {
	ByDay   [][]ScoredPlace
	Dropped []DroppedPlace
}

// Allocate packs scored candidates into day bins.
//
// This is a greedy approximation to a multi-bin knapsack coupled with a
// routing problem, not an optimal solver. Travel cost is unknown until the
// sequencer fixes an order, so each stop's visit duration is padded by a
// flat travel share while packing; the sequencer remains the source of truth
// for feasibility. Candidates are taken in descending best-day score order
// and offered to their best-scoring day first, falling back to the next-best
// day with room. Ties break by review volume, then name, so identical inputs
// always produce identical assignments.
func (c Config) Allocate(scores [][]ScoredPlace, days []models.DayContext) Allocation {
	alloc := Allocation{ByDay: make([][]ScoredPlace, len(days))}
	if len(days) == 0 || len(scores) == 0 || len(scores[0]) == 0 {
		return alloc
	}
	numCands := len(scores[0])

	type pooled struct {
		idx     int // candidate index into scores[d]
		bestDay int
		best    float64
	}
	pool := make([]pooled, 0, numCands)
	for i := 0; i < numCands; i++ {
		bestDay, best := 0, scores[0][i].Score
		for d := 1; d < len(days); d++ {
			if scores[d][i].Score > best {
				bestDay, best = d, scores[d][i].Score
			}
		}
		pool = append(pool, pooled{idx: i, bestDay: bestDay, best: best})
	}
	sort.SliceStable(pool, func(a, b int) bool {
		pa, pb := pool[a], pool[b]
		if pa.best != pb.best {
			return pa.best > pb.best
		}
		ra := reviewCount(scores[0][pa.idx].Place)
		rb := reviewCount(scores[0][pb.idx].Place)
		if ra != rb {
			return ra > rb
		}
		return scores[0][pa.idx].Place.Name < scores[0][pb.idx].Place.Name
	})

	used := make([]int, len(days))
	for _, p := range pool {
		cand := scores[0][p.idx].Place
		if p.best < c.MinScore {
			alloc.Dropped = append(alloc.Dropped, DroppedPlace{
				Place:  cand,
				Reason: DropBelowThreshold,
				Note:   scores[p.bestDay][p.idx].Note,
			})
			continue
		}

		// Days ordered by this candidate's score, best first.
		order := make([]int, len(days))
		for d := range order {
			order[d] = d
		}
		sort.SliceStable(order, func(a, b int) bool {
			return scores[order[a]][p.idx].Score > scores[order[b]][p.idx].Score
		})

		weight := int(float64(c.VisitMinutes(cand.Category)) * (1 + c.TravelPadding))
		placed := false
		for _, d := range order {
			if len(alloc.ByDay[d]) >= c.MaxStops {
				continue
			}
			if used[d]+weight > days[d].BudgetMinutes() {
				continue
			}
			alloc.ByDay[d] = append(alloc.ByDay[d], scores[d][p.idx])
			used[d] += weight
			placed = true
			break
		}
		if !placed {
			alloc.Dropped = append(alloc.Dropped, DroppedPlace{
				Place:  cand,
				Reason: DropNoCapacity,
				Note:   "no day had room left",
			})
		}
	}
	return alloc
}

func reviewCount(p models.CandidatePlace) int {
	if p.ReviewCount == nil {
		return 0
	}
	return *p.ReviewCount
}
