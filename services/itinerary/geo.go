package itinerary

import (
	"voyago/models"

	"github.com/golang/geo/s2"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two points in kilometres.
func Distance(a, b models.Coordinates) float64 {
	p := s2.LatLngFromDegrees(a.Lat, a.Lng)
	q := s2.LatLngFromDegrees(b.Lat, b.Lng)
	return p.Distance(q).Radians() * earthRadiusKm
}

// TravelMinutes estimates door-to-door transit time between two points. The
// flat buffer models intra-city friction (finding stops, entrances, short
// walks) and floors every nonzero hop.
func (c Config) TravelMinutes(a, b models.Coordinates) int {
	d := Distance(a, b)
	if d == 0 {
		return 0
	}
	return int(d/c.TravelSpeedKmh*60) + c.TravelBufferMin
}

// VisitMinutes returns the planned visit duration for a category.
func (c Config) VisitMinutes(cat models.Category) int {
	if m, ok := c.VisitDurations[cat]; ok {
		return m
	}
	return c.DefaultVisitMin
}
