package itinerary

import "voyago/models"

// Window is a category's preferred start window, minutes from midnight.
// It bounds when a visit may BEGIN, not when it must end.
type Window struct {
	EarliestStart int
	LatestStart   int
}

// Config carries every tuning knob the engine uses. It is immutable for the
// lifetime of a request; the engine keeps no other state, so concurrent
// builds never interfere.
type Config struct {
	DayStartMin int // day window start, minutes from midnight
	DayEndMin   int // day window end, minutes from midnight
	MaxStops    int // hard cap on stops per day, independent of time

	TravelSpeedKmh  float64
	TravelBufferMin int

	DistanceDecay      float64 // exponential decay rate beyond the comfort radius
	ComfortRadiusKm    float64 // no distance penalty inside this radius
	HardRadiusKm       float64 // beyond this, the place is effectively out of reach
	FarMultiplier      float64 // extra attenuation beyond the hard radius
	NoCoordsMultiplier float64 // penalty for places with unknown coordinates

	RainMultiplier   float64 // outdoor penalty on adverse-condition days
	ColdMultiplier   float64 // outdoor penalty below ColdThresholdC
	ColdThresholdC   float64
	ClosedMultiplier float64 // penalty when open-hours data says closed

	UnratedBase       float64 // base score for places with no rating
	SocialMidReviews  int
	SocialHighReviews int
	SocialBonusMid    float64
	SocialBonusHigh   float64
	VibeBonus         float64
	MinScore          float64 // candidates scoring below this everywhere are dropped
	TravelPadding     float64 // per-stop travel overhead assumed while packing

	DefaultVisitMin int
	VisitDurations  map[models.Category]int
	CategoryWindows map[models.Category]Window
	VibeAffinity    map[string][]models.Category
	OutdoorTags     map[string]struct{}
	BadConditions   map[string]struct{}
}

// DefaultConfig returns the production tuning. The numeric knobs here are
// product-tuning values and can be overridden from app configuration; the
// category tables are deliberately enumerated so an unknown category is a
// chosen default, not a silent miss.
func DefaultConfig() Config {
	return Config{
		DayStartMin: 540,  // 9:00 AM
		DayEndMin:   1320, // 10:00 PM
		MaxStops:    6,

		TravelSpeedKmh:  12, // effective transit speed incl. waiting and walking
		TravelBufferMin: 10,

		DistanceDecay:      0.15,
		ComfortRadiusKm:    3,
		HardRadiusKm:       15,
		FarMultiplier:      0.05,
		NoCoordsMultiplier: 0.5,

		RainMultiplier:   0.3,
		ColdMultiplier:   0.5,
		ColdThresholdC:   5,
		ClosedMultiplier: 0.1,

		UnratedBase:       60, // a 3-star assumption keeps unrated places in play
		SocialMidReviews:  100,
		SocialHighReviews: 1000,
		SocialBonusMid:    5,
		SocialBonusHigh:   10,
		VibeBonus:         8,
		MinScore:          40,
		TravelPadding:     0.2,

		DefaultVisitMin: 60,
		VisitDurations: map[models.Category]int{
			models.CategoryLandmark:   45,
			models.CategoryMuseum:     120,
			models.CategoryRestaurant: 75,
			models.CategoryNature:     90,
			models.CategoryNightlife:  120,
			models.CategoryShopping:   60,
			models.CategoryCultural:   60,
			models.CategoryCafe:       30,
		},
		CategoryWindows: map[models.Category]Window{
			models.CategoryCafe:       {EarliestStart: 480, LatestStart: 1080},
			models.CategoryMuseum:     {EarliestStart: 540, LatestStart: 900},
			models.CategoryLandmark:   {EarliestStart: 540, LatestStart: 1020},
			models.CategoryCultural:   {EarliestStart: 540, LatestStart: 1020},
			models.CategoryNature:     {EarliestStart: 540, LatestStart: 1020},
			models.CategoryShopping:   {EarliestStart: 600, LatestStart: 1080},
			models.CategoryRestaurant: {EarliestStart: 720, LatestStart: 1200},
			models.CategoryNightlife:  {EarliestStart: 1080, LatestStart: 1380},
		},
		VibeAffinity: map[string][]models.Category{
			"romantic":  {models.CategoryRestaurant, models.CategoryLandmark, models.CategoryCafe},
			"foodie":    {models.CategoryRestaurant, models.CategoryCafe},
			"food":      {models.CategoryRestaurant, models.CategoryCafe},
			"adventure": {models.CategoryNature, models.CategoryLandmark},
			"outdoors":  {models.CategoryNature},
			"culture":   {models.CategoryMuseum, models.CategoryCultural, models.CategoryLandmark},
			"history":   {models.CategoryMuseum, models.CategoryCultural},
			"art":       {models.CategoryMuseum, models.CategoryCultural},
			"nightlife": {models.CategoryNightlife},
			"party":     {models.CategoryNightlife},
			"relaxed":   {models.CategoryCafe, models.CategoryNature},
			"chill":     {models.CategoryCafe, models.CategoryNature},
			"shopping":  {models.CategoryShopping},
			"family":    {models.CategoryNature, models.CategoryMuseum, models.CategoryLandmark},
		},
		OutdoorTags: stringSet(
			"park", "zoo", "amusement_park", "campground", "stadium",
			"natural_feature", "hiking_area", "beach", "garden",
		),
		BadConditions: stringSet("Rain", "Drizzle", "Thunderstorm", "Snow"),
	}
}

func stringSet(items ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}
