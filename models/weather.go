package models

// WeatherSnapshot summarizes the forecast for one day of the trip. A nil
// snapshot means the weather source had nothing for that day; the engine
// simply skips weather adjustments in that case.
type WeatherSnapshot struct {
	Condition   string  `json:"condition"` // e.g. "Clear", "Rain", "Snow"
	Description string  `json:"description"`
	TempC       float64 `json:"temp_c"`
	FeelsLikeC  float64 `json:"feels_like_c"`
	Humidity    int     `json:"humidity"`
}
