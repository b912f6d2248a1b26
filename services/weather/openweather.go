package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"voyago/models"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/forecast"

// OpenWeatherSource reads the OpenWeather 5-day / 3-hour forecast feed.
type OpenWeatherSource struct {
	APIKey  string
	BaseURL string
	Client  *http.Client
}

func NewOpenWeatherSource(apiKey string) *OpenWeatherSource {
	return &OpenWeatherSource{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type forecastEntry struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	DtTxt string `json:"dt_txt"`
}

type forecastResponse struct {
	List []forecastEntry `json:"list"`
}

// Forecast returns the snapshot closest to midday on the requested date, or
// (nil, nil) when the date is outside the forecast window.
func (o *OpenWeatherSource) Forecast(ctx context.Context, city string, date time.Time) (*models.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("appid", o.APIKey)
	params.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build forecast request: %w", err)
	}
	resp, err := o.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast request returned status %d", resp.StatusCode)
	}

	var fr forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&fr); err != nil {
		return nil, fmt.Errorf("failed to decode forecast response: %w", err)
	}

	wantDate := date.Format("2006-01-02")
	var best *forecastEntry
	bestGap := 0
	for i := range fr.List {
		entry := &fr.List[i]
		ts, err := time.Parse("2006-01-02 15:04:05", entry.DtTxt)
		if err != nil {
			continue
		}
		if ts.Format("2006-01-02") != wantDate {
			continue
		}
		gap := ts.Hour() - 12
		if gap < 0 {
			gap = -gap
		}
		if best == nil || gap < bestGap {
			best = entry
			bestGap = gap
		}
	}
	if best == nil {
		return nil, nil
	}

	snap := &models.WeatherSnapshot{
		TempC:      best.Main.Temp,
		FeelsLikeC: best.Main.FeelsLike,
		Humidity:   best.Main.Humidity,
	}
	if len(best.Weather) > 0 {
		snap.Condition = best.Weather[0].Main
		snap.Description = best.Weather[0].Description
	}
	return snap, nil
}
