package weather

import (
	"context"
	"time"

	"voyago/models"
)

// Source fetches a forecast snapshot for a city on a given date. A nil
// snapshot with a nil error means the date is beyond the provider's horizon;
// callers plan that day without weather adjustments.
type Source interface {
	Forecast(ctx context.Context, city string, date time.Time) (*models.WeatherSnapshot, error)
}
