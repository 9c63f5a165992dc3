package providers

import (
	"context"

	"forecast-report/models"
)

// Provider интерфейс для всех источников прогнозов
type Provider interface {
	Name() string
	GetForecast(ctx context.Context, city, country string) (*models.ForecastSeries, error)
	IsAvailable() bool
}
