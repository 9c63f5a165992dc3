package models

import (
	"time"
)

// ForecastSample один прогнозный срез (шаг 3 часа)
type ForecastSample struct {
	Timestamp   time.Time // локальное время точки прогноза
	Temperature float64   // в градусах Цельсия
	Rain        float64   // осадки за 3 часа, мм (0 если нет данных)
	Snow        float64   // снег за 3 часа, мм (0 если нет данных)
	Humidity    int       // влажность %
	Category    string    // категория погоды (Clear, Rain, Snow, ...)
}

// ForecastSeries упорядоченная серия срезов с метаданными локации
type ForecastSeries struct {
	LocationName string
	CountryCode  string
	Samples      []ForecastSample
}

// DailyStats накопленные осадки за один календарный день
type DailyStats struct {
	Rain float64 // мм
	Snow float64 // мм
}

// PeriodSummary сводные показатели за весь период прогноза
type PeriodSummary struct {
	TotalRain   float64 // мм
	TotalSnow   float64 // мм
	MaxHumidity int     // %
}

// DayReport строка итогового отчета за один день
type DayReport struct {
	Date        string  `json:"date_local"`
	Rain        float64 `json:"rain_cumul_mm"`
	Snow        float64 `json:"snow_cumul_mm"`
	Transitions int     `json:"major_transitions_count"`
}

// Report итоговый отчет за период. Имена JSON полей внешний контракт,
// менять нельзя.
type Report struct {
	LocationName string      `json:"forecast_location_name"`
	CountryCode  string      `json:"country_code"`
	TotalRain    float64     `json:"total_rain_period_mm"`
	TotalSnow    float64     `json:"total_snow_period_mm"`
	MaxHumidity  int         `json:"max_humidity_period"`
	Days         []DayReport `json:"forecast_details"`
}

// ErrorResponse структура для ошибок HTTP API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
