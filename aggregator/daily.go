package aggregator

import (
	"forecast-report/models"
)

// AggregateDays группирует срезы по календарным дням и накапливает осадки.
// Попутно считает сводку за весь период: суммарный дождь и снег плюс
// максимум влажности по всем срезам (не по дням). Пустой вход дает пустую
// карту и нулевую сводку, максимум влажности при этом 0.
func AggregateDays(samples []models.ForecastSample) (map[string]models.DailyStats, models.PeriodSummary) {
	days := make(map[string]models.DailyStats)
	var summary models.PeriodSummary

	for _, s := range samples {
		key := s.Timestamp.Format(dateLayout)

		stats := days[key]
		stats.Rain += s.Rain
		stats.Snow += s.Snow
		days[key] = stats

		summary.TotalRain += s.Rain
		summary.TotalSnow += s.Snow
		if s.Humidity > summary.MaxHumidity {
			summary.MaxHumidity = s.Humidity
		}
	}

	return days, summary
}
