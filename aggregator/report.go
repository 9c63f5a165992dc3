package aggregator

import (
	"math"
	"sort"
	"strings"

	"forecast-report/models"
)

// BuildReport объединяет осадки и счетчики переходов в итоговый отчет.
// Чистое слияние без пересчета: дни берутся из объединения ключей обеих
// карт, отсутствие ключа в одной из них означает ноль, а не ошибку.
// Дни отсортированы по возрастанию даты, осадки округлены до одного знака.
func BuildReport(location, country string, days map[string]models.DailyStats, transitions map[string]int, summary models.PeriodSummary) models.Report {
	seen := make(map[string]struct{}, len(days))
	for d := range days {
		seen[d] = struct{}{}
	}
	for d := range transitions {
		seen[d] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	details := make([]models.DayReport, 0, len(dates))
	for _, d := range dates {
		stats := days[d]
		details = append(details, models.DayReport{
			Date:        d,
			Rain:        round1(stats.Rain),
			Snow:        round1(stats.Snow),
			Transitions: transitions[d],
		})
	}

	return models.Report{
		LocationName: location,
		CountryCode:  strings.ToUpper(country),
		TotalRain:    round1(summary.TotalRain),
		TotalSnow:    round1(summary.TotalSnow),
		MaxHumidity:  summary.MaxHumidity,
		Days:         details,
	}
}

// round1 округляет до одного знака после запятой, формат осадков в отчете
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
