package aggregator

import (
	"sort"

	"forecast-report/models"
)

// формат ключа дня в отчете
const dateLayout = "2006-01-02"

// PrepareSamples проверяет серию и возвращает копию, устойчиво
// отсортированную по времени. Сортируем, а не отказываем: детектор
// переходов опирается на порядок, а доверять порядку источника не хочется.
func PrepareSamples(samples []models.ForecastSample) ([]models.ForecastSample, error) {
	if err := Validate(samples); err != nil {
		return nil, err
	}

	sorted := make([]models.ForecastSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return sorted, nil
}

// ExcludeDate убирает срезы, попадающие на указанный день (YYYY-MM-DD).
// Используется оркестратором, чтобы исключить текущий день и оставить
// только следующие пять.
func ExcludeDate(samples []models.ForecastSample, date string) []models.ForecastSample {
	filtered := make([]models.ForecastSample, 0, len(samples))
	for _, s := range samples {
		if s.Timestamp.Format(dateLayout) == date {
			continue
		}
		filtered = append(filtered, s)
	}
	return filtered
}

// Generate строит полный отчет по серии прогнозов: проверка и сортировка,
// при необходимости фильтр по дате, затем накопление осадков и подсчет
// переходов поверх одной и той же последовательности. excludeDate в формате
// YYYY-MM-DD; пустая строка означает без фильтрации.
func Generate(series models.ForecastSeries, excludeDate string) (models.Report, error) {
	samples, err := PrepareSamples(series.Samples)
	if err != nil {
		return models.Report{}, err
	}

	if excludeDate != "" {
		samples = ExcludeDate(samples, excludeDate)
	}

	days, summary := AggregateDays(samples)
	transitions := CountTransitions(samples)

	return BuildReport(series.LocationName, series.CountryCode, days, transitions, summary), nil
}
