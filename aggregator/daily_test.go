package aggregator

import (
	"math"
	"testing"
	"time"

	"forecast-report/models"
)

// sample builds a forecast point on the given March 2025 day
func sample(day, hour int, temp float64, category string, rain, snow float64, humidity int) models.ForecastSample {
	return models.ForecastSample{
		Timestamp:   time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC),
		Temperature: temp,
		Category:    category,
		Rain:        rain,
		Snow:        snow,
		Humidity:    humidity,
	}
}

func TestAggregateDaysEmpty(t *testing.T) {
	days, summary := AggregateDays(nil)

	if len(days) != 0 {
		t.Errorf("expected empty day map, got %d entries", len(days))
	}
	if summary.TotalRain != 0 || summary.TotalSnow != 0 {
		t.Errorf("expected zero totals, got rain=%v snow=%v", summary.TotalRain, summary.TotalSnow)
	}
	if summary.MaxHumidity != 0 {
		t.Errorf("expected max humidity 0 for empty input, got %d", summary.MaxHumidity)
	}
}

func TestAggregateDaysGrouping(t *testing.T) {
	samples := []models.ForecastSample{
		sample(10, 6, 10, "Clear", 0, 0, 60),
		sample(10, 9, 12, "Rain", 1.2, 0, 85),
		sample(10, 12, 13, "Rain", 2.0, 0, 80),
		sample(11, 6, 2, "Snow", 0, 0.7, 90),
		sample(11, 9, 1, "Snow", 0, 1.3, 70),
	}

	days, summary := AggregateDays(samples)

	if len(days) != 2 {
		t.Fatalf("expected 2 day buckets, got %d", len(days))
	}

	d1 := days["2025-03-10"]
	if math.Abs(d1.Rain-3.2) > 1e-6 || d1.Snow != 0 {
		t.Errorf("day 1: got rain=%v snow=%v, want rain=3.2 snow=0", d1.Rain, d1.Snow)
	}

	d2 := days["2025-03-11"]
	if d2.Rain != 0 || math.Abs(d2.Snow-2.0) > 1e-6 {
		t.Errorf("day 2: got rain=%v snow=%v, want rain=0 snow=2.0", d2.Rain, d2.Snow)
	}

	if summary.MaxHumidity != 90 {
		t.Errorf("expected max humidity 90, got %d", summary.MaxHumidity)
	}
}

func TestAggregateDaysTotalsMatchBuckets(t *testing.T) {
	samples := []models.ForecastSample{
		sample(10, 0, 5, "Rain", 0.3, 0.1, 50),
		sample(10, 3, 5, "Rain", 1.1, 0, 55),
		sample(11, 0, 4, "Snow", 0.2, 2.4, 60),
		sample(12, 0, 3, "Snow", 0, 0.9, 65),
	}

	days, summary := AggregateDays(samples)

	var rainSum, snowSum float64
	for _, stats := range days {
		rainSum += stats.Rain
		snowSum += stats.Snow
	}

	if math.Abs(rainSum-summary.TotalRain) > 1e-6 {
		t.Errorf("bucket rain sum %v does not match period total %v", rainSum, summary.TotalRain)
	}
	if math.Abs(snowSum-summary.TotalSnow) > 1e-6 {
		t.Errorf("bucket snow sum %v does not match period total %v", snowSum, summary.TotalSnow)
	}
}
