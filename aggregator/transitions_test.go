package aggregator

import (
	"testing"

	"forecast-report/models"
)

func TestCountTransitions(t *testing.T) {
	tests := []struct {
		name     string
		samples  []models.ForecastSample
		expected map[string]int
	}{
		{
			name:     "no samples",
			samples:  nil,
			expected: map[string]int{},
		},
		{
			name: "single sample has no pairs",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "Clear", 0, 0, 50),
			},
			expected: map[string]int{},
		},
		{
			name: "category change with delta above threshold",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "Clear", 0, 0, 50),
				sample(10, 9, 13.1, "Rain", 0, 0, 50),
			},
			expected: map[string]int{"2025-03-10": 1},
		},
		{
			name: "delta of exactly 3 degrees is not major",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "Clear", 0, 0, 50),
				sample(10, 9, 13, "Rain", 0, 0, 50),
			},
			expected: map[string]int{},
		},
		{
			name: "same category is never major",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "Clear", 0, 0, 50),
				sample(10, 9, 20, "Clear", 0, 0, 50),
			},
			expected: map[string]int{},
		},
		{
			name: "temperature drop counts too",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "Rain", 0, 0, 50),
				sample(10, 9, 5.5, "Clear", 0, 0, 50),
			},
			expected: map[string]int{"2025-03-10": 1},
		},
		{
			name: "missing category is distinct from any other",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "", 0, 0, 50),
				sample(10, 9, 15, "Clear", 0, 0, 50),
			},
			expected: map[string]int{"2025-03-10": 1},
		},
		{
			name: "boundary transition attributed to the later day",
			samples: []models.ForecastSample{
				sample(10, 21, 16, "Rain", 0, 0, 50),
				sample(11, 0, 20, "Clear", 0, 0, 50),
			},
			expected: map[string]int{"2025-03-11": 1},
		},
		{
			name: "multiple transitions across days",
			samples: []models.ForecastSample{
				sample(10, 6, 10, "Clear", 0, 0, 50),
				sample(10, 9, 15, "Rain", 0, 0, 50),
				sample(10, 12, 16, "Rain", 0, 0, 50),
				sample(11, 0, 20, "Clear", 0, 0, 50),
			},
			expected: map[string]int{"2025-03-10": 1, "2025-03-11": 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountTransitions(tt.samples)

			if len(got) != len(tt.expected) {
				t.Fatalf("got %v, want %v", got, tt.expected)
			}
			for date, count := range tt.expected {
				if got[date] != count {
					t.Errorf("date %s: got %d transitions, want %d", date, got[date], count)
				}
			}
		})
	}
}
