package aggregator

import (
	"math"

	"forecast-report/models"
)

// TransitionTempDelta порог перепада температуры между соседними срезами.
// Ровно 3°C переходом не считается, только строго больше.
const TransitionTempDelta = 3.0

// CountTransitions считает резкие смены погоды по парам соседних срезов.
// Смена резкая, если одновременно меняется категория погоды и температура
// прыгает строго больше чем на 3°C. Переход засчитывается дню позднего
// среза пары, в том числе на границе суток. Пустая или неизвестная
// категория сравнивается как обычное значение и никакой другой не равна.
func CountTransitions(samples []models.ForecastSample) map[string]int {
	transitions := make(map[string]int)

	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]

		if cur.Category == prev.Category {
			continue
		}
		if math.Abs(cur.Temperature-prev.Temperature) <= TransitionTempDelta {
			continue
		}

		transitions[cur.Timestamp.Format(dateLayout)]++
	}

	return transitions
}
