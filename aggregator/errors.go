package aggregator

import (
	"fmt"
	"math"

	"forecast-report/models"
)

// MalformedSampleError ошибка одного среза с указанием его позиции в серии
type MalformedSampleError struct {
	Index  int
	Reason string
}

func (e *MalformedSampleError) Error() string {
	return fmt.Sprintf("некорректный срез #%d: %s", e.Index, e.Reason)
}

// Validate проверяет обязательные поля каждого среза. Время и температура
// критичны для детектора переходов, поэтому подставлять нули вместо них
// нельзя, поэтому только ошибка с номером среза.
func Validate(samples []models.ForecastSample) error {
	for i, s := range samples {
		if s.Timestamp.IsZero() {
			return &MalformedSampleError{Index: i, Reason: "отсутствует время среза"}
		}
		if math.IsNaN(s.Temperature) || math.IsInf(s.Temperature, 0) {
			return &MalformedSampleError{Index: i, Reason: "некорректная температура"}
		}
		if s.Rain < 0 || s.Snow < 0 {
			return &MalformedSampleError{Index: i, Reason: "отрицательные осадки"}
		}
	}
	return nil
}
