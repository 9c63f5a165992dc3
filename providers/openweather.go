package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"forecast-report/models"
)

// прогноз на 5 дней с шагом 3 часа = 40 срезов
const forecastCount = 40

type OpenWeatherProvider struct {
	apiKey  string
	client  *http.Client
	baseURL string
}

func NewOpenWeatherProvider(apiKey string) *OpenWeatherProvider {
	return &OpenWeatherProvider{
		apiKey: apiKey,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: "https://api.openweathermap.org/data/2.5/forecast",
	}
}

func (p *OpenWeatherProvider) Name() string {
	return "OpenWeatherMap"
}

func (p *OpenWeatherProvider) IsAvailable() bool {
	return p.apiKey != ""
}

func (p *OpenWeatherProvider) GetForecast(ctx context.Context, city, country string) (*models.ForecastSeries, error) {
	if !p.IsAvailable() {
		return nil, fmt.Errorf("провайдер %s не настроен", p.Name())
	}

	// Формируем запрос
	query := url.Values{}
	query.Set("q", fmt.Sprintf("%s,%s", city, country))
	query.Set("appid", p.apiKey)
	query.Set("units", "metric") // метрическая система
	query.Set("cnt", fmt.Sprintf("%d", forecastCount))

	reqURL := fmt.Sprintf("%s?%s", p.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка HTTP запроса: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		if resp.StatusCode == http.StatusNotFound {
			return nil, fmt.Errorf("город не найден")
		}
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("неверный API ключ")
		}
		return nil, fmt.Errorf("ошибка API: статус %d", resp.StatusCode)
	}

	// Парсим ответ
	var result struct {
		City struct {
			Name     string `json:"name"`
			Country  string `json:"country"`
			Timezone int    `json:"timezone"` // сдвиг от UTC в секундах
		} `json:"city"`
		List []struct {
			Dt   int64 `json:"dt"`
			Main struct {
				Temp     float64 `json:"temp"`
				Humidity int     `json:"humidity"`
			} `json:"main"`
			Weather []struct {
				Main string `json:"main"`
			} `json:"weather"`
			// Осадков в ответе может не быть, тогда нулевое
			// значение структуры дает 0 мм
			Rain struct {
				ThreeHours float64 `json:"3h"`
			} `json:"rain"`
			Snow struct {
				ThreeHours float64 `json:"3h"`
			} `json:"snow"`
		} `json:"list"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("ошибка парсинга JSON: %w", err)
	}

	// Время срезов переводим в местный часовой пояс локации, чтобы
	// разбиение по дням шло по местному календарю
	loc := time.FixedZone("local", result.City.Timezone)

	countryCode := result.City.Country
	if countryCode == "" {
		countryCode = country
	}

	series := &models.ForecastSeries{
		LocationName: result.City.Name,
		CountryCode:  countryCode,
		Samples:      make([]models.ForecastSample, 0, len(result.List)),
	}

	for _, item := range result.List {
		sample := models.ForecastSample{
			Timestamp:   time.Unix(item.Dt, 0).In(loc),
			Temperature: item.Main.Temp,
			Humidity:    item.Main.Humidity,
			Rain:        item.Rain.ThreeHours,
			Snow:        item.Snow.ThreeHours,
		}
		if len(item.Weather) > 0 {
			sample.Category = item.Weather[0].Main
		}
		series.Samples = append(series.Samples, sample)
	}

	return series, nil
}
