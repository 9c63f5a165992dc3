package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"

	"forecast-report/aggregator"
	"forecast-report/config"
	"forecast-report/logging"
	"forecast-report/models"
	"forecast-report/providers"
)

var (
	cfg      *config.Config
	provider providers.Provider
	cache    *reportCache
)

func main() {
	// Загружаем конфигурацию
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка загрузки конфигурации: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка инициализации логгера: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	cache = newReportCache(cfg.CacheDuration)

	// Создаем CLI команды
	var rootCmd = &cobra.Command{
		Use:   "forecast-report",
		Short: "Отчет по прогнозу погоды на 5 дней",
		Long:  "Получает прогноз OpenWeatherMap с шагом 3 часа и строит суточную сводку осадков и резких смен погоды",
	}

	// Команда построения отчета
	var reportCmd = &cobra.Command{
		Use:   "report [город]",
		Short: "Построить отчет для города",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			city := ""
			if len(args) > 0 {
				city = args[0]
			}
			country, _ := cmd.Flags().GetString("country")
			apiKey, _ := cmd.Flags().GetString("api-key")
			output, _ := cmd.Flags().GetString("output")

			runReport(city, country, apiKey, output)
		},
	}

	reportCmd.Flags().StringP("country", "c", "", "Код страны (например, RU, US)")
	reportCmd.Flags().StringP("api-key", "k", "", "Ключ API OpenWeatherMap (или переменная OPENWEATHER_API_KEY)")
	reportCmd.Flags().StringP("output", "o", "weather_forecast.json", "Файл отчета")

	// Команда для запуска сервера
	var serverCmd = &cobra.Command{
		Use:   "server",
		Short: "Запуск HTTP сервера",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}

	rootCmd.AddCommand(reportCmd, serverCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runReport строит отчет и пишет его в JSON файл
func runReport(city, country, apiKey, output string) {
	reader := bufio.NewReader(os.Stdin)

	// Недостающие параметры спрашиваем с консоли, как и ключ API,
	// если его нет ни во флаге, ни в окружении
	city = promptIfEmpty(reader, city, "Город")
	country = promptIfEmpty(reader, country, "Код страны (например, RU, US)")
	if apiKey == "" {
		apiKey = cfg.OpenWeatherAPIKey
	}
	apiKey = promptIfEmpty(reader, apiKey, "Ключ API OpenWeatherMap")

	p := providers.NewOpenWeatherProvider(apiKey)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logging.Infof("Запрашиваем прогноз для %s, %s...", city, country)

	series, err := p.GetForecast(ctx, city, country)
	if err != nil {
		logging.Fatalf("Ошибка получения прогноза: %v", err)
	}

	logging.Infof("Получено срезов: %d, локация %s", len(series.Samples), series.LocationName)

	// Текущий день исключаем, отчет покрывает следующие пять дней
	today := time.Now().Format("2006-01-02")

	report, err := aggregator.Generate(*series, today)
	if err != nil {
		logging.Fatalf("Ошибка обработки прогноза: %v", err)
	}

	data, err := json.MarshalIndent(report, "", "    ")
	if err != nil {
		logging.Fatalf("Ошибка сериализации отчета: %v", err)
	}

	if err := os.WriteFile(output, data, 0644); err != nil {
		logging.Fatalf("Ошибка записи файла %s: %v", output, err)
	}

	logging.Infof("Отчет записан: %s", output)
	displaySummary(report)
}

// promptIfEmpty спрашивает значение с консоли, если оно не задано
func promptIfEmpty(reader *bufio.Reader, value, label string) string {
	for strings.TrimSpace(value) == "" {
		fmt.Printf("%s: ", label)
		line, err := reader.ReadString('\n')
		if err != nil {
			logging.Fatalf("Ошибка чтения ввода: %v", err)
		}
		value = strings.TrimSpace(line)
	}
	return strings.TrimSpace(value)
}

// displaySummary выводит краткую сводку отчета в консоль
func displaySummary(report models.Report) {
	logging.Info(strings.Repeat("=", 50))
	logging.Infof("Локация: %s (%s)", report.LocationName, report.CountryCode)
	logging.Infof("Всего дождя: %.1f мм", report.TotalRain)
	logging.Infof("Всего снега: %.1f мм", report.TotalSnow)
	logging.Infof("Максимум влажности: %d%%", report.MaxHumidity)
	logging.Infof("Дней в отчете: %d", len(report.Days))
	logging.Info(strings.Repeat("=", 50))
}

// reportCache кеш готовых отчетов для серверного режима. Живет только в
// памяти процесса и умирает вместе с ним.
type reportCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
}

type cacheEntry struct {
	report    models.Report
	timestamp time.Time
}

func newReportCache(ttlMinutes int) *reportCache {
	return &reportCache{
		entries: make(map[string]cacheEntry),
		ttl:     time.Duration(ttlMinutes) * time.Minute,
	}
}

func (c *reportCache) get(key string) (models.Report, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, found := c.entries[key]
	if !found {
		return models.Report{}, false
	}

	// Проверяем TTL
	if time.Since(entry.timestamp) > c.ttl {
		return models.Report{}, false
	}

	return entry.report, true
}

func (c *reportCache) save(key string, report models.Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		report:    report,
		timestamp: time.Now(),
	}
}

// startServer запускает HTTP сервер
func startServer() {
	if cfg.OpenWeatherAPIKey == "" {
		logging.Fatalf("Для серверного режима нужен OPENWEATHER_API_KEY")
	}
	provider = providers.NewOpenWeatherProvider(cfg.OpenWeatherAPIKey)

	router := mux.NewRouter()
	router.HandleFunc("/api/report", reportHandler).Methods(http.MethodGet)
	router.HandleFunc("/api/health", healthHandler).Methods(http.MethodGet)

	// Настройка сервера
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logging.Infof("Сервер запущен на порту %s", cfg.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Fatalf("Ошибка сервера: %v", err)
		}
	}()

	<-quit
	logging.Info("Завершение работы сервера...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logging.Fatalf("Ошибка при завершении работы сервера: %v", err)
	}

	logging.Info("Сервер остановлен")
}

// reportHandler отдает отчет по городу
func reportHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	city := r.URL.Query().Get("city")
	country := r.URL.Query().Get("country")

	if city == "" {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error: "Не указан город",
		})
		return
	}

	if country == "" {
		country = "RU"
	}

	cacheKey := fmt.Sprintf("%s,%s", city, country)
	if report, found := cache.get(cacheKey); found {
		json.NewEncoder(w).Encode(report)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	series, err := provider.GetForecast(ctx, city, country)
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:   "Не удалось получить прогноз",
			Details: err.Error(),
		})
		return
	}

	today := time.Now().Format("2006-01-02")

	report, err := aggregator.Generate(*series, today)
	if err != nil {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(models.ErrorResponse{
			Error:   "Некорректные данные прогноза",
			Details: err.Error(),
		})
		return
	}

	cache.save(cacheKey, report)
	json.NewEncoder(w).Encode(report)
}

// healthHandler проверка здоровья сервиса
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
		"provider":  provider.Name(),
	})
}
