package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gopkg.in/yaml.v2"

	"zapysnyk/internal/bot"
	"zapysnyk/internal/config"
	"zapysnyk/internal/database"
	"zapysnyk/internal/dialog"
	"zapysnyk/internal/schedule"
	"zapysnyk/internal/session"
	"zapysnyk/internal/sheets"
)

func main() {
	// Загрузка конфигурации
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Каталоги услуг и времени из отдельного файла
	catalogPath := os.Getenv("CATALOG_PATH")
	if catalogPath == "" {
		catalogPath = "configs/catalog.yaml"
	}

	catalogData, err := os.ReadFile(catalogPath)
	if err != nil {
		log.Fatalf("Ошибка чтения %s: %v", catalogPath, err)
	}

	var catalog struct {
		Services  []string `yaml:"services"`
		TimeSlots []string `yaml:"time_slots"`
	}
	if err := yaml.Unmarshal(catalogData, &catalog); err != nil {
		log.Fatalf("Ошибка парсинга %s: %v", catalogPath, err)
	}
	if len(catalog.Services) == 0 || len(catalog.TimeSlots) == 0 {
		log.Fatalf("Каталог услуг или времени пуст: %s", catalogPath)
	}

	// Инициализация хранилища записей
	var store database.Store
	switch cfg.Database.Driver {
	case "postgres":
		pg, err := database.NewPostgres(cfg.Database.DSN)
		if err != nil {
			log.Fatalf("Ошибка инициализации базы данных: %v", err)
		}
		defer pg.Close()
		store = pg
	case "memory":
		log.Println("Using in-memory booking store, bookings will not survive restart")
		store = database.NewMemory()
	default:
		log.Fatalf("Unknown database driver: %s", cfg.Database.Driver)
	}

	metrics := bot.NewMetrics()
	store = bot.InstrumentStore(store, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Каталог сессий: Redis при наличии, иначе память процесса
	var sessions session.Store = session.NewMemoryStore()
	if cfg.Redis.Address != "" {
		redisClient := session.NewRedisClient(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err := session.Ping(ctx, redisClient); err != nil {
			log.Printf("Redis unavailable, falling back to in-memory sessions: %v", err)
		} else {
			sessions = session.NewRedisStore(redisClient)
		}
	}

	availability := schedule.NewIndex(catalog.TimeSlots, store)

	telegramBot, err := bot.NewBot(cfg.Telegram.BotToken, cfg.Admins, cfg.Exports.Path, store, metrics)
	if err != nil {
		log.Fatal("Ошибка создания бота:", err)
	}

	manager := dialog.NewManager(sessions, store, availability, telegramBot, catalog.Services)
	telegramBot.SetManager(manager)

	// Журнал в Google Sheets (необязательно)
	if cfg.Google.CredentialsFile != "" && cfg.Google.SpreadsheetID != "" {
		journal, err := sheets.NewService(cfg.Google.CredentialsFile, cfg.Google.SpreadsheetID)
		if err != nil {
			log.Printf("Warning: failed to initialize Google Sheets journal: %v", err)
		} else if err := journal.TestConnection(ctx); err != nil {
			log.Printf("Warning: Google Sheets connection test failed: %v", err)
		} else {
			manager.SetJournal(journal)
			log.Println("Google Sheets journal initialized successfully")
		}
	}

	if cfg.Monitoring.PrometheusEnabled {
		port := cfg.Monitoring.PrometheusPort
		if port == 0 {
			port = 9090
		}
		go startMetricsServer(ctx, port)
	}

	log.Println("Бот запущен...")
	go telegramBot.Start(ctx)

	<-ctx.Done()
	log.Println("Shutdown signal received...")

	telegramBot.Stop()
}

func startMetricsServer(ctx context.Context, port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: mux}
	go func() {
		<-ctx.Done()
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctxShutdown)
	}()
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Printf("metrics server error: %v", err)
	}
}
