package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"hotel-reservation/config"
	"hotel-reservation/controllers"
	"hotel-reservation/menu"
	"hotel-reservation/reports"
	"hotel-reservation/routes"
	"hotel-reservation/services"
	"hotel-reservation/storage"
)

const usage = `Usage:
  hotel-reservation [serve]                           start the HTTP API
  hotel-reservation menu                              interactive reservation menu
  hotel-reservation stats fileWithData.txt [outdir]   descriptive statistics
  hotel-reservation convert fileWithData.txt [outdir] binary / hexadecimal conversion
  hotel-reservation wordcount fileWithData.txt [outdir]
  hotel-reservation sales priceCatalogue.json salesRecord.json`

func main() {
	cmd := "serve"
	args := os.Args[1:]
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}

	switch cmd {
	case "serve":
		serve()
	case "menu":
		runMenu()
	case "stats", "convert", "wordcount":
		os.Exit(runFileReport(cmd, args))
	case "sales":
		os.Exit(runSales(args))
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}
}

// openBackend returns the configured storage backend and a cleanup func.
func openBackend(cfg *config.Config) (storage.Backend, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendMySQL:
		db, err := config.ConnectDatabase(cfg.MySQL)
		if err != nil {
			return nil, nil, fmt.Errorf("database connect failed: %w", err)
		}
		backend, err := storage.NewGormBackend(db)
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return backend, cleanup, nil

	case config.BackendRedis:
		client := storage.NewRedisClient(storage.RedisOptions{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		backend, err := storage.NewRedisBackend(client, cfg.Redis.Prefix)
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		return backend, func() { backend.Close() }, nil

	default:
		return storage.NewFileBackend(cfg.Storage.DataDir), func() {}, nil
	}
}

func mustOpen() (*config.Config, storage.Backend, func()) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}
	backend, cleanup, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("❌ Storage error: %v", err)
	}
	log.Printf("✅ Storage backend %q ready", cfg.Storage.Backend)
	return cfg, backend, cleanup
}

func serve() {
	cfg, backend, cleanup := mustOpen()
	defer cleanup()

	metrics := services.NewMetrics(prometheus.DefaultRegisterer)
	system := services.NewReservationSystem(backend, metrics)
	exporter := services.NewExportService(system)

	router := routes.SetupRouter(
		controllers.NewHotelController(system),
		controllers.NewCustomerController(system),
		controllers.NewReservationController(system, exporter),
		controllers.NewReportController(),
		routes.Options{
			CorsOrigins: cfg.HTTP.CorsOrigins,
			APIKey:      cfg.HTTP.APIKey,
			Metrics:     promhttp.Handler(),
		},
	)
	if cfg.HTTP.APIKey == "" {
		log.Println("⚠️  API_KEY not set; write routes are open")
	}

	addr := ":" + cfg.HTTP.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}

func runMenu() {
	_, backend, cleanup := mustOpen()
	defer cleanup()

	system := services.NewReservationSystem(backend, nil)
	if err := menu.Run(system, os.Stdin, os.Stdout); err != nil {
		cleanup()
		log.Fatalf("❌ %v", err)
	}
}

var reportOutputs = map[string]string{
	"stats":     "StatisticsResults.txt",
	"convert":   "ConvertionResults.txt",
	"wordcount": "WordCountResults.txt",
}

func runFileReport(cmd string, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	input := args[0]
	output := reportOutputs[cmd]
	if len(args) >= 2 && args[1] != "" {
		output = filepath.Join(args[1], output)
	}

	if err := reports.CheckInputFile(input); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	run := func() (string, bool) {
		if cmd == "wordcount" {
			data, err := os.ReadFile(input)
			if err != nil {
				return fmt.Sprintf("Error reading file: %v\n", err), false
			}
			return reports.WordCountReport(string(data))
		}

		lines, err := reports.ReadLines(input)
		if err != nil {
			return fmt.Sprintf("Error reading file: %v\n", err), false
		}
		numbers, _ := reports.ParseNumbers(lines)
		if cmd == "stats" {
			return reports.StatisticsReport(numbers)
		}
		return reports.ConversionReport(numbers)
	}

	return finishReport(run, output)
}

func runSales(args []string) int {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		return 1
	}
	for _, path := range args[:2] {
		if err := reports.CheckInputFile(path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
	}

	return finishReport(func() (string, bool) {
		return reports.SalesReportFromFiles(args[0], args[1])
	}, "SalesResults.txt")
}

func finishReport(run func() (string, bool), output string) int {
	text, ok, err := reports.RunTimed(run, output)
	fmt.Println(text)
	if err != nil {
		log.Printf("❌ %v", err)
		return 1
	}
	if !ok {
		return 1
	}
	return 0
}
