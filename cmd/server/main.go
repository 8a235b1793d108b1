package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/citycast/backend/internal/delivery/http"
	"github.com/citycast/backend/internal/repository/postgres"
	"github.com/citycast/backend/internal/service"
	"github.com/citycast/backend/pkg/utils"
)

var cfg *Config

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	// Configuration
	cfg = loadConfig()

	rootCmd := &cobra.Command{
		Use:   "citycast",
		Short: "City weather lookup service",
		Long:  "Resolves a city name to its current weather and serves it over HTTP or the command line",
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Run: func(cmd *cobra.Command, args []string) {
			runServe()
		},
	}

	getCmd := &cobra.Command{
		Use:   "get [city]",
		Short: "Look up current weather for a city",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			city := strings.Join(args, " ")
			output, _ := cmd.Flags().GetString("output")

			runGet(city, output)
		},
	}
	getCmd.Flags().StringP("output", "o", "text", "Output format (text, json)")

	rootCmd.AddCommand(serveCmd, getCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runServe() {
	// Database connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Printf("Warning: Could not connect to database: %v", err)
			pool = nil
		}
	}
	if pool != nil {
		defer pool.Close()
		log.Println("Connected to PostgreSQL")
	} else {
		log.Println("No database configured, journaling lookups in memory")
	}

	// Dependency Injection: Repositories
	var lookupRepo service.LookupRepository
	if pool != nil {
		pgRepo := postgres.NewPostgresRepository(pool)
		if err := pgRepo.InitSchema(ctx); err != nil {
			log.Printf("Warning: Could not init schema: %v", err)
		}
		lookupRepo = pgRepo
	} else {
		lookupRepo = postgres.NewMockRepository()
	}

	// Dependency Injection: Services
	geocoder := service.NewGeocodingService(cfg.GeocodingAPIBase)
	forecasts := service.NewForecastService(cfg.ForecastAPIBase)
	lookupSvc := service.NewLookupService(geocoder, forecasts, lookupRepo)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "CityCast API v1.0",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorHandler: http.ErrorHandler,
		Views:        html.New("./templates", ".html"),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: utils.NewID,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))

	// Static assets
	app.Static("/static", "./static")

	// Routes
	http.SetupRoutes(app, lookupSvc, lookupRepo)

	// Graceful shutdown
	go func() {
		port := cfg.Port
		if port == "" {
			port = "8080"
		}
		log.Printf("Server starting on :%s", port)
		if err := app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}
	lookupSvc.WaitBackground()
	log.Println("Server exited gracefully")
}

// runGet performs a one-shot lookup without starting the server
func runGet(city, output string) {
	geocoder := service.NewGeocodingService(cfg.GeocodingAPIBase)
	forecasts := service.NewForecastService(cfg.ForecastAPIBase)
	lookupSvc := service.NewLookupService(geocoder, forecasts, postgres.NewMockRepository())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	weather, err := lookupSvc.Lookup(ctx, city)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	lookupSvc.WaitBackground()

	if output == "json" {
		data, _ := json.MarshalIndent(weather, "", "  ")
		fmt.Println(string(data))
		return
	}

	fmt.Printf("Weather in %s", weather.City)
	if weather.Country != "" {
		fmt.Printf(", %s", weather.Country)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("=", 40))
	fmt.Printf("Temperature: %d°C (feels like %d°C)\n", weather.Temperature, weather.FeelsLike)
	fmt.Printf("Humidity: %d%%\n", weather.Humidity)
	fmt.Printf("Wind speed: %d km/h\n", weather.WindSpeed)
	fmt.Printf("Conditions: %s\n", weather.Description)
	fmt.Printf("Updated: %s\n", weather.Timestamp.Format("15:04:05"))
}

type Config struct {
	DatabaseURL      string
	GeocodingAPIBase string
	ForecastAPIBase  string
	Port             string
	Env              string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		GeocodingAPIBase: getEnv("GEOCODING_API_BASE", service.DefaultGeocodingBaseURL),
		ForecastAPIBase:  getEnv("FORECAST_API_BASE", service.DefaultForecastBaseURL),
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
