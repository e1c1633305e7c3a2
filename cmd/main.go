package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "poultry_monitor/docs"
	"poultry_monitor/internal/broker"
	"poultry_monitor/internal/handlers"
	"poultry_monitor/internal/logger"
	"poultry_monitor/internal/repository"
	"poultry_monitor/internal/repository/db"
	"poultry_monitor/internal/server"
	"poultry_monitor/internal/service"

	"github.com/spf13/viper"
)

const shutdownTimeout = 10 * time.Second

// @title                       Poultry Monitor API
// @version                     1.0
// @description                 Simulated poultry-farm telemetry, devices, alerts and reports.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// load config.yml before the logger so log.level applies from the start
	cfgErr := loadConfig()

	log := logger.Configure(viper.GetString("log.level"), viper.GetString("log.format"))
	if cfgErr != nil {
		log.Infow("config file not loaded; using defaults and environment", "err", cfgErr)
	}

	// open DB
	conn, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// optional MQTT broker
	var publisher service.Publisher
	if viper.GetBool("mqtt.enabled") {
		b, err := startBroker(log)
		if err != nil {
			log.Fatalw("failed to start mqtt broker", "err", err)
		}
		defer func() { _ = b.Close() }()
		publisher = b
	}

	// wire dependencies
	repos := repository.NewRepository(conn)
	services := service.NewService(repos, service.Config{
		Seed:       viper.GetUint64("simulation.seed"),
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
		Publisher:  publisher,
		Log:        log,
	})
	apiHandler := handlers.NewHandler(services, log.Named("http"), handlers.Options{
		RateLimit: viper.GetFloat64("http.rate_limit"),
		RateBurst: viper.GetInt("http.rate_burst"),
	})

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// seed state and alerts before anything can read them
	if err := services.Simulator.Seed(ctx); err != nil {
		log.Fatalw("failed to seed farm state", "err", err)
	}
	if err := services.SeedAlerts(ctx, time.Now()); err != nil {
		log.Fatalw("failed to seed alerts", "err", err)
	}

	// start the two independent tickers
	go services.Simulator.Run(ctx, viper.GetDuration("simulation.telemetry_tick"))
	go services.AlertFeed.Run(ctx, viper.GetDuration("simulation.alert_tick"))

	// start HTTP server
	srv := &server.Server{}
	handler := server.WithCORS(apiHandler.InitRoutes(), viper.GetStringSlice("http.allowed_origins"))
	runHTTPServer(srv, viper.GetString("port"), handler, log)

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func setDefaults() {
	viper.SetDefault("port", "8080")
	viper.SetDefault("db.path", db.MemoryPath)
	viper.SetDefault("log.level", logger.InfoLevel)
	viper.SetDefault("log.format", logger.ConsoleFormat)
	viper.SetDefault("auth.signing_key", "")
	viper.SetDefault("auth.token_ttl", time.Hour)
	viper.SetDefault("simulation.telemetry_tick", service.DefaultTelemetryTick)
	viper.SetDefault("simulation.alert_tick", service.DefaultAlertTick)
	viper.SetDefault("simulation.seed", 0)
	viper.SetDefault("mqtt.enabled", false)
	viper.SetDefault("mqtt.address", ":1883")
	viper.SetDefault("http.allowed_origins", []string{})
	viper.SetDefault("http.rate_limit", 20)
	viper.SetDefault("http.rate_burst", 40)
}

func loadConfig() error {
	setDefaults()
	viper.SetEnvPrefix("POULTRY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == db.MemoryPath {
		log.Infow("using in-memory sqlite; journal and users are discarded on exit")
	}
	return db.InitDB(dbPath)
}

// startBroker runs the embedded MQTT broker configured under mqtt.*.
func startBroker(log *logger.Logger) (*broker.Broker, error) {
	addr := viper.GetString("mqtt.address")
	b, err := broker.New(addr, log.Named("mqtt"))
	if err != nil {
		return nil, err
	}
	if err := b.Start(); err != nil {
		return nil, err
	}
	log.Infow("mqtt broker started", "address", addr)
	return b, nil
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler http.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server started", "port", port)
		if err := srv.Run(port, handler); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
