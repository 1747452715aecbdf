// Package main is the entry point for the bookstore API server.
// It wires together configuration, the logger, the book store, and the HTTP router.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/aoideee/bookstore-api/internal/data"
	"github.com/aoideee/bookstore-api/internal/validator"
	"github.com/joho/godotenv"
)

// appVersion is the current version of the API, shown in logs and responses.
const appVersion = "1.0.0"

// serverConfig holds all the values that can be tweaked at startup via
// command-line flags. Every flag takes its default from an environment
// variable, which may in turn come from a .env file.
type serverConfig struct {
	port            int           // TCP port the HTTP server listens on (default 4000)
	environment     string        // Runtime environment: development, staging, or production
	logLevel        string        // Minimum log level: debug, info, warn, or error
	shutdownTimeout time.Duration // Grace period for in-flight requests on shutdown
	displayVersion  bool          // Print the version and exit
}

// applicationDependencies bundles every shared resource that HTTP handlers need.
// A pointer to this struct is passed as the receiver on all handler and route methods.
type applicationDependencies struct {
	config serverConfig // Server configuration loaded from flags
	logger *slog.Logger // Structured logger that writes to stdout
	models data.Models  // In-memory record stores
}

// main is the application entry point.
// It loads configuration, builds the store, wires up dependencies, and starts the HTTP server.
func main() {
	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "loading .env: %v\n", err)
		os.Exit(1)
	}

	settings, err := parseConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if settings.displayVersion {
		fmt.Printf("Version:\t%s\n", appVersion)
		os.Exit(0)
	}

	logger := newLogger(os.Stdout, settings.logLevel)

	// The store lives exactly as long as the process; main owns it.
	appInstance := &applicationDependencies{
		config: settings,
		logger: logger,
		models: data.NewModels(),
	}

	err = appInstance.serve()
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

// parseConfig registers the command-line flags on a fresh FlagSet, parses
// args, and validates the result. Defaults come from the environment.
func parseConfig(args []string, output io.Writer) (serverConfig, error) {
	var settings serverConfig

	fs := flag.NewFlagSet("api", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&settings.port, "port", envInt("PORT", 4000), "Server port")
	fs.StringVar(&settings.environment, "env", envString("APP_ENV", "development"), "Environment(development|staging|production)")
	fs.StringVar(&settings.logLevel, "log-level", envString("LOG_LEVEL", "info"), "Log level(debug|info|warn|error)")
	fs.DurationVar(&settings.shutdownTimeout, "shutdown-timeout", envDuration("SHUTDOWN_TIMEOUT", 20*time.Second), "Graceful shutdown timeout")
	fs.BoolVar(&settings.displayVersion, "version", false, "Display version and exit")

	if err := fs.Parse(args); err != nil {
		return serverConfig{}, err
	}

	v := validator.New()
	v.Check(settings.port > 0 && settings.port <= 65535, "port", "must be between 1 and 65535")
	v.Check(validator.In(settings.environment, "development", "staging", "production"), "env", "must be development, staging or production")
	v.Check(validator.In(settings.logLevel, "debug", "info", "warn", "error"), "log-level", "must be debug, info, warn or error")
	v.Check(settings.shutdownTimeout > 0, "shutdown-timeout", "must be positive")
	if !v.Valid() {
		return serverConfig{}, fmt.Errorf("invalid configuration: %v", v.Errors)
	}

	return settings, nil
}

// newLogger creates a structured logger that writes human-readable text to w.
func newLogger(w io.Writer, level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func envString(key, defaultValue string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultValue
}

func envInt(key string, defaultValue int) int {
	i, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return i
}

func envDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return d
}
