// Package config loads the daemon and maintenance CLI's shared
// environment, following the teacher's config.NewApp pattern:
// os.LookupEnv with a named sentinel error per missing variable.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

var errEnvVarNotFound = errors.New("environment variable not found")

const (
	rpcURLsEnvKey    = "RPC_URLS"
	dbHostEnvKey     = "DB_HOST"
	dbPortEnvKey     = "DB_PORT"
	dbUserEnvKey     = "DB_USER"
	dbPassEnvKey     = "DB_PASSWORD"
	dbNameEnvKey     = "DB_NAME"
	pollingEnvKey    = "POLLING_PERIOD_SECONDS"
	backoffEnvKey    = "ERROR_BACKOFF_SECONDS"
	staleEnvKey      = "STALE_THRESHOLD"
	healthEnvKey     = "HEALTH_CHECK_INTERVAL_SECONDS"
	maxRetriesEnvKey = "MAX_RETRIES"

	defaultRPCURL = "https://ethereum-rpc.publicnode.com"
)

// App is the daemon and maintenance CLI's shared configuration.
type App struct {
	RPCURLs []string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	PollingPeriod       time.Duration
	ErrorBackoff        time.Duration
	StaleThreshold      int64
	HealthCheckInterval time.Duration
	MaxRetries          uint64
}

// NewApp loads App from the environment. RPC_URLS falls back to a
// public endpoint with a warning (the returned string, empty when
// unused) rather than failing outright — every other required variable
// is fatal if absent.
func NewApp() (App, string, error) {
	var warning string

	rpcURLs, ok := os.LookupEnv(rpcURLsEnvKey)
	var urls []string
	if !ok || strings.TrimSpace(rpcURLs) == "" {
		warning = fmt.Sprintf("%s not set, defaulting to %s", rpcURLsEnvKey, defaultRPCURL)
		urls = []string{defaultRPCURL}
	} else {
		for _, u := range strings.Split(rpcURLs, ",") {
			if trimmed := strings.TrimSpace(u); trimmed != "" {
				urls = append(urls, trimmed)
			}
		}
	}

	dbHost, ok := os.LookupEnv(dbHostEnvKey)
	if !ok {
		return App{}, "", fmt.Errorf("%w: %s", errEnvVarNotFound, dbHostEnvKey)
	}

	dbPort, ok := os.LookupEnv(dbPortEnvKey)
	if !ok {
		return App{}, "", fmt.Errorf("%w: %s", errEnvVarNotFound, dbPortEnvKey)
	}

	dbUser, ok := os.LookupEnv(dbUserEnvKey)
	if !ok {
		return App{}, "", fmt.Errorf("%w: %s", errEnvVarNotFound, dbUserEnvKey)
	}

	dbPassword, ok := os.LookupEnv(dbPassEnvKey)
	if !ok {
		return App{}, "", fmt.Errorf("%w: %s", errEnvVarNotFound, dbPassEnvKey)
	}

	dbName, ok := os.LookupEnv(dbNameEnvKey)
	if !ok {
		return App{}, "", fmt.Errorf("%w: %s", errEnvVarNotFound, dbNameEnvKey)
	}

	pollingPeriod, err := durationSecondsOrDefault(pollingEnvKey, 2*time.Second)
	if err != nil {
		return App{}, "", err
	}

	errorBackoff, err := durationSecondsOrDefault(backoffEnvKey, 5*time.Second)
	if err != nil {
		return App{}, "", err
	}

	staleThreshold, err := int64OrDefault(staleEnvKey, 3)
	if err != nil {
		return App{}, "", err
	}

	healthCheckInterval, err := durationSecondsOrDefault(healthEnvKey, 10*time.Second)
	if err != nil {
		return App{}, "", err
	}

	maxRetries, err := int64OrDefault(maxRetriesEnvKey, 5)
	if err != nil {
		return App{}, "", err
	}

	return App{
		RPCURLs:             urls,
		DBHost:              dbHost,
		DBPort:              dbPort,
		DBUser:              dbUser,
		DBPassword:          dbPassword,
		DBName:              dbName,
		PollingPeriod:       pollingPeriod,
		ErrorBackoff:        errorBackoff,
		StaleThreshold:      staleThreshold,
		HealthCheckInterval: healthCheckInterval,
		MaxRetries:          uint64(maxRetries),
	}, warning, nil
}

// DSN builds the Postgres connection string GORM and pgx both accept.
func (a App) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		a.DBHost, a.DBPort, a.DBUser, a.DBPassword, a.DBName)
}

func durationSecondsOrDefault(key string, def time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return time.Duration(seconds) * time.Second, nil
}

func int64OrDefault(key string, def int64) (int64, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return n, nil
}
