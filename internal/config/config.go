package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DBPath      string // path to the sqlite database file (":memory:" for tests)
	SourcesFile string // optional path to a sources.yaml overriding endpoint URLs
	Sources     Sources

	IngestInterval     time.Duration // interval between scheduled pipeline runs (default: 6h)
	IngestStartupDelay time.Duration // delay before the first run after boot (default: 10s)
	IngestRunTimeout   time.Duration // overall deadline for one pipeline run (default: 2m)
	SourceTimeout      time.Duration // per-call timeout for outbound source requests (default: 10s)

	// Redis (bookmark store)
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDialTimeout    time.Duration
	RedisReadTimeout    time.Duration
	RedisWriteTimeout   time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // cap on the wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
}

// Sources holds per-platform endpoint URLs. Empty fields fall back to
// each adapter's production default; overriding them is mainly for
// development against stub servers.
type Sources struct {
	Codeforces struct {
		APIURL string `yaml:"api_url"`
	} `yaml:"codeforces"`
	Codechef struct {
		APIURL string `yaml:"api_url"`
	} `yaml:"codechef"`
	Leetcode struct {
		PageURL    string `yaml:"page_url"`
		GraphqlURL string `yaml:"graphql_url"`
	} `yaml:"leetcode"`
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("CONTRACKER_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("CONTRACKER_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("CONTRACKER_LOG_LEVEL", "info"),
		PrettyLog: mustBool("CONTRACKER_PRETTY_LOG", true),

		// Storage
		DBPath:      getenv("CONTRACKER_DB_PATH", "/app/data/contests.db"),
		SourcesFile: getenv("CONTRACKER_SOURCES_FILE", ""),

		// Pipeline
		IngestInterval:     mustDuration("CONTRACKER_INGEST_INTERVAL", 6*time.Hour),
		IngestStartupDelay: mustDuration("CONTRACKER_INGEST_STARTUP_DELAY", 10*time.Second),
		IngestRunTimeout:   mustDuration("CONTRACKER_INGEST_RUN_TIMEOUT", 2*time.Minute),
		SourceTimeout:      mustDuration("CONTRACKER_SOURCE_TIMEOUT", 10*time.Second),

		// Redis settings
		RedisAddr:           requireEnv("CONTRACKER_REDIS_ADDR"),
		RedisUser:           getenv("CONTRACKER_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("CONTRACKER_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("CONTRACKER_REDIS_DB", 0),
		RedisDialTimeout:    mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisReadTimeout:    mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWriteTimeout:   mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
	}

	if cfg.SourcesFile != "" {
		sources, err := LoadSources(cfg.SourcesFile)
		if err != nil {
			panic(fmt.Sprintf("❌ FATAL: failed to load sources file %s: %v", cfg.SourcesFile, err))
		}
		cfg.Sources = sources
	}

	return cfg
}

// LoadSources reads and parses a sources.yaml endpoint-override file.
func LoadSources(path string) (Sources, error) {
	var sources Sources
	data, err := os.ReadFile(path)
	if err != nil {
		return sources, fmt.Errorf("failed to read sources file: %w", err)
	}
	if err := yaml.Unmarshal(data, &sources); err != nil {
		return sources, fmt.Errorf("failed to parse sources yaml: %w", err)
	}
	return sources, nil
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
