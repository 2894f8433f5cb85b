package configs

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Upstream  UpstreamConfig
	Cache     CacheConfig
	JWT       JWTConfig
	Redis     RedisConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Events    EventsConfig
}

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
}

// UpstreamConfig points at the HR API the gateway fronts.
type UpstreamConfig struct {
	BaseURL      string
	Timeout      time.Duration
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// CacheConfig holds the freshness windows used by the services.
type CacheConfig struct {
	ShortTTL     time.Duration // today's attendance, conversations
	MediumTTL    time.Duration // lists: leave requests, timeslips, history
	LongTTL      time.Duration // leave types, holidays
	SingleFlight bool
}

type JWTConfig struct {
	Secret string
	Issuer string
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	// Pool and timeout settings
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolTimeout  time.Duration
	IdleTimeout  time.Duration
}

type LogConfig struct {
	Level  string
	Format string // json or text
}

type RateLimitConfig struct {
	DefaultRequestsPerMinute int
	BurstMultiplier          float64
	Window                   time.Duration
	KeyPrefix                string
}

// EventsConfig controls the upstream message event stream.
type EventsConfig struct {
	Enabled      bool
	URL          string
	ReconnectMin time.Duration
	ReconnectMax time.Duration
	ServiceToken string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			Port:           getEnv("SERVER_PORT", "8080"),
			ReadTimeout:    getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:   getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:    getDurationEnv("SERVER_IDLE_TIMEOUT", 120*time.Second),
			TLSCertFile:    getEnv("TLS_CERT_FILE", ""),
			TLSKeyFile:     getEnv("TLS_KEY_FILE", ""),
			AllowedOrigins: getListEnv("ALLOWED_ORIGINS", []string{"*"}),
			Environment:    getEnv("ENVIRONMENT", "development"),
		},
		Upstream: UpstreamConfig{
			BaseURL:      strings.TrimRight(getEnvRequired("HR_API_BASE_URL"), "/"),
			Timeout:      getDurationEnv("HR_API_TIMEOUT", 15*time.Second),
			RetryMax:     getIntEnv("HR_API_RETRY_MAX", 3),
			RetryWaitMin: getDurationEnv("HR_API_RETRY_WAIT_MIN", 200*time.Millisecond),
			RetryWaitMax: getDurationEnv("HR_API_RETRY_WAIT_MAX", 2*time.Second),
		},
		Cache: CacheConfig{
			ShortTTL:     getDurationEnv("CACHE_TTL_SHORT", 2*time.Minute),
			MediumTTL:    getDurationEnv("CACHE_TTL_MEDIUM", 5*time.Minute),
			LongTTL:      getDurationEnv("CACHE_TTL_LONG", 15*time.Minute),
			SingleFlight: getBoolEnv("CACHE_SINGLE_FLIGHT", false),
		},
		JWT: JWTConfig{
			Secret: getEnvRequired("JWT_SECRET"),
			Issuer: getEnv("JWT_ISSUER", ""),
		},
		Redis: RedisConfig{
			Enabled:      getBoolEnv("REDIS_ENABLED", true),
			Host:         getEnv("REDIS_HOST", "localhost"),
			Port:         getEnv("REDIS_PORT", "6379"),
			Password:     getEnv("REDIS_PASSWORD", ""),
			DB:           getIntEnv("REDIS_DB", 0),
			PoolSize:     getIntEnv("REDIS_POOL_SIZE", 10),
			MinIdleConns: getIntEnv("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  getDurationEnv("REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  getDurationEnv("REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: getDurationEnv("REDIS_WRITE_TIMEOUT", 3*time.Second),
			PoolTimeout:  getDurationEnv("REDIS_POOL_TIMEOUT", 4*time.Second),
			IdleTimeout:  getDurationEnv("REDIS_IDLE_TIMEOUT", 5*time.Minute),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		RateLimit: RateLimitConfig{
			DefaultRequestsPerMinute: getIntEnv("RATE_LIMIT_RPM", 120),
			BurstMultiplier:          getFloatEnv("RATE_LIMIT_BURST", 2.0),
			Window:                   getDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
			KeyPrefix:                getEnv("RATE_LIMIT_KEY_PREFIX", "ratelimit:employee"),
		},
		Events: EventsConfig{
			Enabled:      getBoolEnv("HR_EVENTS_ENABLED", false),
			URL:          getEnv("HR_EVENTS_URL", ""),
			ReconnectMin: getDurationEnv("HR_EVENTS_RECONNECT_MIN", time.Second),
			ReconnectMax: getDurationEnv("HR_EVENTS_RECONNECT_MAX", 30*time.Second),
			ServiceToken: getEnv("HR_EVENTS_TOKEN", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that would otherwise fail at request time.
func (c *Config) Validate() error {
	if c.Cache.ShortTTL <= 0 || c.Cache.MediumTTL <= 0 || c.Cache.LongTTL <= 0 {
		return errors.New("cache TTLs must be positive")
	}
	if c.Cache.ShortTTL > c.Cache.MediumTTL || c.Cache.MediumTTL > c.Cache.LongTTL {
		return fmt.Errorf("cache TTLs must be ordered short <= medium <= long, got %s/%s/%s",
			c.Cache.ShortTTL, c.Cache.MediumTTL, c.Cache.LongTTL)
	}
	if !strings.HasPrefix(c.Upstream.BaseURL, "http://") && !strings.HasPrefix(c.Upstream.BaseURL, "https://") {
		return fmt.Errorf("HR_API_BASE_URL must be an http(s) URL, got %q", c.Upstream.BaseURL)
	}
	if c.Upstream.RetryMax < 0 {
		return errors.New("HR_API_RETRY_MAX must not be negative")
	}
	if c.Events.Enabled && c.Events.URL == "" {
		return errors.New("HR_EVENTS_URL is required when HR_EVENTS_ENABLED is set")
	}
	if c.Events.ReconnectMin <= 0 || c.Events.ReconnectMax < c.Events.ReconnectMin {
		return errors.New("event reconnect backoff must satisfy 0 < min <= max")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// getListEnv splits a comma separated value, dropping empty items.
func getListEnv(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
