// Package config loads the configuration of the backend from the
// environment.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ecoechos/backend/pkg/store"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var ErrInvalidConfig = errors.New("configuration validation failed")

type Config struct {
	// HTTP server
	GinMode       string
	APIURL        string
	Port          int
	EnableCleanup bool

	// Database
	DBBackend  string
	SQLitePath string

	// MongoDB. MongoURI takes precedence over the components.
	MongoURI           string
	MongoUser          string
	MongoPassword      string
	MongoHost          string
	MongoAppName       string
	MongoAuthSource    string
	MongoAuthMechanism string
	MongoDatabase      string

	// Authentication
	JWTSecret          string
	TokenTTL           time.Duration
	LoginRatePerMinute int

	// Ranking cache. Without RedisAddr, rankings are cached in memory.
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	RankingCacheTTL time.Duration
}

// Load reads the configuration from the environment. A .env file in the
// working directory is loaded first if it exists, without overriding
// variables that are already set.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded environment from .env")
	}

	return &Config{
		GinMode:       getEnv("GIN_MODE", gin.ReleaseMode),
		APIURL:        os.Getenv("API_URL"),
		Port:          getEnvInt("PORT", 8080),
		EnableCleanup: getEnvBool("ENABLE_CLEANUP", false),

		DBBackend:  strings.ToLower(getEnv("DB_BACKEND", store.BackendSQLite)),
		SQLitePath: getEnv("SQLITE_PATH", "data/ecoechos.db"),

		MongoURI:           strings.TrimSpace(os.Getenv("MONGODB_URI")),
		MongoUser:          strings.TrimSpace(os.Getenv("MONGODB_USER")),
		MongoPassword:      strings.TrimSpace(os.Getenv("MONGODB_PASSWORD")),
		MongoHost:          strings.TrimSpace(os.Getenv("MONGODB_HOST")),
		MongoAppName:       getEnv("MONGODB_APPNAME", "EcoEchos"),
		MongoAuthSource:    getEnv("MONGODB_AUTH_SOURCE", "admin"),
		MongoAuthMechanism: os.Getenv("MONGODB_AUTH_MECHANISM"),
		MongoDatabase:      getEnv("MONGODB_DATABASE", "ecoechos"),

		JWTSecret:          os.Getenv("JWT_SECRET"),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 24*time.Hour),
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 10),

		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPassword:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		RankingCacheTTL: getEnvDuration("RANKING_CACHE_TTL", time.Minute),
	}
}

// Validate checks the configuration and reports all problems at once.
func (c *Config) Validate() error {
	var problems []error

	if c.APIURL == "" {
		problems = append(problems, errors.New("API_URL must be set"))
	} else if _, err := c.URL(); err != nil {
		problems = append(problems, fmt.Errorf("API_URL '%s' is not a valid URL: %w", c.APIURL, err))
	}

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port))
	}

	switch c.DBBackend {
	case store.BackendSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errors.New("SQLITE_PATH must not be empty when using the sqlite backend"))
		}
	case store.BackendMongo:
		if c.MongoURI == "" && (c.MongoUser == "" || c.MongoPassword == "" || c.MongoHost == "") {
			problems = append(problems, errors.New("MONGODB_URI or all of MONGODB_USER, MONGODB_PASSWORD and MONGODB_HOST must be set when using the mongo backend"))
		}
	default:
		problems = append(problems, fmt.Errorf("%w '%s': must be one of %s, %s", store.ErrUnknownBackend, c.DBBackend, store.BackendSQLite, store.BackendMongo))
	}

	if c.JWTSecret == "" && c.GinMode != gin.DebugMode && c.GinMode != gin.TestMode {
		problems = append(problems, errors.New("JWT_SECRET must be set outside of debug mode"))
	}

	if c.TokenTTL < time.Minute {
		problems = append(problems, fmt.Errorf("invalid token TTL %v: must be at least one minute", c.TokenTTL))
	}

	if c.LoginRatePerMinute < 1 {
		problems = append(problems, fmt.Errorf("invalid login rate %d: must be at least 1", c.LoginRatePerMinute))
	}

	if c.RankingCacheTTL <= 0 {
		problems = append(problems, fmt.Errorf("invalid ranking cache TTL %v: must be positive", c.RankingCacheTTL))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
	}

	return nil
}

// URL returns the parsed API_URL.
func (c *Config) URL() (*url.URL, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, err
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, errors.New("scheme and host are required")
	}

	return u, nil
}

// MongoConnectionURI returns MONGODB_URI if it is set. Otherwise, it
// builds an SRV URI from the components.
func (c *Config) MongoConnectionURI() string {
	if c.MongoURI != "" {
		return c.MongoURI
	}

	query := url.Values{}
	query.Set("retryWrites", "true")
	query.Set("w", "majority")
	query.Set("appName", c.MongoAppName)
	query.Set("authSource", c.MongoAuthSource)
	if c.MongoAuthMechanism != "" {
		query.Set("authMechanism", c.MongoAuthMechanism)
	}

	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.MongoUser, c.MongoPassword),
		Host:     c.MongoHost,
		Path:     "/",
		RawQuery: query.Encode(),
	}

	return u.String()
}

// MongoInfo describes the MongoDB connection without credentials.
type MongoInfo struct {
	Mode     string `json:"mode" example:"components" enums:"uri,components"`
	Host     string `json:"host" example:"cluster0.example.mongodb.net"`
	Database string `json:"database" example:"ecoechos"`
}

func (c *Config) MongoInfo() MongoInfo {
	info := MongoInfo{
		Mode:     "components",
		Host:     c.MongoHost,
		Database: c.MongoDatabase,
	}

	if c.MongoURI != "" {
		info.Mode = "uri"
		if u, err := url.Parse(c.MongoURI); err == nil {
			info.Host = u.Host
		}
	}

	return info
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
		log.Warn().Str("variable", key).Str("value", value).Msg("not a number, using the default")
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
		}
		log.Warn().Str("variable", key).Str("value", value).Msg("not a boolean, using the default")
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
		log.Warn().Str("variable", key).Str("value", value).Msg("not a duration, using the default")
	}
	return defaultValue
}
