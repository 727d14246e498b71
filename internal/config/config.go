package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Search   SearchConfig   `yaml:"search"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// RedisConfig holds settings for the optional shared Redis store.
// When Addr is empty the service keeps rate-limit and cache state
// in process memory, which is only correct for a single instance.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"REDIS_ADDR"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"REDIS_DB"       env-default:"0"`
}

// SearchConfig holds search and suggestion service settings.
type SearchConfig struct {
	MaxLimit             int           `yaml:"max_limit"              env:"SEARCH_MAX_LIMIT"              env-default:"50"`
	DefaultLimit         int           `yaml:"default_limit"          env:"SEARCH_DEFAULT_LIMIT"          env-default:"20"`
	SuggestMaxLimit      int           `yaml:"suggest_max_limit"      env:"SEARCH_SUGGEST_MAX_LIMIT"      env-default:"10"`
	SuggestDefaultLimit  int           `yaml:"suggest_default_limit"  env:"SEARCH_SUGGEST_DEFAULT_LIMIT"  env-default:"5"`
	SuggestCacheTTL      time.Duration `yaml:"suggest_cache_ttl"      env:"SEARCH_SUGGEST_CACHE_TTL"      env-default:"60s"`
	SuggestRatePerMinute int           `yaml:"suggest_rate_per_minute" env:"SEARCH_SUGGEST_RATE_PER_MINUTE" env-default:"30"`
	QueryMinLength       int           `yaml:"query_min_length"       env:"SEARCH_QUERY_MIN_LENGTH"       env-default:"2"`
	QueryMaxLength       int           `yaml:"query_max_length"       env:"SEARCH_QUERY_MAX_LENGTH"       env-default:"100"`
	FanoutTimeout        time.Duration `yaml:"fanout_timeout"         env:"SEARCH_FANOUT_TIMEOUT"         env-default:"3s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// UseRedis reports whether a shared Redis store is configured.
func (c RedisConfig) UseRedis() bool {
	return c.Addr != ""
}
