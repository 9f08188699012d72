package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-BikeService/internal/infra/storage/kv"
)

// Переменные окружения с секретами, перекрывают значения из файла
const (
	EnvResendAPIKey     = "RESEND_API_KEY"
	EnvDatabasePassword = "DATABASE_PASSWORD"
	EnvRedisPassword    = "REDIS_PASSWORD"
	EnvAMQPURL          = "AMQP_URL"
)

var (
	ErrReadConfig    = errors.New("config: failed to read config file")
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config конфигурация приложения
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Storage  StorageConfig  `toml:"storage"`
	Notifier NotifierConfig `toml:"notifier"`
	Events   EventsConfig   `toml:"events"`
	Catalog  CatalogConfig  `toml:"catalog"`
}

// ServerConfig параметры HTTP сервера, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int      `toml:"http_port"`
	ReadTimeout     int      `toml:"read_timeout"`
	WriteTimeout    int      `toml:"write_timeout"`
	IdleTimeout     int      `toml:"idle_timeout"`
	ShutdownTimeout int      `toml:"shutdown_timeout"`
	AllowedOrigins  []string `toml:"allowed_origins"`
}

// LogsConfig параметры логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только консоль
}

// MetricsConfig параметры Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// StorageConfig выбор и параметры KV хранилища
type StorageConfig struct {
	Driver   string         `toml:"driver"` // memory, redis или postgres
	Redis    RedisConfig    `toml:"redis"`
	Postgres PostgresConfig `toml:"postgres"`
}

// RedisConfig параметры подключения к Redis
type RedisConfig struct {
	Address  string `toml:"address"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// PostgresConfig параметры подключения к PostgreSQL
type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	Table           string `toml:"table"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения для lib/pq
func (c PostgresConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// NotifierConfig параметры отправки писем через Resend
type NotifierConfig struct {
	BaseURL       string  `toml:"base_url"`
	APIKey        string  `toml:"api_key"`
	From          string  `toml:"from"`
	Subject       string  `toml:"subject"`
	Timeout       int     `toml:"timeout"` // секунды
	RatePerSecond float64 `toml:"rate_per_second"`
	Burst         int     `toml:"burst"`
}

// EventsConfig параметры публикации событий в RabbitMQ
type EventsConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

// CatalogConfig путь к справочнику
type CatalogConfig struct {
	Path string `toml:"path"` // пусто или нет файла - встроенный справочник
}

// Load читает конфигурацию из TOML файла, применяет переменные окружения и значения по умолчанию
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvResendAPIKey); v != "" {
		c.Notifier.APIKey = v
	}
	if v := os.Getenv(EnvDatabasePassword); v != "" {
		c.Storage.Postgres.Password = v
	}
	if v := os.Getenv(EnvRedisPassword); v != "" {
		c.Storage.Redis.Password = v
	}
	if v := os.Getenv(EnvAMQPURL); v != "" {
		c.Events.URL = v
	}
}

func (c *Config) applyDefaults() {
	setDefault(&c.Server.HTTPPort, 8080)
	setDefault(&c.Server.ReadTimeout, 15)
	setDefault(&c.Server.WriteTimeout, 15)
	setDefault(&c.Server.IdleTimeout, 60)
	setDefault(&c.Server.ShutdownTimeout, 10)

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "bike-service"
	}

	c.Storage.Driver = strings.ToLower(strings.TrimSpace(c.Storage.Driver))
	if c.Storage.Driver == "" {
		c.Storage.Driver = kv.DriverMemory
	}
	if c.Storage.Redis.Address == "" {
		c.Storage.Redis.Address = "localhost:6379"
	}
	pg := &c.Storage.Postgres
	if pg.Host == "" {
		pg.Host = "localhost"
	}
	setDefault(&pg.Port, 5432)
	if pg.SSLMode == "" {
		pg.SSLMode = "disable"
	}
	if pg.Table == "" {
		pg.Table = "kv_store"
	}
	setDefault(&pg.MaxOpenConns, 25)
	setDefault(&pg.MaxIdleConns, 5)
	setDefault(&pg.ConnMaxLifetime, 300)

	setDefault(&c.Notifier.Timeout, 10)

	if c.Events.Exchange == "" {
		c.Events.Exchange = "bike_service"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d out of range", ErrInvalidConfig, c.Server.HTTPPort)
	}

	switch c.Logs.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: logs.level %q", ErrInvalidConfig, c.Logs.Level)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: metrics.path must start with /", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case kv.DriverMemory, kv.DriverRedis:
	case kv.DriverPostgres:
		if c.Storage.Postgres.User == "" || c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("%w: storage.postgres requires user and dbname", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: unknown storage.driver %q", ErrInvalidConfig, c.Storage.Driver)
	}

	if c.Notifier.RatePerSecond < 0 {
		return fmt.Errorf("%w: notifier.rate_per_second must not be negative", ErrInvalidConfig)
	}

	if c.Events.Enabled && c.Events.URL == "" {
		return fmt.Errorf("%w: events.url is required when events are enabled", ErrInvalidConfig)
	}
	return nil
}

// KVOptions параметры для kv.Open
func (c *Config) KVOptions() kv.Options {
	return kv.Options{
		Driver: c.Storage.Driver,
		Redis: kv.RedisOptions{
			Address:  c.Storage.Redis.Address,
			Password: c.Storage.Redis.Password,
			DB:       c.Storage.Redis.DB,
		},
		Postgres: kv.PostgresOptions{
			DSN:             c.Storage.Postgres.DSN(),
			Table:           c.Storage.Postgres.Table,
			MaxOpenConns:    c.Storage.Postgres.MaxOpenConns,
			MaxIdleConns:    c.Storage.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(c.Storage.Postgres.ConnMaxLifetime) * time.Second,
		},
	}
}

func setDefault(v *int, def int) {
	if *v == 0 {
		*v = def
	}
}
