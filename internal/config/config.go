package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config конфигурация сервиса
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Database DatabaseConfig `toml:"database"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Catalog  CatalogConfig  `toml:"catalog"`
	Booking  BookingConfig  `toml:"booking"`
	Broker   BrokerConfig   `toml:"broker"`
	Admin    AdminConfig    `toml:"admin"`
	CORS     CORSConfig     `toml:"cors"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

type LogsConfig struct {
	File       string `toml:"file"`
	Level      string `toml:"level"`
	FluentHost string `toml:"fluent_host"` // пусто - Fluent Bit выключен
	FluentPort int    `toml:"fluent_port"`
	FluentTag  string `toml:"fluent_tag"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// CatalogConfig источник и пагинация каталога яхт
type CatalogConfig struct {
	Source       string `toml:"source"`  // "postgres" или "dataset"
	Dataset      string `toml:"dataset"` // путь к YAML/JSON файлу, если source = "dataset"
	ItemsPerPage int    `toml:"items_per_page"`
	MaxPerPage   int    `toml:"max_per_page"`
}

type BookingConfig struct {
	AdvanceDays    int `toml:"advance_days"`     // 0 - без ограничения
	MinNoticeHours int `toml:"min_notice_hours"` // минимальное время до начала чартера
}

type BrokerConfig struct {
	Enabled  bool   `toml:"enabled"`
	URL      string `toml:"url"`
	Exchange string `toml:"exchange"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type CORSConfig struct {
	AllowedOrigins []string `toml:"allowed_origins"`
}

const (
	SourcePostgres = "postgres"
	SourceDataset  = "dataset"
)

// Load читает TOML конфигурацию, затем переопределяет секреты из окружения
// Если рядом лежит .env, он загружается до чтения переменных
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := &Config{}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyEnv()
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() {
	if v, ok := os.LookupEnv("DB_PASSWORD"); ok {
		c.Database.Password = v
	}
	if v, ok := os.LookupEnv("DB_HOST"); ok {
		c.Database.Host = v
	}
	if v, ok := os.LookupEnv("DB_PORT"); ok {
		if port, err := strconv.Atoi(v); err == nil {
			c.Database.Port = port
		}
	}
	if v, ok := os.LookupEnv("ADMIN_TOKEN"); ok {
		c.Admin.Token = v
	}
	if v, ok := os.LookupEnv("BROKER_URL"); ok {
		c.Broker.URL = v
	}
	if v, ok := os.LookupEnv("LOG_LEVEL"); ok {
		c.Logs.Level = v
	}
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 20
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Logs.FluentPort == 0 {
		c.Logs.FluentPort = 24224
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "charter_service"
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = SourcePostgres
	}
	if c.Catalog.ItemsPerPage == 0 {
		c.Catalog.ItemsPerPage = 12
	}
	if c.Catalog.MaxPerPage == 0 {
		c.Catalog.MaxPerPage = 60
	}
	if c.Booking.AdvanceDays == 0 {
		c.Booking.AdvanceDays = 365
	}
	if c.Broker.Exchange == "" {
		c.Broker.Exchange = "charter.events"
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("config: invalid http_port %d", c.Server.HTTPPort)
	}
	switch c.Catalog.Source {
	case SourcePostgres:
	case SourceDataset:
		if c.Catalog.Dataset == "" {
			return errors.New("config: catalog.dataset is required when catalog.source = \"dataset\"")
		}
	default:
		return fmt.Errorf("config: unknown catalog.source %q", c.Catalog.Source)
	}
	if c.Catalog.ItemsPerPage <= 0 || c.Catalog.ItemsPerPage > c.Catalog.MaxPerPage {
		return fmt.Errorf("config: catalog.items_per_page must be in 1..%d", c.Catalog.MaxPerPage)
	}
	if c.Booking.AdvanceDays < 0 || c.Booking.MinNoticeHours < 0 {
		return errors.New("config: booking limits must not be negative")
	}
	if c.Broker.Enabled && c.Broker.URL == "" {
		return errors.New("config: broker.url is required when broker is enabled")
	}
	return nil
}
