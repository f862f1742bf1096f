package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-SchedulingService/internal/csvimport"
)

// Config конфигурация сервиса
type Config struct {
	Server            ServerConfig            `toml:"server"`
	Database          DatabaseConfig          `toml:"database"`
	Logs              LogsConfig              `toml:"logs"`
	Metrics           MetricsConfig           `toml:"metrics"`
	SchedulingService SchedulingServiceConfig `toml:"scheduling_service"`
	Cache             CacheConfig             `toml:"cache"`
	Import            ImportConfig            `toml:"import"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
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

// DSN возвращает строку подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// SchedulingServiceConfig настройки клиента сервиса расписаний (timeout в секундах)
type SchedulingServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// CacheConfig настройки Redis кеша свободных слотов
type CacheConfig struct {
	Enabled    bool   `toml:"enabled"`
	Addr       string `toml:"addr"`
	Password   string `toml:"password"`
	DB         int    `toml:"db"`
	TTLSeconds int    `toml:"ttl_seconds"`
}

// ImportConfig настройки импорта услуг из таблиц
type ImportConfig struct {
	MaxFileSizeBytes int64 `toml:"max_file_size_bytes"`
	// Aliases дополнительные названия колонок: поле -> список заголовков
	Aliases map[string][]string `toml:"aliases"`
}

// FieldAliases возвращает таблицу алиасов: встроенная + из конфигурации
func (c ImportConfig) FieldAliases() (csvimport.Aliases, error) {
	return csvimport.DefaultAliases().With(c.Aliases)
}

const (
	defaultHTTPPort         = 8080
	defaultServerTimeout    = 15
	defaultShutdownTimeout  = 10
	defaultMaxOpenConns     = 25
	defaultMaxIdleConns     = 5
	defaultConnMaxLifetime  = 300
	defaultLogLevel         = "info"
	defaultMetricsPath      = "/metrics"
	defaultServiceName      = "scheduling_service"
	defaultClientTimeout    = 5
	defaultCacheTTLSeconds  = 60
	defaultMaxFileSizeBytes = 5 << 20
)

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = defaultHTTPPort
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = defaultServerTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = defaultServerTimeout
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 4 * defaultServerTimeout
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	if c.Database.SSLMode == "" {
		c.Database.SSLMode = "disable"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = defaultMaxOpenConns
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = defaultMaxIdleConns
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = defaultConnMaxLifetime
	}

	if c.Logs.Level == "" {
		c.Logs.Level = defaultLogLevel
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = defaultMetricsPath
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}

	if c.SchedulingService.Timeout == 0 {
		c.SchedulingService.Timeout = defaultClientTimeout
	}

	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = defaultCacheTTLSeconds
	}

	if c.Import.MaxFileSizeBytes == 0 {
		c.Import.MaxFileSizeBytes = defaultMaxFileSizeBytes
	}
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port out of range: %d", c.Server.HTTPPort)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("database.host and database.dbname are required")
	}
	if c.SchedulingService.URL == "" {
		return errors.New("scheduling_service.url is required")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return errors.New("cache.addr is required when cache is enabled")
	}
	if c.Import.MaxFileSizeBytes < 0 {
		return fmt.Errorf("import.max_file_size_bytes must be positive: %d", c.Import.MaxFileSizeBytes)
	}
	if _, err := c.Import.FieldAliases(); err != nil {
		return fmt.Errorf("import.aliases: %w", err)
	}
	return nil
}
