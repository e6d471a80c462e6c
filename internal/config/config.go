package config

import (
	"fmt"
	"time"

	cleanenvport "github.com/wb-go/wbf/config/cleanenv-port"
	"github.com/wb-go/wbf/logger"
)

type Config struct {
	Logger    LoggerConfig    `yaml:"logger"    validate:"required"`
	Telegram  TelegramConfig  `yaml:"telegram"  validate:"required"`
	API       APIConfig       `yaml:"api"       validate:"required"`
	Bot       BotConfig       `yaml:"bot"       validate:"required"`
	Cache     CacheConfig     `yaml:"cache"     validate:"required"`
	Session   SessionConfig   `yaml:"session"`
	Scheduler SchedulerConfig `yaml:"scheduler" validate:"required"`
	NATS      NATSConfig      `yaml:"nats"`
	Web       WebConfig       `yaml:"web"       validate:"required"`
	Gin       GinConfig       `yaml:"gin"       validate:"required"`
	Storage   StorageConfig   `yaml:"storage"   validate:"required"`
	Postgres  PostgresConfig  `yaml:"postgres"`
}

type LoggerConfig struct {
	Engine string `yaml:"engine" env:"LOG_ENGINE" env-default:"slog"  validate:"required,oneof=slog zap zerolog logrus"`
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"  validate:"required,oneof=debug info warn error"`
}

// LogLevel преобразует строковый уровень в logger.Level из wbf.
func (c LoggerConfig) LogLevel() logger.Level {
	switch c.Level {
	case "debug":
		return logger.DebugLevel
	case "warn":
		return logger.WarnLevel
	case "error":
		return logger.ErrorLevel
	default:
		return logger.InfoLevel
	}
}

// LogEngine преобразует строковый движок в logger.Engine из wbf.
func (c LoggerConfig) LogEngine() logger.Engine {
	return logger.Engine(c.Engine)
}

type TelegramConfig struct {
	BotToken        string  `yaml:"bot_token"        env:"TELEGRAM_BOT_TOKEN"        validate:"required"`
	NotifyChatID    int64   `yaml:"notify_chat_id"   env:"TELEGRAM_NOTIFY_CHAT_ID"   env-default:"0"`
	NotifyCustomers bool    `yaml:"notify_customers" env:"TELEGRAM_NOTIFY_CUSTOMERS" env-default:"true"`
	RatePerSecond   float64 `yaml:"rate_per_second"  env:"TELEGRAM_RATE_PER_SECOND"  env-default:"25"  validate:"gt=0"`
}

type APIConfig struct {
	BaseURL string        `yaml:"base_url" env:"API_BASE_URL" env-default:"http://localhost:8000/api" validate:"required,url"`
	Timeout time.Duration `yaml:"timeout"  env:"API_TIMEOUT"  env-default:"30s"                       validate:"gt=0"`
}

type BotConfig struct {
	PageSize     int    `yaml:"page_size"     env:"PAGE_SIZE"        env-default:"5"              validate:"min=1,max=20"`
	CatalogLimit int    `yaml:"catalog_limit" env:"CATALOG_LIMIT"    env-default:"100"            validate:"min=1"`
	Workers      int    `yaml:"workers"       env:"BOT_WORKERS"      env-default:"4"              validate:"min=1"`
	PollTimeout  int    `yaml:"poll_timeout"  env:"BOT_POLL_TIMEOUT" env-default:"30"             validate:"min=0"`
	Timezone     string `yaml:"timezone"      env:"DISPLAY_TIMEZONE" env-default:"Europe/Moscow" validate:"required"`
}

type CacheConfig struct {
	DefaultTTL time.Duration `yaml:"default_ttl" env:"CACHE_DEFAULT_TTL" env-default:"300s" validate:"gt=0"`
	ListingTTL time.Duration `yaml:"listing_ttl" env:"LISTING_CACHE_TTL" env-default:"60s"  validate:"gt=0"`
}

// SessionConfig.IdleTTL of zero keeps booking flows open until they complete
// or the user cancels them.
type SessionConfig struct {
	IdleTTL time.Duration `yaml:"idle_ttl" env:"SESSION_IDLE_TTL" env-default:"0s" validate:"min=0"`
}

type SchedulerConfig struct {
	Interval time.Duration `yaml:"interval" env:"SCHEDULER_INTERVAL" env-default:"1m" validate:"required,gt=0"`
}

type NATSConfig struct {
	URL           string `yaml:"url"            env:"NATS_URL"            env-default:""`
	SubjectPrefix string `yaml:"subject_prefix" env:"NATS_SUBJECT_PREFIX" env-default:"land_booker.bookings"`
}

type WebConfig struct {
	Enabled      bool          `yaml:"enabled"       env:"WEB_ENABLED"       env-default:"true"`
	Addr         string        `yaml:"addr"          env:"SERVER_ADDR"          env-default:":8080" validate:"required"`
	ReadTimeout  time.Duration `yaml:"read_timeout"  env:"SERVER_READ_TIMEOUT"  env-default:"10s"   validate:"gt=0"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT" env-default:"10s"   validate:"gt=0"`
	IdleTimeout  time.Duration `yaml:"idle_timeout"  env:"SERVER_IDLE_TIMEOUT"  env-default:"60s"   validate:"gt=0"`
}

type GinConfig struct {
	Mode string `yaml:"mode" env:"GIN_MODE" env-default:"debug" validate:"required,oneof=debug release test"`
}

type StorageConfig struct {
	Driver string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"json"         validate:"required,oneof=json postgres"`
	Dir    string `yaml:"dir"    env:"STORAGE_DIR"    env-default:"data_storage" validate:"required"`
}

type PostgresConfig struct {
	Host            string        `yaml:"host"              env:"DB_HOST"              env-default:"localhost"  validate:"required"`
	Port            int           `yaml:"port"              env:"DB_PORT"              env-default:"5432"       validate:"required,min=1,max=65535"`
	User            string        `yaml:"user"              env:"DB_USER"              env-default:"postgres"   validate:"required"`
	Password        string        `yaml:"password"          env:"DB_PASSWORD"          env-default:"postgres"   validate:"required"`
	Database        string        `yaml:"database"          env:"DB_NAME"              env-default:"landbooker" validate:"required"`
	SSLMode         string        `yaml:"sslmode"           env:"DB_SSLMODE"           env-default:"disable"    validate:"required,oneof=disable require verify-ca verify-full"`
	MaxOpenConns    int           `yaml:"max_open_conns"    env:"DB_MAX_OPEN_CONNS"    env-default:"10"         validate:"min=1"`
	MaxIdleConns    int           `yaml:"max_idle_conns"    env:"DB_MAX_IDLE_CONNS"    env-default:"5"          validate:"min=1"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME" env-default:"5m"         validate:"gt=0"`
}

func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

// MustLoad panics when the configuration is invalid, including a missing bot token.
func MustLoad() *Config {
	var cfg Config
	if err := cleanenvport.Load(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	if cfg.Telegram.BotToken == "" {
		panic("failed to load config: TELEGRAM_BOT_TOKEN is required")
	}
	return &cfg
}
