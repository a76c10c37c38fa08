package config

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	once     sync.Once
	instance *Config
)

const envFile = "./configs/.env"

type PostgresConfig struct {
	Address  string `env:"DB_ADDRESS" envDefault:"localhost:5432"`
	User     string `env:"USER"`
	Password string `env:"PASSWORD"`
	DB       string `env:"DB" envDefault:"adhyaya"`
	MaxConns int32  `env:"MAX_CONNS" envDefault:"10"`
}

type Config struct {
	APIAddress    string `env:"API_ADDRESS" envDefault:":8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"1h"`

	// Day boundaries of streaks and rollovers
	Timezone        string        `env:"LEDGER_TIMEZONE" envDefault:"UTC"`
	ArchiveInterval time.Duration `env:"ARCHIVE_INTERVAL" envDefault:"1h"`

	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"5"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"30"`

	MetricsUser     string `env:"METRICS_USER"`
	MetricsPassword string `env:"METRICS_PASSWORD"`

	Postgres PostgresConfig `envPrefix:"POSTGRES_"`
}

// New loads the process config once. Exits on invalid configuration.
func New() *Config {
	once.Do(func() {
		cfg, err := Load(envFile)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads envs from path (when it exists) on top of the process
// environment and parses them into Config.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, errors.New("loading envs error: " + err.Error())
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.New("parsing envs error: " + err.Error())
	}
	if _, err := cfg.Location(); err != nil {
		return nil, errors.New("invalid LEDGER_TIMEZONE: " + err.Error())
	}
	return &cfg, nil
}

func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}
