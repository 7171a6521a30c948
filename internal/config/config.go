package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	// Server-side settings
	DatabaseDSN  string `env:"DATABASE_URI"`
	ResourcesDir string `env:"RESOURCES_DIR"`

	// Shared settings
	BaseURL     string `env:"BASE_URL"`
	EnableHTTPS bool   `env:"ENABLE_HTTPS"`

	// Client-side settings
	ServerURL     string `env:"-"`
	OutputDir     string `env:"OUTPUT_DIR"`
	StrictPadding bool   `env:"STRICT_PADDING"`
	Verbose       bool   `env:"VERBOSE"`
	Version       bool   `env:"-"` // show client version and exit (flag only)
}

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// флаги переопределяют значения из env
	// Server flags
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "строка подключения к БД каталога (postgres DSN или путь к SQLite)")
	flag.StringVar(&cfg.ResourcesDir, "resources", cfg.ResourcesDir, "каталог с файлами для раздачи")
	// Shared/client flags
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the viewer server (host:port)")
	flag.BoolVar(&cfg.EnableHTTPS, "https", cfg.EnableHTTPS, "enable HTTPS (client: prefer https scheme for BaseURL)")
	// Client flags
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "directory for downloaded files (client)")
	flag.BoolVar(&cfg.StrictPadding, "strict-padding", cfg.StrictPadding, "verify every PKCS#7 padding byte (client)")
	flag.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging (client)")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show client version and exit")

	flag.Parse()

	cfg.fillDefaults()
	return cfg
}

func (cfg *Config) fillDefaults() {
	// validate BaseURL: must be in "address:port" (no scheme, no path). Otherwise use default.
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = "localhost:8081"
	}

	if cfg.EnableHTTPS {
		cfg.ServerURL = "https://" + cfg.BaseURL
	} else {
		cfg.ServerURL = "http://" + cfg.BaseURL
	}

	if cfg.ResourcesDir == "" {
		cfg.ResourcesDir = filepath.Join("static", "resources")
	}
	if cfg.OutputDir == "" {
		if wd, err := os.Getwd(); err == nil {
			cfg.OutputDir = wd
		} else {
			cfg.OutputDir = "."
		}
	}
}
