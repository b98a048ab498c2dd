package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	// Server
	Port int    `mapstructure:"PORT"`
	Env  string `mapstructure:"APP_ENV"` // development | production

	// Persistence — the two flat CSV tables
	DataDir    string `mapstructure:"DATA_DIR"`
	StockFile  string `mapstructure:"STOCK_FILE"`
	VentesFile string `mapstructure:"VENTES_FILE"`

	// Business
	Currency string `mapstructure:"CURRENCY"`

	// Rate limiting
	RateLimitPerMin int `mapstructure:"RATE_LIMIT_PER_MIN"`
}

// Load reads configuration from environment variables (and an optional .env
// file). File names are resolved relative to DATA_DIR unless absolute.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Sensible defaults for development
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("DATA_DIR", "data")
	viper.SetDefault("STOCK_FILE", "stock.csv")
	viper.SetDefault("VENTES_FILE", "ventes.csv")
	viper.SetDefault("CURRENCY", "Fbu")
	viper.SetDefault("RATE_LIMIT_PER_MIN", 1000)

	// Optional .env file for local development — does not fail if missing
	_ = viper.ReadInConfig()

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cfg.StockFile) {
		cfg.StockFile = filepath.Join(cfg.DataDir, cfg.StockFile)
	}
	if !filepath.IsAbs(cfg.VentesFile) {
		cfg.VentesFile = filepath.Join(cfg.DataDir, cfg.VentesFile)
	}
	return cfg, nil
}
