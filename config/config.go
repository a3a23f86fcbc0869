package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
	Cache     CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ProvidersConfig holds product database provider configuration.
// Providers are queried in fixed order: Open Food Facts, UPCitemdb,
// Barcode Lookup. LookupTimeout is the per-provider budget for one scan.
type ProvidersConfig struct {
	OpenFoodFactsBaseURL string        `mapstructure:"openfoodfacts_base_url"`
	UPCItemDBBaseURL     string        `mapstructure:"upcitemdb_base_url"`
	BarcodeLookupBaseURL string        `mapstructure:"barcodelookup_base_url"`
	BarcodeLookupAPIKey  string        `mapstructure:"barcodelookup_api_key"`
	LookupTimeout        time.Duration `mapstructure:"lookup_timeout"`
}

// CacheConfig holds enrichment cache configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/robridge/")

	v.SetEnvPrefix("ROBRIDGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Config file is optional; env vars and defaults cover everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8000")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Provider defaults
	v.SetDefault("providers.openfoodfacts_base_url", "https://world.openfoodfacts.org")
	v.SetDefault("providers.upcitemdb_base_url", "https://api.upcitemdb.com")
	v.SetDefault("providers.barcodelookup_base_url", "https://api.barcodelookup.com")
	v.SetDefault("providers.barcodelookup_api_key", "demo")
	v.SetDefault("providers.lookup_timeout", "5s")

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Providers.LookupTimeout <= 0 {
		return fmt.Errorf("provider lookup timeout must be positive, got: %s", config.Providers.LookupTimeout)
	}

	if config.Providers.OpenFoodFactsBaseURL == "" ||
		config.Providers.UPCItemDBBaseURL == "" ||
		config.Providers.BarcodeLookupBaseURL == "" {
		return fmt.Errorf("provider base URLs must not be empty")
	}

	if config.Cache.TTL <= 0 {
		return fmt.Errorf("cache TTL must be positive, got: %s", config.Cache.TTL)
	}

	return nil
}
