package config

import (
	"fmt"

	"github.com/spf13/viper"

	"placebot/internal/models"
)

// Geocoder provider names accepted in GEOCODER_PROVIDER.
const (
	ProviderPostgres  = "postgres"
	ProviderNominatim = "nominatim"
)

// Config holds every runtime setting of the api, bot and importer binaries.
// Values are read from configs/app.env and may be overridden by environment
// variables of the same name.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	DBSource      string `mapstructure:"DB_SOURCE"`

	GeocoderProvider string `mapstructure:"GEOCODER_PROVIDER"`
	NominatimBaseURL string `mapstructure:"NOMINATIM_BASE_URL"`

	BotToken      string `mapstructure:"BOT_TOKEN"`
	BotChannel    string `mapstructure:"BOT_CHANNEL"`
	DefaultLocale string `mapstructure:"DEFAULT_LOCALE"`
	LocaleDir     string `mapstructure:"LOCALE_DIR"`

	UseNativeControl bool   `mapstructure:"USE_NATIVE_CONTROL"`
	ReverseGeocode   bool   `mapstructure:"REVERSE_GEOCODE"`
	RequiredFields   string `mapstructure:"REQUIRED_FIELDS"`
}

// LoadConfig reads configuration from the given directory.
func LoadConfig(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GEOCODER_PROVIDER", ProviderPostgres)
	viper.SetDefault("NOMINATIM_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("BOT_CHANNEL", "telegram")
	viper.SetDefault("DEFAULT_LOCALE", "en")
	viper.SetDefault("LOCALE_DIR", "./configs/locales")
	viper.SetDefault("USE_NATIVE_CONTROL", true)
	viper.SetDefault("REVERSE_GEOCODE", true)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// A missing file is fine, env vars and defaults still apply.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("config: failed to unmarshal config: %w", err)
	}

	switch config.GeocoderProvider {
	case ProviderPostgres, ProviderNominatim:
	default:
		return Config{}, fmt.Errorf("config: unknown geocoder provider %q", config.GeocoderProvider)
	}

	return config, nil
}

// RequiredFieldMask parses the REQUIRED_FIELDS setting into a field mask.
func (c Config) RequiredFieldMask() (models.Field, error) {
	if c.RequiredFields == "" {
		return models.FieldNone, nil
	}
	return models.ParseFields(c.RequiredFields)
}
