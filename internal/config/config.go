package config

import "github.com/spf13/viper"

// Config holds all application configuration, read from app.env or the
// environment. Environment variables take precedence over the file.
type Config struct {
	ServerAddress         string `mapstructure:"SERVER_ADDRESS"`
	DBSource              string `mapstructure:"DB_SOURCE"`
	GooglePlacesAPIKey    string `mapstructure:"GOOGLE_PLACES_API_KEY"`
	GoogleAPIBaseURL      string `mapstructure:"GOOGLE_API_BASE_URL"`
	StationSearchRadius   int    `mapstructure:"STATION_SEARCH_RADIUS"`
	WalkingCeilingMinutes int    `mapstructure:"WALKING_CEILING_MINUTES"`
}

// LoadConfig reads configuration from the given directory.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GOOGLE_API_BASE_URL", "https://maps.googleapis.com")
	viper.SetDefault("STATION_SEARCH_RADIUS", 1500)
	viper.SetDefault("WALKING_CEILING_MINUTES", 20)

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
