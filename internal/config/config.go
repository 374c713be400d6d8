package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	DBPath       string `mapstructure:"FARMGUARD_DB"`
	GeminiAPIKey string `mapstructure:"GEMINI_API_KEY"`
	Language     string `mapstructure:"FARMGUARD_LANG"`
}

func LoadConfig() *Config {
	viper.AutomaticEnv()

	// Defaults also register the keys so AutomaticEnv can fill them.
	viper.SetDefault("FARMGUARD_DB", "data/farmguard.db")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("FARMGUARD_LANG", "en")

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		log.Fatalf("Unable to decode config into struct, %v", err)
	}

	return &config
}
