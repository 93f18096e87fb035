package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv            string `mapstructure:"APP_ENV"`
	Port              string `mapstructure:"PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	SessionSecret     string `mapstructure:"SESSION_SECRET"`
	AdminUsername     string `mapstructure:"ADMIN_USERNAME"`
	AdminPassword     string `mapstructure:"ADMIN_PASSWORD"`
	AdminPasswordHash string `mapstructure:"ADMIN_PASSWORD_HASH"`
}

func LoadConfig() (config Config, err error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	viper.SetDefault("APP_ENV", "local")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DATABASE_URL", "sqlite://gamblecodez.db")
	viper.SetDefault("SESSION_SECRET", "")
	viper.SetDefault("ADMIN_USERNAME", "admin")
	viper.SetDefault("ADMIN_PASSWORD", "")
	viper.SetDefault("ADMIN_PASSWORD_HASH", "")

	viper.AutomaticEnv()

	err = viper.Unmarshal(&config)
	if err != nil {
		log.Printf("unable to decode into struct, %v", err)
		return
	}

	return
}
