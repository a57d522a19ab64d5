// internal/config/config.go
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Config struct {
	API struct {
		BaseURL string `mapstructure:"base_url"`
		// TimeoutSeconds of 0 keeps the original behaviour: no client-side
		// timeout, a hung backend call hangs until the transport gives up.
		TimeoutSeconds int `mapstructure:"timeout_seconds"`
	} `mapstructure:"api"`
	Auth struct {
		TokenFile string `mapstructure:"token_file"`
	} `mapstructure:"auth"`
	History struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	} `mapstructure:"history"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("MEDADMIN")
	viper.AutomaticEnv()
	viper.BindEnv("api.base_url", "MEDADMIN_API_BASE_URL")
	viper.BindEnv("auth.token_file", "MEDADMIN_TOKEN_FILE")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using default settings or environment variables if available.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	if Cfg.API.BaseURL == "" {
		log.Println("Warning: API base URL is not set (MEDADMIN_API_BASE_URL or api.base_url).")
	}
	if Cfg.Auth.TokenFile == "" {
		Cfg.Auth.TokenFile = defaultStatePath("admin_token")
	}
	if Cfg.History.Path == "" {
		Cfg.History.Path = defaultStatePath("history.db")
	}
	if !viper.IsSet("history.enabled") {
		Cfg.History.Enabled = true
	}
	if Cfg.Log.Level == "" {
		Cfg.Log.Level = "info"
	}

	log.Println("Config loaded successfully")
	return nil
}

// defaultStatePath places client-side state under the user config dir,
// falling back to the working directory when it cannot be resolved.
func defaultStatePath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "medadmin", name)
}
