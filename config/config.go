package config

import (
	"errors"
	"fmt"
	"log"
	"moderation-bot/model"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DefaultDatabaseDriver = "sqlite3"
	DefaultDatabaseURL    = "data/moderation.db"
)

// Load loads the configuration from the environment, an optional .env file and
// an optional config file. Environment variables win over the config file.
func Load(path string) (*model.Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Info: .env file not found, relying on environment variables")
	}

	v := viper.New()
	v.SetDefault("database_driver", DefaultDatabaseDriver)
	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("disable_command_unregister", false)
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*model.Config, error) {
	token := v.GetString("bot_token")
	if token == "" {
		return nil, errors.New("BOT_TOKEN is not set")
	}

	logChannelID := v.GetString("log_channel_id")
	if logChannelID == "" {
		log.Println("Warning: LOG_CHANNEL_ID not set, channel logging will be disabled")
	}

	driver := strings.ToLower(v.GetString("database_driver"))
	switch driver {
	case "sqlite3", "postgres":
	default:
		return nil, fmt.Errorf("unsupported DATABASE_DRIVER %q", driver)
	}

	cfg := &model.Config{
		BotToken:                 token,
		AppID:                    v.GetString("app_id"),
		LogChannelID:             logChannelID,
		GuildIDs:                 splitList(v.GetString("guild_ids")),
		DisableCommandUnregister: v.GetBool("disable_command_unregister"),
		Database: model.DatabaseConfig{
			Driver: driver,
			URL:    v.GetString("database_url"),
		},
		MetricsAddr: v.GetString("metrics_addr"),
	}
	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
