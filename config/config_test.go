package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("LOG_CHANNEL_ID", "42")
	t.Setenv("GUILD_IDS", "1, 2,,3")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("DATABASE_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "token", cfg.BotToken)
	assert.Equal(t, "42", cfg.LogChannelID)
	assert.Equal(t, []string{"1", "2", "3"}, cfg.GuildIDs)
	assert.Equal(t, DefaultDatabaseDriver, cfg.Database.Driver)
	assert.Equal(t, DefaultDatabaseURL, cfg.Database.URL)
}

func TestLoadRequiresToken(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOT_TOKEN", "")

	_, err := Load("")
	assert.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("BOT_TOKEN", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("METRICS_ADDR", "")

	path := filepath.Join(dir, "moderation.yaml")
	content := "bot_token: from-file\ndatabase_driver: postgres\ndatabase_url: postgres://localhost/mod\nmetrics_addr: :9100\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.BotToken)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/mod", cfg.Database.URL)
	assert.Equal(t, ":9100", cfg.MetricsAddr)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BOT_TOKEN", "token")
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Load("")
	assert.Error(t, err)
}
