package model

// Config 存储应用程序的配置
type Config struct {
	BotToken                 string
	AppID                    string
	LogChannelID             string
	GuildIDs                 []string
	DisableCommandUnregister bool
	Database                 DatabaseConfig
	MetricsAddr              string
}

// DatabaseConfig selects the sqlx driver and its data source.
type DatabaseConfig struct {
	Driver string // "sqlite3" or "postgres"
	URL    string
}
