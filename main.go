package main

import (
	"fmt"
	"log"
	"os"

	"moderation-bot/bot"
	"moderation-bot/config"
	"moderation-bot/handlers"
	"moderation-bot/utils/database/infractions"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "moderation-bot",
		Usage: "Discord bulk moderation bot",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "optional config file (yaml, json or toml); environment variables take precedence",
				EnvVars: []string{"CONFIG_FILE"},
			},
		},
		Action: runBot,
	}
	app.Commands = []*cli.Command{
		{
			Name:   "run",
			Usage:  "connect to Discord and serve commands until interrupted",
			Action: runBot,
		},
		{
			Name:   "migrate",
			Usage:  "create the database schema and exit",
			Action: runMigrate,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func runBot(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	store, err := infractions.Init(cctx.Context, cfg.Database)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer store.Close()

	b, err := bot.New(cfg, store)
	if err != nil {
		return fmt.Errorf("error creating bot: %w", err)
	}
	handlers.Register(b)
	defer b.Close()

	return b.Run()
}

func runMigrate(cctx *cli.Context) error {
	cfg, err := config.Load(cctx.String("config"))
	if err != nil {
		return err
	}

	store, err := infractions.Init(cctx.Context, cfg.Database)
	if err != nil {
		return fmt.Errorf("error initializing database: %w", err)
	}
	defer store.Close()

	log.Printf("[Database] Schema is up to date (%s).", cfg.Database.Driver)
	return nil
}
