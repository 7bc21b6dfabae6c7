package bot

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run connects to Discord, registers the commands and blocks until SIGINT or
// SIGTERM.
func (b *Bot) Run() error {
	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("failed to open connection: %w", err)
	}

	cfg := b.GetConfig()
	if cfg.LogChannelID == "" {
		log.Println("[System] LOG_CHANNEL_ID is not set, channel logging is disabled.")
	}

	if !cfg.DisableCommandUnregister {
		log.Println("[Commands] Unregistering previous commands...")
		for _, guildID := range cfg.GuildIDs {
			b.UnregisterCommands(guildID)
		}
	}

	b.RegisteredCommands = make([]*discordgo.ApplicationCommand, 0)
	if len(cfg.GuildIDs) == 0 {
		b.RefreshCommands("")
	}
	for _, guildID := range cfg.GuildIDs {
		b.RefreshCommands(guildID)
	}

	if cfg.MetricsAddr != "" {
		b.startMetricsServer(cfg.MetricsAddr)
	}
	b.scheduler.Start()

	fmt.Println("Bot is now running. Press CTRL-C to exit.")
	b.Logger.Info("System", "Startup", "Bot has started successfully.")
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc
	return nil
}

func (b *Bot) startMetricsServer(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	b.metricsServer = &http.Server{Addr: addr, Handler: mux}
	go func() {
		log.Printf("[Metrics] Serving metrics on %s/metrics", addr)
		if err := b.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("[Metrics] Metrics server failed: %v", err)
		}
	}()
}
