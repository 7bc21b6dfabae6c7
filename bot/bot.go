package bot

import (
	"context"
	"fmt"
	"log"
	"moderation-bot/commands"
	"moderation-bot/model"
	"moderation-bot/moderation"
	"moderation-bot/utils"
	"moderation-bot/utils/database/infractions"
	"net/http"
	"sync/atomic"

	"github.com/bwmarrin/discordgo"
)

type Bot struct {
	Session            *discordgo.Session
	RegisteredCommands []*discordgo.ApplicationCommand
	config             atomic.Value // *model.Config
	CommandHandlers    map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate)
	Store              *infractions.Store
	Service            *moderation.Service
	Logger             *utils.ChannelLogger
	scheduler          *Scheduler
	metricsServer      *http.Server
}

func (b *Bot) GetConfig() *model.Config {
	return b.config.Load().(*model.Config)
}

func (b *Bot) GetSession() *discordgo.Session {
	return b.Session
}

func New(cfg *model.Config, store *infractions.Store) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	// Role positions come from REST on every invocation, so only guild events are needed.
	dg.Identify.Intents = discordgo.IntentsGuilds

	logger := &utils.ChannelLogger{Session: dg, ChannelID: cfg.LogChannelID}
	b := &Bot{
		Session: dg,
		Store:   store,
		Service: moderation.NewService(moderation.NewDiscordPlatform(dg), store, logger),
		Logger:  logger,
	}
	b.scheduler = NewScheduler(store, statsInterval)
	b.config.Store(cfg)
	return b, nil
}

func (b *Bot) Close() {
	log.Println("[System] Gracefully shutting down.")
	if b.scheduler != nil {
		b.scheduler.Stop()
	}
	if b.metricsServer != nil {
		if err := b.metricsServer.Shutdown(context.Background()); err != nil {
			log.Printf("[System] Failed to stop metrics server: %v", err)
		}
	}
	if err := b.Session.Close(); err != nil {
		log.Printf("[System] Failed to close session: %v", err)
	}
}

// RefreshCommands overwrites the bot's commands in guildID, or globally when
// guildID is empty.
func (b *Bot) RefreshCommands(guildID string) {
	cmds := commands.GenerateCommands()
	scope := guildID
	if scope == "" {
		scope = "global"
	}
	log.Printf("[Commands] Registering %d commands for %s...", len(cmds), scope)
	registeredCmds, err := b.Session.ApplicationCommandBulkOverwrite(b.appID(), guildID, cmds)
	if err != nil {
		log.Printf("[Commands] Cannot update commands for %s: %v", scope, err)
		return
	}
	b.RegisteredCommands = append(b.RegisteredCommands, registeredCmds...)
}

// UnregisterCommands removes every command this bot registered in guildID.
func (b *Bot) UnregisterCommands(guildID string) {
	registered, err := b.Session.ApplicationCommands(b.appID(), guildID)
	if err != nil {
		log.Printf("[Commands] Could not fetch registered commands for guild %s: %v", guildID, err)
		return
	}
	for _, v := range registered {
		if err := b.Session.ApplicationCommandDelete(b.appID(), guildID, v.ID); err != nil {
			log.Printf("[Commands] Cannot delete '%v' command in guild %s: %v", v.Name, guildID, err)
		}
	}
}

func (b *Bot) appID() string {
	if id := b.GetConfig().AppID; id != "" {
		return id
	}
	return b.Session.State.User.ID
}
