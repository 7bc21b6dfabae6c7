package handlers

import (
	"log"
	"moderation-bot/bot"
	"moderation-bot/handlers/infractions"

	"github.com/bwmarrin/discordgo"
)

func Register(b *bot.Bot) {
	b.CommandHandlers = commandHandlers(b)
	addHandlers(b)
}

func commandHandlers(b *bot.Bot) map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate) {
	return map[string]func(s *discordgo.Session, i *discordgo.InteractionCreate){
		"infractions": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			infractions.HandleInfractionsCommand(s, i, b.Store)
		},
		"punish": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			infractions.HandlePunishCommand(s, i, b.Service, b.Logger)
		},
		"kick": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			infractions.HandleKickCommand(s, i, b.Service)
		},
		"botinfo": func(s *discordgo.Session, i *discordgo.InteractionCreate) {
			SystemInfoHandler(s, i, b.Store)
		},
	}
}

func addHandlers(b *bot.Bot) {
	b.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		log.Printf("[System] Logged in as: %v#%v", s.State.User.Username, s.State.User.Discriminator)
	})
	b.Session.AddHandler(func(s *discordgo.Session, i *discordgo.InteractionCreate) {
		// Commands are guild-only; ignore anything that slipped through from DMs.
		if i.GuildID == "" || i.Member == nil {
			return
		}
		switch i.Type {
		case discordgo.InteractionApplicationCommand:
			if h, ok := b.CommandHandlers[i.ApplicationCommandData().Name]; ok {
				h(s, i)
			}
		case discordgo.InteractionMessageComponent:
			if infractions.IsPaginationID(i.MessageComponentData().CustomID) {
				infractions.HandlePagination(s, i, b.Store)
			}
		}
	})
}
