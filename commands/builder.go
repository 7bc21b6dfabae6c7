package commands

import (
	"moderation-bot/commands/defs"

	"github.com/bwmarrin/discordgo"
)

func GenerateCommands() []*discordgo.ApplicationCommand {
	return []*discordgo.ApplicationCommand{
		defs.Infractions,
		defs.Punish,
		defs.Kick,
		defs.BotInfo,
	}
}
