package defs

import "github.com/bwmarrin/discordgo"

var BotInfo = &discordgo.ApplicationCommand{
	Name:                     "botinfo",
	Description:              "Display bot and system status information",
	DefaultMemberPermissions: &administratorPermission,
	DMPermission:             &guildOnly,
}
