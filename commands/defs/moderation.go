package defs

import (
	"moderation-bot/model"

	"github.com/bwmarrin/discordgo"
)

var (
	administratorPermission int64 = discordgo.PermissionAdministrator
	punishPermission        int64 = discordgo.PermissionKickMembers | discordgo.PermissionBanMembers | discordgo.PermissionModerateMembers
	kickPermission          int64 = discordgo.PermissionManageMessages
	guildOnly                     = false
)

var severityChoices = []*discordgo.ApplicationCommandOptionChoice{
	{Name: model.SeverityLow.Label(), Value: string(model.SeverityLow)},
	{Name: model.SeverityMedium.Label(), Value: string(model.SeverityMedium)},
	{Name: model.SeverityHigh.Label(), Value: string(model.SeverityHigh)},
}

func punishmentChoices() []*discordgo.ApplicationCommandOptionChoice {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(model.PunishmentKinds))
	for _, k := range model.PunishmentKinds {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: k.Label(), Value: string(k)})
	}
	return choices
}

var Infractions = &discordgo.ApplicationCommand{
	Name:                     "infractions",
	Description:              "Manage the infraction catalog",
	DefaultMemberPermissions: &administratorPermission,
	DMPermission:             &guildOnly,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "add",
			Description: "Create a new infraction",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "id",
					Description: "Unique infraction ID",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "severity",
					Description: "Severity of the infraction",
					Required:    true,
					Choices:     severityChoices,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "punishment",
					Description: "Punishment applied by the infraction",
					Required:    true,
					Choices:     punishmentChoices(),
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "duration",
					Description: "Timeout duration in seconds (0 for other punishments)",
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "list",
			Description: "List all infractions",
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "remove",
			Description: "Delete an infraction",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "id",
					Description: "Infraction ID",
					Required:    true,
				},
			},
		},
		{
			Type:        discordgo.ApplicationCommandOptionSubCommand,
			Name:        "user",
			Description: "Show the infractions of a member",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Member to look up",
					Required:    true,
				},
			},
		},
	},
}

var Punish = &discordgo.ApplicationCommand{
	Name:                     "punish",
	Description:              "Apply an infraction to one or more users",
	DefaultMemberPermissions: &punishPermission,
	DMPermission:             &guildOnly,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "id",
			Description: "Infraction ID",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "users",
			Description: "User mentions or IDs separated by spaces",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "message",
			Description: "Reason sent with the punishment",
			Required:    true,
		},
	},
}

var Kick = &discordgo.ApplicationCommand{
	Name:                     "kick",
	Description:              "Kick one or more users",
	DefaultMemberPermissions: &kickPermission,
	DMPermission:             &guildOnly,
	Options: []*discordgo.ApplicationCommandOption{
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "users",
			Description: "User mentions or IDs separated by spaces",
			Required:    true,
		},
		{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "reason",
			Description: "Reason for the kick",
			Required:    false,
		},
	},
}
