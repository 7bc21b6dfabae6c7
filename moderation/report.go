package moderation

import (
	"fmt"
	"moderation-bot/model"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
)

const kickEmbedColor = 0x3BA55C

// Mentions renders user ids as Discord mentions joined by ", ".
func Mentions(userIDs []string) string {
	if len(userIDs) == 0 {
		return "none"
	}
	mentions := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		mentions = append(mentions, fmt.Sprintf("<@%s>", id))
	}
	return strings.Join(mentions, ", ")
}

// FormatPunishResult renders the two-list summary shown to the moderator.
func FormatPunishResult(r Result) string {
	res := fmt.Sprintf("Punished users: %s\nNot punished users: %s", Mentions(r.Punished), Mentions(r.NotPunished))
	if len(r.AuditGaps) > 0 {
		res += fmt.Sprintf("\n⚠️ Punishment records could not be saved for: %s", Mentions(r.AuditGaps))
	}
	return res
}

func FormatInfraction(inf model.Infraction) string {
	return fmt.Sprintf("ID: %d\nSeverity: %s\nPunishment: %s\nDuration: %d",
		inf.ID, inf.Severity.Label(), inf.Punishment.Label(), inf.Duration)
}

func FormatUserInfraction(rec model.UserInfraction) string {
	return fmt.Sprintf("<@%s> Case ID: %d\nInfraction ID: %d\nCreated at: <t:%d:F>",
		rec.UserID, rec.ID, rec.InfractionID, rec.CreatedAt.Unix())
}

// KickEmbed builds the kick summary. author is the moderator, client the bot user.
func KickEmbed(author, client *discordgo.User, outcome *KickOutcome) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "Kick",
		Description: fmt.Sprintf("**%d** users kicked out!", len(outcome.Kicked)),
		Color:       kickEmbedColor,
		Timestamp:   time.Now().Format(time.RFC3339),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Reason", Value: outcome.DisplayReason()},
			{Name: "Users", Value: Mentions(outcome.Kicked)},
		},
	}
	if author != nil {
		embed.Author = &discordgo.MessageEmbedAuthor{Name: author.Username, IconURL: author.AvatarURL("")}
	}
	if client != nil {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: client.Username, IconURL: client.AvatarURL("")}
	}
	return embed
}
