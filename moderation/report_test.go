package moderation

import (
	"moderation-bot/model"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPunishResult(t *testing.T) {
	assert.Equal(t, "Punished users: <@1>, <@2>\nNot punished users: none",
		FormatPunishResult(Result{Punished: []string{"1", "2"}}))
}

func TestFormatInfraction(t *testing.T) {
	got := FormatInfraction(model.Infraction{ID: 7, Severity: model.SeverityHigh, Punishment: model.PunishmentBan})
	assert.Equal(t, "ID: 7\nSeverity: High\nPunishment: Ban\nDuration: 0", got)
}

func TestFormatUserInfraction(t *testing.T) {
	created := time.Unix(1700000000, 0)
	got := FormatUserInfraction(model.UserInfraction{ID: 3, UserID: "111", InfractionID: 7, CreatedAt: created})
	assert.Equal(t, "<@111> Case ID: 3\nInfraction ID: 7\nCreated at: <t:1700000000:F>", got)
}

func TestKickEmbed(t *testing.T) {
	author := &discordgo.User{ID: "1", Username: "mod"}
	client := &discordgo.User{ID: "2", Username: "bot"}
	embed := KickEmbed(author, client, &KickOutcome{Kicked: []string{"10", "11"}})

	assert.Equal(t, "Kick", embed.Title)
	assert.Equal(t, "**2** users kicked out!", embed.Description)
	assert.Equal(t, kickEmbedColor, embed.Color)
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "No reason provided", embed.Fields[0].Value)
	assert.Equal(t, "<@10>, <@11>", embed.Fields[1].Value)
	assert.Equal(t, "mod", embed.Author.Name)
	assert.Equal(t, "bot", embed.Footer.Text)
}
