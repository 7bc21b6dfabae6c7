package moderation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
)

// ErrMemberNotFound is returned when a user cannot be resolved as a current
// member of the guild.
var ErrMemberNotFound = errors.New("member not found")

// Platform is the subset of the Discord API the moderation commands act through.
type Platform interface {
	Ban(ctx context.Context, guildID, userID, reason string) error
	Timeout(ctx context.Context, guildID, userID string, until time.Time) error
	OpenDM(ctx context.Context, userID string) (channelID string, err error)
	SendMessage(ctx context.Context, channelID, content string) error
	Kick(ctx context.Context, guildID, userID, reason string) error
	// HighestRolePosition returns the position of the highest role userID holds
	// in the guild. Members with no roles rank 0, the same as @everyone.
	HighestRolePosition(ctx context.Context, guildID, userID string) (int, error)
}

// DiscordPlatform implements Platform on top of a discordgo session.
type DiscordPlatform struct {
	Session *discordgo.Session
}

func NewDiscordPlatform(s *discordgo.Session) *DiscordPlatform {
	return &DiscordPlatform{Session: s}
}

func (p *DiscordPlatform) Ban(ctx context.Context, guildID, userID, reason string) error {
	return p.Session.GuildBanCreateWithReason(guildID, userID, reason, 0, discordgo.WithContext(ctx))
}

func (p *DiscordPlatform) Timeout(ctx context.Context, guildID, userID string, until time.Time) error {
	return p.Session.GuildMemberTimeout(guildID, userID, &until, discordgo.WithContext(ctx))
}

func (p *DiscordPlatform) OpenDM(ctx context.Context, userID string) (string, error) {
	channel, err := p.Session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return "", err
	}
	return channel.ID, nil
}

func (p *DiscordPlatform) SendMessage(ctx context.Context, channelID, content string) error {
	_, err := p.Session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx))
	return err
}

func (p *DiscordPlatform) Kick(ctx context.Context, guildID, userID, reason string) error {
	return p.Session.GuildMemberDeleteWithReason(guildID, userID, reason, discordgo.WithContext(ctx))
}

func (p *DiscordPlatform) HighestRolePosition(ctx context.Context, guildID, userID string) (int, error) {
	member, err := p.Session.GuildMember(guildID, userID, discordgo.WithContext(ctx))
	if err != nil {
		if isUnknownMember(err) {
			return 0, fmt.Errorf("%w: %s", ErrMemberNotFound, userID)
		}
		return 0, fmt.Errorf("failed to fetch member %s: %w", userID, err)
	}

	// Roles are re-read on every check so rank changes apply immediately.
	roles, err := p.Session.GuildRoles(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return 0, fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}
	return highestPosition(member.Roles, roles), nil
}

func highestPosition(memberRoles []string, guildRoles []*discordgo.Role) int {
	positions := make(map[string]int, len(guildRoles))
	for _, role := range guildRoles {
		positions[role.ID] = role.Position
	}

	highest := 0
	for _, roleID := range memberRoles {
		if pos, ok := positions[roleID]; ok && pos > highest {
			highest = pos
		}
	}
	return highest
}

func isUnknownMember(err error) bool {
	var restErr *discordgo.RESTError
	if !errors.As(err, &restErr) || restErr.Message == nil {
		return false
	}
	return restErr.Message.Code == discordgo.ErrCodeUnknownMember || restErr.Message.Code == discordgo.ErrCodeUnknownUser
}
