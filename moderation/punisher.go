package moderation

import (
	"context"
	"errors"
	"fmt"
	"moderation-bot/model"
	"time"
)

var ErrUnknownPunishment = errors.New("unknown punishment kind")

// Action is the per-batch input shared by every target of one invocation.
type Action struct {
	GuildID  string
	Reason   string
	At       time.Time // read once per batch
	Duration time.Duration
}

// Punisher applies one punishment kind to a single user. A returned error only
// concerns that user.
type Punisher interface {
	Kind() model.PunishmentKind
	Apply(ctx context.Context, userID string) error
}

// NewPunisher returns the punisher for kind. Adding a kind means adding a case
// here and to model.PunishmentKind.
func NewPunisher(p Platform, kind model.PunishmentKind, action Action) (Punisher, error) {
	switch kind {
	case model.PunishmentBan:
		return &banPunisher{platform: p, guildID: action.GuildID, reason: action.Reason}, nil
	case model.PunishmentTimeout:
		return &timeoutPunisher{platform: p, guildID: action.GuildID, until: action.At.Add(action.Duration)}, nil
	case model.PunishmentStrike:
		return &strikePunisher{platform: p, message: "You received a strike:\n" + action.Reason}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPunishment, kind)
	}
}

type banPunisher struct {
	platform Platform
	guildID  string
	reason   string
}

func (b *banPunisher) Kind() model.PunishmentKind { return model.PunishmentBan }

func (b *banPunisher) Apply(ctx context.Context, userID string) error {
	if err := b.platform.Ban(ctx, b.guildID, userID, b.reason); err != nil {
		return fmt.Errorf("failed to ban user %s: %w", userID, err)
	}
	return nil
}

type timeoutPunisher struct {
	platform Platform
	guildID  string
	until    time.Time
}

func (t *timeoutPunisher) Kind() model.PunishmentKind { return model.PunishmentTimeout }

// Until is the communication-disabled deadline applied to every target.
func (t *timeoutPunisher) Until() time.Time { return t.until }

func (t *timeoutPunisher) Apply(ctx context.Context, userID string) error {
	if err := t.platform.Timeout(ctx, t.guildID, userID, t.until); err != nil {
		return fmt.Errorf("failed to time out user %s: %w", userID, err)
	}
	return nil
}

type strikePunisher struct {
	platform Platform
	message  string
}

func (s *strikePunisher) Kind() model.PunishmentKind { return model.PunishmentStrike }

func (s *strikePunisher) Apply(ctx context.Context, userID string) error {
	channelID, err := s.platform.OpenDM(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to open DM channel with user %s: %w", userID, err)
	}
	if err := s.platform.SendMessage(ctx, channelID, s.message); err != nil {
		return fmt.Errorf("failed to send strike to user %s: %w", userID, err)
	}
	return nil
}
