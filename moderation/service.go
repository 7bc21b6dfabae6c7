package moderation

import (
	"context"
	"errors"
	"fmt"
	"log"
	"moderation-bot/model"
	"moderation-bot/utils/database/infractions"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// Catalog looks up infraction definitions.
type Catalog interface {
	GetInfraction(ctx context.Context, id int) (*model.Infraction, error)
}

// Store is what the punish workflow needs from persistence.
type Store interface {
	Catalog
	AuditLog
}

// Notifier receives operational warnings that need a human, such as a
// punishment that was applied but not recorded.
type Notifier interface {
	Warn(module, operation, extraInfo string)
}

// Status is where a punish invocation ended.
type Status int

const (
	StatusCompleted Status = iota
	StatusInfractionNotFound
	StatusMemberNotFound
	StatusUnauthorized
	StatusInfrastructureFailure
)

func (s Status) String() string {
	switch s {
	case StatusCompleted:
		return "completed"
	case StatusInfractionNotFound:
		return "infraction_not_found"
	case StatusMemberNotFound:
		return "member_not_found"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusInfrastructureFailure:
		return "infrastructure_failure"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

type PunishRequest struct {
	GuildID      string
	ActorID      string
	InfractionID int
	Users        string // raw mentions or ids
	Message      string
}

type PunishOutcome struct {
	Status     Status
	Infraction *model.Infraction
	Targets    []string
	Result     Result
}

// Summary is the short text shown to the moderator.
func (o *PunishOutcome) Summary() string {
	switch o.Status {
	case StatusInfractionNotFound:
		return "This infraction ID doesn't exist!"
	case StatusMemberNotFound:
		return "One of the users is not a member of this server."
	case StatusUnauthorized:
		return "One of the users has a role higher than or equal to yours."
	case StatusInfrastructureFailure:
		return "The punishment could not be processed. Please try again later."
	default:
		return FormatPunishResult(o.Result)
	}
}

type KickRequest struct {
	GuildID string
	ActorID string
	Users   string
	Reason  string // empty means no reason
}

type KickOutcome struct {
	Kicked []string
	Failed []string
	Reason string
}

func (o *KickOutcome) DisplayReason() string {
	if o.Reason == "" {
		return "No reason provided"
	}
	return o.Reason
}

// Service runs the punish and kick workflows. It keeps no state between
// invocations; everything is re-read from the platform and the store.
type Service struct {
	Platform Platform
	Store    Store
	Notifier Notifier
	Now      func() time.Time
}

func NewService(p Platform, store Store, notifier Notifier) *Service {
	return &Service{Platform: p, Store: store, Notifier: notifier, Now: time.Now}
}

// Punish looks up the infraction, checks that the actor outranks every target
// and dispatches the infraction's punishment. The returned error is set only
// for StatusInfrastructureFailure and is meant for logs, not for the actor.
func (s *Service) Punish(ctx context.Context, req PunishRequest) (*PunishOutcome, error) {
	targets := ParseUserIDs(req.Users)
	outcome := &PunishOutcome{Targets: targets}

	infraction, err := s.Store.GetInfraction(ctx, req.InfractionID)
	if err != nil {
		if errors.Is(err, infractions.ErrInfractionNotFound) {
			gateRejections.WithLabelValues(StatusInfractionNotFound.String()).Inc()
			outcome.Status = StatusInfractionNotFound
			return outcome, nil
		}
		outcome.Status = StatusInfrastructureFailure
		return outcome, fmt.Errorf("failed to look up infraction %d: %w", req.InfractionID, err)
	}
	outcome.Infraction = infraction

	ok, err := Authorize(ctx, s.Platform, req.GuildID, req.ActorID, targets)
	switch {
	case errors.Is(err, ErrMemberNotFound):
		gateRejections.WithLabelValues(StatusMemberNotFound.String()).Inc()
		outcome.Status = StatusMemberNotFound
		return outcome, nil
	case err != nil:
		outcome.Status = StatusInfrastructureFailure
		return outcome, err
	case !ok:
		gateRejections.WithLabelValues(StatusUnauthorized.String()).Inc()
		outcome.Status = StatusUnauthorized
		return outcome, nil
	}

	punisher, err := NewPunisher(s.Platform, infraction.Punishment, Action{
		GuildID:  req.GuildID,
		Reason:   req.Message,
		At:       s.now(),
		Duration: time.Duration(infraction.Duration) * time.Second,
	})
	if err != nil {
		outcome.Status = StatusInfrastructureFailure
		return outcome, err
	}

	d := &Dispatcher{Audit: s.Store}
	outcome.Result = d.Dispatch(ctx, punisher, targets, infraction.ID)
	outcome.Status = StatusCompleted

	if len(outcome.Result.AuditGaps) > 0 && s.Notifier != nil {
		s.Notifier.Warn("Punish", "Audit write failed",
			fmt.Sprintf("Infraction %d (%s) was attempted but not recorded for: %s",
				infraction.ID, infraction.Punishment, Mentions(outcome.Result.AuditGaps)))
	}
	return outcome, nil
}

// Kick removes every listed member ranked strictly below the actor. Members
// that are not below the actor are left out silently. Kicks are not recorded.
func (s *Service) Kick(ctx context.Context, req KickRequest) (*KickOutcome, error) {
	targets, err := FilterBelow(ctx, s.Platform, req.GuildID, req.ActorID, ParseUserIDs(req.Users))
	if err != nil {
		return nil, err
	}

	type kickAttempt struct {
		index  int
		userID string
		err    error
	}
	p := pool.NewWithResults[kickAttempt]()
	for i, userID := range targets {
		p.Go(func() kickAttempt {
			return kickAttempt{index: i, userID: userID, err: s.Platform.Kick(ctx, req.GuildID, userID, req.Reason)}
		})
	}
	attempts := p.Wait()
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].index < attempts[j].index })

	outcome := &KickOutcome{Reason: req.Reason, Kicked: make([]string, 0, len(attempts))}
	for _, a := range attempts {
		if a.err != nil {
			log.Printf("[Kick] Failed to kick user %s: %v", a.userID, a.err)
			kicksTotal.WithLabelValues("failed").Inc()
			outcome.Failed = append(outcome.Failed, a.userID)
			continue
		}
		kicksTotal.WithLabelValues("kicked").Inc()
		outcome.Kicked = append(outcome.Kicked, a.userID)
	}
	return outcome, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
