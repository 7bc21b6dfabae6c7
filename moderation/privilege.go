package moderation

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// Authorize reports whether actorID may act on every target. Each target must
// rank strictly below the actor; an equal rank is rejected. It stops at the
// first target that is not below the actor.
//
// Lookup failures are returned as errors and never count as authorized.
func Authorize(ctx context.Context, p Platform, guildID, actorID string, targets []string) (bool, error) {
	actorRank, err := p.HighestRolePosition(ctx, guildID, actorID)
	if err != nil {
		return false, fmt.Errorf("failed to resolve rank of actor %s: %w", actorID, err)
	}

	for _, target := range targets {
		rank, err := p.HighestRolePosition(ctx, guildID, target)
		if err != nil {
			return false, fmt.Errorf("failed to resolve rank of user %s: %w", target, err)
		}
		if rank >= actorRank {
			return false, nil
		}
	}
	return true, nil
}

// FilterBelow keeps only the targets ranked strictly below the actor, in input
// order. Targets whose rank cannot be resolved are dropped. Only a failure to
// resolve the actor is returned as an error.
func FilterBelow(ctx context.Context, p Platform, guildID, actorID string, targets []string) ([]string, error) {
	actorRank, err := p.HighestRolePosition(ctx, guildID, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rank of actor %s: %w", actorID, err)
	}

	below := make([]string, 0, len(targets))
	for _, target := range targets {
		rank, err := p.HighestRolePosition(ctx, guildID, target)
		if err != nil {
			if !errors.Is(err, ErrMemberNotFound) {
				log.Printf("[Kick] Could not resolve rank of user %s, skipping: %v", target, err)
			}
			continue
		}
		if rank < actorRank {
			below = append(below, target)
		}
	}
	return below, nil
}
