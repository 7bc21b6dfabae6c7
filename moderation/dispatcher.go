package moderation

import (
	"context"
	"log"
	"moderation-bot/model"
	"sort"

	"github.com/sourcegraph/conc/pool"
)

// AuditLog records that a punishment was attempted against a user.
type AuditLog interface {
	LogPunishment(ctx context.Context, userID string, infractionID int) (*model.UserInfraction, error)
}

// Result partitions the targets of one dispatch. Every target lands in exactly
// one of Punished and NotPunished, once per occurrence in the input.
type Result struct {
	Punished    []string
	NotPunished []string
	// AuditGaps lists targets whose punishment record could not be written.
	// They are still reported in Punished when the action itself succeeded.
	AuditGaps []string
}

// Dispatcher applies a Punisher to many users at once.
type Dispatcher struct {
	Audit AuditLog
}

type attempt struct {
	index    int
	userID   string
	err      error
	auditErr error
}

// Dispatch attempts every target exactly once, concurrently, and writes one
// audit record per attempt whether or not the punishment succeeded. A failure
// for one target never stops the others. There are no retries.
func (d *Dispatcher) Dispatch(ctx context.Context, punisher Punisher, targets []string, infractionID int) Result {
	p := pool.NewWithResults[attempt]()
	for i, userID := range targets {
		p.Go(func() attempt {
			a := attempt{index: i, userID: userID}
			a.err = punisher.Apply(ctx, userID)
			if _, err := d.Audit.LogPunishment(ctx, userID, infractionID); err != nil {
				a.auditErr = err
			}
			return a
		})
	}
	attempts := p.Wait()
	sort.Slice(attempts, func(i, j int) bool { return attempts[i].index < attempts[j].index })

	kind := string(punisher.Kind())
	result := Result{
		Punished:    make([]string, 0, len(targets)),
		NotPunished: make([]string, 0),
	}
	for _, a := range attempts {
		if a.err != nil {
			log.Printf("[Punish] %v", a.err)
			punishmentsTotal.WithLabelValues(kind, "not_punished").Inc()
			result.NotPunished = append(result.NotPunished, a.userID)
		} else {
			punishmentsTotal.WithLabelValues(kind, "punished").Inc()
			result.Punished = append(result.Punished, a.userID)
		}
		if a.auditErr != nil {
			log.Printf("[Punish] Failed to record %s of user %s for infraction %d: %v", kind, a.userID, infractionID, a.auditErr)
			auditWriteFailures.WithLabelValues(kind).Inc()
			result.AuditGaps = append(result.AuditGaps, a.userID)
		}
	}
	return result
}
