package model

import (
	"fmt"
	"strings"
	"time"
)

// Severity is the ordered severity level of an infraction.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// Level returns the position of the severity in the low < medium < high order.
// Unknown values sort below SeverityLow.
func (s Severity) Level() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	default:
		return 0
	}
}

func (s Severity) Label() string {
	return label(string(s))
}

// ParseSeverity accepts the stored value case-insensitively.
func ParseSeverity(v string) (Severity, error) {
	s := Severity(strings.ToLower(strings.TrimSpace(v)))
	if s.Level() == 0 {
		return "", fmt.Errorf("unknown severity %q", v)
	}
	return s, nil
}

// PunishmentKind selects which punishment strategy an infraction dispatches.
type PunishmentKind string

const (
	PunishmentBan     PunishmentKind = "ban"
	PunishmentTimeout PunishmentKind = "timeout"
	PunishmentStrike  PunishmentKind = "strike"
)

// PunishmentKinds lists every supported kind in display order.
var PunishmentKinds = []PunishmentKind{PunishmentBan, PunishmentTimeout, PunishmentStrike}

func (k PunishmentKind) Label() string {
	return label(string(k))
}

func (k PunishmentKind) Valid() bool {
	switch k {
	case PunishmentBan, PunishmentTimeout, PunishmentStrike:
		return true
	}
	return false
}

// ParsePunishmentKind accepts the stored value case-insensitively.
func ParsePunishmentKind(v string) (PunishmentKind, error) {
	k := PunishmentKind(strings.ToLower(strings.TrimSpace(v)))
	if !k.Valid() {
		return "", fmt.Errorf("unknown punishment %q", v)
	}
	return k, nil
}

// Infraction is a catalog entry describing a punishment template.
// The database table is named 'infractions'.
type Infraction struct {
	ID         int            `db:"id"` // Caller supplied, immutable
	Severity   Severity       `db:"severity"`
	Punishment PunishmentKind `db:"punishment"`
	Duration   int64          `db:"duration"` // Seconds, only used by timeouts
}

// UserInfraction is an append-only record of a punishment applied to a user.
// The database table is named 'user_infractions'.
type UserInfraction struct {
	ID           int64     `db:"id"` // Primary Key, Auto-increment
	UserID       string    `db:"user_id"`
	InfractionID int       `db:"infraction_id"`
	CreatedAt    time.Time `db:"created_at"`
}

func label(v string) string {
	if v == "" {
		return v
	}
	return strings.ToUpper(v[:1]) + v[1:]
}
