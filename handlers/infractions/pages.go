package infractions

import (
	"errors"
	"fmt"
	"moderation-bot/model"
	"moderation-bot/moderation"
	"strings"
	"time"
)

const (
	infractionsPerPage = 5
	recordsPerPage     = 5

	listPagePrefix = "inf_list"
	userPagePrefix = "inf_user"

	// Discord rejects communication timeouts longer than 28 days.
	maxTimeout = 28 * 24 * time.Hour
)

// paginate returns the items of page (1-based, clamped) and the page count.
func paginate[T any](items []T, page, perPage int) ([]T, int, int) {
	totalPages := (len(items) + perPage - 1) / perPage
	if totalPages == 0 {
		return nil, 1, 0
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}
	start := (page - 1) * perPage
	end := min(start+perPage, len(items))
	return items[start:end], page, totalPages
}

func renderInfractionsPage(infs []model.Infraction, page int) (string, int, int) {
	items, page, totalPages := paginate(infs, page, infractionsPerPage)
	blocks := make([]string, 0, len(items))
	for _, inf := range items {
		blocks = append(blocks, moderation.FormatInfraction(inf))
	}
	return strings.Join(blocks, "\n\n"), page, totalPages
}

func renderUserRecordsPage(records []model.UserInfraction, page int) (string, int, int) {
	items, page, totalPages := paginate(records, page, recordsPerPage)
	blocks := make([]string, 0, len(items))
	for _, rec := range items {
		blocks = append(blocks, moderation.FormatUserInfraction(rec))
	}
	return strings.Join(blocks, "\n\n"), page, totalPages
}

// buildInfraction validates the options of /infractions add.
func buildInfraction(id int64, severity, punishment string, duration int64) (model.Infraction, error) {
	if id <= 0 {
		return model.Infraction{}, errors.New("the infraction ID must be a positive number")
	}
	sev, err := model.ParseSeverity(severity)
	if err != nil {
		return model.Infraction{}, err
	}
	kind, err := model.ParsePunishmentKind(punishment)
	if err != nil {
		return model.Infraction{}, err
	}
	if duration < 0 {
		return model.Infraction{}, errors.New("the duration cannot be negative")
	}
	if kind == model.PunishmentTimeout {
		if duration == 0 {
			return model.Infraction{}, errors.New("a timeout needs a duration in seconds")
		}
		if time.Duration(duration)*time.Second > maxTimeout {
			return model.Infraction{}, fmt.Errorf("a timeout cannot be longer than %d seconds", int64(maxTimeout/time.Second))
		}
	}
	return model.Infraction{ID: int(id), Severity: sev, Punishment: kind, Duration: duration}, nil
}
