package infractions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"moderation-bot/model"
)

// CreateInfraction inserts a new catalog entry. The id is supplied by the caller
// and ErrInfractionExists is returned if it is already taken.
func (s *Store) CreateInfraction(ctx context.Context, infraction model.Infraction) (*model.Infraction, error) {
	query := s.db.Rebind(`INSERT INTO infractions (id, severity, punishment, duration) VALUES (?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, query, infraction.ID, infraction.Severity, infraction.Punishment, infraction.Duration)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: id %d", ErrInfractionExists, infraction.ID)
		}
		return nil, fmt.Errorf("failed to insert infraction %d: %w", infraction.ID, err)
	}
	return s.GetInfraction(ctx, infraction.ID)
}

// GetInfraction retrieves a single infraction by its id.
func (s *Store) GetInfraction(ctx context.Context, id int) (*model.Infraction, error) {
	var infraction model.Infraction
	query := s.db.Rebind(`SELECT id, severity, punishment, duration FROM infractions WHERE id = ?`)
	if err := s.db.GetContext(ctx, &infraction, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrInfractionNotFound, id)
		}
		return nil, fmt.Errorf("failed to get infraction by id %d: %w", id, err)
	}
	return &infraction, nil
}

// ListInfractions returns the whole catalog ordered by id.
func (s *Store) ListInfractions(ctx context.Context) ([]model.Infraction, error) {
	var infractions []model.Infraction
	query := `SELECT id, severity, punishment, duration FROM infractions ORDER BY id`
	if err := s.db.SelectContext(ctx, &infractions, query); err != nil {
		return nil, fmt.Errorf("failed to list infractions: %w", err)
	}
	return infractions, nil
}

// DeleteInfraction removes a catalog entry. Entries that punishment records
// still point at cannot be removed and return ErrInfractionInUse.
func (s *Store) DeleteInfraction(ctx context.Context, id int) error {
	query := s.db.Rebind(`DELETE FROM infractions WHERE id = ?`)
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: id %d", ErrInfractionInUse, id)
		}
		return fmt.Errorf("failed to delete infraction by id %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected for infraction id %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%w: id %d", ErrInfractionNotFound, id)
	}
	return nil
}

// LogPunishment appends a punishment record for userID and returns it with the
// id and timestamp assigned by the database.
func (s *Store) LogPunishment(ctx context.Context, userID string, infractionID int) (*model.UserInfraction, error) {
	var id int64
	query := s.db.Rebind(`INSERT INTO user_infractions (user_id, infraction_id) VALUES (?, ?) RETURNING id`)
	if err := s.db.QueryRowxContext(ctx, query, userID, infractionID).Scan(&id); err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: id %d", ErrInfractionNotFound, infractionID)
		}
		return nil, fmt.Errorf("failed to insert punishment record for user %s: %w", userID, err)
	}

	var record model.UserInfraction
	query = s.db.Rebind(`SELECT id, user_id, infraction_id, created_at FROM user_infractions WHERE id = ?`)
	if err := s.db.GetContext(ctx, &record, query, id); err != nil {
		return nil, fmt.Errorf("failed to read back punishment record %d: %w", id, err)
	}
	return &record, nil
}

// ListUserInfractions retrieves every punishment record for a user, oldest first.
func (s *Store) ListUserInfractions(ctx context.Context, userID string) ([]model.UserInfraction, error) {
	var records []model.UserInfraction
	query := s.db.Rebind(`SELECT id, user_id, infraction_id, created_at FROM user_infractions WHERE user_id = ? ORDER BY id`)
	if err := s.db.SelectContext(ctx, &records, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get punishment records for user %s: %w", userID, err)
	}
	return records, nil
}

// Counts returns the number of catalog entries and punishment records.
func (s *Store) Counts(ctx context.Context) (infractions int, records int, err error) {
	if err = s.db.GetContext(ctx, &infractions, `SELECT COUNT(*) FROM infractions`); err != nil {
		return 0, 0, fmt.Errorf("failed to count infractions: %w", err)
	}
	if err = s.db.GetContext(ctx, &records, `SELECT COUNT(*) FROM user_infractions`); err != nil {
		return 0, 0, fmt.Errorf("failed to count punishment records: %w", err)
	}
	return infractions, records, nil
}
