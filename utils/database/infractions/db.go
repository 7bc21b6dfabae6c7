package infractions

import (
	"context"
	"errors"
	"fmt"
	"moderation-bot/model"
	"os"
	"path/filepath"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

var (
	ErrInfractionExists   = errors.New("infraction already exists")
	ErrInfractionNotFound = errors.New("infraction not found")
	ErrInfractionInUse    = errors.New("infraction is referenced by punishment records")
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS infractions (
		id INTEGER PRIMARY KEY,
		severity TEXT NOT NULL CHECK (severity IN ('low', 'medium', 'high')),
		punishment TEXT NOT NULL CHECK (punishment IN ('ban', 'timeout', 'strike')),
		duration INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS user_infractions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id TEXT NOT NULL,
		infraction_id INTEGER NOT NULL REFERENCES infractions(id),
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_infractions_user_id ON user_infractions(user_id)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS infractions (
		id INTEGER PRIMARY KEY,
		severity TEXT NOT NULL CHECK (severity IN ('low', 'medium', 'high')),
		punishment TEXT NOT NULL CHECK (punishment IN ('ban', 'timeout', 'strike')),
		duration BIGINT NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS user_infractions (
		id BIGSERIAL PRIMARY KEY,
		user_id TEXT NOT NULL,
		infraction_id INTEGER NOT NULL REFERENCES infractions(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_infractions_user_id ON user_infractions(user_id)`,
}

// Store owns the infraction catalog and the append-only punishment log.
// A single Store is shared by every concurrent invocation.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying pool, mainly for shutdown.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Init connects to the configured database and ensures all tables exist.
func Init(ctx context.Context, cfg model.DatabaseConfig) (*Store, error) {
	dsn := cfg.URL
	if cfg.Driver == "sqlite3" {
		if err := ensureDir(dsn); err != nil {
			return nil, err
		}
		dsn = sqliteDSN(dsn)
	}

	db, err := sqlx.ConnectContext(ctx, cfg.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.Driver == "sqlite3" {
		// sqlite serialises writers anyway; one connection avoids SQLITE_BUSY
		// when many audit writes land at once.
		db.SetMaxOpenConns(1)
	}

	s := NewStore(db)
	if err := s.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Migrate creates the tables and indexes if they don't exist.
func (s *Store) Migrate(ctx context.Context) error {
	schema := sqliteSchema
	if s.db.DriverName() == "postgres" {
		schema = postgresSchema
	}
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

func sqliteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

func ensureDir(path string) error {
	if path == "" || strings.HasPrefix(path, ":memory:") || strings.HasPrefix(path, "file:") {
		return nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

func isForeignKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23503"
	}
	return false
}
