package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/personacli/internal/client/models"
	"github.com/dmitrijs2005/personacli/internal/dbx"
)

// Store persists the last-known identity together with the raw credentials
// needed to re-verify it after a restart. It does no validation: validity
// is the Verifier's job.
type Store interface {
	// Save persists both halves, overwriting any prior values.
	Save(ctx context.Context, id models.Identity, creds models.Credentials) error

	// Load returns the persisted pair. ok is false when either half is
	// missing or unparsable; corrupt data reads as absent, never as an
	// error. A non-nil error means storage itself failed.
	Load(ctx context.Context) (id models.Identity, creds models.Credentials, ok bool, err error)

	// Clear removes both halves. Clearing an empty store is a no-op.
	Clear(ctx context.Context) error
}

const (
	keyIdentity    = "identity"
	keyCredentials = "credentials"
)

// SQLiteStore keeps the two session slots in a key/value table managed by
// the migrations in this package.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func get(ctx context.Context, tx dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := tx.QueryRowContext(ctx, `SELECT value FROM session WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session[%s]: %w", key, err)
	}
	return value, nil
}

func set(ctx context.Context, tx dbx.DBTX, key string, value []byte) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO session (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set session[%s]: %w", key, err)
	}
	return nil
}

// Save writes both slots in one transaction so a crash cannot leave a
// half-written session behind.
func (s *SQLiteStore) Save(ctx context.Context, id models.Identity, creds models.Credentials) error {
	idJSON, err := json.Marshal(id)
	if err != nil {
		return fmt.Errorf("failed to encode identity: %w", err)
	}
	credsJSON, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyIdentity, idJSON); err != nil {
			return err
		}
		return set(ctx, tx, keyCredentials, credsJSON)
	})
}

func (s *SQLiteStore) Load(ctx context.Context) (models.Identity, models.Credentials, bool, error) {
	var id models.Identity
	var creds models.Credentials

	idJSON, err := get(ctx, s.db, keyIdentity)
	if err != nil {
		return id, creds, false, err
	}
	credsJSON, err := get(ctx, s.db, keyCredentials)
	if err != nil {
		return id, creds, false, err
	}
	if idJSON == nil || credsJSON == nil {
		return id, creds, false, nil
	}

	// Corrupt slots read as absent.
	if err := json.Unmarshal(idJSON, &id); err != nil {
		return models.Identity{}, creds, false, nil
	}
	if err := json.Unmarshal(credsJSON, &creds); err != nil {
		return models.Identity{}, models.Credentials{}, false, nil
	}
	return id, creds, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM session`)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
