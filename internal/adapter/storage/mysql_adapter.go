package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// MySQLAdapter stores the snapshot blob as a single upserted row. The
// bridge treats the database as a key-value port; no relational structure
// is imposed on the snapshot contents.
type MySQLAdapter struct {
	db   *sql.DB
	name string
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db, name: "storeadmin"}
}

// EnsureSchema creates the snapshot table if it does not exist yet.
func (m *MySQLAdapter) EnsureSchema(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			name       VARCHAR(64) PRIMARY KEY,
			body       LONGBLOB NOT NULL,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("create snapshots table: %w", err)
	}
	return nil
}

func (m *MySQLAdapter) Load(ctx context.Context) ([]byte, error) {
	var blob []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT body FROM snapshots WHERE name = ?`, m.name,
	).Scan(&blob)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return blob, nil
}

func (m *MySQLAdapter) Save(ctx context.Context, blob []byte) error {
	_, err := m.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, body) VALUES (?, ?)
		ON DUPLICATE KEY UPDATE body = VALUES(body)`,
		m.name, blob,
	)
	if err != nil {
		return fmt.Errorf("upsert snapshot: %w", err)
	}
	return nil
}
