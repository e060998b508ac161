package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/belphemur/hypersql/internal/logging"
)

// ErrDatasourceNotFound is returned when the catalog has no entry for a name
var ErrDatasourceNotFound = errors.New("datasource not found in catalog")

// CatalogEntry is a resolved datasource as recorded in the catalog.
// URL never carries a password in clear.
type CatalogEntry struct {
	Name       string
	Driver     string
	URL        string
	ResolvedAt time.Time
}

// CatalogStore records the connection URLs datasources resolved to
type CatalogStore struct {
	db     *DB
	logger zerolog.Logger
}

// NewCatalogStore creates a new catalog store
func NewCatalogStore(db *DB) *CatalogStore {
	return &CatalogStore{db: db, logger: logging.GetLogger("catalog-store")}
}

// Save inserts or replaces the entry for entry.Name
func (s *CatalogStore) Save(ctx context.Context, entry CatalogEntry) error {
	if entry.Name == "" {
		return fmt.Errorf("datasource name cannot be empty")
	}
	if entry.ResolvedAt.IsZero() {
		entry.ResolvedAt = time.Now()
	}

	s.logger.Debug().Str("datasource", entry.Name).Str("driver", entry.Driver).Msg("Saving catalog entry")
	err := s.db.WithTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO datasources (name, driver, url, resolved_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(name) DO UPDATE SET
				driver = excluded.driver,
				url = excluded.url,
				resolved_at = excluded.resolved_at
		`, entry.Name, entry.Driver, entry.URL, entry.ResolvedAt.UTC().Unix())
		return err
	})
	if err != nil {
		s.logger.Error().Err(err).Str("datasource", entry.Name).Msg("Failed to save catalog entry")
		return fmt.Errorf("failed to save catalog entry %s: %w", entry.Name, err)
	}
	return nil
}

// Get returns the entry for name
func (s *CatalogStore) Get(ctx context.Context, name string) (*CatalogEntry, error) {
	var entry CatalogEntry
	var resolvedAt int64
	err := s.db.Conn().QueryRowContext(ctx, `
		SELECT name, driver, url, resolved_at
		FROM datasources
		WHERE name = ?
	`, name).Scan(&entry.Name, &entry.Driver, &entry.URL, &resolvedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrDatasourceNotFound, name)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("datasource", name).Msg("Failed to retrieve catalog entry")
		return nil, fmt.Errorf("failed to retrieve catalog entry %s: %w", name, err)
	}

	entry.ResolvedAt = time.Unix(resolvedAt, 0).UTC()
	return &entry, nil
}

// List returns every entry ordered by name
func (s *CatalogStore) List(ctx context.Context) ([]CatalogEntry, error) {
	rows, err := s.db.Conn().QueryContext(ctx, `
		SELECT name, driver, url, resolved_at
		FROM datasources
		ORDER BY name
	`)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to list catalog entries")
		return nil, fmt.Errorf("failed to list catalog entries: %w", err)
	}
	defer rows.Close()

	var entries []CatalogEntry
	for rows.Next() {
		var entry CatalogEntry
		var resolvedAt int64
		if err := rows.Scan(&entry.Name, &entry.Driver, &entry.URL, &resolvedAt); err != nil {
			return nil, fmt.Errorf("failed to scan catalog entry: %w", err)
		}
		entry.ResolvedAt = time.Unix(resolvedAt, 0).UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate catalog entries: %w", err)
	}

	s.logger.Debug().Int("count", len(entries)).Msg("Catalog entries listed")
	return entries, nil
}

// Delete removes the entry for name
func (s *CatalogStore) Delete(ctx context.Context, name string) error {
	res, err := s.db.Conn().ExecContext(ctx, `DELETE FROM datasources WHERE name = ?`, name)
	if err != nil {
		s.logger.Error().Err(err).Str("datasource", name).Msg("Failed to delete catalog entry")
		return fmt.Errorf("failed to delete catalog entry %s: %w", name, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrDatasourceNotFound, name)
	}
	s.logger.Info().Str("datasource", name).Msg("Catalog entry deleted")
	return nil
}
