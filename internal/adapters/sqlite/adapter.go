// Package sqlite provides a SQLite-backed implementation of the history
// repository port.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // Import the driver anonymously

	"github.com/segue-audio/segue/internal/core/domain"
	"github.com/segue-audio/segue/internal/core/ports"
)

// Adapter implements the history repository port for SQLite
type Adapter struct {
	db *sql.DB
}

var _ ports.HistoryRepository = (*Adapter)(nil)

// NewAdapter creates a connection and runs the schema migration
func NewAdapter(storagePath string) (*Adapter, error) {
	db, err := sql.Open("sqlite3", storagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}

	// An in-memory database vanishes when its connection closes, so pin
	// the pool to one connection. Harmless for file-backed databases.
	db.SetMaxOpenConns(1)

	// Verify connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping sqlite db: %w", err)
	}

	adapter := &Adapter{db: db}

	// Auto-migrate on startup for local dev
	if err := adapter.migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return adapter, nil
}

// Close ensures the DB connection is closed gracefully
func (a *Adapter) Close() error {
	return a.db.Close()
}

// SaveRecommendation stores a full recommendation set atomically, items in
// rank order.
func (a *Adapter) SaveRecommendation(ctx context.Context, set domain.RecommendationSet) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback() // Safety net: auto-rollback if we error before commit

	querySet := `
		INSERT INTO recommendations (id, seed_track_id, seed_title, seed_artist, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			seed_track_id=excluded.seed_track_id,
			seed_title=excluded.seed_title,
			seed_artist=excluded.seed_artist,
			created_at=excluded.created_at;
	`
	if _, err := tx.ExecContext(ctx, querySet, set.ID, set.SeedTrackID, set.SeedTitle, set.SeedArtist, set.CreatedAt.UTC().Format(time.RFC3339Nano)); err != nil {
		return fmt.Errorf("failed to save recommendation metadata: %w", err)
	}

	// Replaying a save replaces the items wholesale
	if _, err := tx.ExecContext(ctx, "DELETE FROM recommendation_tracks WHERE recommendation_id = ?", set.ID); err != nil {
		return fmt.Errorf("failed to clear old items: %w", err)
	}

	stmtItem, err := tx.PrepareContext(ctx, `
		INSERT INTO recommendation_tracks (
			recommendation_id, position, track_id, title, artist, distance, preview_url, measured_energy
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmtItem.Close()

	for i, item := range set.Items {
		var energy any
		if item.MeasuredEnergy != nil {
			energy = *item.MeasuredEnergy
		}
		if _, err := stmtItem.ExecContext(
			ctx,
			set.ID,
			i,
			item.TrackID,
			item.Title,
			item.Artist,
			item.Distance,
			item.PreviewURL,
			energy,
		); err != nil {
			return fmt.Errorf("failed to save item %s: %w", item.TrackID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("transaction commit failed: %w", err)
	}

	return nil
}

// GetRecommendation loads a stored set with its items in rank order.
func (a *Adapter) GetRecommendation(ctx context.Context, id string) (domain.RecommendationSet, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, seed_track_id, seed_title, seed_artist, created_at
		FROM recommendations WHERE id = ?
	`, id)

	var set domain.RecommendationSet
	var createdAt string
	if err := row.Scan(&set.ID, &set.SeedTrackID, &set.SeedTitle, &set.SeedArtist, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return domain.RecommendationSet{}, domain.ErrNotFound
		}
		return domain.RecommendationSet{}, fmt.Errorf("failed to load recommendation: %w", err)
	}
	if parsed, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
		set.CreatedAt = parsed
	}
	set.Items = []domain.Recommendation{}

	itemRows, err := a.db.QueryContext(ctx, `
		SELECT track_id, title, artist, distance, IFNULL(preview_url, ''), measured_energy
		FROM recommendation_tracks
		WHERE recommendation_id = ?
		ORDER BY position ASC
	`, set.ID)
	if err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("failed to load recommendation items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item domain.Recommendation
		var energy sql.NullFloat64
		if err := itemRows.Scan(
			&item.TrackID,
			&item.Title,
			&item.Artist,
			&item.Distance,
			&item.PreviewURL,
			&energy,
		); err != nil {
			return domain.RecommendationSet{}, fmt.Errorf("failed to scan recommendation item: %w", err)
		}
		if energy.Valid {
			value := energy.Float64
			item.MeasuredEnergy = &value
		}
		set.Items = append(set.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return domain.RecommendationSet{}, fmt.Errorf("failed to iterate recommendation items: %w", err)
	}

	return set, nil
}

// UpdateTrackEnergy records a preview-measured energy value for one item.
func (a *Adapter) UpdateTrackEnergy(ctx context.Context, recommendationID, trackID string, energy float64) error {
	query := `
		UPDATE recommendation_tracks
		SET measured_energy = ?
		WHERE recommendation_id = ? AND track_id = ?
	`
	result, err := a.db.ExecContext(ctx, query, energy, recommendationID, trackID)
	if err != nil {
		return fmt.Errorf("failed to update measured energy: %w", err)
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return domain.ErrNotFound
	}

	return nil
}

func (a *Adapter) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS recommendations (
		id TEXT PRIMARY KEY,
		seed_track_id TEXT NOT NULL,
		seed_title TEXT NOT NULL,
		seed_artist TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS recommendation_tracks (
		recommendation_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		track_id TEXT NOT NULL,
		title TEXT NOT NULL,
		artist TEXT NOT NULL,
		distance REAL NOT NULL,
		preview_url TEXT,
		measured_energy REAL,
		PRIMARY KEY (recommendation_id, track_id),
		FOREIGN KEY(recommendation_id) REFERENCES recommendations(id) ON DELETE CASCADE
	);
	`
	if _, err := a.db.Exec(query); err != nil {
		return err
	}

	return nil
}
