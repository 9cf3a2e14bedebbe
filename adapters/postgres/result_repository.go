package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"distlab/domain/core"
	"distlab/domain/dist"
	"distlab/ports"
)

// resultRepository implements the ResultRepository interface
type resultRepository struct {
	db *sqlx.DB
}

// NewResultRepository creates a new saved-results repository
func NewResultRepository(db *sqlx.DB) ports.ResultRepository {
	return &resultRepository{db: db}
}

// Save inserts a named generation result, serialized losslessly as JSONB
func (r *resultRepository) Save(ctx context.Context, saved *ports.SavedResult) error {
	payload, err := saved.Result.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal generation result: %w", err)
	}

	if saved.ID.String() == "" {
		saved.ID = core.ResultID(core.NewID())
	}
	if saved.CreatedAt == "" {
		saved.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	query := `INSERT INTO saved_results (
		id, name, kind, sample_size, payload, created_at
	) VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = r.db.ExecContext(ctx, query,
		saved.ID, saved.Name, string(saved.Kind), saved.SampleSize, payload, saved.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// GetByID retrieves a saved result by its ID
func (r *resultRepository) GetByID(ctx context.Context, id core.ResultID) (*ports.SavedResult, error) {
	query := `SELECT id, name, kind, sample_size, payload, created_at
	FROM saved_results WHERE id = $1`

	var saved ports.SavedResult
	var payload []byte
	var kind string

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&saved.ID, &saved.Name, &kind, &saved.SampleSize, &payload, &saved.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: %s", core.ErrResultNotFound, id)
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	saved.Kind = dist.Kind(kind)

	result, err := dist.UnmarshalResult(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored result %s: %w", id, err)
	}
	saved.Result = result
	return &saved, nil
}

// List retrieves saved results newest-first with pagination. Payloads are
// decoded in full so callers can re-estimate without a second round trip.
func (r *resultRepository) List(ctx context.Context, limit, offset int) ([]*ports.SavedResult, error) {
	query := `SELECT id, name, kind, sample_size, payload, created_at
	FROM saved_results
	ORDER BY created_at DESC
	LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []*ports.SavedResult
	for rows.Next() {
		var saved ports.SavedResult
		var payload []byte
		var kind string

		if err := rows.Scan(&saved.ID, &saved.Name, &kind, &saved.SampleSize, &payload, &saved.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		saved.Kind = dist.Kind(kind)

		result, err := dist.UnmarshalResult(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored result %s: %w", saved.ID, err)
		}
		saved.Result = result
		results = append(results, &saved)
	}
	return results, rows.Err()
}

// Delete removes a saved result
func (r *resultRepository) Delete(ctx context.Context, id core.ResultID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_results WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete outcome: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", core.ErrResultNotFound, id)
	}
	return nil
}
