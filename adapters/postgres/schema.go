package postgres

import (
	"github.com/jmoiron/sqlx"

	"distlab/internal/errors"
)

// schema is the saved-results table; payload carries the full serialized
// GenerationResult so a load round-trips every field.
const schema = `
CREATE TABLE IF NOT EXISTS saved_results (
	id          TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	kind        TEXT NOT NULL,
	sample_size INTEGER NOT NULL,
	payload     JSONB NOT NULL,
	created_at  TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_saved_results_created_at ON saved_results (created_at DESC);
`

// InitSchema creates the saved-results table if it does not exist
func InitSchema(db *sqlx.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return errors.Wrap(err, "failed to initialize saved_results schema")
	}
	return nil
}
