package ports

import (
	"context"

	"distlab/domain/core"
	"distlab/domain/dist"
)

// SavedResult is a named, persisted generation result
type SavedResult struct {
	ID         core.ResultID          `json:"id"`
	Name       string                 `json:"name"`
	Kind       dist.Kind              `json:"kind"`
	SampleSize int                    `json:"sample_size"`
	Result     *dist.GenerationResult `json:"result"`
	CreatedAt  string                 `json:"created_at"`
}

// ResultRepository persists named generation results for later comparison.
// The engine itself never calls this; it is the boundary the surrounding
// application stores results through.
type ResultRepository interface {
	Save(ctx context.Context, saved *SavedResult) error
	GetByID(ctx context.Context, id core.ResultID) (*SavedResult, error)
	List(ctx context.Context, limit, offset int) ([]*SavedResult, error)
	Delete(ctx context.Context, id core.ResultID) error
}
