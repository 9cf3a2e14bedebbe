package estimate

import (
	"distlab/domain/dist"
	"distlab/engine/generate"
	"distlab/ports"

	"golang.org/x/sync/errgroup"
)

// Request is one generation+estimation job in a combined run
type Request struct {
	Params     dist.Params `json:"params"`
	SampleSize int         `json:"sample_size"`
}

// Combined is the report of a multi-distribution comparison run
type Combined struct {
	Estimates       []dist.Estimate `json:"estimates"`
	TotalSampleSize int             `json:"total_sample_size"`
}

// EstimateAll generates and estimates a fixed set of distributions and
// reports the combined total sample size. Jobs run concurrently: draws are
// independent across jobs, so each worker gets its own RandomSource from
// newSource (a shared source would race).
func EstimateAll(newSource func() ports.RandomSource, requests []Request) (*Combined, error) {
	estimates := make([]dist.Estimate, len(requests))

	var g errgroup.Group
	for i, req := range requests {
		i, req := i, req
		// Factory calls stay on this goroutine; only the draws run concurrently
		src := newSource()
		g.Go(func() error {
			result, err := generate.Generate(src, req.Params, req.SampleSize)
			if err != nil {
				return err
			}
			est, err := Estimate(result)
			if err != nil {
				return err
			}
			estimates[i] = est
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, req := range requests {
		total += req.SampleSize
	}
	return &Combined{Estimates: estimates, TotalSampleSize: total}, nil
}
