package dist

import (
	"encoding/json"
	"fmt"
)

// GenerationResult is the immutable artifact of one sample batch: the
// generated values in draw order, the parameters that produced them, and the
// derived frequency structures. Consumed by estimation and persistence.
//
// INVARIANTS:
// - len(Values) == SampleSize
// - sum of Frequencies values == SampleSize
// - Cumulative is non-empty only for binomial parameters
type GenerationResult struct {
	Params      Params           `json:"params"`
	SampleSize  int              `json:"sample_size"`
	Values      []GeneratedValue `json:"values"`
	Frequencies map[int]int      `json:"frequencies"`
	Cumulative  []float64        `json:"cumulative,omitempty"`
	Intervals   *IntervalData    `json:"intervals,omitempty"`
}

// Outcomes returns the raw numeric sample in draw order
func (r *GenerationResult) Outcomes() []float64 {
	out := make([]float64, len(r.Values))
	for i, v := range r.Values {
		out[i] = v.Value
	}
	return out
}

// Validate checks the structural invariants of a result, typically after
// decoding from a persisted form.
func (r *GenerationResult) Validate() error {
	if err := r.Params.Validate(); err != nil {
		return err
	}
	if len(r.Values) != r.SampleSize {
		return fmt.Errorf("value count %d does not match sample size %d", len(r.Values), r.SampleSize)
	}
	total := 0
	for _, f := range r.Frequencies {
		total += f
	}
	if total != r.SampleSize {
		return fmt.Errorf("frequency total %d does not match sample size %d", total, r.SampleSize)
	}
	if r.Intervals != nil {
		if got := r.Intervals.TotalFrequency(); got != r.SampleSize {
			return fmt.Errorf("interval frequency total %d does not match sample size %d", got, r.SampleSize)
		}
	}
	if len(r.Cumulative) > 0 && r.Params.Kind != KindBinomial {
		return fmt.Errorf("cumulative table present for %s parameters", r.Params.Kind)
	}
	return nil
}

// Marshal serializes the result losslessly. Integer frequency keys encode as
// JSON object keys (strings) and decode back to integers.
func (r *GenerationResult) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

// UnmarshalResult decodes a persisted result and re-checks its invariants
func UnmarshalResult(data []byte) (*GenerationResult, error) {
	var r GenerationResult
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode generation result: %w", err)
	}
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("decoded generation result is inconsistent: %w", err)
	}
	return &r, nil
}
