package dist

// GeneratedValue is one sample outcome together with the uniform draws that
// produced it. Created by a generator, owned by the GenerationResult that
// holds it.
type GeneratedValue struct {
	Value float64   `json:"value"`
	Draws []float64 `json:"draws"`

	// Per-family provenance. Exactly one of these is set, matching the
	// kind of the originating parameters.
	Binomial *BinomialDetail `json:"binomial,omitempty"`
	Uniform  *UniformDetail  `json:"uniform,omitempty"`
	Normal   *NormalDetail   `json:"normal,omitempty"`
}

// BinomialDetail records how a binomial draw resolved against the
// cumulative table
type BinomialDetail struct {
	CumulativeIndex int `json:"cumulative_index"`
}

// UniformDetail records the bounds the inverse CDF was solved against
type UniformDetail struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
}

// NormalDetail records the scaling inputs and the pre-scale standard variate
type NormalDetail struct {
	M             float64 `json:"m"`
	Sigma         float64 `json:"sigma"`
	StandardValue float64 `json:"standard_value"`
}
