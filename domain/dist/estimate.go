package dist

// Estimate pairs sample moments computed from one generation batch with the
// exact theoretical moments of the originating parameters.
type Estimate struct {
	Label                   string  `json:"label"`
	SampleSize              int     `json:"sample_size"`
	SampleMean              float64 `json:"sample_mean"`
	TheoreticalMean         float64 `json:"theoretical_mean"`
	SampleVariance          float64 `json:"sample_variance"`
	CorrectedSampleVariance float64 `json:"corrected_sample_variance"`
	TheoreticalVariance     float64 `json:"theoretical_variance"`
	SampleSigma             float64 `json:"sample_sigma"`
	TheoreticalSigma        float64 `json:"theoretical_sigma"`
}

// ErrorDetail records one misclassification interval of a two-class
// Bayesian classifier: the region, which class loses there, and the
// prior-weighted probability mass lost. Derivation is a human-readable
// trail for explainability, never an input to computation.
type ErrorDetail struct {
	Lower        float64 `json:"lower"`
	Upper        float64 `json:"upper"`
	LosingClass  string  `json:"losing_class"`
	LosingParams Params  `json:"losing_params"`
	Prior        float64 `json:"prior"`
	Mass         float64 `json:"mass"`
	Derivation   string  `json:"derivation"`
}
