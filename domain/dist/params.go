package dist

import (
	"fmt"

	"distlab/domain/core"
)

// Kind identifies a supported distribution family
type Kind string

const (
	KindBinomial Kind = "binomial"
	KindUniform  Kind = "uniform"
	KindNormal   Kind = "normal"
)

// Valid reports whether the kind names a supported family
func (k Kind) Valid() bool {
	switch k {
	case KindBinomial, KindUniform, KindNormal:
		return true
	}
	return false
}

// ParseKind parses a string into a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", core.NewUnsupportedError(s)
	}
	return k, nil
}

// Params is the closed set of distribution parameters. Exactly the fields
// of the declared Kind are meaningful; consumers dispatch on Kind with an
// exhaustive switch and treat any other value as core.ErrUnsupportedDistribution.
//
// INVARIANTS (enforced by the constructors):
// - Binomial: N >= 0, P in [0,1]
// - Uniform:  A < B
// - Normal:   Sigma > 0
type Params struct {
	Kind Kind `json:"kind"`

	// Binomial
	N int     `json:"n,omitempty"`
	P float64 `json:"p,omitempty"`

	// Uniform
	A float64 `json:"a,omitempty"`
	B float64 `json:"b,omitempty"`

	// Normal
	M     float64 `json:"m,omitempty"`
	Sigma float64 `json:"sigma,omitempty"`
}

// NewBinomial builds validated binomial parameters
func NewBinomial(n int, p float64) (Params, error) {
	if n < 0 {
		return Params{}, core.NewParameterError("n", fmt.Sprintf("must be non-negative, got %d", n))
	}
	if p < 0 || p > 1 {
		return Params{}, core.NewParameterError("p", fmt.Sprintf("must be in [0,1], got %g", p))
	}
	return Params{Kind: KindBinomial, N: n, P: p}, nil
}

// NewUniform builds validated uniform parameters
func NewUniform(a, b float64) (Params, error) {
	if a >= b {
		return Params{}, core.NewParameterError("a,b", fmt.Sprintf("requires a < b, got a=%g b=%g", a, b))
	}
	return Params{Kind: KindUniform, A: a, B: b}, nil
}

// NewNormal builds validated normal parameters
func NewNormal(m, sigma float64) (Params, error) {
	if sigma <= 0 {
		return Params{}, core.NewParameterError("sigma", fmt.Sprintf("must be positive, got %g", sigma))
	}
	return Params{Kind: KindNormal, M: m, Sigma: sigma}, nil
}

// Validate re-checks the constructor invariants, for parameters that
// arrive over the wire rather than through a constructor.
func (p Params) Validate() error {
	switch p.Kind {
	case KindBinomial:
		_, err := NewBinomial(p.N, p.P)
		return err
	case KindUniform:
		_, err := NewUniform(p.A, p.B)
		return err
	case KindNormal:
		_, err := NewNormal(p.M, p.Sigma)
		return err
	default:
		return core.NewUnsupportedError(string(p.Kind))
	}
}

// Label returns a human-readable description of the parameter set
func (p Params) Label() string {
	switch p.Kind {
	case KindBinomial:
		return fmt.Sprintf("Binomial(n=%d, p=%g)", p.N, p.P)
	case KindUniform:
		return fmt.Sprintf("Uniform(a=%g, b=%g)", p.A, p.B)
	case KindNormal:
		return fmt.Sprintf("Normal(m=%g, sigma=%g)", p.M, p.Sigma)
	default:
		return fmt.Sprintf("Unknown(%s)", p.Kind)
	}
}
