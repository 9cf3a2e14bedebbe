package bayes

import (
	"fmt"
	"math"

	"distlab/domain/core"
	"distlab/domain/dist"
)

// Class is one side of a two-class Bayesian classifier
type Class struct {
	Name   string      `json:"name"`
	Params dist.Params `json:"params"`
	Prior  float64     `json:"prior"`
}

// boundaryGridSteps is the scan resolution for locating posterior sign
// flips before bisection refinement
const boundaryGridSteps = 400

// bisectIterations halves the bracket down to ~1e-12 of the window width
const bisectIterations = 60

func validateClasses(a, b Class) error {
	if a.Prior < 0 || a.Prior > 1 {
		return fmt.Errorf("%w: class %q prior %g", core.ErrInvalidPrior, a.Name, a.Prior)
	}
	if b.Prior < 0 || b.Prior > 1 {
		return fmt.Errorf("%w: class %q prior %g", core.ErrInvalidPrior, b.Name, b.Prior)
	}
	if err := a.Params.Validate(); err != nil {
		return err
	}
	return b.Params.Validate()
}

// window merges both classes' analysis bounds into one scan range
func window(a, b Class) (float64, float64, error) {
	loA, hiA, err := Bounds(a.Params)
	if err != nil {
		return 0, 0, err
	}
	loB, hiB, err := Bounds(b.Params)
	if err != nil {
		return 0, 0, err
	}
	return math.Min(loA, loB), math.Max(hiA, hiB), nil
}

// score is the prior-weighted density the classifier compares
func score(c Class, x float64) (float64, error) {
	d, err := Density(c.Params, x)
	if err != nil {
		return 0, err
	}
	return c.Prior * d, nil
}

// Boundaries locates the classification boundaries of two classes: the
// points in the merged analysis window where the prior-weighted densities
// cross. Grid scan for a sign change, then bisection on each bracket.
func Boundaries(a, b Class) ([]float64, error) {
	if err := validateClasses(a, b); err != nil {
		return nil, err
	}
	lo, hi, err := window(a, b)
	if err != nil {
		return nil, err
	}

	diff := func(x float64) (float64, error) {
		sa, err := score(a, x)
		if err != nil {
			return 0, err
		}
		sb, err := score(b, x)
		if err != nil {
			return 0, err
		}
		return sa - sb, nil
	}

	sign := func(v float64) int {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		}
		return 0
	}

	var boundaries []float64
	step := (hi - lo) / boundaryGridSteps
	first, err := diff(lo)
	if err != nil {
		return nil, err
	}
	lastSign := sign(first)
	lastX := lo
	zeroStart := lo
	inZeroRun := lastSign == 0
	for i := 1; i <= boundaryGridSteps; i++ {
		x := lo + float64(i)*step
		cur, err := diff(x)
		if err != nil {
			return nil, err
		}
		s := sign(cur)
		switch {
		case s == 0:
			// Zero plateau; remember where it started so a flip on the
			// far side collapses to a single crossing point.
			if !inZeroRun {
				inZeroRun = true
				zeroStart = x
			}
		case lastSign == 0 || s == lastSign:
			lastSign, lastX, inZeroRun = s, x, false
		default:
			if inZeroRun {
				boundaries = append(boundaries, (zeroStart+x-step)/2)
			} else {
				root, err := bisect(diff, lastX, x)
				if err != nil {
					return nil, err
				}
				boundaries = append(boundaries, root)
			}
			lastSign, lastX, inZeroRun = s, x, false
		}
	}
	return boundaries, nil
}

func bisect(f func(float64) (float64, error), lo, hi float64) (float64, error) {
	fLo, err := f(lo)
	if err != nil {
		return 0, err
	}
	for i := 0; i < bisectIterations; i++ {
		mid := (lo + hi) / 2
		fMid, err := f(mid)
		if err != nil {
			return 0, err
		}
		if fMid == 0 {
			return mid, nil
		}
		if fLo*fMid < 0 {
			hi = mid
		} else {
			lo = mid
			fLo = fMid
		}
	}
	return (lo + hi) / 2, nil
}

// MisclassificationError partitions the analysis window at the class
// boundaries, determines the losing class on each segment, and integrates
// its prior-weighted density there. Returns the boundaries, the per-segment
// records and the total Bayes error mass.
func MisclassificationError(a, b Class) ([]float64, []dist.ErrorDetail, float64, error) {
	boundaries, err := Boundaries(a, b)
	if err != nil {
		return nil, nil, 0, err
	}
	lo, hi, err := window(a, b)
	if err != nil {
		return nil, nil, 0, err
	}

	edges := append([]float64{lo}, boundaries...)
	edges = append(edges, hi)

	var details []dist.ErrorDetail
	total := 0.0
	for i := 0; i+1 < len(edges); i++ {
		segLo, segHi := edges[i], edges[i+1]
		if segHi-segLo <= 0 {
			continue
		}
		massA, err := Integrate(a.Params, segLo, segHi, a.Prior)
		if err != nil {
			return nil, nil, 0, err
		}
		massB, err := Integrate(b.Params, segLo, segHi, b.Prior)
		if err != nil {
			return nil, nil, 0, err
		}

		// Between adjacent boundaries one class dominates pointwise, so
		// the smaller prior-weighted mass identifies the losing class.
		loser, mass := a, massA
		if massB <= massA {
			loser, mass = b, massB
		}
		total += mass
		details = append(details, dist.ErrorDetail{
			Lower:        segLo,
			Upper:        segHi,
			LosingClass:  loser.Name,
			LosingParams: loser.Params,
			Prior:        loser.Prior,
			Mass:         mass,
			Derivation: fmt.Sprintf(
				"on [%.4f, %.4f] class %q is outweighed (%.6g vs %.6g); error mass = %.2g * P(%s in segment) = %.6g",
				segLo, segHi, loser.Name, math.Min(massA, massB), math.Max(massA, massB),
				loser.Prior, loser.Params.Label(), mass),
		})
	}
	return boundaries, details, total, nil
}
