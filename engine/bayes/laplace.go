package bayes

import "sort"

// laplaceStep is the tabulation step of the Laplace function table
const laplaceStep = 0.05

// laplaceMax is the last tabulated argument; beyond it the function is
// clamped to its 0.5 asymptote.
const laplaceMax = 4.0

// laplaceTable holds Phi0(z) = Phi(z) - 0.5 for z = 0.00, 0.05, ..., 4.00.
// Standard four-decimal tabulation; entry i corresponds to z = i*0.05.
var laplaceTable = []float64{
	0.0000, 0.0199, 0.0398, 0.0596, 0.0793, 0.0987,
	0.1179, 0.1368, 0.1554, 0.1736, 0.1915, 0.2088,
	0.2257, 0.2422, 0.2580, 0.2734, 0.2881, 0.3023,
	0.3159, 0.3289, 0.3413, 0.3531, 0.3643, 0.3749,
	0.3849, 0.3944, 0.4032, 0.4115, 0.4192, 0.4265,
	0.4332, 0.4394, 0.4452, 0.4505, 0.4554, 0.4599,
	0.4641, 0.4678, 0.4713, 0.4744, 0.4772, 0.4798,
	0.4821, 0.4842, 0.4861, 0.4878, 0.4893, 0.4906,
	0.4918, 0.4929, 0.4938, 0.4946, 0.4953, 0.4960,
	0.4965, 0.4970, 0.4974, 0.4978, 0.4981, 0.4984,
	0.4987, 0.4989, 0.4990, 0.4992, 0.4993, 0.4994,
	0.4995, 0.4996, 0.4997, 0.4997, 0.4998, 0.4998,
	0.4998, 0.4999, 0.4999, 0.4999, 0.4999, 0.4999,
	0.5000, 0.5000, 0.5000,
}

// Laplace evaluates the tabulated Laplace function Phi0(z) for z >= 0 by
// binary search for the bracketing table pair and linear interpolation
// between them. Arguments at or past 4.0 clamp to 0.5.
func Laplace(z float64) float64 {
	if z < 0 {
		z = -z
	}
	if z >= laplaceMax {
		return 0.5
	}

	// First tabulated argument >= z
	hi := sort.Search(len(laplaceTable), func(i int) bool {
		return float64(i)*laplaceStep >= z
	})
	if hi == 0 {
		return laplaceTable[0]
	}
	lo := hi - 1

	zLo := float64(lo) * laplaceStep
	frac := (z - zLo) / laplaceStep
	return laplaceTable[lo] + frac*(laplaceTable[hi]-laplaceTable[lo])
}

// StandardNormalCDF evaluates Phi(z) from the tabulated Laplace function:
// 0.5 + Phi0(z) for z >= 0, 0.5 - Phi0(-z) otherwise.
func StandardNormalCDF(z float64) float64 {
	if z >= 0 {
		return 0.5 + Laplace(z)
	}
	return 0.5 - Laplace(-z)
}

// NormalCDF standardizes x by (x-m)/sigma and evaluates the tabulated CDF
func NormalCDF(x, m, sigma float64) float64 {
	return StandardNormalCDF((x - m) / sigma)
}
