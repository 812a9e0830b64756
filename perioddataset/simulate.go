package perioddataset

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/floats"
)

// GenerateP generates n periods starting at start with the given spacing.
func GenerateP(start, n, step int) []int {
	p := make([]int, 0, n)
	for i := 0; i < n; i++ {
		p = append(p, start+i*step)
	}
	return p
}

type Series []float64

func (s Series) Add(src Series) Series {
	floats.Add(s, src)
	return s
}

func GenerateConstY(n int, val float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, val)
	}
	return Series(y)
}

// GenerateLinearY generates a linear trend series, bias + slope*i.
func GenerateLinearY(n int, bias, slope float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, bias+slope*float64(i))
	}
	return Series(y)
}

// GenerateDampedY generates a flattening trend series where the per-period
// increment shrinks geometrically by phi.
func GenerateDampedY(n int, bias, slope, phi float64) Series {
	y := make([]float64, 0, n)
	val := bias
	for i := 0; i < n; i++ {
		y = append(y, val)
		val += slope * math.Pow(phi, float64(i))
	}
	return Series(y)
}

func GenerateNoise(n int, scale float64) Series {
	y := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		y = append(y, rand.NormFloat64()*scale)
	}
	return Series(y)
}
