package kepler

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// PQW2ECI returns the direction cosine matrix which maps perifocal vectors to the inertial frame,
// i.e. R3(-Ω)*R1(-i)*R3(-ω).
// No convention is applied here: callers pass Ω = 0 for equatorial orbits and ω = 0 for circular ones.
func PQW2ECI(i, ω, Ω float64) *mat.Dense {
	var R1R3, dcm mat.Dense
	R1R3.Mul(R1(-i), R3(-ω))
	dcm.Mul(R3(-Ω), &R1R3)
	return &dcm
}

// R1 rotation about the 1st axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a 3x3 matrix with a vector.
func MxV33(m mat.Matrix, v [3]float64) [3]float64 {
	var rVec mat.VecDense
	rVec.MulVec(m, mat.NewVecDense(3, v[:]))
	return [3]float64{rVec.AtVec(0), rVec.AtVec(1), rVec.AtVec(2)}
}
