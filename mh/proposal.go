package mh

import (
	"math/rand"

	"github.com/gonum/matrix/mat64"
)

// Rand returns a random value in the range [0, 1], including 1.
func Rand() float64 {
	// 1.0 is not included and we would like to be symmetric
	r := float64(1)
	for r > 0.999 {
		r = rand.Float64()
	}
	return r / 0.999
}

// NormalProposal returns a symmetric random-walk proposal adding
// independent normal noise with the given standard deviation to every
// component.
func NormalProposal(sd float64) Proposal {
	if sd <= 0 {
		panic("sd should be > 0")
	}
	return func(s State) State {
		values := make([]float64, len(s.values))
		for i, v := range s.values {
			values[i] = v + rand.NormFloat64()*sd
		}
		return State{values: values, scalar: s.scalar}
	}
}

// UniformProposal returns a symmetric random-walk proposal adding
// uniform noise of the given width to every component.
func UniformProposal(width float64) Proposal {
	if width <= 0 {
		panic("width should be > 0")
	}
	return func(s State) State {
		values := make([]float64, len(s.values))
		for i, v := range s.values {
			values[i] = v + Rand()*width - width/2
		}
		return State{values: values, scalar: s.scalar}
	}
}

// CorrelatedProposal returns a multivariate normal random-walk
// proposal with the given covariance matrix for vector states of
// matching dimension. The covariance must be positive definite.
func CorrelatedProposal(sigma *mat64.SymDense) Proposal {
	n := sigma.Symmetric()
	var chol mat64.Cholesky
	if ok := chol.Factorize(sigma); !ok {
		panic("covariance matrix is not positive definite")
	}
	l := mat64.NewTriDense(n, false, nil)
	l.LFromCholesky(&chol)

	return func(s State) State {
		if len(s.values) != n {
			panic("state dimension does not match covariance")
		}
		z := make([]float64, n)
		for i := range z {
			z[i] = rand.NormFloat64()
		}
		step := mat64.NewVector(n, nil)
		step.MulVec(l, mat64.NewVector(n, z))
		values := make([]float64, n)
		for i, v := range s.values {
			values[i] = v + step.At(i, 0)
		}
		return State{values: values, scalar: s.scalar}
	}
}
