package mh

import (
	"math"
	"math/rand"
	"testing"

	"github.com/gonum/matrix/mat64"
)

func TestRand(tst *testing.T) {
	rand.Seed(31)
	for i := 0; i < 1000; i++ {
		r := Rand()
		if r < 0 || r > 1 {
			tst.Fatalf("Rand() out of [0, 1]: %v", r)
		}
	}
}

func TestNormalProposal(tst *testing.T) {
	rand.Seed(32)
	p := NormalProposal(0.1)

	s := p(Scalar(1))
	if !s.IsScalar() {
		tst.Error("Proposal changed a scalar into a vector")
	}

	v := p(Vector([]float64{1, 2, 3}))
	if v.Dim() != 3 {
		tst.Errorf("Expected dimension 3, got %d", v.Dim())
	}
}

func TestUniformProposal(tst *testing.T) {
	rand.Seed(33)
	width := 0.5
	p := UniformProposal(width)
	for i := 0; i < 1000; i++ {
		s := p(Scalar(2))
		if math.Abs(s.Float()-2) > width/2 {
			tst.Fatalf("Step %v exceeds half width %v", s.Float()-2, width/2)
		}
	}
}

func TestCorrelatedProposal(tst *testing.T) {
	rand.Seed(34)
	sigma := mat64.NewSymDense(2, []float64{
		1, 0.5,
		0.5, 1,
	})
	p := CorrelatedProposal(sigma)

	s := p(Vector([]float64{0, 0}))
	if s.Dim() != 2 {
		tst.Errorf("Expected dimension 2, got %d", s.Dim())
	}
	for _, v := range s.Values() {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			tst.Errorf("Non-finite proposal component %v", v)
		}
	}
}

func TestProposalPanics(tst *testing.T) {
	defer func() {
		if recover() == nil {
			tst.Error("Expected a panic for a non-positive sd")
		}
	}()
	NormalProposal(0)
}
