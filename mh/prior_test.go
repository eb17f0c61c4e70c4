package mh

import (
	"math"
	"testing"
)

func appreq(a, b float64) bool {
	return math.Abs(a-b) <= 1e-6
}

func TestUniformPrior(tst *testing.T) {
	p := UniformPrior(0, 2, true, true)
	if !appreq(p(1), -math.Log(2)) {
		tst.Errorf("Expected %f, got %f", -math.Log(2), p(1))
	}
	if !math.IsInf(p(-0.5), -1) || !math.IsInf(p(2.5), -1) {
		tst.Error("Expected -Inf outside the support")
	}
	if math.IsInf(p(0), -1) || math.IsInf(p(2), -1) {
		tst.Error("Expected boundaries inside the support")
	}

	open := UniformPrior(0, 2, false, false)
	if !math.IsInf(open(0), -1) || !math.IsInf(open(2), -1) {
		tst.Error("Expected boundaries outside the support")
	}
}

func TestNormalPrior(tst *testing.T) {
	p := NormalPrior(0, 1)
	// standard normal density at 0
	if !appreq(p(0), -math.Log(math.Sqrt(2*math.Pi))) {
		tst.Errorf("Incorrect standard normal log density at 0: %f", p(0))
	}
	if !appreq(p(1)-p(0), -0.5) {
		tst.Error("Incorrect standard normal log density ratio")
	}
}

func TestGammaPrior(tst *testing.T) {
	// shape=1, scale=1 is Exponential(1)
	g := GammaPrior(1, 1, false)
	e := ExponentialPrior(1, false)
	for _, x := range []float64{0.1, 1, 5} {
		if !appreq(g(x), e(x)) {
			tst.Errorf("Gamma(1,1) and Exponential(1) differ at %v: %f vs %f", x, g(x), e(x))
		}
	}
	if !math.IsInf(g(-1), -1) || !math.IsInf(g(0), -1) {
		tst.Error("Expected -Inf outside the support")
	}
}

func TestTruncatedGammaPrior(tst *testing.T) {
	g := GammaPrior(2, 1, false)
	t := TruncatedGammaPrior(2, 1, 3, false)
	// truncation renormalizes by a constant factor > 1
	d := t(1) - g(1)
	if d <= 0 {
		tst.Error("Truncated density should exceed the untruncated one inside the support")
	}
	if !appreq(t(2)-g(2), d) {
		tst.Error("Truncation must shift the log density by a constant")
	}
	if !math.IsInf(t(4), -1) {
		tst.Error("Expected -Inf past the truncation point")
	}
}

func TestProductPrior(tst *testing.T) {
	p := ProductPrior(NormalPrior(0, 1), NormalPrior(1, 2))
	if !appreq(p(0.5), NormalPrior(0, 1)(0.5)+NormalPrior(1, 2)(0.5)) {
		tst.Error("Product of densities should sum in log space")
	}
}

func TestPriorAdapters(tst *testing.T) {
	f := NormalPrior(0, 1)
	if !appreq(ScalarPrior(f)(Scalar(0.7)), f(0.7)) {
		tst.Error("ScalarPrior does not apply the density to the scalar value")
	}
	if !appreq(IIDPrior(f)(Vector([]float64{0.3, 0.7})), f(0.3)+f(0.7)) {
		tst.Error("IIDPrior does not sum over components")
	}
}
