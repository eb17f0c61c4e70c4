package main

import (
	"math"

	"github.com/pkg/errors"

	"github.com/bayeskit/mhchain/mh"
)

// normModel is a normal-distribution model for the observed data.
// The mean variant samples the posterior of the mean with a known
// noise standard deviation (scalar state); the meansd variant samples
// the mean and the log standard deviation (dimension-2 state).
type normModel struct {
	name    string
	sigma   float64
	muPrior func(float64) float64
	sdPrior func(float64) float64
}

func newNormModel(name string, sigma, priorMean, priorSD float64) (*normModel, error) {
	if sigma <= 0 {
		return nil, errors.New("sigma must be > 0")
	}
	if priorSD <= 0 {
		return nil, errors.New("priorsd must be > 0")
	}
	return &normModel{
		name:    name,
		sigma:   sigma,
		muPrior: mh.NormalPrior(priorMean, priorSD),
		sdPrior: mh.NormalPrior(0, 10),
	}, nil
}

// Initial returns the starting chain position.
func (m *normModel) Initial() mh.State {
	if m.name == "mean" {
		return mh.Scalar(0)
	}
	return mh.Vector([]float64{0, 0})
}

// params extracts the mean and the standard deviation from a state.
func (m *normModel) params(s mh.State) (mu, sd float64) {
	if m.name == "mean" {
		return s.Float(), m.sigma
	}
	v := s.Values()
	return v[0], math.Exp(v[1])
}

func (m *normModel) logLikelihood(s mh.State, data interface{}) float64 {
	xs := data.([]float64)
	mu, sd := m.params(s)
	c := -math.Log(sd * math.Sqrt(2*math.Pi))
	res := 0.0
	for _, x := range xs {
		d := (x - mu) / sd
		res += c - d*d/2
	}
	return res
}

func (m *normModel) logPrior(s mh.State) float64 {
	if m.name == "mean" {
		return m.muPrior(s.Float())
	}
	v := s.Values()
	return m.muPrior(v[0]) + m.sdPrior(v[1])
}

// Scorer returns a log-posterior scorer for the model and data.
func (m *normModel) Scorer(data []float64) mh.Scorer {
	return mh.NewLogPosterior(m.logLikelihood, m.logPrior, data)
}

// statesMeanSD computes the per-component empirical mean and standard
// deviation of a sequence of states.
func statesMeanSD(states []mh.State) (mean, sd []float64) {
	n := len(states[0].Values())
	mean = make([]float64, n)
	sd = make([]float64, n)
	for _, s := range states {
		for i, v := range s.Values() {
			mean[i] += v
		}
	}
	for i := range mean {
		mean[i] /= float64(len(states))
	}
	if len(states) < 2 {
		return mean, sd
	}
	for _, s := range states {
		for i, v := range s.Values() {
			sd[i] += (mean[i] - v) * (mean[i] - v)
		}
	}
	for i := range sd {
		sd[i] = math.Sqrt(sd[i] / float64(len(states)-1))
	}
	return mean, sd
}
