package mh

import (
	"math"

	"github.com/pkg/errors"
)

// LogLikelihood computes the log-likelihood of the observed data
// given a state. The data is passed through the sampler opaquely.
type LogLikelihood func(s State, data interface{}) float64

// LogPrior computes the log of the prior density of a state.
type LogPrior func(s State) float64

// Prior computes the prior density of a state in linear space. It
// must be positive for every state the proposal can reach.
type Prior func(s State) float64

// Scorer computes the acceptance ratio between a candidate state and
// the current state. inLog reports whether the ratio is a log-space
// difference rather than a linear-space ratio.
type Scorer interface {
	Ratio(cur, cand State) (ratio float64, inLog bool, err error)
}

// scoreCache remembers the scores of the two states seen on the
// previous call. The chain advances to either the old current state
// or the old candidate, so the new current state is always a cache
// hit and is not rescored.
type scoreCache struct {
	states [2]State
	scores [2]float64
	n      int
}

func (c *scoreCache) lookup(s State) (float64, bool) {
	for i := 0; i < c.n; i++ {
		if c.states[i].equal(s) {
			return c.scores[i], true
		}
	}
	return 0, false
}

func (c *scoreCache) store(cur, cand State, scur, scand float64) {
	c.states[0], c.scores[0] = cur, scur
	c.states[1], c.scores[1] = cand, scand
	c.n = 2
}

// LogPosterior scores states by log-likelihood plus log-prior. The
// acceptance ratio is the log-posterior difference.
type LogPosterior struct {
	logL  LogLikelihood
	logP  LogPrior
	data  interface{}
	cache scoreCache
}

// NewLogPosterior creates a log-posterior scorer from a
// log-likelihood, a log-prior and the observed data.
func NewLogPosterior(logL LogLikelihood, logP LogPrior, data interface{}) *LogPosterior {
	return &LogPosterior{logL: logL, logP: logP, data: data}
}

// Ratio returns the log-posterior difference between cand and cur.
func (p *LogPosterior) Ratio(cur, cand State) (float64, bool, error) {
	scur, ok := p.cache.lookup(cur)
	if !ok {
		scur = p.logL(cur, p.data) + p.logP(cur)
	}
	scand := p.logL(cand, p.data) + p.logP(cand)
	p.cache.store(cur, cand, scur, scand)
	return scand - scur, true, nil
}

// RawPosterior scores states by log-likelihood plus the log of a
// linear-space prior. The prior must be positive; a zero or negative
// value aborts the run with ErrScoring instead of corrupting the
// chain with a NaN score.
type RawPosterior struct {
	logL  LogLikelihood
	prior Prior
	data  interface{}
	cache scoreCache
}

// NewRawPosterior creates a scorer from a log-likelihood and a prior
// in linear space.
func NewRawPosterior(logL LogLikelihood, prior Prior, data interface{}) *RawPosterior {
	return &RawPosterior{logL: logL, prior: prior, data: data}
}

func (p *RawPosterior) score(s State) (float64, error) {
	pr := p.prior(s)
	if pr <= 0 {
		return 0, errors.Wrapf(ErrScoring, "prior returned non-positive value %v", pr)
	}
	return p.logL(s, p.data) + math.Log(pr), nil
}

// Ratio returns the log-posterior difference between cand and cur.
func (p *RawPosterior) Ratio(cur, cand State) (float64, bool, error) {
	scur, ok := p.cache.lookup(cur)
	if !ok {
		var err error
		scur, err = p.score(cur)
		if err != nil {
			return 0, true, err
		}
	}
	scand, err := p.score(cand)
	if err != nil {
		return 0, true, err
	}
	p.cache.store(cur, cand, scur, scand)
	return scand - scur, true, nil
}

// AcceptanceFunc is a caller-supplied acceptance-probability ratio in
// linear space. It implements Scorer directly: a value >= 1 means
// unconditional acceptance.
type AcceptanceFunc func(cur, cand State) float64

// Ratio returns the linear-space ratio computed by the function.
func (f AcceptanceFunc) Ratio(cur, cand State) (float64, bool, error) {
	return f(cur, cand), false, nil
}
