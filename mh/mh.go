// Package mh implements a Metropolis-Hastings sampler: it drives a
// chain of propose, score, accept-or-reject steps whose stationary
// distribution approximates a caller-supplied unnormalized target.
// The acceptance rule (Scorer) and the output discipline (Sink) are
// interchangeable strategies around a single loop.
package mh

import (
	"math"
	"math/rand"

	"github.com/op/go-logging"
	"github.com/pkg/errors"

	"github.com/bayeskit/mhchain/checkpoint"
)

// log is the global logging variable.
var log = logging.MustGetLogger("mh")

// Proposal generates a candidate state from the current state,
// possibly stochastically. The candidate must have the same shape as
// the current state.
type Proposal func(s State) State

// Uniform is a source of uniform [0, 1) variates consumed by the
// accept decision. *rand.Rand implements it.
type Uniform interface {
	Float64() float64
}

// globalRand draws from the process-global math/rand stream, which
// the caller seeds once at startup.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Sampler is a Metropolis-Hastings chain driver. The chain is purely
// sequential; proposal and scoring functions are never called
// concurrently.
type Sampler struct {
	Proposal Proposal
	Scorer   Scorer
	// AccPeriod is the number of iterations between acceptance
	// rate reports.
	AccPeriod int
	// Quiet disables acceptance rate reporting.
	Quiet bool

	rng      Uniform
	cp       *checkpoint.CheckpointIO
	accepted int
	rejected int
}

// New creates a sampler for the given proposal and acceptance rule.
func New(proposal Proposal, scorer Scorer) *Sampler {
	return &Sampler{
		Proposal:  proposal,
		Scorer:    scorer,
		AccPeriod: 200,
		rng:       globalRand{},
	}
}

// SetRand replaces the uniform source used for accept decisions.
// Exactly one variate is consumed per step, and only when the
// unconditional-accept test fails, so chains are reproducible for a
// fixed source.
func (s *Sampler) SetRand(u Uniform) {
	s.rng = u
}

// SetCheckpointIO enables periodic saving of the chain position.
func (s *Sampler) SetCheckpointIO(cp *checkpoint.CheckpointIO) {
	s.cp = cp
}

// Accepted returns the number of accepted steps of the last run.
func (s *Sampler) Accepted() int {
	return s.accepted
}

// Rejected returns the number of rejected steps of the last run.
func (s *Sampler) Rejected() int {
	return s.rejected
}

// Run samples a chain of the given total length starting from
// initial and routes every step to the sink. The initial state
// occupies position 0 and is never subject to accept/reject; steps
// run for i = 1..samples-1. burnIn is the fraction of the run
// converted once to the cutoff index floor(samples*burnIn); steps
// before the cutoff advance the chain but sinks supporting trimming
// do not record them. Scoring failures abort the run.
func (s *Sampler) Run(initial State, samples int, burnIn float64, sink Sink) error {
	if s.Proposal == nil || s.Scorer == nil {
		return errors.Wrap(ErrInvalidArgument, "sampler needs a proposal and a scorer")
	}
	if samples < 1 {
		return errors.Wrapf(ErrInvalidArgument, "samples must be >= 1, got %d", samples)
	}
	if burnIn < 0 || burnIn > 1 {
		return errors.Wrapf(ErrInvalidArgument, "burn-in must be in [0, 1], got %v", burnIn)
	}
	if len(initial.values) == 0 {
		return errors.Wrap(ErrInvalidArgument, "empty initial state")
	}

	burnInIdx := int(float64(samples) * burnIn)
	sink.Init(initial, samples, burnInIdx)

	s.accepted = 0
	s.rejected = 0
	x := initial
	accepted := 0
	for i := 1; i < samples; i++ {
		if i%s.AccPeriod == 0 {
			if !s.Quiet {
				log.Infof("Acceptance rate %.2f%%", 100*float64(accepted)/float64(s.AccPeriod))
			}
			accepted = 0
		}

		cand := s.Proposal(x)
		ratio, inLog, err := s.Scorer.Ratio(x, cand)
		if err != nil {
			return errors.Wrapf(err, "iteration %d", i)
		}

		// The fast path accepts without touching the random
		// stream; exponentiation only happens for a negative
		// log ratio, so a large positive ratio cannot
		// overflow.
		var acc bool
		if inLog {
			acc = ratio >= 0 || s.rng.Float64() < math.Exp(ratio)
		} else {
			acc = ratio >= 1 || s.rng.Float64() < ratio
		}

		if acc {
			x = cand
			accepted++
			s.accepted++
		} else {
			s.rejected++
		}
		sink.Record(i, cand, acc, x)

		if s.cp != nil && s.cp.Old() {
			s.saveCheckpoint(x, i, false)
		}
	}

	if s.cp != nil {
		s.saveCheckpoint(x, samples-1, true)
	}
	return nil
}

func (s *Sampler) saveCheckpoint(x State, iter int, final bool) {
	s.cp.Save(&checkpoint.ChainState{
		State:    x.Values(),
		Scalar:   x.IsScalar(),
		Iter:     iter,
		Accepted: s.accepted,
		Rejected: s.rejected,
		Final:    final,
	})
}
