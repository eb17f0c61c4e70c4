package mh

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when sampler arguments are rejected
// before the first iteration.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrScoring is returned when a caller-supplied scoring function
// cannot produce a valid score, e.g. a non-positive prior in linear
// space. The run is aborted; no samples are salvaged.
var ErrScoring = errors.New("scoring failed")
