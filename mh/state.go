package mh

import (
	"strconv"

	"github.com/pkg/errors"
)

// State is a single chain position: either a real scalar or a
// fixed-dimension vector of reals. The dimension is fixed when the
// state is created; every state a proposal returns must have the same
// shape as the initial state.
type State struct {
	values []float64
	scalar bool
}

// Scalar creates a scalar state.
func Scalar(v float64) State {
	return State{values: []float64{v}, scalar: true}
}

// Vector creates a vector state. The slice is copied, so the caller
// may reuse it.
func Vector(v []float64) State {
	values := make([]float64, len(v))
	copy(values, v)
	return State{values: values}
}

// NewState creates a state from a dynamically typed initial value.
// Supported representations are float64, float32, int, []float64 and
// State itself. A [][]float64 has more than one dimension and is
// rejected, as is any other type.
func NewState(v interface{}) (State, error) {
	switch x := v.(type) {
	case State:
		return x, nil
	case float64:
		return Scalar(x), nil
	case float32:
		return Scalar(float64(x)), nil
	case int:
		return Scalar(float64(x)), nil
	case []float64:
		return Vector(x), nil
	case [][]float64:
		return State{}, errors.Wrap(ErrInvalidArgument, "initial state must be one dimensional")
	}
	return State{}, errors.Wrapf(ErrInvalidArgument, "unsupported initial state type %T", v)
}

// IsScalar returns true for a scalar state.
func (s State) IsScalar() bool {
	return s.scalar
}

// Dim returns the state dimension: 0 for a scalar, the vector length
// otherwise.
func (s State) Dim() int {
	if s.scalar {
		return 0
	}
	return len(s.values)
}

// Float returns the value of a scalar state.
func (s State) Float() float64 {
	return s.values[0]
}

// Values returns the underlying values. The slice must not be
// modified.
func (s State) Values() []float64 {
	return s.values
}

func (s State) String() (r string) {
	for i, v := range s.values {
		if i != 0 {
			r += "\t"
		}
		r += strconv.FormatFloat(v, 'f', 6, 64)
	}
	return
}

// equal compares two states by shape and values.
func (s State) equal(o State) bool {
	if s.scalar != o.scalar || len(s.values) != len(o.values) {
		return false
	}
	for i, v := range s.values {
		if v != o.values[i] {
			return false
		}
	}
	return true
}
