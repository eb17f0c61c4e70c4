// checkpoint persists the progress of a sampling run in a bolt
// database, so an interrupted chain can be resumed from its last
// position.
package checkpoint

import (
	"encoding/json"
	"time"

	"github.com/op/go-logging"

	bolt "go.etcd.io/bbolt"
)

// log is the global logging variable.
var log = logging.MustGetLogger("checkpoint")

// MAIN is the key name for all checkpoints.
var MAIN = []byte("main")

// ChainState stores the progress of a chain.
type ChainState struct {
	// State is the current chain position.
	State []float64
	// Scalar is true if the position is a scalar.
	Scalar bool
	// Iter is the last completed iteration.
	Iter int
	// Accepted is the number of accepted steps so far.
	Accepted int
	// Rejected is the number of rejected steps so far.
	Rejected int
	// Final is true when the run finished.
	Final bool
}

// CheckpointIO saves and loads chain checkpoints.
type CheckpointIO struct {
	db      *bolt.DB
	key     []byte
	last    time.Time
	seconds float64
}

// NewCheckpointIO creates a new CheckpointIO saving at most every
// seconds seconds.
func NewCheckpointIO(db *bolt.DB, key []byte, seconds float64) *CheckpointIO {
	return &CheckpointIO{
		db:      db,
		key:     key,
		seconds: seconds,
	}
}

// Save saves the chain state to the database.
func (s *CheckpointIO) Save(state *ChainState) error {
	// Even if saving fails, we do not want to run this code too
	// often.
	s.SetNow()
	b, err := json.Marshal(state)
	if err != nil {
		log.Error("Error serializing checkpoint:", err)
		return err
	}
	err = SaveData(s.db, s.key, b)
	if err != nil {
		log.Error("Error saving checkpoint:", err)
	}
	return err
}

// GetState returns the saved chain state, or nil if there is none.
func (s *CheckpointIO) GetState() (*ChainState, error) {
	b, err := LoadData(s.db, s.key)
	if err != nil || b == nil {
		return nil, err
	}

	var state *ChainState
	err = json.Unmarshal(b, &state)
	if err != nil {
		return nil, err
	}
	if state == nil || len(state.State) == 0 {
		return nil, nil
	}

	if state.Final {
		log.Noticef("Found finished chain checkpoint (iter=%v)", state.Iter)
	} else {
		log.Noticef("Found unfinished chain checkpoint (iter=%v)", state.Iter)
	}
	return state, nil
}

// Old returns true if the last checkpoint save was too long ago.
func (s *CheckpointIO) Old() bool {
	return time.Since(s.last).Seconds() > s.seconds
}

// SetNow sets the last checkpoint time to now.
func (s *CheckpointIO) SetNow() {
	s.last = time.Now()
}

// SaveData saves a value in the bolt database.
func SaveData(db *bolt.DB, key []byte, data []byte) error {
	if db == nil {
		return nil
	}
	return db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(MAIN)
		if err != nil {
			return err
		}
		return b.Put(key, data)
	})
}

// LoadData loads a value from the bolt database.
func LoadData(db *bolt.DB, key []byte) ([]byte, error) {
	if db == nil {
		return nil, nil
	}
	var data []byte
	err := db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(MAIN)
		if b == nil {
			return nil
		}
		v := b.Get(key)
		if v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}
