package id

import (
	"errors"
	"sync"
	"time"

	"github.com/eos420/indexer-api/internal/adapter"
)

const (
	TimeBits     = 40
	MachineBits  = 16
	SequenceBits = 7

	machineShift = SequenceBits
	timeShift    = SequenceBits + MachineBits

	maxTick     = int64(1)<<TimeBits - 1
	maxSequence = uint16(1)<<SequenceBits - 1

	// DefaultMachineID marks a process whose machine id was never configured
	DefaultMachineID uint16 = 0xFFFF
)

// Epoch is the zero point of the timestamp field (2023-01-01T00:00:00Z)
var Epoch = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

var (
	// ErrBeforeEpoch is returned when the clock reads earlier than Epoch
	ErrBeforeEpoch = errors.New("clock is before snowflake epoch")
	// ErrTimeExhausted is returned once the timestamp field can no longer hold the clock
	ErrTimeExhausted = errors.New("snowflake timestamp bits exhausted")
)

// Parts is a decomposed identifier
type Parts struct {
	Time      time.Time
	MachineID uint16
	Sequence  uint16
}

// Generator produces 64-bit identifiers that are strictly increasing within
// the process and unique across processes with distinct machine ids.
// It is safe for concurrent use.
type Generator struct {
	clock     adapter.Clock
	machineID uint16

	mu       sync.Mutex
	lastTick int64
	sequence uint16
}

// New creates a generator for the given machine id. Callers warn about an
// unset DefaultMachineID.
func New(machineID uint16, clock adapter.Clock) *Generator {
	return &Generator{
		clock:     clock,
		machineID: machineID,
		lastTick:  -1,
	}
}

// MachineID returns the machine id embedded in every identifier
func (g *Generator) MachineID() uint16 {
	return g.machineID
}

// Next returns the next identifier. When the sequence for the current
// millisecond is used up, or the clock moved backwards, it waits for the
// clock to pass the last tick instead of reusing a value.
func (g *Generator) Next() (int64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	tick, err := g.tick()
	if err != nil {
		return 0, err
	}

	if tick <= g.lastTick {
		// same millisecond, or the clock regressed
		tick = g.lastTick
		g.sequence = (g.sequence + 1) & maxSequence
		if g.sequence == 0 {
			tick, err = g.waitAfter(g.lastTick)
			if err != nil {
				return 0, err
			}
		}
	} else {
		g.sequence = 0
	}

	if tick > maxTick {
		return 0, ErrTimeExhausted
	}
	g.lastTick = tick

	return tick<<timeShift | int64(g.machineID)<<machineShift | int64(g.sequence), nil
}

func (g *Generator) tick() (int64, error) {
	elapsed := g.clock.Now().Sub(Epoch)
	if elapsed < 0 {
		return 0, ErrBeforeEpoch
	}
	return elapsed.Milliseconds(), nil
}

func (g *Generator) waitAfter(last int64) (int64, error) {
	for {
		g.clock.Sleep(100 * time.Microsecond)
		tick, err := g.tick()
		if err != nil {
			return 0, err
		}
		if tick > last {
			return tick, nil
		}
	}
}

// Decompose splits an identifier into its fields
func Decompose(id int64) Parts {
	return Parts{
		Time:      Epoch.Add(time.Duration(id>>timeShift) * time.Millisecond),
		MachineID: uint16(id >> machineShift),
		Sequence:  uint16(id) & maxSequence,
	}
}
