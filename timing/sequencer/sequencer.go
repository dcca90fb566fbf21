// Package sequencer provides the per-lane address-generation state machine.
//
// Each lane runs an identical sequencer instance, offset by its lane index.
// The sequencer walks the matrix address space in strides of 16: with 8
// lanes issuing 2 addresses each, one stride consumes 16 matrix entries per
// cycle, so 4096/16 = 256 strides exhaust the store. The per-lane starting
// offsets 0, 2, 4, ..., 14 combined with the stride partition the address
// space into 8 disjoint interleaved subsequences that together cover every
// entry exactly once.
package sequencer

// NumLanes is the number of parallel multiply-accumulate lanes.
const NumLanes = 8

// AddrsPerLane is the number of addresses each lane issues per cycle,
// one per store read port.
const AddrsPerLane = 2

// Stride is the per-cycle address increment, NumLanes * AddrsPerLane.
const Stride = 16

// StepsToDone is the number of strides that exhaust the matrix address
// space: 4096 entries / 16 entries per cycle.
const StepsToDone = 256

// matrixAddrMask keeps matrix addresses inside the 12-bit register range
// 0–4095. The wraparound is relied upon, never an error.
const matrixAddrMask = 0xFFF

// vectorAddrMask keeps vector addresses inside the 6-bit register range
// 0–63. Wrapping at 64 is what cycles the vector index once per matrix
// row; the stride never needs an explicit row counter.
const vectorAddrMask = 0x3F

// State is the sequencer control state.
type State int

const (
	// StateInit is the post-reset state. Addresses are already preloaded
	// by the reset itself; the state exists to emit the first advance
	// pulse on entry to StateRun.
	StateInit State = iota

	// StateRun advances every address register by the stride each cycle
	// until the step count reaches StepsToDone.
	StateRun

	// StateDone is terminal. Addresses hold and done stays asserted
	// until reset.
	StateDone
)

// String returns the state name for diagnostics.
func (s State) String() string {
	switch s {
	case StateInit:
		return "Init"
	case StateRun:
		return "Run"
	case StateDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// Sequencer generates the two (matrix, vector) address pairs for one lane.
// All fields behave as fixed-width hardware registers: updates are masked
// to the register width and wraparound is part of the contract.
type Sequencer struct {
	laneID int

	state State

	matrixAddrA uint16 // 12-bit
	matrixAddrB uint16 // 12-bit
	vectorAddrA uint8  // 6-bit
	vectorAddrB uint8  // 6-bit

	stepCount uint16
}

// New creates a sequencer for the given lane, in reset state.
func New(laneID int) *Sequencer {
	s := &Sequencer{laneID: laneID}
	s.Reset()
	return s
}

// Reset unconditionally re-initializes every register, regardless of the
// current state. Lane n starts at matrix addresses 2n and 2n+1; the vector
// addresses start at the same offsets modulo 64, so that every matrix
// entry is paired with the vector entry at its column index.
func (s *Sequencer) Reset() {
	base := uint16(AddrsPerLane*s.laneID) & matrixAddrMask
	s.state = StateInit
	s.matrixAddrA = base
	s.matrixAddrB = (base + 1) & matrixAddrMask
	s.vectorAddrA = uint8(base) & vectorAddrMask
	s.vectorAddrB = (uint8(base) + 1) & vectorAddrMask
	s.stepCount = 0
}

// LaneID returns the lane index this sequencer was built for.
func (s *Sequencer) LaneID() int {
	return s.laneID
}

// State returns the current control state.
func (s *Sequencer) State() State {
	return s.state
}

// Done reports whether the sequencer has exhausted its address slice.
// It first becomes true on the advance that brings the step count to
// StepsToDone and stays true until reset.
func (s *Sequencer) Done() bool {
	return s.state == StateDone
}

// StepCount returns the number of strides taken since reset.
func (s *Sequencer) StepCount() uint16 {
	return s.stepCount
}

// Addresses returns the current address pairs, matrix then vector, in
// port order A, B. These are the addresses the lane presents to the
// stores for the current cycle.
func (s *Sequencer) Addresses() (matA, matB uint16, vecA, vecB uint8) {
	return s.matrixAddrA, s.matrixAddrB, s.vectorAddrA, s.vectorAddrB
}

// Advance steps the sequencer by one clock edge. In StateInit and
// StateRun it strides all four address registers and increments the step
// count; the transition to StateDone happens on the advance that reaches
// StepsToDone. In StateDone it is a no-op.
func (s *Sequencer) Advance() {
	switch s.state {
	case StateInit:
		s.stride()
		s.state = StateRun
	case StateRun:
		s.stride()
		if s.stepCount == StepsToDone {
			s.state = StateDone
		}
	case StateDone:
		// Terminal: self-loop until reset.
	}
}

// stride applies the per-cycle address increment. The masks reproduce the
// fixed-width register wraparound: matrix addresses wrap at 4096, vector
// addresses at 64.
func (s *Sequencer) stride() {
	s.matrixAddrA = (s.matrixAddrA + Stride) & matrixAddrMask
	s.matrixAddrB = (s.matrixAddrB + Stride) & matrixAddrMask
	s.vectorAddrA = (s.vectorAddrA + Stride) & vectorAddrMask
	s.vectorAddrB = (s.vectorAddrB + Stride) & vectorAddrMask
	s.stepCount++
}
