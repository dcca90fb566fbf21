// Package core provides the cycle-accurate top level of the datapath.
// It wires the eight lanes to the global accumulator and cycle counter
// and drives them in lockstep.
package core

import (
	"github.com/sarchlab/mvmsim/rom"
	"github.com/sarchlab/mvmsim/timing/lane"
	"github.com/sarchlab/mvmsim/timing/sequencer"
)

// Stats holds performance statistics for a computation.
type Stats struct {
	// Cycles is the number of active cycles elapsed since reset,
	// frozen once all lanes are done.
	Cycles uint16
	// MACs is the number of multiply-accumulate operations retired.
	MACs uint64
	// Done reports whether the computation has completed.
	Done bool
}

// MACsPerCycle returns the average multiply-accumulate throughput.
func (s Stats) MACsPerCycle() float64 {
	if s.Cycles == 0 {
		return 0
	}
	return float64(s.MACs) / float64(s.Cycles)
}

// Core is the top-level datapath: eight multiply-accumulate lanes, one
// 16-bit accumulator, and one 16-bit cycle counter. One Tick is one
// clock edge for every component; lanes are fully independent and only
// their partial results are combined, so there is no cross-lane
// ordering dependency.
type Core struct {
	lanes [sequencer.NumLanes]*lane.Lane

	// Hardware registers. Both wrap silently at 16 bits and freeze
	// once every lane reports done.
	accumulator uint16
	cycleCount  uint16

	macs uint64
}

// New creates a datapath reading from the given matrix and vector
// stores. The core starts in reset state.
func New(matrix, vector *rom.DualPortROM) *Core {
	c := &Core{}
	for i := range c.lanes {
		c.lanes[i] = lane.New(i, matrix, vector)
	}
	return c
}

// Reset re-initializes every register in the datapath: all lane
// sequencers, the accumulator, and the cycle counter. The state after
// Reset is independent of the state before it.
func (c *Core) Reset() {
	for _, l := range c.lanes {
		l.Reset()
	}
	c.accumulator = 0
	c.cycleCount = 0
	c.macs = 0
}

// Done reports completion: the AND of all eight lanes' done flags.
func (c *Core) Done() bool {
	for _, l := range c.lanes {
		if !l.Done() {
			return false
		}
	}
	return true
}

// Sum returns the accumulator: the running sum while active, the final
// sum of all elements of M·X (mod 2^16) once done.
func (c *Core) Sum() uint16 {
	return c.accumulator
}

// Cycles returns the cycle counter: active cycles elapsed since reset,
// frozen at completion.
func (c *Core) Cycles() uint16 {
	return c.cycleCount
}

// Lane returns the lane with the given index, for inspection.
func (c *Core) Lane(i int) *lane.Lane {
	return c.lanes[i]
}

// Tick advances the datapath by one clock edge. While any lane is
// active, every lane produces its partial result, the accumulator
// integrates all of them, and the cycle counter increments. Once all
// lanes are done the datapath holds: Tick becomes a no-op until Reset.
func (c *Core) Tick() {
	if c.Done() {
		return
	}

	var sum uint16
	for _, l := range c.lanes {
		partial, active := l.Tick()
		if active {
			sum += partial
			c.macs += sequencer.AddrsPerLane
		}
	}

	c.accumulator += sum
	c.cycleCount++
}

// Run drives the clock until completion and returns the final sum.
func (c *Core) Run() uint16 {
	for !c.Done() {
		c.Tick()
	}
	return c.accumulator
}

// RunCycles advances the datapath by at most the given number of clock
// edges. Returns true if the computation is still running, false if it
// has completed.
func (c *Core) RunCycles(cycles uint64) bool {
	for i := uint64(0); i < cycles && !c.Done(); i++ {
		c.Tick()
	}
	return !c.Done()
}

// Stats returns performance statistics for the computation so far.
func (c *Core) Stats() Stats {
	return Stats{
		Cycles: c.cycleCount,
		MACs:   c.macs,
		Done:   c.Done(),
	}
}
