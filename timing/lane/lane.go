// Package lane provides the multiply-accumulate unit replicated eight
// times across the datapath. Each lane owns one address sequencer and a
// read port pair on each store; per cycle it produces one 16-bit partial
// result from two products.
package lane

import (
	"github.com/sarchlab/mvmsim/rom"
	"github.com/sarchlab/mvmsim/timing/sequencer"
)

// Lane is one of the parallel multiply-accumulate units. It is driven by
// the top-level clock: one Tick is one clock edge.
type Lane struct {
	seq    *sequencer.Sequencer
	matrix *rom.DualPortROM
	vector *rom.DualPortROM
}

// New creates a lane with the given index, reading from the matrix and
// vector stores. The lane starts in reset state.
func New(laneID int, matrix, vector *rom.DualPortROM) *Lane {
	return &Lane{
		seq:    sequencer.New(laneID),
		matrix: matrix,
		vector: vector,
	}
}

// Reset re-initializes the lane's sequencer.
func (l *Lane) Reset() {
	l.seq.Reset()
}

// Done reports whether the lane has covered its slice of the address
// space. Partial results are only meaningful while Done is false.
func (l *Lane) Done() bool {
	return l.seq.Done()
}

// Sequencer exposes the lane's address sequencer for inspection.
func (l *Lane) Sequencer() *sequencer.Sequencer {
	return l.seq
}

// Tick advances the lane by one clock edge. While the lane is active it
// fetches both (matrix, vector) pairs at the current addresses, forms the
// wrapping 16-bit partial result
//
//	M[a]·X[a'] + M[b]·X[b']
//
// and strides the sequencer. A finished lane returns (0, false) and holds
// all state.
func (l *Lane) Tick() (partial uint16, active bool) {
	if l.seq.Done() {
		return 0, false
	}

	matA, matB, vecA, vecB := l.seq.Addresses()
	ma, mb := l.matrix.Read2(matA, matB)
	xa, xb := l.vector.Read2(uint16(vecA), uint16(vecB))

	// Each product of two bytes fits in 16 bits; the sum of the two
	// products wraps silently, like the hardware adder.
	partial = uint16(ma)*uint16(xa) + uint16(mb)*uint16(xb)

	l.seq.Advance()
	return partial, true
}
