package display

// Source selects which register the display presents.
type Source int

const (
	// SourceSum presents the accumulator.
	SourceSum Source = iota
	// SourceCycles presents the cycle counter.
	SourceCycles
)

// String returns the source name for diagnostics.
func (s Source) String() string {
	switch s {
	case SourceSum:
		return "sum"
	case SourceCycles:
		return "cycles"
	default:
		return "unknown"
	}
}

// Mux selects between the running sum and the elapsed cycle count and
// returns the four encoded digits, least significant first.
func Mux(sum, cycles uint16, src Source) [4]uint8 {
	if src == SourceCycles {
		return Encode(cycles)
	}
	return Encode(sum)
}
