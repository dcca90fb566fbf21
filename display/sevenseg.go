// Package display provides the presentation boundary of the datapath:
// a seven-segment hex encoder and the multiplexer that selects between
// the cycle counter and the accumulator. Everything here is pure
// combinational lookup; there is no state.
package display

// Segment patterns are active-low in gfedcba order with the decimal
// point in bit 7, the convention of common-anode displays. Bit = 0
// lights the segment; the decimal point is always off.
var segmentTable = [16]uint8{
	0x0: 0xC0,
	0x1: 0xF9,
	0x2: 0xA4,
	0x3: 0xB0,
	0x4: 0x99,
	0x5: 0x92,
	0x6: 0x82,
	0x7: 0xF8,
	0x8: 0x80,
	0x9: 0x90,
	0xA: 0x88,
	0xB: 0x83,
	0xC: 0xC6,
	0xD: 0xA1,
	0xE: 0x86,
	0xF: 0x8E,
}

// EncodeDigit maps a 4-bit value to its 8-bit segment pattern. Only the
// low nibble of v is significant.
func EncodeDigit(v uint8) uint8 {
	return segmentTable[v&0xF]
}

// SplitDigits splits a 16-bit value into four 4-bit digits, least
// significant first (digit 0 drives the rightmost display).
func SplitDigits(v uint16) [4]uint8 {
	return [4]uint8{
		uint8(v) & 0xF,
		uint8(v>>4) & 0xF,
		uint8(v>>8) & 0xF,
		uint8(v >> 12),
	}
}

// Encode splits a 16-bit value into four digits and encodes each one,
// least significant first.
func Encode(v uint16) [4]uint8 {
	digits := SplitDigits(v)
	var segments [4]uint8
	for i, d := range digits {
		segments[i] = EncodeDigit(d)
	}
	return segments
}
