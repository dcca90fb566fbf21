// Package loader provides store-initialization image loading for the
// matrix and vector ROMs.
//
// Two formats are supported: hex text in the style of Verilog $readmemh
// (whitespace-separated hex bytes, // comments, @addr directives) and raw
// binary. Images must match the store sizes exactly for the binary format;
// hex images may be sparse, with unspecified entries reading as zero.
package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sarchlab/mvmsim/rom"
)

// ParseHexImage parses $readmemh-style text into an image of the given
// size. Tokens are hex byte values; a token of the form @ADDR moves the
// load pointer; // starts a line comment. Entries not covered by the text
// are zero.
func ParseHexImage(text string, size int) ([]byte, error) {
	image := make([]byte, size)
	addr := 0

	for lineNo, line := range strings.Split(text, "\n") {
		if idx := strings.Index(line, "//"); idx >= 0 {
			line = line[:idx]
		}

		for _, token := range strings.Fields(line) {
			if strings.HasPrefix(token, "@") {
				target, err := strconv.ParseUint(token[1:], 16, 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: bad address directive %q: %w",
						lineNo+1, token, err)
				}
				if target >= uint64(size) {
					return nil, fmt.Errorf("line %d: address @%x outside image of %d entries",
						lineNo+1, target, size)
				}
				addr = int(target)
				continue
			}

			value, err := strconv.ParseUint(token, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad hex byte %q: %w",
					lineNo+1, token, err)
			}
			if addr >= size {
				return nil, fmt.Errorf("line %d: image overflows %d entries",
					lineNo+1, size)
			}
			image[addr] = uint8(value)
			addr++
		}
	}

	return image, nil
}

// LoadHexImage reads and parses a $readmemh-style file.
func LoadHexImage(path string, size int) ([]byte, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	image, err := ParseHexImage(string(text), size)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return image, nil
}

// LoadBinaryImage reads a raw binary image and validates its size.
func LoadBinaryImage(path string, size int) ([]byte, error) {
	image, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image file: %w", err)
	}
	if len(image) != size {
		return nil, fmt.Errorf("%s: image must be %d bytes, got %d",
			path, size, len(image))
	}
	return image, nil
}

// LoadImage loads an image file, choosing the format by extension:
// .hex files are parsed as $readmemh text, anything else as raw binary.
func LoadImage(path string, size int) ([]byte, error) {
	if strings.HasSuffix(path, ".hex") {
		return LoadHexImage(path, size)
	}
	return LoadBinaryImage(path, size)
}

// LoadMatrix loads the 4096-entry matrix image from a file.
func LoadMatrix(path string) ([]byte, error) {
	return LoadImage(path, rom.MatrixWords)
}

// LoadVector loads the 64-entry vector image from a file.
func LoadVector(path string) ([]byte, error) {
	return LoadImage(path, rom.VectorWords)
}
