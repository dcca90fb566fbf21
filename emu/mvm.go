// Package emu provides the functional reference model of the datapath.
//
// It computes the scalar sum of all elements of Y = M·X directly from the
// store images, without cycle accounting, so the timing model can be
// validated against it. All arithmetic is 16-bit unsigned and wraps
// silently, matching
// the hardware registers bit for bit; the result is therefore the true
// mathematical sum only modulo 2^16.
package emu

import (
	"fmt"

	"github.com/sarchlab/mvmsim/rom"
)

// Rows is the number of matrix rows.
const Rows = 64

// Cols is the number of matrix columns, equal to the vector length.
const Cols = 64

// validate checks that the images have the fixed datapath geometry.
func validate(matrix, vector []byte) error {
	if len(matrix) != rom.MatrixWords {
		return fmt.Errorf("matrix image must be %d bytes, got %d",
			rom.MatrixWords, len(matrix))
	}
	if len(vector) != rom.VectorWords {
		return fmt.Errorf("vector image must be %d bytes, got %d",
			rom.VectorWords, len(vector))
	}
	return nil
}

// RowSums computes Y = M·X as 64 wrapping 16-bit row sums. The matrix
// image is row-major: entry (i, j) lives at address 64*i + j.
func RowSums(matrix, vector []byte) ([]uint16, error) {
	if err := validate(matrix, vector); err != nil {
		return nil, err
	}

	sums := make([]uint16, Rows)
	for i := 0; i < Rows; i++ {
		var sum uint16
		for j := 0; j < Cols; j++ {
			sum += uint16(matrix[i*Cols+j]) * uint16(vector[j])
		}
		sums[i] = sum
	}
	return sums, nil
}

// SumAll computes the scalar sum of all elements of Y = M·X, wrapping
// at 16 bits exactly as the hardware accumulator does.
func SumAll(matrix, vector []byte) (uint16, error) {
	if err := validate(matrix, vector); err != nil {
		return 0, err
	}

	var sum uint16
	for i := 0; i < Rows; i++ {
		for j := 0; j < Cols; j++ {
			sum += uint16(matrix[i*Cols+j]) * uint16(vector[j])
		}
	}
	return sum, nil
}
