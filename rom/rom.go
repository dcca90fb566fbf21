// Package rom models the dual-port read-only stores that hold the matrix
// and vector operands. Each store answers two independent address queries
// per cycle with no coordination, since its contents never change after
// sealing.
package rom

import (
	"fmt"

	"github.com/sarchlab/akita/v4/mem/mem"
)

// MatrixWords is the number of byte entries in the matrix store
// (a 64x64 grid, row-major).
const MatrixWords = 4096

// VectorWords is the number of byte entries in the vector store.
const VectorWords = 64

// DualPortROM is a byte-addressed read-only store with two read ports.
// Addresses beyond the capacity wrap, matching the fixed-width address
// registers of the units that drive it.
type DualPortROM struct {
	storage  *mem.Storage
	addrMask uint16
}

// New creates a sealed read-only store holding the given image.
// The image length must be a power of two so that address wraparound
// matches a fixed-width address register.
func New(image []byte) (*DualPortROM, error) {
	n := len(image)
	if n == 0 || n&(n-1) != 0 {
		return nil, fmt.Errorf("rom image size must be a power of two, got %d", n)
	}

	storage := mem.NewStorage(uint64(n))
	if err := storage.Write(0, image); err != nil {
		return nil, fmt.Errorf("failed to seal rom image: %w", err)
	}

	return &DualPortROM{
		storage:  storage,
		addrMask: uint16(n - 1),
	}, nil
}

// NewMatrixROM creates the 4096-entry matrix store.
func NewMatrixROM(image []byte) (*DualPortROM, error) {
	if len(image) != MatrixWords {
		return nil, fmt.Errorf("matrix image must be %d bytes, got %d",
			MatrixWords, len(image))
	}
	return New(image)
}

// NewVectorROM creates the 64-entry vector store.
func NewVectorROM(image []byte) (*DualPortROM, error) {
	if len(image) != VectorWords {
		return nil, fmt.Errorf("vector image must be %d bytes, got %d",
			VectorWords, len(image))
	}
	return New(image)
}

// Size returns the number of byte entries in the store.
func (r *DualPortROM) Size() int {
	return int(r.addrMask) + 1
}

// Read returns the entry at the given address. The address wraps at the
// store capacity.
func (r *DualPortROM) Read(addr uint16) uint8 {
	data, err := r.storage.Read(uint64(addr&r.addrMask), 1)
	if err != nil {
		// Unreachable: the mask keeps every address inside the storage.
		panic(fmt.Sprintf("rom read at 0x%x: %v", addr, err))
	}
	return data[0]
}

// Read2 services both read ports in the same cycle. The two lookups are
// independent; there is no port conflict because the store is immutable.
func (r *DualPortROM) Read2(addrA, addrB uint16) (uint8, uint8) {
	return r.Read(addrA), r.Read(addrB)
}
