// Package main provides the entry point for MVMSim.
// MVMSim is a cycle-accurate simulator of a fixed-function
// matrix-vector multiply-accumulate datapath.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sarchlab/mvmsim/display"
	"github.com/sarchlab/mvmsim/emu"
	"github.com/sarchlab/mvmsim/loader"
	"github.com/sarchlab/mvmsim/rom"
	"github.com/sarchlab/mvmsim/timing/core"
)

var (
	matrixPath    = flag.String("mat", "", "Path to matrix store image (.hex or raw binary)")
	vectorPath    = flag.String("vec", "", "Path to vector store image (.hex or raw binary)")
	displaySelect = flag.String("display", "", "Display source: sum or cycles")
	configPath    = flag.String("config", "", "Path to run configuration JSON file")
	check         = flag.Bool("check", false, "Cross-check the result against the functional model")
	verbose       = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	config, err := buildConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig merges the optional JSON configuration with command-line
// flags. Flags win.
func buildConfig() (*RunConfig, error) {
	config := DefaultRunConfig()
	if *configPath != "" {
		var err error
		config, err = LoadRunConfig(*configPath)
		if err != nil {
			return nil, err
		}
	}

	if *matrixPath != "" {
		config.MatrixImage = *matrixPath
	}
	if *vectorPath != "" {
		config.VectorImage = *vectorPath
	}
	if *displaySelect != "" {
		config.DisplaySelect = *displaySelect
	}

	return config, nil
}

// onesImage returns an all-ones demo image of the given size.
func onesImage(size int) []byte {
	image := make([]byte, size)
	for i := range image {
		image[i] = 1
	}
	return image
}

// loadImages resolves the matrix and vector images from the
// configuration, falling back to the built-in demo contents.
func loadImages(config *RunConfig) (matrix, vector []byte, err error) {
	if config.MatrixImage != "" {
		matrix, err = loader.LoadMatrix(config.MatrixImage)
		if err != nil {
			return nil, nil, err
		}
	} else {
		matrix = onesImage(rom.MatrixWords)
	}

	if config.VectorImage != "" {
		vector, err = loader.LoadVector(config.VectorImage)
		if err != nil {
			return nil, nil, err
		}
	} else {
		vector = onesImage(rom.VectorWords)
	}

	return matrix, vector, nil
}

func run(config *RunConfig) error {
	source, err := config.displaySource()
	if err != nil {
		return err
	}

	matrix, vector, err := loadImages(config)
	if err != nil {
		return err
	}

	matrixROM, err := rom.NewMatrixROM(matrix)
	if err != nil {
		return err
	}
	vectorROM, err := rom.NewVectorROM(vector)
	if err != nil {
		return err
	}

	datapath := core.New(matrixROM, vectorROM)
	datapath.Reset()

	if config.MaxCycles > 0 {
		if running := datapath.RunCycles(config.MaxCycles); running {
			return fmt.Errorf("computation still running after %d cycles",
				config.MaxCycles)
		}
	} else {
		datapath.Run()
	}

	stats := datapath.Stats()

	fmt.Printf("Sum:    0x%04X (%d)\n", datapath.Sum(), datapath.Sum())
	fmt.Printf("Cycles: %d\n", stats.Cycles)

	segments := display.Mux(datapath.Sum(), datapath.Cycles(), source)
	fmt.Printf("Display (%s): HEX3..HEX0 = %02X %02X %02X %02X\n",
		source, segments[3], segments[2], segments[1], segments[0])

	if *verbose {
		fmt.Printf("\n")
		fmt.Printf("MACs retired:   %d\n", stats.MACs)
		fmt.Printf("MACs per cycle: %.2f\n", stats.MACsPerCycle())
	}

	if *check {
		expected, err := emu.SumAll(matrix, vector)
		if err != nil {
			return err
		}
		if expected != datapath.Sum() {
			return fmt.Errorf("mismatch: functional model computed 0x%04X, datapath computed 0x%04X",
				expected, datapath.Sum())
		}
		fmt.Printf("\nFunctional check: OK\n")
	}

	return nil
}
