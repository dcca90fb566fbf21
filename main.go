// Package main provides the entry point for MVMSim.
// MVMSim is a cycle-accurate simulator of a fixed-function
// matrix-vector multiply-accumulate datapath.
//
// For the full CLI, use: go run ./cmd/mvmsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("MVMSim - Matrix-Vector MAC Datapath Simulator")
	fmt.Println("")
	fmt.Println("Usage: mvmsim [options]")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -mat      Path to matrix store image (.hex or raw binary)")
	fmt.Println("  -vec      Path to vector store image (.hex or raw binary)")
	fmt.Println("  -display  Display source: sum or cycles")
	fmt.Println("  -config   Path to run configuration JSON file")
	fmt.Println("  -check    Cross-check the result against the functional model")
	fmt.Println("  -v        Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mvmsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/mvmsim' instead.")
	}
}
