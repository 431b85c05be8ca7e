// Package main provides the entry point for mipsim, a functional simulator
// for the MIPS32 integer instruction subset.
//
// For the full CLI, use: go run ./cmd/mipsim
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("mipsim - MIPS32 integer-subset simulator")
	fmt.Println("")
	fmt.Println("Usage: mipsim <command> [flags] <program>")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  run    Load and run a MIPS32 ELF binary to completion")
	fmt.Println("  words  Load and run a flat hex-word program")
	fmt.Println("  step   Single-step an ELF binary, printing state after each instruction")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/mipsim' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/mipsim' instead.")
	}
}
