// Package main provides the mipsim command-line interface: a functional
// MIPS32 integer-subset simulator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/emu"
	"github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/loader"
)

// recoverFromPanic contains an unexpected panic at the CLI boundary,
// reporting it the same way a failed Step would rather than crashing the
// process with a stack trace. A decode or dispatch bug that the core
// didn't anticipate becomes a diagnosed failure, not a segfault.
func recoverFromPanic() {
	if r := recover(); r != nil {
		fmt.Fprintf(os.Stderr, "mipsim: internal error: %v\n", r)
		os.Exit(1)
	}
}

func main() {
	defer recoverFromPanic()

	var maxInstructions uint64
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "mipsim",
		Short: "A functional simulator for the MIPS32 integer instruction subset",
	}

	runCmd := &cobra.Command{
		Use:   "run <program.elf>",
		Short: "Load and run a MIPS32 ELF binary to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loader.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading program: %w", err)
			}

			mem := emu.NewMemory()
			entry := prog.Materialize(mem)

			if verbose {
				fmt.Printf("Loaded: %s\n", args[0])
				fmt.Printf("Entry point: 0x%08X\n", entry)
				fmt.Printf("Segments: %d\n", len(prog.Segments))
			}

			e := emu.NewEmulator(
				emu.WithMemory(mem),
				emu.WithEntryPoint(entry),
				emu.WithStackPointer(prog.InitialSP),
				emu.WithMaxInstructions(maxInstructions),
			)

			count := e.Run()

			if verbose {
				fmt.Printf("Instructions executed: %d\n", e.InstructionCount())
			}

			if count < 0 {
				return fmt.Errorf("program did not halt cleanly")
			}
			return nil
		},
	}
	runCmd.Flags().Uint64Var(&maxInstructions, "max-instructions", 0, "Instruction budget (0 = unlimited)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print load and execution summary")

	var wordsBase uint32
	var wordsEntry uint32

	wordsCmd := &cobra.Command{
		Use:   "words <program.words>",
		Short: "Load and run a flat hex-word program (one instruction per line)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening program: %w", err)
			}
			defer f.Close()

			words, err := loader.LoadWords(f, wordsBase)
			if err != nil {
				return fmt.Errorf("parsing program: %w", err)
			}

			mem := emu.NewMemory()
			for i, w := range words {
				mem.Write32(wordsBase+uint32(i*4), w)
			}

			e := emu.NewEmulator(
				emu.WithMemory(mem),
				emu.WithEntryPoint(wordsEntry),
				emu.WithMaxInstructions(maxInstructions),
			)

			count := e.Run()

			if verbose {
				fmt.Printf("Instructions executed: %d\n", e.InstructionCount())
			}

			if count < 0 {
				return fmt.Errorf("program did not halt cleanly")
			}
			return nil
		},
	}
	wordsCmd.Flags().Uint32Var(&wordsBase, "base", 0, "Address of the first word")
	wordsCmd.Flags().Uint32Var(&wordsEntry, "entry", 0, "Initial program counter")
	wordsCmd.Flags().Uint64Var(&maxInstructions, "max-instructions", 0, "Instruction budget (0 = unlimited)")
	wordsCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print execution summary")

	stepCmd := &cobra.Command{
		Use:   "step <program.elf>",
		Short: "Single-step a MIPS32 ELF binary, printing state after each instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := loader.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading program: %w", err)
			}

			mem := emu.NewMemory()
			entry := prog.Materialize(mem)
			e := emu.NewEmulator(
				emu.WithMemory(mem),
				emu.WithEntryPoint(entry),
				emu.WithStackPointer(prog.InitialSP),
			)

			for {
				pc := e.State().PC
				result := e.Step()
				fmt.Printf("PC=0x%08X -> ", pc)
				if result.Err != nil {
					fmt.Printf("error: %v\n", result.Err)
					return fmt.Errorf("program did not halt cleanly")
				}
				if result.Halted {
					fmt.Printf("halted (%d instructions)\n", e.InstructionCount())
					return nil
				}
				fmt.Printf("PC'=0x%08X\n", e.State().PC)
			}
		},
	}

	rootCmd.AddCommand(runCmd, wordsCmd, stepCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mipsim: %v\n", err)
		os.Exit(1)
	}
}
