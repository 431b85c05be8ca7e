// Package emu provides the MIPS32 integer-subset architectural state and
// execution units.
package emu

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/insts"
)

// ErrMaxInstructions is returned by Step when the configured instruction
// budget has been exhausted.
var ErrMaxInstructions = errors.New("emu: max instructions reached")

// StepResult reports the outcome of one Step call.
type StepResult struct {
	// Halted is true once the program has requested a halt (SYSCALL with
	// R2 holding the halt code) or an all-zero word was fetched. Once
	// Halted is true, state is no longer advancing; further Step calls
	// execute nothing and report Halted again.
	Halted bool

	// Err is set when the word at PC did not decode to a known
	// instruction, or the instruction budget was exhausted. State is
	// committed up to, but not including, the failed step.
	Err error
}

// Emulator executes the MIPS32 integer instruction subset functionally: one
// instruction fetched, decoded, and executed per Step, with architectural
// state only becoming visible once a step completes successfully.
type Emulator struct {
	state  *State
	memory *Memory

	alu       *ALU
	branch    *BranchUnit
	loadStore *LoadStoreUnit
	syscall   *SyscallUnit

	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// EmulatorOption is a functional option for configuring the Emulator.
type EmulatorOption func(*Emulator)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stdout = w }
}

// WithStderr sets the writer unrecognised-encoding diagnostics are written
// to.
func WithStderr(w io.Writer) EmulatorOption {
	return func(e *Emulator) { e.stderr = w }
}

// WithMemory supplies a pre-populated memory image, as produced by a
// loader, in place of the emulator's empty default.
func WithMemory(mem *Memory) EmulatorOption {
	return func(e *Emulator) { e.memory = mem }
}

// WithEntryPoint sets the initial program counter.
func WithEntryPoint(pc uint32) EmulatorOption {
	return func(e *Emulator) { e.state.PC = pc }
}

// WithStackPointer sets the initial value of R29, the conventional stack
// pointer register.
func WithStackPointer(sp uint32) EmulatorOption {
	return func(e *Emulator) { e.state.Regs[29] = sp }
}

// WithMaxInstructions bounds the number of instructions Run will execute
// before giving up. A value of 0 means no limit.
func WithMaxInstructions(max uint64) EmulatorOption {
	return func(e *Emulator) { e.maxInstructions = max }
}

// NewEmulator creates a new MIPS32 emulator, wired with its own state,
// memory, and execution units unless overridden by options.
func NewEmulator(opts ...EmulatorOption) *Emulator {
	initializeDispatch()

	state := NewState()
	memory := NewMemory()

	e := &Emulator{
		state:  state,
		memory: memory,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(e)
	}

	e.alu = NewALU(e.state)
	e.branch = NewBranchUnit(e.state)
	e.loadStore = NewLoadStoreUnit(e.state, e.memory)
	e.syscall = NewSyscallUnit(e.state)

	return e
}

// State returns the emulator's architectural state.
func (e *Emulator) State() *State {
	return e.state
}

// Memory returns the emulator's memory image.
func (e *Emulator) Memory() *Memory {
	return e.memory
}

// InstructionCount returns the number of instructions executed so far.
func (e *Emulator) InstructionCount() uint64 {
	return e.instructionCount
}

// Step fetches, decodes, and executes the instruction at the current PC.
// On success, next-state is committed into current and the instruction
// count is incremented. On failure, next-state is left uncommitted and the
// architectural state is unchanged.
func (e *Emulator) Step() StepResult {
	if !e.state.Run {
		return StepResult{Halted: true}
	}

	if e.maxInstructions > 0 && e.instructionCount >= e.maxInstructions {
		return StepResult{Err: ErrMaxInstructions}
	}

	word := e.memory.Read32(e.state.PC)
	if word == 0 {
		// An all-zero fetched word means no program was loaded at this
		// address. Treated as an end-of-program sentinel rather than
		// decoded as SLL r0, r0, 0.
		e.state.Run = false
		return StepResult{Halted: true}
	}
	fields := insts.Decode(word)

	e.state.beginStep()

	handler := selectHandler(fields)
	if err := handler(e, fields); err != nil {
		return StepResult{Err: err}
	}

	e.state.Commit()
	e.instructionCount++

	if !e.state.Run {
		return StepResult{Halted: true}
	}
	return StepResult{}
}

// Run steps the emulator until it halts or a step fails, returning the
// number of instructions executed, or -1 if a step failed.
func (e *Emulator) Run() int64 {
	for {
		result := e.Step()
		if result.Halted {
			return int64(e.instructionCount)
		}
		if result.Err != nil {
			fmt.Fprintf(e.stderr, "mipsim: execution stopped: %v\n", result.Err)
			return -1
		}
	}
}
