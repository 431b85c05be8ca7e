package emu

import (
	"errors"
	"fmt"

	"github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/insts"
)

// Handler executes one decoded instruction against the emulator. It
// returns a non-nil error only when the instruction word did not match any
// known encoding in the table it was selected from; every other outcome is
// communicated by mutating the emulator's next-state shadow and returning
// nil. A handler that returns an error must not be assumed to have left the
// next-state shadow in any particular shape.
type Handler func(e *Emulator, f insts.Fields) error

// Sentinel errors returned by the three "unrecognised encoding" handlers.
// Each table has its own, so the host's diagnostic can say which table
// missed.
var (
	ErrUnknownOpcode = errors.New("emu: unrecognised opcode")
	ErrUnknownFunct  = errors.New("emu: unrecognised SPECIAL function")
	ErrUnknownRegimm = errors.New("emu: unrecognised REGIMM target")
)

// dispatchTables holds the three fixed-size, opcode/funct/rt-keyed handler
// tables. Every slot is populated — unknown encodings get one of the three
// "unrecognised" handlers rather than a nil entry, so lookup never needs a
// nil check.
type dispatchTables struct {
	primary [insts.DispatchSize]Handler
	funct   [insts.DispatchSize]Handler
	regimm  [insts.DispatchSize]Handler
}

var tables dispatchTables
var tablesInitialized bool

// initializeDispatch populates the three dispatch tables. It is idempotent
// and must run before the first Step; NewEmulator calls it.
func initializeDispatch() {
	if tablesInitialized {
		return
	}

	for i := range tables.primary {
		tables.primary[i] = unrecognizedOpcode
	}
	for i := range tables.funct {
		tables.funct[i] = unrecognizedFunct
	}
	for i := range tables.regimm {
		tables.regimm[i] = unrecognizedRegimm
	}

	tables.primary[insts.OpJ] = execJ
	tables.primary[insts.OpJAL] = execJAL
	tables.primary[insts.OpBEQ] = execBEQ
	tables.primary[insts.OpBNE] = execBNE
	tables.primary[insts.OpBLEZ] = execBLEZ
	tables.primary[insts.OpBGTZ] = execBGTZ
	tables.primary[insts.OpADDI] = execADDI
	tables.primary[insts.OpADDIU] = execADDIU
	tables.primary[insts.OpSLTI] = execSLTI
	tables.primary[insts.OpSLTIU] = execSLTIU
	tables.primary[insts.OpANDI] = execANDI
	tables.primary[insts.OpORI] = execORI
	tables.primary[insts.OpXORI] = execXORI
	tables.primary[insts.OpLUI] = execLUI
	tables.primary[insts.OpLB] = execLB
	tables.primary[insts.OpLH] = execLH
	tables.primary[insts.OpLW] = execLW
	tables.primary[insts.OpLBU] = execLBU
	tables.primary[insts.OpLHU] = execLHU
	tables.primary[insts.OpSB] = execSB
	tables.primary[insts.OpSH] = execSH
	tables.primary[insts.OpSW] = execSW

	tables.funct[insts.FnSLL] = execSLL
	tables.funct[insts.FnSRL] = execSRL
	tables.funct[insts.FnSRA] = execSRA
	tables.funct[insts.FnSLLV] = execSLLV
	tables.funct[insts.FnSRLV] = execSRLV
	tables.funct[insts.FnSRAV] = execSRAV
	tables.funct[insts.FnJR] = execJR
	tables.funct[insts.FnJALR] = execJALR
	tables.funct[insts.FnSYSCALL] = execSYSCALL
	tables.funct[insts.FnMFHI] = execMFHI
	tables.funct[insts.FnMTHI] = execMTHI
	tables.funct[insts.FnMFLO] = execMFLO
	tables.funct[insts.FnMTLO] = execMTLO
	tables.funct[insts.FnMULT] = execMULT
	tables.funct[insts.FnMULTU] = execMULTU
	tables.funct[insts.FnDIV] = execDIV
	tables.funct[insts.FnDIVU] = execDIVU
	tables.funct[insts.FnADD] = execADD
	tables.funct[insts.FnADDU] = execADDU
	tables.funct[insts.FnSUB] = execSUB
	tables.funct[insts.FnSUBU] = execSUBU
	tables.funct[insts.FnAND] = execAND
	tables.funct[insts.FnOR] = execOR
	tables.funct[insts.FnXOR] = execXOR
	tables.funct[insts.FnNOR] = execNOR
	tables.funct[insts.FnSLT] = execSLT
	tables.funct[insts.FnSLTU] = execSLTU

	tables.regimm[insts.RtBLTZ] = execBLTZ
	tables.regimm[insts.RtBGEZ] = execBGEZ
	tables.regimm[insts.RtBLTZAL] = execBLTZAL
	tables.regimm[insts.RtBGEZAL] = execBGEZAL

	tablesInitialized = true
}

// selectHandler implements the step procedure's table selection: SPECIAL
// dispatches on funct, REGIMM dispatches on rt, everything else dispatches
// on opcode.
func selectHandler(f insts.Fields) Handler {
	switch f.Opcode {
	case insts.OpSPECIAL:
		return tables.funct[f.Funct]
	case insts.OpREGIMM:
		return tables.regimm[f.Regimm()]
	default:
		return tables.primary[f.Opcode]
	}
}

func unrecognizedOpcode(e *Emulator, f insts.Fields) error {
	fmt.Fprintf(e.stderr, "mipsim: unrecognised opcode %#o at PC=%#08x (word=%#08x)\n",
		uint8(f.Opcode), e.state.PC, f.Word)
	return ErrUnknownOpcode
}

func unrecognizedFunct(e *Emulator, f insts.Fields) error {
	fmt.Fprintf(e.stderr, "mipsim: unrecognised SPECIAL function %#o at PC=%#08x (word=%#08x)\n",
		uint8(f.Funct), e.state.PC, f.Word)
	return ErrUnknownFunct
}

func unrecognizedRegimm(e *Emulator, f insts.Fields) error {
	fmt.Fprintf(e.stderr, "mipsim: unrecognised REGIMM target %#o at PC=%#08x (word=%#08x)\n",
		uint8(f.Regimm()), e.state.PC, f.Word)
	return ErrUnknownRegimm
}
