package insts

// Opcode identifies the primary 6-bit opcode field (bits 31..26) of a MIPS32
// instruction word.
type Opcode uint8

// Primary opcode assignments. SPECIAL and REGIMM are not themselves
// instructions: they select a secondary table (Funct, respectively Rt) in
// package emu.
const (
	OpSPECIAL Opcode = 0
	OpREGIMM  Opcode = 1
	OpJ       Opcode = 2
	OpJAL     Opcode = 3
	OpBEQ     Opcode = 4
	OpBNE     Opcode = 5
	OpBLEZ    Opcode = 6
	OpBGTZ    Opcode = 7
	OpADDI    Opcode = 8
	OpADDIU   Opcode = 9
	OpSLTI    Opcode = 10
	OpSLTIU   Opcode = 11
	OpANDI    Opcode = 12
	OpORI     Opcode = 13
	OpXORI    Opcode = 14
	OpLUI     Opcode = 15
	OpLB      Opcode = 32
	OpLH      Opcode = 33
	OpLW      Opcode = 35
	OpLBU     Opcode = 36
	OpLHU     Opcode = 37
	OpSB      Opcode = 40
	OpSH      Opcode = 41
	OpSW      Opcode = 43
)

// Funct identifies the secondary 6-bit function field (bits 5..0) that
// selects a handler when Opcode == OpSPECIAL.
type Funct uint8

// Function-field assignments under SPECIAL.
const (
	FnSLL     Funct = 0
	FnSRL     Funct = 2
	FnSRA     Funct = 3
	FnSLLV    Funct = 4
	FnSRLV    Funct = 6
	FnSRAV    Funct = 7
	FnJR      Funct = 8
	FnJALR    Funct = 9
	FnSYSCALL Funct = 12
	FnMFHI    Funct = 16
	FnMTHI    Funct = 17
	FnMFLO    Funct = 18
	FnMTLO    Funct = 19
	FnMULT    Funct = 24
	FnMULTU   Funct = 25
	FnDIV     Funct = 26
	FnDIVU    Funct = 27
	FnADD     Funct = 32
	FnADDU    Funct = 33
	FnSUB     Funct = 34
	FnSUBU    Funct = 35
	FnAND     Funct = 36
	FnOR      Funct = 37
	FnXOR     Funct = 38
	FnNOR     Funct = 39
	FnSLT     Funct = 42
	FnSLTU    Funct = 43
)

// Regimm identifies the rt field value that selects a handler when
// Opcode == OpREGIMM.
type Regimm uint8

// Regimm-field assignments under REGIMM.
const (
	RtBLTZ   Regimm = 0
	RtBGEZ   Regimm = 1
	RtBLTZAL Regimm = 16
	RtBGEZAL Regimm = 17
)

// DispatchSize is the width of each of the three dispatch tables: 6 bits of
// selector, 64 possible values.
const DispatchSize = 64

// Fields holds every bit field a 32-bit MIPS32 instruction word can be
// decomposed into, decoded eagerly regardless of which encoding format the
// word actually uses. Unused fields for a given format are simply ignored
// by the handler that consumes Fields.
type Fields struct {
	Word   uint32
	Opcode Opcode
	Rs     uint8
	Rt     uint8
	Rd     uint8
	Shamt  uint8
	Funct  Funct
	Imm16  int32  // sign-extended 16-bit immediate
	ZImm16 uint32 // zero-extended 16-bit immediate
	Target uint32 // 26-bit jump target
}

// Decode extracts all named fields from a 32-bit instruction word. Every
// 32-bit input is accepted; there is no error path at this layer.
func Decode(word uint32) Fields {
	return Fields{
		Word:   word,
		Opcode: Opcode((word >> 26) & 0x3F),
		Rs:     uint8((word >> 21) & 0x1F),
		Rt:     uint8((word >> 16) & 0x1F),
		Rd:     uint8((word >> 11) & 0x1F),
		Shamt:  uint8((word >> 6) & 0x1F),
		Funct:  Funct(word & 0x3F),
		Imm16:  signExtend16(uint16(word & 0xFFFF)),
		ZImm16: word & 0xFFFF,
		Target: word & 0x03FFFFFF,
	}
}

// signExtend16 widens a 16-bit value to 32 bits by replicating its sign bit.
func signExtend16(v uint16) int32 {
	return int32(int16(v))
}

// Regimm returns the Rt field reinterpreted as a Regimm selector, for use
// when Opcode == OpREGIMM.
func (f Fields) Regimm() Regimm {
	return Regimm(f.Rt)
}
