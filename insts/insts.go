// Package insts provides MIPS32 integer-subset instruction decoding.
//
// This package implements the field decoder: pure, stateless extraction of
// the named bit fields (opcode, rs, rt, rd, shamt, funct, sign-extended
// immediate, jump target) from a 32-bit instruction word, for each of the
// three MIPS encoding formats (R, I, J). It does not resolve which mnemonic
// a word encodes — that is the job of the dispatch tables in package emu,
// keyed by the Opcode/Funct/Rt fields this package extracts.
//
// Usage:
//
//	f := insts.Decode(0x8C030000) // LW r3, 0(r0)
//	fmt.Printf("opcode=%d rs=%d rt=%d imm=%d\n", f.Opcode, f.Rs, f.Rt, f.Imm16)
package insts
