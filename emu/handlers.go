package emu

import "github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/insts"

// advance sets PC' = PC + 4. Every handler that does not itself transfer
// control calls this exactly once; BranchUnit methods set PC themselves and
// must not call it.
func advance(e *Emulator) {
	e.state.SetPC(e.state.PC + 4)
}

func execJ(e *Emulator, f insts.Fields) error {
	e.branch.J(f.Target)
	return nil
}

func execJAL(e *Emulator, f insts.Fields) error {
	e.branch.JAL(f.Target)
	return nil
}

func execBEQ(e *Emulator, f insts.Fields) error {
	e.branch.BEQ(f.Rs, f.Rt, f.Imm16)
	return nil
}

func execBNE(e *Emulator, f insts.Fields) error {
	e.branch.BNE(f.Rs, f.Rt, f.Imm16)
	return nil
}

func execBLEZ(e *Emulator, f insts.Fields) error {
	e.branch.BLEZ(f.Rs, f.Imm16)
	return nil
}

func execBGTZ(e *Emulator, f insts.Fields) error {
	e.branch.BGTZ(f.Rs, f.Imm16)
	return nil
}

func execBLTZ(e *Emulator, f insts.Fields) error {
	e.branch.BLTZ(f.Rs, f.Imm16)
	return nil
}

func execBGEZ(e *Emulator, f insts.Fields) error {
	e.branch.BGEZ(f.Rs, f.Imm16)
	return nil
}

func execBLTZAL(e *Emulator, f insts.Fields) error {
	e.branch.BLTZAL(f.Rs, f.Imm16)
	return nil
}

func execBGEZAL(e *Emulator, f insts.Fields) error {
	e.branch.BGEZAL(f.Rs, f.Imm16)
	return nil
}

func execJR(e *Emulator, f insts.Fields) error {
	e.branch.JR(f.Rs)
	return nil
}

func execJALR(e *Emulator, f insts.Fields) error {
	e.branch.JALR(f.Rd, f.Rs)
	return nil
}

func execADDI(e *Emulator, f insts.Fields) error {
	e.alu.ADDI(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execADDIU(e *Emulator, f insts.Fields) error {
	e.alu.ADDIU(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execSLTI(e *Emulator, f insts.Fields) error {
	e.alu.SLTI(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execSLTIU(e *Emulator, f insts.Fields) error {
	e.alu.SLTIU(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execANDI(e *Emulator, f insts.Fields) error {
	e.alu.ANDI(f.Rt, f.Rs, f.ZImm16)
	advance(e)
	return nil
}

func execORI(e *Emulator, f insts.Fields) error {
	e.alu.ORI(f.Rt, f.Rs, f.ZImm16)
	advance(e)
	return nil
}

func execXORI(e *Emulator, f insts.Fields) error {
	e.alu.XORI(f.Rt, f.Rs, f.ZImm16)
	advance(e)
	return nil
}

func execLUI(e *Emulator, f insts.Fields) error {
	e.alu.LUI(f.Rt, f.ZImm16)
	advance(e)
	return nil
}

func execADD(e *Emulator, f insts.Fields) error {
	e.alu.ADD(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execADDU(e *Emulator, f insts.Fields) error {
	e.alu.ADDU(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execSUB(e *Emulator, f insts.Fields) error {
	e.alu.SUB(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execSUBU(e *Emulator, f insts.Fields) error {
	e.alu.SUBU(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execAND(e *Emulator, f insts.Fields) error {
	e.alu.AND(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execOR(e *Emulator, f insts.Fields) error {
	e.alu.OR(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execXOR(e *Emulator, f insts.Fields) error {
	e.alu.XOR(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execNOR(e *Emulator, f insts.Fields) error {
	e.alu.NOR(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execSLT(e *Emulator, f insts.Fields) error {
	e.alu.SLT(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execSLTU(e *Emulator, f insts.Fields) error {
	e.alu.SLTU(f.Rd, f.Rs, f.Rt)
	advance(e)
	return nil
}

func execSLL(e *Emulator, f insts.Fields) error {
	e.alu.SLL(f.Rd, f.Rt, f.Shamt)
	advance(e)
	return nil
}

func execSRL(e *Emulator, f insts.Fields) error {
	e.alu.SRL(f.Rd, f.Rt, f.Shamt)
	advance(e)
	return nil
}

func execSRA(e *Emulator, f insts.Fields) error {
	e.alu.SRA(f.Rd, f.Rt, f.Shamt)
	advance(e)
	return nil
}

func execSLLV(e *Emulator, f insts.Fields) error {
	e.alu.SLLV(f.Rd, f.Rt, f.Rs)
	advance(e)
	return nil
}

func execSRLV(e *Emulator, f insts.Fields) error {
	e.alu.SRLV(f.Rd, f.Rt, f.Rs)
	advance(e)
	return nil
}

func execSRAV(e *Emulator, f insts.Fields) error {
	e.alu.SRAV(f.Rd, f.Rt, f.Rs)
	advance(e)
	return nil
}

func execMULT(e *Emulator, f insts.Fields) error {
	e.alu.MULT(f.Rs, f.Rt)
	advance(e)
	return nil
}

func execMULTU(e *Emulator, f insts.Fields) error {
	e.alu.MULTU(f.Rs, f.Rt)
	advance(e)
	return nil
}

func execDIV(e *Emulator, f insts.Fields) error {
	e.alu.DIV(f.Rs, f.Rt)
	advance(e)
	return nil
}

func execDIVU(e *Emulator, f insts.Fields) error {
	e.alu.DIVU(f.Rs, f.Rt)
	advance(e)
	return nil
}

func execMFHI(e *Emulator, f insts.Fields) error {
	e.alu.MFHI(f.Rd)
	advance(e)
	return nil
}

func execMFLO(e *Emulator, f insts.Fields) error {
	e.alu.MFLO(f.Rd)
	advance(e)
	return nil
}

func execMTHI(e *Emulator, f insts.Fields) error {
	e.alu.MTHI(f.Rs)
	advance(e)
	return nil
}

func execMTLO(e *Emulator, f insts.Fields) error {
	e.alu.MTLO(f.Rs)
	advance(e)
	return nil
}

func execLB(e *Emulator, f insts.Fields) error {
	e.loadStore.LB(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execLBU(e *Emulator, f insts.Fields) error {
	e.loadStore.LBU(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execLH(e *Emulator, f insts.Fields) error {
	e.loadStore.LH(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execLHU(e *Emulator, f insts.Fields) error {
	e.loadStore.LHU(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execLW(e *Emulator, f insts.Fields) error {
	e.loadStore.LW(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execSB(e *Emulator, f insts.Fields) error {
	e.loadStore.SB(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execSH(e *Emulator, f insts.Fields) error {
	e.loadStore.SH(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execSW(e *Emulator, f insts.Fields) error {
	e.loadStore.SW(f.Rt, f.Rs, f.Imm16)
	advance(e)
	return nil
}

func execSYSCALL(e *Emulator, f insts.Fields) error {
	e.syscall.SYSCALL()
	advance(e)
	return nil
}
