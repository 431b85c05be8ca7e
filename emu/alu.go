package emu

// ALU implements MIPS32 arithmetic, logical, shift, and multiply/divide
// operations. Every method reads its operands from the current state and
// writes its result into the next-state shadow; it never touches PC.
type ALU struct {
	state *State
}

// NewALU creates a new ALU connected to the given architectural state.
func NewALU(state *State) *ALU {
	return &ALU{state: state}
}

// ADDI computes Rt = Rs + sign-extend(imm16).
func (a *ALU) ADDI(rt, rs uint8, imm16 int32) {
	a.state.SetReg(rt, a.state.Reg(rs)+uint32(imm16))
}

// ADDIU is bit-identical to ADDI: overflow trapping is not modelled, so the
// signed and "unsigned" immediate adds wrap the same way.
func (a *ALU) ADDIU(rt, rs uint8, imm16 int32) {
	a.ADDI(rt, rs, imm16)
}

// SLTI sets Rt to 1 if Rs, read as signed, is less than the sign-extended
// immediate, else 0.
func (a *ALU) SLTI(rt, rs uint8, imm16 int32) {
	if int32(a.state.Reg(rs)) < imm16 {
		a.state.SetReg(rt, 1)
	} else {
		a.state.SetReg(rt, 0)
	}
}

// SLTIU sign-extends the immediate, then compares unsigned.
func (a *ALU) SLTIU(rt, rs uint8, imm16 int32) {
	if a.state.Reg(rs) < uint32(imm16) {
		a.state.SetReg(rt, 1)
	} else {
		a.state.SetReg(rt, 0)
	}
}

// ANDI computes Rt = Rs & zero-extend(imm16).
func (a *ALU) ANDI(rt, rs uint8, zimm16 uint32) {
	a.state.SetReg(rt, a.state.Reg(rs)&zimm16)
}

// ORI computes Rt = Rs | zero-extend(imm16).
func (a *ALU) ORI(rt, rs uint8, zimm16 uint32) {
	a.state.SetReg(rt, a.state.Reg(rs)|zimm16)
}

// XORI computes Rt = Rs ^ zero-extend(imm16).
func (a *ALU) XORI(rt, rs uint8, zimm16 uint32) {
	a.state.SetReg(rt, a.state.Reg(rs)^zimm16)
}

// LUI loads the immediate into the upper 16 bits of Rt, zeroing the lower
// 16. The immediate is treated as unsigned before the shift.
func (a *ALU) LUI(rt uint8, zimm16 uint32) {
	a.state.SetReg(rt, zimm16<<16)
}

// ADD computes Rd = Rs + Rt.
func (a *ALU) ADD(rd, rs, rt uint8) {
	a.state.SetReg(rd, a.state.Reg(rs)+a.state.Reg(rt))
}

// ADDU is bit-identical to ADD: overflow trapping is not modelled.
func (a *ALU) ADDU(rd, rs, rt uint8) {
	a.ADD(rd, rs, rt)
}

// SUB computes Rd = Rs - Rt.
func (a *ALU) SUB(rd, rs, rt uint8) {
	a.state.SetReg(rd, a.state.Reg(rs)-a.state.Reg(rt))
}

// SUBU is bit-identical to SUB: overflow trapping is not modelled.
func (a *ALU) SUBU(rd, rs, rt uint8) {
	a.SUB(rd, rs, rt)
}

// AND computes Rd = Rs & Rt.
func (a *ALU) AND(rd, rs, rt uint8) {
	a.state.SetReg(rd, a.state.Reg(rs)&a.state.Reg(rt))
}

// OR computes Rd = Rs | Rt.
func (a *ALU) OR(rd, rs, rt uint8) {
	a.state.SetReg(rd, a.state.Reg(rs)|a.state.Reg(rt))
}

// XOR computes Rd = Rs ^ Rt.
func (a *ALU) XOR(rd, rs, rt uint8) {
	a.state.SetReg(rd, a.state.Reg(rs)^a.state.Reg(rt))
}

// NOR computes Rd = ^(Rs | Rt).
func (a *ALU) NOR(rd, rs, rt uint8) {
	a.state.SetReg(rd, ^(a.state.Reg(rs) | a.state.Reg(rt)))
}

// SLT sets Rd to 1 if Rs < Rt when both are read as signed, else 0.
func (a *ALU) SLT(rd, rs, rt uint8) {
	if int32(a.state.Reg(rs)) < int32(a.state.Reg(rt)) {
		a.state.SetReg(rd, 1)
	} else {
		a.state.SetReg(rd, 0)
	}
}

// SLTU sets Rd to 1 if Rs < Rt when both are read as unsigned, else 0.
func (a *ALU) SLTU(rd, rs, rt uint8) {
	if a.state.Reg(rs) < a.state.Reg(rt) {
		a.state.SetReg(rd, 1)
	} else {
		a.state.SetReg(rd, 0)
	}
}

// SLL computes Rd = Rt << shamt, a literal 0..31 shift amount.
func (a *ALU) SLL(rd, rt, shamt uint8) {
	a.state.SetReg(rd, a.state.Reg(rt)<<shamt)
}

// SRL computes Rd = Rt >> shamt, filling vacated high bits with zero.
func (a *ALU) SRL(rd, rt, shamt uint8) {
	a.state.SetReg(rd, a.state.Reg(rt)>>shamt)
}

// SRA computes Rd = Rt >> shamt, filling vacated high bits with the sign
// bit of Rt. A shift amount of 0 is a no-op; Go's signed right shift
// already does the right thing for 1..31, so the guard only exists to
// document that sa==0 is not a special case needing a mask.
func (a *ALU) SRA(rd, rt, shamt uint8) {
	if shamt == 0 {
		a.state.SetReg(rd, a.state.Reg(rt))
		return
	}
	a.state.SetReg(rd, uint32(int32(a.state.Reg(rt))>>shamt))
}

// SLLV is SLL with the shift amount taken from the low 5 bits of Rs.
func (a *ALU) SLLV(rd, rt, rs uint8) {
	a.SLL(rd, rt, uint8(a.state.Reg(rs)&0x1F))
}

// SRLV is SRL with the shift amount taken from the low 5 bits of Rs.
func (a *ALU) SRLV(rd, rt, rs uint8) {
	a.SRL(rd, rt, uint8(a.state.Reg(rs)&0x1F))
}

// SRAV is SRA with the shift amount taken from the low 5 bits of Rs.
func (a *ALU) SRAV(rd, rt, rs uint8) {
	a.SRA(rd, rt, uint8(a.state.Reg(rs)&0x1F))
}

// MULT computes the signed 32x32->64 product of Rs and Rt, splitting it
// across HI (high word) and LO (low word).
func (a *ALU) MULT(rs, rt uint8) {
	product := int64(int32(a.state.Reg(rs))) * int64(int32(a.state.Reg(rt)))
	a.state.SetLO(uint32(product))
	a.state.SetHI(uint32(product >> 32))
}

// MULTU is MULT with both operands read as unsigned.
func (a *ALU) MULTU(rs, rt uint8) {
	product := uint64(a.state.Reg(rs)) * uint64(a.state.Reg(rt))
	a.state.SetLO(uint32(product))
	a.state.SetHI(uint32(product >> 32))
}

// DIV computes the signed quotient of Rs/Rt into LO and the remainder into
// HI. Division by zero is left as a no-op: HI and LO retain their current
// values rather than the simulator crashing.
func (a *ALU) DIV(rs, rt uint8) {
	divisor := int32(a.state.Reg(rt))
	if divisor == 0 {
		return
	}
	dividend := int32(a.state.Reg(rs))
	a.state.SetLO(uint32(dividend / divisor))
	a.state.SetHI(uint32(dividend % divisor))
}

// DIVU is DIV with both operands read as unsigned.
func (a *ALU) DIVU(rs, rt uint8) {
	divisor := a.state.Reg(rt)
	if divisor == 0 {
		return
	}
	dividend := a.state.Reg(rs)
	a.state.SetLO(dividend / divisor)
	a.state.SetHI(dividend % divisor)
}

// MFHI copies HI into Rd.
func (a *ALU) MFHI(rd uint8) {
	a.state.SetReg(rd, a.state.HI)
}

// MFLO copies LO into Rd.
func (a *ALU) MFLO(rd uint8) {
	a.state.SetReg(rd, a.state.LO)
}

// MTHI copies Rs into HI.
func (a *ALU) MTHI(rs uint8) {
	a.state.SetHI(a.state.Reg(rs))
}

// MTLO copies Rs into LO.
func (a *ALU) MTLO(rs uint8) {
	a.state.SetLO(a.state.Reg(rs))
}
