package emu

// BranchUnit implements MIPS32 branch and jump control-transfer
// instructions. Every method sets the next-state PC itself, for both the
// taken and not-taken/fallthrough case, per the "every handler sets PC'"
// contract.
type BranchUnit struct {
	state *State
}

// NewBranchUnit creates a new BranchUnit connected to the given
// architectural state.
func NewBranchUnit(state *State) *BranchUnit {
	return &BranchUnit{state: state}
}

// branchOffset scales a sign-extended 16-bit immediate into a byte offset.
func branchOffset(imm16 int32) int32 {
	return imm16 << 2
}

func (b *BranchUnit) take(offset int32) {
	b.state.SetPC(uint32(int32(b.state.PC) + offset))
}

func (b *BranchUnit) notTaken() {
	b.state.SetPC(b.state.PC + 4)
}

// BEQ branches if Rs == Rt.
func (b *BranchUnit) BEQ(rs, rt uint8, imm16 int32) {
	if b.state.Reg(rs) == b.state.Reg(rt) {
		b.take(branchOffset(imm16))
	} else {
		b.notTaken()
	}
}

// BNE branches if Rs != Rt.
func (b *BranchUnit) BNE(rs, rt uint8, imm16 int32) {
	if b.state.Reg(rs) != b.state.Reg(rt) {
		b.take(branchOffset(imm16))
	} else {
		b.notTaken()
	}
}

// BLEZ branches if Rs, read as signed, is <= 0.
func (b *BranchUnit) BLEZ(rs uint8, imm16 int32) {
	if int32(b.state.Reg(rs)) <= 0 {
		b.take(branchOffset(imm16))
	} else {
		b.notTaken()
	}
}

// BGTZ branches if Rs, read as signed, is > 0.
func (b *BranchUnit) BGTZ(rs uint8, imm16 int32) {
	if int32(b.state.Reg(rs)) > 0 {
		b.take(branchOffset(imm16))
	} else {
		b.notTaken()
	}
}

// BLTZ branches if Rs, read as signed, is < 0.
func (b *BranchUnit) BLTZ(rs uint8, imm16 int32) {
	if int32(b.state.Reg(rs)) < 0 {
		b.take(branchOffset(imm16))
	} else {
		b.notTaken()
	}
}

// BGEZ branches if Rs, read as signed, is >= 0.
func (b *BranchUnit) BGEZ(rs uint8, imm16 int32) {
	if int32(b.state.Reg(rs)) >= 0 {
		b.take(branchOffset(imm16))
	} else {
		b.notTaken()
	}
}

// BLTZAL is BLTZ, plus an unconditional link: R31 is set to PC+4 whether or
// not the branch is taken.
func (b *BranchUnit) BLTZAL(rs uint8, imm16 int32) {
	b.state.SetReg(31, b.state.PC+4)
	b.BLTZ(rs, imm16)
}

// BGEZAL is BGEZ, plus an unconditional link: R31 is set to PC+4 whether or
// not the branch is taken.
func (b *BranchUnit) BGEZAL(rs uint8, imm16 int32) {
	b.state.SetReg(31, b.state.PC+4)
	b.BGEZ(rs, imm16)
}

// J jumps to the 256 MiB region-local address formed from target26,
// preserving the high nibble of the current PC.
func (b *BranchUnit) J(target26 uint32) {
	b.state.SetPC((b.state.PC & 0xF0000000) | (target26 << 2))
}

// JAL is J, plus an unconditional link to R31.
func (b *BranchUnit) JAL(target26 uint32) {
	b.state.SetReg(31, b.state.PC+4)
	b.J(target26)
}

// JR jumps to the address held in Rs.
func (b *BranchUnit) JR(rs uint8) {
	b.state.SetPC(b.state.Reg(rs))
}

// JALR links Rd to PC+4, then jumps to the address held in Rs. Rd is read
// directly from the decoded instruction; the pseudo-form with an implicit
// rd is encoded by the assembler with 31 in the rd field, so no default is
// applied here.
func (b *BranchUnit) JALR(rd, rs uint8) {
	b.state.SetReg(rd, b.state.PC+4)
	b.state.SetPC(b.state.Reg(rs))
}
