package emu

// LoadStoreUnit implements MIPS32 load and store operations. Every method
// computes its own effective address from Rs and a sign-extended 16-bit
// immediate, per the architecture's single addressing mode.
type LoadStoreUnit struct {
	state *State
	mem   MemoryAccess
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// architectural state and memory capability.
func NewLoadStoreUnit(state *State, mem MemoryAccess) *LoadStoreUnit {
	return &LoadStoreUnit{state: state, mem: mem}
}

func (l *LoadStoreUnit) effectiveAddr(rs uint8, imm16 int32) uint32 {
	return l.state.Reg(rs) + uint32(imm16)
}

// LB loads the byte at the effective address, sign-extended to 32 bits.
func (l *LoadStoreUnit) LB(rt, rs uint8, imm16 int32) {
	word := l.mem.Read32(l.effectiveAddr(rs, imm16))
	l.state.SetReg(rt, uint32(int32(int8(word))))
}

// LBU loads the byte at the effective address, zero-extended to 32 bits.
func (l *LoadStoreUnit) LBU(rt, rs uint8, imm16 int32) {
	word := l.mem.Read32(l.effectiveAddr(rs, imm16))
	l.state.SetReg(rt, word&0xFF)
}

// LH loads the halfword at the effective address, sign-extended to 32 bits.
func (l *LoadStoreUnit) LH(rt, rs uint8, imm16 int32) {
	word := l.mem.Read32(l.effectiveAddr(rs, imm16))
	l.state.SetReg(rt, uint32(int32(int16(word))))
}

// LHU loads the halfword at the effective address, zero-extended to 32
// bits.
func (l *LoadStoreUnit) LHU(rt, rs uint8, imm16 int32) {
	word := l.mem.Read32(l.effectiveAddr(rs, imm16))
	l.state.SetReg(rt, word&0xFFFF)
}

// LW loads the full word at the effective address.
func (l *LoadStoreUnit) LW(rt, rs uint8, imm16 int32) {
	l.state.SetReg(rt, l.mem.Read32(l.effectiveAddr(rs, imm16)))
}

// SW stores Rt's full value at the effective address.
func (l *LoadStoreUnit) SW(rt, rs uint8, imm16 int32) {
	l.mem.Write32(l.effectiveAddr(rs, imm16), l.state.Reg(rt))
}

// SH reads the word at the effective address, replaces its low halfword
// with Rt's low halfword, and writes it back. The merge uses OR: the word
// read back is first masked to clear the low halfword, so ORing in the new
// halfword is equivalent to a replace, not an accidental AND of unrelated
// bits.
func (l *LoadStoreUnit) SH(rt, rs uint8, imm16 int32) {
	addr := l.effectiveAddr(rs, imm16)
	merged := (l.mem.Read32(addr) & 0xFFFF0000) | (l.state.Reg(rt) & 0xFFFF)
	l.mem.Write32(addr, merged)
}

// SB reads the word at the effective address, replaces its low byte with
// Rt's low byte, and writes it back, using the same mask-then-OR merge as
// SH.
func (l *LoadStoreUnit) SB(rt, rs uint8, imm16 int32) {
	addr := l.effectiveAddr(rs, imm16)
	merged := (l.mem.Read32(addr) & 0xFFFFFF00) | (l.state.Reg(rt) & 0xFF)
	l.mem.Write32(addr, merged)
}
