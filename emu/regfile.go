// Package emu provides the MIPS32 integer-subset architectural state and
// execution units.
package emu

// State represents the MIPS32 architectural state: the 32-entry general
// register file, the HI/LO multiplier registers, the program counter, and
// the run flag. It holds two copies of this shape, current and next, per
// the simulator's double-buffering discipline: handlers read only from the
// current copy and write only into the next copy, and Commit atomically
// copies next into current once a step completes successfully.
type State struct {
	Regs [32]uint32
	HI   uint32
	LO   uint32
	PC   uint32
	Run  bool

	nextRegs [32]uint32
	nextHI   uint32
	nextLO   uint32
	nextPC   uint32
	nextRun  bool
}

// NewState creates a State with Run set and every register zeroed.
func NewState() *State {
	s := &State{Run: true}
	s.beginStep()
	return s
}

// beginStep seeds the next-state shadow from the current state, so that a
// handler which only touches a subset of the state (the common case) leaves
// the rest unchanged at commit time.
func (s *State) beginStep() {
	s.nextRegs = s.Regs
	s.nextHI = s.HI
	s.nextLO = s.LO
	s.nextPC = s.PC
	s.nextRun = s.Run
}

// Commit copies the next-state shadow into the current state. Register 0 is
// forced to read as zero regardless of what a handler wrote into it.
func (s *State) Commit() {
	s.nextRegs[0] = 0
	s.Regs = s.nextRegs
	s.HI = s.nextHI
	s.LO = s.nextLO
	s.PC = s.nextPC
	s.Run = s.nextRun
}

// Reg reads a current general-purpose register. Register 0 always reads 0.
func (s *State) Reg(i uint8) uint32 {
	if i == 0 {
		return 0
	}
	return s.Regs[i]
}

// SetReg writes a general-purpose register into the next-state shadow.
// Writes to register 0 are accepted but have no observable effect: Commit
// masks index 0 back to zero.
func (s *State) SetReg(i uint8, v uint32) {
	s.nextRegs[i] = v
}

// SetHI writes the HI register into the next-state shadow.
func (s *State) SetHI(v uint32) {
	s.nextHI = v
}

// SetLO writes the LO register into the next-state shadow.
func (s *State) SetLO(v uint32) {
	s.nextLO = v
}

// SetPC writes the program counter into the next-state shadow. Every
// handler that does not itself redirect control flow must call this with
// CurrentPC+4.
func (s *State) SetPC(v uint32) {
	s.nextPC = v
}

// Halt requests that Run be cleared once the current step commits.
func (s *State) Halt() {
	s.nextRun = false
}
