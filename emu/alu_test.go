package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/emu"
)

var _ = Describe("ALU", func() {
	var (
		state *emu.State
		alu   *emu.ALU
	)

	BeforeEach(func() {
		state = emu.NewState()
		alu = emu.NewALU(state)
	})

	commit := func() { state.Commit() }

	Describe("ADDI/ADDIU", func() {
		It("adds a sign-extended immediate", func() {
			alu.ADDI(4, 0, -1)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0xFFFFFFFF)))
		})

		It("ADDIU wraps identically to ADDI on overflow", func() {
			state.SetReg(5, 0xFFFFFFFF)
			commit()

			alu.ADDIU(4, 5, 1)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0)))
		})
	})

	Describe("SLTI/SLTIU", func() {
		It("SLTI compares signed", func() {
			state.SetReg(5, 0xFFFFFFFF) // -1
			commit()

			alu.SLTI(4, 5, 0)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(1)))
		})

		It("SLTIU compares unsigned after sign-extending the immediate", func() {
			state.SetReg(5, 1)
			commit()

			alu.SLTIU(4, 5, -1) // sign-extended to 0xFFFFFFFF
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(1)))
		})
	})

	Describe("logical immediates", func() {
		It("ANDI zero-extends the immediate", func() {
			state.SetReg(5, 0xFFFFFFFF)
			commit()

			alu.ANDI(4, 5, 0x00FF)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0x00FF)))
		})

		It("ORI sets the low bits", func() {
			alu.ORI(4, 0, 0xFFFF)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0xFFFF)))
		})

		It("XORI toggles the low bits", func() {
			state.SetReg(5, 0xFFFFFFFF)
			commit()

			alu.XORI(4, 5, 0xFFFF)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0xFFFF0000)))
		})
	})

	Describe("LUI", func() {
		It("loads the immediate into the upper halfword, unsigned", func() {
			alu.LUI(4, 0x8000)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0x80000000)))
		})
	})

	Describe("register arithmetic", func() {
		It("ADD sums two registers", func() {
			state.SetReg(5, 10)
			state.SetReg(6, 20)
			commit()

			alu.ADD(4, 5, 6)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(30)))
		})

		It("SUB computes Rs - Rt", func() {
			state.SetReg(5, 10)
			state.SetReg(6, 20)
			commit()

			alu.SUB(4, 5, 6)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0xFFFFFFF6)))
		})

		It("NOR is the bitwise complement of OR", func() {
			state.SetReg(5, 0x0F0F0F0F)
			state.SetReg(6, 0xF0F0F0F0)
			commit()

			alu.NOR(4, 5, 6)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0)))
		})

		It("SLT compares signed", func() {
			state.SetReg(5, 0xFFFFFFFF)
			state.SetReg(6, 1)
			commit()

			alu.SLT(4, 5, 6)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(1)))
		})

		It("SLTU compares unsigned", func() {
			state.SetReg(5, 0xFFFFFFFF)
			state.SetReg(6, 1)
			commit()

			alu.SLTU(4, 5, 6)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0)))
		})
	})

	Describe("shifts", func() {
		It("SLL shifts left by a literal amount", func() {
			state.SetReg(5, 1)
			commit()

			alu.SLL(4, 5, 4)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(16)))
		})

		It("SRL fills vacated bits with zero", func() {
			state.SetReg(5, 0x80000000)
			commit()

			alu.SRL(4, 5, 4)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0x08000000)))
		})

		It("SRA fills vacated bits with the sign bit", func() {
			state.SetReg(5, 0x80000000)
			commit()

			alu.SRA(4, 5, 4)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0xF8000000)))
		})

		It("SRA with shamt 0 is a no-op", func() {
			state.SetReg(5, 0x80000000)
			commit()

			alu.SRA(4, 5, 0)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(0x80000000)))
		})

		It("SLLV takes its shift amount from the low 5 bits of Rs", func() {
			state.SetReg(5, 1)
			state.SetReg(6, 0xFFFFFFE4) // low 5 bits = 4
			commit()

			alu.SLLV(4, 5, 6)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(16)))
		})
	})

	Describe("multiply/divide", func() {
		It("MULT splits a signed product across HI:LO", func() {
			state.SetReg(5, 0xFFFFFFFF) // -1
			state.SetReg(6, 0xFFFFFFFF) // -1
			commit()

			alu.MULT(5, 6)
			commit()

			Expect(state.LO).To(Equal(uint32(1)))
			Expect(state.HI).To(Equal(uint32(0)))
		})

		It("MULTU splits an unsigned product across HI:LO", func() {
			state.SetReg(5, 0xFFFFFFFF)
			state.SetReg(6, 2)
			commit()

			alu.MULTU(5, 6)
			commit()

			Expect(state.LO).To(Equal(uint32(0xFFFFFFFE)))
			Expect(state.HI).To(Equal(uint32(1)))
		})

		It("DIV places the quotient in LO and remainder in HI", func() {
			state.SetReg(5, 7)
			state.SetReg(6, 2)
			commit()

			alu.DIV(5, 6)
			commit()

			Expect(state.LO).To(Equal(uint32(3)))
			Expect(state.HI).To(Equal(uint32(1)))
		})

		It("DIV by zero leaves HI/LO unchanged", func() {
			state.SetHI(77)
			state.SetLO(88)
			commit()

			alu.DIV(5, 0)
			commit()

			Expect(state.HI).To(Equal(uint32(77)))
			Expect(state.LO).To(Equal(uint32(88)))
		})

		It("DIVU divides unsigned", func() {
			state.SetReg(5, 0xFFFFFFFF)
			state.SetReg(6, 2)
			commit()

			alu.DIVU(5, 6)
			commit()

			Expect(state.LO).To(Equal(uint32(0x7FFFFFFF)))
			Expect(state.HI).To(Equal(uint32(1)))
		})
	})

	Describe("HI/LO moves", func() {
		It("MFHI/MFLO copy HI/LO into a register", func() {
			state.SetHI(111)
			state.SetLO(222)
			commit()

			alu.MFHI(4)
			commit()
			alu.MFLO(5)
			commit()

			Expect(state.Reg(4)).To(Equal(uint32(111)))
			Expect(state.Reg(5)).To(Equal(uint32(222)))
		})

		It("MTHI/MTLO copy a register into HI/LO", func() {
			state.SetReg(4, 333)
			commit()

			alu.MTHI(4)
			commit()
			alu.MTLO(4)
			commit()

			Expect(state.HI).To(Equal(uint32(333)))
			Expect(state.LO).To(Equal(uint32(333)))
		})
	})
})
