package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bhavesh932004/Instruction-Level-MIPS-Simulator/emu"
)

const scenarioEntry = 0x00400000

var _ = Describe("end-to-end scenarios", func() {
	It("S1: ADDIU + SW + LW", func() {
		mem := emu.NewMemory()
		mem.Write32(scenarioEntry+0, 0x24020005)
		mem.Write32(scenarioEntry+4, 0xAC020000)
		mem.Write32(scenarioEntry+8, 0x8C030000)

		e := emu.NewEmulator(emu.WithMemory(mem), emu.WithEntryPoint(scenarioEntry))

		for i := 0; i < 3; i++ {
			result := e.Step()
			Expect(result.Err).NotTo(HaveOccurred())
		}

		Expect(e.State().Reg(2)).To(Equal(uint32(5)))
		Expect(e.Memory().Read32(0)).To(Equal(uint32(5)))
		Expect(e.State().Reg(3)).To(Equal(uint32(5)))
		Expect(e.State().PC).To(Equal(uint32(0x0040000C)))
		Expect(e.State().Run).To(BeTrue())
	})

	It("S2: BEQ taken", func() {
		mem := emu.NewMemory()
		mem.Write32(scenarioEntry, 0x10220002)

		e := emu.NewEmulator(emu.WithMemory(mem), emu.WithEntryPoint(scenarioEntry))
		e.State().Regs[1] = 7
		e.State().Regs[2] = 7

		result := e.Step()
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(e.State().PC).To(Equal(uint32(0x00400008)))
	})

	It("S3: JAL then JR", func() {
		mem := emu.NewMemory()
		mem.Write32(scenarioEntry, 0x0C100004)
		mem.Write32(0x00400010, 0x03E00008)

		e := emu.NewEmulator(emu.WithMemory(mem), emu.WithEntryPoint(scenarioEntry))

		result := e.Step()
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(e.State().PC).To(Equal(uint32(0x00400010)))
		Expect(e.State().Reg(31)).To(Equal(uint32(0x00400004)))

		result = e.Step()
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(e.State().PC).To(Equal(uint32(0x00400004)))
	})

	It("S4: SRA sign fill", func() {
		mem := emu.NewMemory()
		mem.Write32(scenarioEntry, 0x00021083)

		e := emu.NewEmulator(emu.WithMemory(mem), emu.WithEntryPoint(scenarioEntry))
		e.State().Regs[2] = 0x80000000

		result := e.Step()
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(e.State().Reg(2)).To(Equal(uint32(0xE0000000)))
	})

	It("S5: MULT", func() {
		mem := emu.NewMemory()
		mem.Write32(scenarioEntry, rWord(opSPECIAL, 1, 2, 0, 0, fnMULT))

		e := emu.NewEmulator(emu.WithMemory(mem), emu.WithEntryPoint(scenarioEntry))
		e.State().Regs[1] = 0xFFFFFFFF
		e.State().Regs[2] = 0x00000002

		result := e.Step()
		Expect(result.Err).NotTo(HaveOccurred())
		Expect(e.State().LO).To(Equal(uint32(0xFFFFFFFE)))
		Expect(e.State().HI).To(Equal(uint32(0xFFFFFFFF)))
	})

	It("S6: SYSCALL halt", func() {
		mem := emu.NewMemory()
		mem.Write32(scenarioEntry, 0x0000000C)

		e := emu.NewEmulator(emu.WithMemory(mem), emu.WithEntryPoint(scenarioEntry))
		e.State().Regs[2] = 0x0000000A

		result := e.Step()
		Expect(result.Halted).To(BeTrue())
		Expect(e.State().Run).To(BeFalse())
		Expect(e.State().PC).To(Equal(uint32(0x00400004)))
	})
})
