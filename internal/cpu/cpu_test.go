// This file is part of nesgo.
//
// nesgo is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nesgo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nesgo.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import "testing"

// flatBus is a 64KiB flat address space, enough to exercise the CPU in
// isolation without a PPU/APU/cartridge.
type flatBus struct {
	mem [0x10000]uint8
}

func (b *flatBus) CPURead(addr uint16) uint8    { return b.mem[addr] }
func (b *flatBus) CPUWrite(addr uint16, v uint8) { b.mem[addr] = v }

func newTestCPU() (*CPU, *flatBus) {
	bus := &flatBus{}
	bus.mem[0xFFFC] = 0x00
	bus.mem[0xFFFD] = 0x80
	c := New(bus)
	return c, bus
}

func runInstruction(c *CPU) {
	c.Tick()
	for c.CyclesRemaining > 0 {
		c.Tick()
	}
}

func TestResetInvariants(t *testing.T) {
	c, bus := newTestCPU()
	if c.PC != 0x8000 {
		t.Fatalf("PC = %#04x, want $8000", c.PC)
	}
	if c.SP != 0xFD {
		t.Fatalf("SP = %#02x, want $FD", c.SP)
	}
	if c.P&0x24 != 0x24 {
		t.Fatalf("P&0x24 = %#02x, want 0x24", c.P&0x24)
	}
	_ = bus
}

func TestADCOverflow(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x50
	c.P = 0 // C=0
	bus.mem[0x8000] = 0x69 // ADC #imm
	bus.mem[0x8001] = 0x50
	runInstruction(c)

	if c.A != 0xA0 {
		t.Fatalf("A = %#02x, want $A0", c.A)
	}
	if c.P&FlagN == 0 || c.P&FlagV == 0 || c.P&FlagZ != 0 || c.P&FlagC != 0 {
		t.Fatalf("flags = %#02x, want N=1 V=1 Z=0 C=0", c.P)
	}
}

func TestSBCBorrow(t *testing.T) {
	c, bus := newTestCPU()
	c.A = 0x50
	c.P = FlagC // C=1 (no borrow going in)
	bus.mem[0x8000] = 0xE9 // SBC #imm
	bus.mem[0x8001] = 0xF0
	runInstruction(c)

	if c.A != 0x60 {
		t.Fatalf("A = %#02x, want $60", c.A)
	}
	if c.P&FlagN != 0 || c.P&FlagV != 0 || c.P&FlagZ != 0 || c.P&FlagC != 0 {
		t.Fatalf("flags = %#02x, want N=0 V=0 Z=0 C=0", c.P)
	}
}

func TestIndirectJMPPageWrapBug(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x10FF] = 0x34
	bus.mem[0x1100] = 0x00
	bus.mem[0x1000] = 0x78
	bus.mem[0x8000] = 0x6C // JMP (ind)
	bus.mem[0x8001] = 0xFF
	bus.mem[0x8002] = 0x10
	runInstruction(c)

	if c.PC != 0x7834 {
		t.Fatalf("PC = %#04x, want $7834", c.PC)
	}
}

func TestBranchPageCrossCycles(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x80F0
	bus.mem[0x80F0] = 0xF0 // BEQ
	bus.mem[0x80F1] = 0x10 // $80F2 + $10 = $8102: forward across the page boundary
	c.P |= FlagZ

	c.Tick()
	cycles := uint64(1)
	for c.CyclesRemaining > 0 {
		c.Tick()
		cycles++
	}
	if cycles != 4 {
		t.Fatalf("branch across page boundary took %d cycles, want 4", cycles)
	}
}

func TestPHPSetsBAndU_PLPClearsB(t *testing.T) {
	c, bus := newTestCPU()
	c.P = FlagC | FlagN
	bus.mem[0x8000] = 0x08 // PHP
	runInstruction(c)
	bus.mem[0x8001] = 0x28 // PLP
	runInstruction(c)

	if c.P&FlagB != 0 {
		t.Fatalf("B should be clear after PLP")
	}
	if c.P&FlagU == 0 {
		t.Fatalf("U should always read back as 1")
	}
	if c.P&FlagC == 0 || c.P&FlagN == 0 {
		t.Fatalf("PHP/PLP should preserve C and N, got %#02x", c.P)
	}
}

func TestBRKPushesPCPlusOne(t *testing.T) {
	c, bus := newTestCPU()
	c.PC = 0x8000
	bus.mem[0x8000] = 0x00 // BRK
	bus.mem[0xFFFE] = 0x00
	bus.mem[0xFFFF] = 0x90
	runInstruction(c)

	pushedPC := uint16(bus.mem[0x01FD])<<8 | uint16(bus.mem[0x01FC])
	if pushedPC != 0x8002 {
		t.Fatalf("pushed PC = %#04x, want $8002", pushedPC)
	}
}

func TestJAMFreezesCPU(t *testing.T) {
	c, bus := newTestCPU()
	bus.mem[0x8000] = 0x02 // JAM
	runInstruction(c)
	pc := c.PC
	for i := 0; i < 10; i++ {
		runInstruction(c)
	}
	if c.PC != pc {
		t.Fatalf("JAM should freeze PC, moved from %#04x to %#04x", pc, c.PC)
	}
}
