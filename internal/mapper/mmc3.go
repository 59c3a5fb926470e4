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

package mapper

// mmc3 is mapper 004: eight bank-select registers R0-R7 addressed through a
// bank-select/bank-data port pair at $8000/$8001, CHR-inversion and PRG
// bank-mode bits in the bank-select latch, a mirroring port at $A000, and a
// scanline IRQ counter driven by the PPU's per-scanline pulse.
type mmc3 struct {
	prg []uint8
	chr []uint8
	ram []uint8

	chrRAM bool

	bankSelect uint8
	regs       [8]uint8

	mirror Mirror

	irqLatch   uint8
	irqCounter uint8
	irqReload  bool
	irqEnable  bool
	irqPending bool

	prgBanks8k int
	chrBanks1k int
}

func newMMC3(rom ROM) *mmc3 {
	chr := rom.CHR
	chrRAM := rom.CHRIsRAM
	if len(chr) == 0 {
		chr = make([]uint8, 0x2000)
		chrRAM = true
	}
	ram := rom.PRGRAM
	if len(ram) == 0 {
		ram = make([]uint8, 0x2000)
	}
	return &mmc3{
		prg:        rom.PRG,
		chr:        chr,
		ram:        ram,
		chrRAM:     chrRAM,
		mirror:     rom.Mirror,
		prgBanks8k: len(rom.PRG) / 0x2000,
		chrBanks1k: len(chr) / 0x0400,
	}
}

func (m *mmc3) Reset() {
	m.bankSelect = 0
	m.regs = [8]uint8{}
	m.irqLatch = 0
	m.irqCounter = 0
	m.irqReload = false
	m.irqEnable = false
	m.irqPending = false
}

// prgBank8k resolves one of the four 8KiB CPU windows ($8000,$A000,$C000,
// $E000) to a physical 8KiB bank index. Bank-mode bit (bankSelect bit 6)
// swaps which of the $8000 and $C000 windows is fixed to the second-to-last
// bank; the other one takes R6.
func (m *mmc3) prgBank8k(window int) int {
	last := m.prgBanks8k - 1
	secondLast := m.prgBanks8k - 2
	mode := (m.bankSelect >> 6) & 1

	switch window {
	case 0:
		if mode == 0 {
			return int(m.regs[6]) % m.prgBanks8k
		}
		return secondLast
	case 1:
		return int(m.regs[7]) % m.prgBanks8k
	case 2:
		if mode == 0 {
			return secondLast
		}
		return int(m.regs[6]) % m.prgBanks8k
	default:
		return last
	}
}

func (m *mmc3) CPURead(addr uint16) (uint8, bool) {
	if addr >= 0x6000 && addr < 0x8000 {
		return m.ram[addr-0x6000], true
	}
	if addr < 0x8000 {
		return 0, false
	}
	window := int((addr - 0x8000) / 0x2000)
	bank := m.prgBank8k(window)
	off := int(addr) % 0x2000
	return m.prg[bank*0x2000+off], true
}

func (m *mmc3) CPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x6000 && addr < 0x8000 {
		m.ram[addr-0x6000] = v
		return true
	}
	if addr < 0x8000 {
		return false
	}

	even := addr%2 == 0

	switch {
	case addr < 0xA000:
		if even {
			m.bankSelect = v
		} else {
			m.regs[m.bankSelect&0x07] = v
		}
	case addr < 0xC000:
		if even {
			if v&1 == 0 {
				m.mirror = MirrorVertical
			} else {
				m.mirror = MirrorHorizontal
			}
		}
		// odd: PRG-RAM protect, not modeled
	case addr < 0xE000:
		if even {
			m.irqLatch = v
		} else {
			m.irqReload = true
		}
	default:
		if even {
			m.irqEnable = false
			m.irqPending = false
		} else {
			m.irqEnable = true
		}
	}
	return true
}

// chrBank1k resolves one of the eight 1KiB PPU windows to a physical 1KiB
// CHR bank index, honouring the CHR-inversion bit (bankSelect bit 7).
func (m *mmc3) chrBank1k(addr uint16) int {
	invert := (m.bankSelect>>7)&1 != 0
	window := int(addr / 0x0400)
	if invert {
		window ^= 0x04
	}

	var bank int
	switch window {
	case 0:
		bank = int(m.regs[0] &^ 1)
	case 1:
		bank = int(m.regs[0] | 1)
	case 2:
		bank = int(m.regs[1] &^ 1)
	case 3:
		bank = int(m.regs[1] | 1)
	case 4:
		bank = int(m.regs[2])
	case 5:
		bank = int(m.regs[3])
	case 6:
		bank = int(m.regs[4])
	default:
		bank = int(m.regs[5])
	}
	if m.chrBanks1k > 0 {
		bank %= m.chrBanks1k
	}
	return bank
}

func (m *mmc3) PPURead(addr uint16) (uint8, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	bank := m.chrBank1k(addr)
	off := int(addr) % 0x0400
	return m.chr[bank*0x0400+off], true
}

func (m *mmc3) PPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x2000 || !m.chrRAM {
		return false
	}
	bank := m.chrBank1k(addr)
	off := int(addr) % 0x0400
	m.chr[bank*0x0400+off] = v
	return true
}

func (m *mmc3) Mirror() Mirror { return m.mirror }

func (m *mmc3) IRQState() bool { return m.irqPending }
func (m *mmc3) IRQClear()      { m.irqPending = false }

// Scanline clocks the IRQ counter. The counter reloads from the latch when
// either the reload flag is set or the counter has already reached zero;
// otherwise it decrements. An IRQ is asserted on the 1->0 transition while
// enabled.
func (m *mmc3) Scanline() {
	if m.irqCounter == 0 || m.irqReload {
		m.irqCounter = m.irqLatch
		m.irqReload = false
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnable {
		m.irqPending = true
	}
}
