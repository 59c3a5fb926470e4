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

// namco108 is mapper 206: the same bank-select/bank-data register pair as
// MMC3 (R0-R7 through $8000/$8001), without CHR inversion and without the
// scanline IRQ counter. $A000-$BFFF/$C000-$DFFF/$E000-$FFFF have no special
// meaning on this board.
type namco108 struct {
	prg []uint8
	chr []uint8
	ram []uint8

	chrRAM bool

	bankSelect uint8
	regs       [8]uint8

	mirror Mirror

	prgBanks8k int
	chrBanks1k int
}

func newNamco108(rom ROM) *namco108 {
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
	return &namco108{
		prg:        rom.PRG,
		chr:        chr,
		ram:        ram,
		chrRAM:     chrRAM,
		mirror:     rom.Mirror,
		prgBanks8k: len(rom.PRG) / 0x2000,
		chrBanks1k: len(chr) / 0x0400,
	}
}

func (m *namco108) Reset() {
	m.bankSelect = 0
	m.regs = [8]uint8{}
}

func (m *namco108) prgBank8k(window int) int {
	last := m.prgBanks8k - 1
	switch window {
	case 0:
		return int(m.regs[6]) % m.prgBanks8k
	case 1:
		return int(m.regs[7]) % m.prgBanks8k
	case 2:
		return last - 1
	default:
		return last
	}
}

func (m *namco108) CPURead(addr uint16) (uint8, bool) {
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

func (m *namco108) CPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x6000 && addr < 0x8000 {
		m.ram[addr-0x6000] = v
		return true
	}
	if addr < 0x8000 {
		return false
	}
	if addr < 0xA000 {
		if addr%2 == 0 {
			m.bankSelect = v
		} else {
			m.regs[m.bankSelect&0x07] = v
		}
	}
	return true
}

func (m *namco108) chrBank1k(addr uint16) int {
	var bank int
	switch window := int(addr / 0x0400); window {
	case 0, 1:
		bank = int(m.regs[0]&^1) + window
	case 2, 3:
		bank = int(m.regs[1]&^1) + window - 2
	default:
		bank = int(m.regs[window-2])
	}
	if m.chrBanks1k > 0 {
		bank %= m.chrBanks1k
	}
	return bank
}

func (m *namco108) PPURead(addr uint16) (uint8, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	bank := m.chrBank1k(addr)
	off := int(addr) % 0x0400
	return m.chr[bank*0x0400+off], true
}

func (m *namco108) PPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x2000 || !m.chrRAM {
		return false
	}
	bank := m.chrBank1k(addr)
	off := int(addr) % 0x0400
	m.chr[bank*0x0400+off] = v
	return true
}

func (m *namco108) Mirror() Mirror { return m.mirror }
func (m *namco108) IRQState() bool { return false }
func (m *namco108) IRQClear()      {}
func (m *namco108) Scanline()      {}
