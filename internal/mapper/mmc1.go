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

// mmc1 is mapper 001: a 5-bit serial shift register loaded one bit per CPU
// write (LSB first); a write with bit 7 set resets the shift register and
// forces PRG mode 3 (the documented reset behaviour). Target register
// (control/CHR0/CHR1/PRG) is selected by address bits 13-14.
type mmc1 struct {
	prg    []uint8
	chr    []uint8
	ram    []uint8
	chrRAM bool

	shift    uint8
	shiftCnt int

	control uint8 // bit0-1 mirror, bit2-3 prg mode, bit4 chr mode
	chr0    uint8
	chr1    uint8
	prgReg  uint8

	prgBanks16k int
	chrBanks4k  int
}

func newMMC1(rom ROM) *mmc1 {
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
	m := &mmc1{
		prg:         rom.PRG,
		chr:         chr,
		ram:         ram,
		chrRAM:      chrRAM,
		prgBanks16k: prgBanks16k(rom.PRG),
		chrBanks4k:  len(chr) / 0x1000,
	}
	m.Reset()
	return m
}

func (m *mmc1) Reset() {
	m.shift = 0
	m.shiftCnt = 0
	m.control = 0x0C // power-on: PRG mode 3 (fix last bank at $C000, switch $8000)
	m.chr0 = 0
	m.chr1 = 0
	m.prgReg = 0
}

func (m *mmc1) CPURead(addr uint16) (uint8, bool) {
	if addr >= 0x6000 && addr < 0x8000 {
		return m.ram[addr-0x6000], true
	}
	if addr < 0x8000 {
		return 0, false
	}

	prgMode := (m.control >> 2) & 0x03
	bank := int(m.prgReg & 0x0F)

	switch prgMode {
	case 0, 1:
		// 32KiB mode: ignore low bit of bank select.
		base := (bank &^ 1) * 0x4000
		return m.prg[(base+int(addr-0x8000))%len(m.prg)], true
	case 2:
		if addr < 0xC000 {
			return m.prg[int(addr-0x8000)], true // bank 0 fixed
		}
		base := bank * 0x4000
		return m.prg[base+int(addr-0xC000)], true
	default: // 3
		if addr < 0xC000 {
			base := bank * 0x4000
			return m.prg[base+int(addr-0x8000)], true
		}
		base := (m.prgBanks16k - 1) * 0x4000
		return m.prg[base+int(addr-0xC000)], true
	}
}

func (m *mmc1) CPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x6000 && addr < 0x8000 {
		m.ram[addr-0x6000] = v
		return true
	}
	if addr < 0x8000 {
		return false
	}

	if v&0x80 != 0 {
		m.shift = 0
		m.shiftCnt = 0
		m.control |= 0x0C
		return true
	}

	m.shift |= (v & 1) << uint(m.shiftCnt)
	m.shiftCnt++

	if m.shiftCnt == 5 {
		reg := m.shift
		switch {
		case addr < 0xA000:
			m.control = reg
		case addr < 0xC000:
			m.chr0 = reg
		case addr < 0xE000:
			m.chr1 = reg
		default:
			m.prgReg = reg
		}
		m.shift = 0
		m.shiftCnt = 0
	}
	return true
}

func (m *mmc1) chrBankAddr(addr uint16) int {
	chrMode := (m.control >> 4) & 1
	if chrMode == 0 {
		// 8KiB mode: the low bit of chr0 is ignored; the rest selects an
		// 8KiB page.
		base := int(m.chr0&0x1E) * 0x1000
		return base + int(addr)
	}
	if addr < 0x1000 {
		return int(m.chr0)*0x1000 + int(addr)
	}
	return int(m.chr1)*0x1000 + int(addr-0x1000)
}

func (m *mmc1) PPURead(addr uint16) (uint8, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	return m.chr[m.chrBankAddr(addr)%len(m.chr)], true
}

func (m *mmc1) PPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x2000 {
		return false
	}
	if m.chrRAM {
		m.chr[m.chrBankAddr(addr)%len(m.chr)] = v
		return true
	}
	return false
}

func (m *mmc1) Mirror() Mirror {
	switch m.control & 0x03 {
	case 0:
		return MirrorSingleScreenLo
	case 1:
		return MirrorSingleScreenHi
	case 2:
		return MirrorVertical
	default:
		return MirrorHorizontal
	}
}

func (m *mmc1) IRQState() bool { return false }
func (m *mmc1) IRQClear()      {}
func (m *mmc1) Scanline()      {}
