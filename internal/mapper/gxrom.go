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

// gxrom is mapper 066: any CPU write selects both a 32KiB PRG bank (high
// nibble bits 4-5) and an 8KiB CHR bank (low nibble bits 0-1) at once.
type gxrom struct {
	prg      []uint8
	chr      []uint8
	mirror   Mirror
	prgBank  int
	chrBank  int
	prgBanks int
	chrBanks int
}

func newGxROM(rom ROM) *gxrom {
	return &gxrom{
		prg:      rom.PRG,
		chr:      rom.CHR,
		mirror:   rom.Mirror,
		prgBanks: len(rom.PRG) / 0x8000,
		chrBanks: chrBanks8k(rom.CHR),
	}
}

func (m *gxrom) CPURead(addr uint16) (uint8, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	base := (m.prgBank % m.prgBanks) * 0x8000
	return m.prg[base+int(addr-0x8000)], true
}

func (m *gxrom) CPUWrite(addr uint16, v uint8) bool {
	if addr < 0x8000 {
		return false
	}
	m.prgBank = int(v>>4) & 0x03
	if m.chrBanks > 0 {
		m.chrBank = int(v) & 0x03 % m.chrBanks
	}
	return true
}

func (m *gxrom) PPURead(addr uint16) (uint8, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	base := m.chrBank * 0x2000
	return m.chr[base+int(addr)], true
}

func (m *gxrom) PPUWrite(addr uint16, v uint8) bool { return false }

func (m *gxrom) Reset()         { m.prgBank, m.chrBank = 0, 0 }
func (m *gxrom) Mirror() Mirror { return m.mirror }
func (m *gxrom) IRQState() bool { return false }
func (m *gxrom) IRQClear()      {}
func (m *gxrom) Scanline()      {}
