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

// mapper011 is Color Dreams: one write-register selects both a 32KiB PRG
// bank and an 8KiB CHR bank simultaneously (PRG in the low nibble, CHR in
// the high nibble).
type mapper011 struct {
	prg      []uint8
	chr      []uint8
	mirror   Mirror
	prgBank  int
	chrBank  int
	prgBanks int
	chrBanks int
}

func newMapper011(rom ROM) *mapper011 {
	return &mapper011{
		prg:      rom.PRG,
		chr:      rom.CHR,
		mirror:   rom.Mirror,
		prgBanks: len(rom.PRG) / 0x8000,
		chrBanks: chrBanks8k(rom.CHR),
	}
}

func (m *mapper011) CPURead(addr uint16) (uint8, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	base := (m.prgBank % m.prgBanks) * 0x8000
	return m.prg[base+int(addr-0x8000)], true
}

func (m *mapper011) CPUWrite(addr uint16, v uint8) bool {
	if addr < 0x8000 {
		return false
	}
	m.prgBank = int(v) & 0x03
	if m.chrBanks > 0 {
		m.chrBank = int(v>>4) % m.chrBanks
	}
	return true
}

func (m *mapper011) PPURead(addr uint16) (uint8, bool) {
	if addr >= 0x2000 {
		return 0, false
	}
	base := m.chrBank * 0x2000
	return m.chr[base+int(addr)], true
}

func (m *mapper011) PPUWrite(addr uint16, v uint8) bool { return false }

func (m *mapper011) Reset()         { m.prgBank, m.chrBank = 0, 0 }
func (m *mapper011) Mirror() Mirror { return m.mirror }
func (m *mapper011) IRQState() bool { return false }
func (m *mapper011) IRQClear()      {}
func (m *mapper011) Scanline()      {}
