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

// uxrom is mapper 002: a single 16KiB PRG bank switchable at $8000-$BFFF;
// $C000-$FFFF is fixed to the last bank. CHR is always RAM (8KiB, no
// switching).
type uxrom struct {
	prg    []uint8
	chr    []uint8
	mirror Mirror
	bank   int
	banks  int
}

func newUxROM(rom ROM) *uxrom {
	chr := rom.CHR
	if len(chr) == 0 {
		chr = make([]uint8, 0x2000)
	}
	return &uxrom{
		prg:    rom.PRG,
		chr:    chr,
		mirror: rom.Mirror,
		banks:  prgBanks16k(rom.PRG),
	}
}

func (m *uxrom) CPURead(addr uint16) (uint8, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if addr < 0xC000 {
		base := (m.bank % m.banks) * 0x4000
		return m.prg[base+int(addr-0x8000)], true
	}
	base := (m.banks - 1) * 0x4000
	return m.prg[base+int(addr-0xC000)], true
}

func (m *uxrom) CPUWrite(addr uint16, v uint8) bool {
	if addr < 0x8000 {
		return false
	}
	m.bank = int(v) & 0x0F
	return true
}

func (m *uxrom) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return m.chr[addr], true
	}
	return 0, false
}

func (m *uxrom) PPUWrite(addr uint16, v uint8) bool {
	if addr < 0x2000 {
		m.chr[addr] = v
		return true
	}
	return false
}

func (m *uxrom) Reset()         { m.bank = 0 }
func (m *uxrom) Mirror() Mirror { return m.mirror }
func (m *uxrom) IRQState() bool { return false }
func (m *uxrom) IRQClear()      {}
func (m *uxrom) Scanline()      {}
