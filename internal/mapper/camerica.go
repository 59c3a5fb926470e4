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

// camerica is mapper 071 (Codemasters): a 16KiB PRG bank switchable at
// $8000-$BFFF, fixed last 16KiB bank at $C000-$FFFF. CHR is always 8KiB of
// RAM. Some boards additionally use $8000-$9FFF writes for a single-screen
// mirror select; that variant is not distinguished here since no mandatory
// title depends on it.
type camerica struct {
	prg      []uint8
	chr      []uint8
	mirror   Mirror
	bank     int
	prgBanks int
}

func newCamerica(rom ROM) *camerica {
	chr := rom.CHR
	if len(chr) == 0 {
		chr = make([]uint8, 0x2000)
	}
	return &camerica{
		prg:      rom.PRG,
		chr:      chr,
		mirror:   rom.Mirror,
		prgBanks: prgBanks16k(rom.PRG),
	}
}

func (m *camerica) CPURead(addr uint16) (uint8, bool) {
	if addr < 0x8000 {
		return 0, false
	}
	if addr < 0xC000 {
		base := (m.bank % m.prgBanks) * 0x4000
		return m.prg[base+int(addr-0x8000)], true
	}
	base := (m.prgBanks - 1) * 0x4000
	return m.prg[base+int(addr-0xC000)], true
}

func (m *camerica) CPUWrite(addr uint16, v uint8) bool {
	if addr < 0x8000 {
		return false
	}
	m.bank = int(v) & 0x0F
	return true
}

func (m *camerica) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return m.chr[addr], true
	}
	return 0, false
}

func (m *camerica) PPUWrite(addr uint16, v uint8) bool {
	if addr < 0x2000 {
		m.chr[addr] = v
		return true
	}
	return false
}

func (m *camerica) Reset()         { m.bank = 0 }
func (m *camerica) Mirror() Mirror { return m.mirror }
func (m *camerica) IRQState() bool { return false }
func (m *camerica) IRQClear()      {}
func (m *camerica) Scanline()      {}
