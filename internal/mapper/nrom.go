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

// nrom is mapper 000: no bank switching. PRG is either 16KiB (mirrored
// across $8000-$BFFF and $C000-$FFFF) or 32KiB (mapped straight through).
type nrom struct {
	prg    []uint8
	chr    []uint8
	ram    []uint8
	chrRAM bool
	mirror Mirror
}

func newNROM(rom ROM) *nrom {
	return &nrom{
		prg:    rom.PRG,
		chr:    rom.CHR,
		ram:    rom.PRGRAM,
		chrRAM: rom.CHRIsRAM,
		mirror: rom.Mirror,
	}
}

func (m *nrom) CPURead(addr uint16) (uint8, bool) {
	if addr >= 0x6000 && addr < 0x8000 {
		if len(m.ram) == 0 {
			return 0, true
		}
		return m.ram[int(addr-0x6000)%len(m.ram)], true
	}
	if addr >= 0x8000 {
		off := int(addr - 0x8000)
		if len(m.prg) == 0x4000 {
			off %= 0x4000
		}
		return m.prg[off%len(m.prg)], true
	}
	return 0, false
}

func (m *nrom) CPUWrite(addr uint16, v uint8) bool {
	if addr >= 0x6000 && addr < 0x8000 && len(m.ram) > 0 {
		m.ram[int(addr-0x6000)%len(m.ram)] = v
		return true
	}
	return false
}

func (m *nrom) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 && len(m.chr) > 0 {
		return m.chr[int(addr)%len(m.chr)], true
	}
	return 0, false
}

func (m *nrom) PPUWrite(addr uint16, v uint8) bool {
	if addr < 0x2000 && m.chrRAM && len(m.chr) > 0 {
		m.chr[int(addr)%len(m.chr)] = v
		return true
	}
	return false
}

func (m *nrom) Reset()             {}
func (m *nrom) Mirror() Mirror     { return m.mirror }
func (m *nrom) IRQState() bool     { return false }
func (m *nrom) IRQClear()          {}
func (m *nrom) Scanline()          {}
