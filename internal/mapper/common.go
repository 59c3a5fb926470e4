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

// ROM bundles the PRG/CHR data and cartridge-header facts every mapper
// variant is constructed from. It is not embedded by the mapper structs
// (each variant keeps its own copy of what it needs) -- it exists purely to
// keep the New() dispatcher's signature small.
type ROM struct {
	PRG        []uint8
	CHR        []uint8
	CHRIsRAM   bool
	PRGRAM     []uint8
	Mirror     Mirror
	HasBattery bool
}

// New builds the mapper variant for the given iNES/NES2.0 mapper ID. Unknown
// IDs fall back to mapper 0 (NROM); the caller is expected to log a warning
// in that case (see internal/cartridge).
func New(id int, rom ROM) Mapper {
	switch id {
	case 1:
		return newMMC1(rom)
	case 2:
		return newUxROM(rom)
	case 3:
		return newCNROM(rom)
	case 4:
		return newMMC3(rom)
	case 7:
		return newAxROM(rom)
	case 9:
		return newMMC2(rom)
	case 10:
		return newMMC4(rom)
	case 11:
		return newMapper011(rom)
	case 66:
		return newGxROM(rom)
	case 71:
		return newCamerica(rom)
	case 206:
		return newNamco108(rom)
	default:
		return newNROM(rom)
	}
}

func prgBanks16k(prg []uint8) int {
	if len(prg) == 0 {
		return 0
	}
	return len(prg) / 0x4000
}

func chrBanks8k(chr []uint8) int {
	if len(chr) == 0 {
		return 0
	}
	return len(chr) / 0x2000
}
