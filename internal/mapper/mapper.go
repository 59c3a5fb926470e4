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

// Package mapper defines the cartridge bank-switching capability interface
// and the concrete implementations for every mandatory mapper ID. Each
// mapper is a distinct value type with no shared base data; a dispatcher in
// New() builds the correct variant from the mapper ID found in the ROM
// header.
package mapper

// Mirror describes how the PPU's four logical nametables map onto its 2KiB
// of physical VRAM.
type Mirror int

const (
	MirrorHorizontal Mirror = iota
	MirrorVertical
	MirrorSingleScreenLo
	MirrorSingleScreenHi
	MirrorFourScreen
)

// Mapper is the capability interface implemented by every bank-switching
// scheme. A false/zero-ok return from a Write/Read means the caller (Bus or
// PPU) should fall back to its own default behaviour for that address.
type Mapper interface {
	// CPUWrite handles a CPU-side write in $6000-$FFFF. ok is false if the
	// mapper did not claim the address (battery/PRG-RAM backed addresses
	// are always claimed when present).
	CPUWrite(addr uint16, v uint8) (ok bool)

	// CPURead handles a CPU-side read in $6000-$FFFF. ok is false if the
	// mapper did not claim the address.
	CPURead(addr uint16) (v uint8, ok bool)

	// PPUWrite handles a PPU-side write in $0000-$1FFF (CHR space).
	PPUWrite(addr uint16, v uint8) (ok bool)

	// PPURead handles a PPU-side read in $0000-$1FFF (CHR space).
	PPURead(addr uint16) (v uint8, ok bool)

	// Reset restores the mapper's bank-select state to power-on defaults.
	Reset()

	// Mirror returns the mapper's current nametable mirroring mode. Only
	// meaningful for mappers that can select mirroring (AxROM, MMC1, MMC2,
	// MMC3, MMC4); fixed mappers return the mirroring declared in the
	// cartridge header.
	Mirror() Mirror

	// IRQState reports whether the mapper has a pending IRQ.
	IRQState() bool

	// IRQClear acknowledges and clears a pending IRQ.
	IRQClear()

	// Scanline is called by the PPU once per visible scanline (0-239, at
	// cycle 260) while rendering is enabled; the pre-render line does not
	// pulse it (see PPU §4.2 "mapper scanline pulse").
	// Mappers without a scanline counter (most of them) no-op here.
	Scanline()
}
