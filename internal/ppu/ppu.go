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

// Package ppu implements the NES Picture Processing Unit's pixel pipeline:
// background and sprite fetch, the loopy v/t scroll registers, sprite-zero
// hit, and VBlank/NMI generation. One call to Tick advances exactly one PPU
// cycle.
package ppu

import "github.com/nesgo/nesgo/internal/mapper"

// Cartridge is the PPU's view of the loaded cartridge: CHR-space reads and
// writes and the mapper's current mirroring mode and scanline pulse.
type Cartridge interface {
	PPURead(addr uint16) (uint8, bool)
	PPUWrite(addr uint16, v uint8) bool
	Mirror() mapper.Mirror
	Scanline()
}

const (
	ctrlNMIEnable   = 1 << 7
	ctrlSpriteSize  = 1 << 5
	ctrlBGTable     = 1 << 4
	ctrlSpriteTable = 1 << 3
	ctrlIncrement32 = 1 << 2

	maskGreyscale    = 1 << 0
	maskShowBGLeft   = 1 << 1
	maskShowSprLeft  = 1 << 2
	maskShowBG       = 1 << 3
	maskShowSprites  = 1 << 4

	statusOverflow = 1 << 5
	statusSprite0  = 1 << 6
	statusVBlank   = 1 << 7
)

// PPU is the 2C02 pixel pipeline state machine.
type PPU struct {
	cart Cartridge

	ctrl   uint8
	mask   uint8
	status uint8

	v, t  uint16
	fineX uint8
	w     bool

	oam     [256]uint8
	oamAddr uint8

	secondaryOAM     [32]uint8
	spriteCount      int
	spritePatternLo  [8]uint8
	spritePatternHi  [8]uint8
	spriteX          [8]uint8
	spriteAttr       [8]uint8
	spriteIsZero     [8]bool
	sprite0Possible  bool

	bgNextTileID   uint8
	bgNextAttr     uint8
	bgNextLo       uint8
	bgNextHi       uint8
	bgShiftPatLo   uint16
	bgShiftPatHi   uint16
	bgShiftAttrLo  uint16
	bgShiftAttrHi  uint16

	nametable [2048]uint8
	palette   [32]uint8

	readBuffer uint8

	scanline int
	cycle    int
	oddFrame bool

	frameReady bool
	nmiLine    bool

	Framebuffer [256 * 240 * 3]uint8
}

// New constructs a PPU wired to the given cartridge.
func New(cart Cartridge) *PPU {
	p := &PPU{cart: cart}
	p.Reset()
	return p
}

// Reset restores power-on register state.
func (p *PPU) Reset() {
	p.ctrl, p.mask, p.status = 0, 0, 0
	p.v, p.t, p.fineX = 0, 0, 0
	p.w = false
	p.scanline, p.cycle = -1, 0
	p.oddFrame = false
	p.frameReady = false
	p.nmiLine = false
	p.readBuffer = 0
}

// NMILatched reports whether the PPU has an NMI pending for the CPU; the
// Bus clears it via AckNMI after routing it.
func (p *PPU) NMILatched() bool { return p.nmiLine }

// AckNMI clears the latched NMI line.
func (p *PPU) AckNMI() { p.nmiLine = false }

// FrameReady reports (and clears) whether a full frame has just completed.
func (p *PPU) FrameReady() bool {
	r := p.frameReady
	p.frameReady = false
	return r
}

// Debug reports the current scanline and cycle; intended for tests and
// diagnostic overlays, not for emulation logic.
func (p *PPU) Debug() (scanline, cycle int) { return p.scanline, p.cycle }

func (p *PPU) renderingEnabled() bool {
	return p.mask&(maskShowBG|maskShowSprites) != 0
}

// --- internal 14-bit PPU address space ($0000-$3FFF) ---

func (p *PPU) nametableIndex(addr uint16) uint16 {
	addr &= 0x0FFF
	table := addr / 0x0400
	offset := addr % 0x0400

	switch p.cart.Mirror() {
	case mapper.MirrorVertical:
		return (table%2)*0x0400 + offset
	case mapper.MirrorHorizontal:
		return (table/2)*0x0400 + offset
	case mapper.MirrorSingleScreenLo:
		return offset
	case mapper.MirrorSingleScreenHi:
		return 0x0400 + offset
	default: // four-screen: approximate with the 2KiB we have
		return addr % 2048
	}
}

func (p *PPU) read(addr uint16) uint8 {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		if v, ok := p.cart.PPURead(addr); ok {
			return v
		}
		return 0
	case addr < 0x3F00:
		return p.nametable[p.nametableIndex(addr)]
	default:
		return p.readPalette(addr)
	}
}

func (p *PPU) write(addr uint16, v uint8) {
	addr &= 0x3FFF
	switch {
	case addr < 0x2000:
		p.cart.PPUWrite(addr, v)
	case addr < 0x3F00:
		p.nametable[p.nametableIndex(addr)] = v
	default:
		p.writePalette(addr, v)
	}
}

func (p *PPU) paletteIndex(addr uint16) uint16 {
	i := addr % 32
	// $3F10/$3F14/$3F18/$3F1C mirror $3F00/$3F04/$3F08/$3F0C.
	if i >= 16 && i%4 == 0 {
		i -= 16
	}
	return i
}

func (p *PPU) readPalette(addr uint16) uint8 {
	v := p.palette[p.paletteIndex(addr)]
	if p.mask&maskGreyscale != 0 {
		v &= 0x30
	}
	return v & 0x3F
}

func (p *PPU) writePalette(addr uint16, v uint8) {
	p.palette[p.paletteIndex(addr)] = v & 0x3F
}

// DMAWrite services one byte of an OAM DMA transfer ($4014): it behaves
// like an OAMDATA write but is driven directly by the Bus rather than a CPU
// register access.
func (p *PPU) DMAWrite(v uint8) {
	p.oam[p.oamAddr] = v
	p.oamAddr++
}

// --- CPU-visible register file ($2000-$2007, mirrored every 8 bytes) ---

// ReadRegister services a CPU read of $2000-$2007.
func (p *PPU) ReadRegister(addr uint16) uint8 {
	switch addr % 8 {
	case 2: // PPUSTATUS
		v := p.status&(statusVBlank|statusSprite0|statusOverflow) | (p.readBuffer & 0x1F)
		p.status &^= statusVBlank
		p.w = false
		return v
	case 4: // OAMDATA
		return p.oam[p.oamAddr]
	case 7: // PPUDATA
		addr := p.v & 0x3FFF
		var v uint8
		if addr >= 0x3F00 {
			v = p.readPalette(addr)
			p.readBuffer = p.read(addr - 0x1000)
		} else {
			v = p.readBuffer
			p.readBuffer = p.read(addr)
		}
		p.incrementV()
		return v
	default:
		return p.readBuffer
	}
}

// WriteRegister services a CPU write of $2000-$2007.
func (p *PPU) WriteRegister(addr uint16, v uint8) {
	p.readBuffer = v
	switch addr % 8 {
	case 0: // PPUCTRL
		p.ctrl = v
		p.t = (p.t &^ 0x0C00) | (uint16(v&0x03) << 10)
	case 1: // PPUMASK
		p.mask = v
	case 3: // OAMADDR
		p.oamAddr = v
	case 4: // OAMDATA
		p.oam[p.oamAddr] = v
		p.oamAddr++
	case 5: // PPUSCROLL
		if !p.w {
			p.fineX = v & 0x07
			p.t = (p.t &^ 0x001F) | uint16(v>>3)
		} else {
			p.t = (p.t &^ 0x73E0) | (uint16(v&0x07) << 12) | (uint16(v>>3) << 5)
		}
		p.w = !p.w
	case 6: // PPUADDR
		if !p.w {
			p.t = (p.t &^ 0x7F00) | (uint16(v&0x3F) << 8)
		} else {
			p.t = (p.t &^ 0x00FF) | uint16(v)
			p.v = p.t
		}
		p.w = !p.w
	case 7: // PPUDATA
		p.write(p.v&0x3FFF, v)
		p.incrementV()
	}
}

func (p *PPU) incrementV() {
	if p.ctrl&ctrlIncrement32 != 0 {
		p.v += 32
	} else {
		p.v++
	}
	p.v &= 0x7FFF
}

// --- loopy v/t scroll math ---

func (p *PPU) incrementCoarseX() {
	if p.v&0x001F == 31 {
		p.v &^= 0x001F
		p.v ^= 0x0400
	} else {
		p.v++
	}
}

func (p *PPU) incrementY() {
	if p.v&0x7000 != 0x7000 {
		p.v += 0x1000
		return
	}
	p.v &^= 0x7000
	coarseY := (p.v & 0x03E0) >> 5
	switch coarseY {
	case 29:
		coarseY = 0
		p.v ^= 0x0800
	case 31:
		coarseY = 0
	default:
		coarseY++
	}
	p.v = (p.v &^ 0x03E0) | (coarseY << 5)
}

func (p *PPU) copyHorizontal() {
	p.v = (p.v &^ 0x041F) | (p.t & 0x041F)
}

func (p *PPU) copyVertical() {
	p.v = (p.v &^ 0x7BE0) | (p.t & 0x7BE0)
}
