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

package ppu

// Tick advances the PPU by exactly one cycle (scanline in [-1,260], cycle
// in [0,340]), per §4.2.
func (p *PPU) Tick() {
	if p.scanline >= -1 && p.scanline < 240 {
		p.visibleLine()
	}

	if p.scanline == 241 && p.cycle == 1 {
		p.status |= statusVBlank
		if p.ctrl&ctrlNMIEnable != 0 {
			p.nmiLine = true
		}
	}

	p.advanceCounters()
}

func (p *PPU) visibleLine() {
	if p.scanline == -1 && p.cycle == 1 {
		p.status &^= (statusVBlank | statusSprite0 | statusOverflow)
	}

	if p.renderingEnabled() {
		if (p.cycle >= 2 && p.cycle <= 257) || (p.cycle >= 321 && p.cycle <= 337) {
			p.shiftBackgroundRegisters()

			switch (p.cycle - 1) % 8 {
			case 0:
				p.loadBackgroundShifters()
				p.bgNextTileID = p.read(0x2000 | (p.v & 0x0FFF))
			case 2:
				addr := 0x23C0 | (p.v & 0x0C00) | ((p.v >> 4) & 0x38) | ((p.v >> 2) & 0x07)
				b := p.read(addr)
				shift := ((p.v >> 4) & 4) | (p.v & 2)
				p.bgNextAttr = (b >> shift) & 0x03
			case 4:
				table := uint16(0)
				if p.ctrl&ctrlBGTable != 0 {
					table = 0x1000
				}
				fineY := (p.v >> 12) & 0x07
				p.bgNextLo = p.read(table + uint16(p.bgNextTileID)*16 + fineY)
			case 6:
				table := uint16(0)
				if p.ctrl&ctrlBGTable != 0 {
					table = 0x1000
				}
				fineY := (p.v >> 12) & 0x07
				p.bgNextHi = p.read(table + uint16(p.bgNextTileID)*16 + fineY + 8)
			case 7:
				p.incrementCoarseX()
			}
		}

		if p.cycle == 256 {
			p.incrementY()
		}
		if p.cycle == 257 {
			p.loadBackgroundShifters()
			p.copyHorizontal()
		}
		if p.scanline == -1 && p.cycle >= 280 && p.cycle <= 304 {
			p.copyVertical()
		}
		if p.cycle == 257 {
			p.evaluateSprites()
		}
		if p.cycle == 340 {
			p.fetchSpritePatterns()
		}
		if p.cycle == 260 && p.scanline >= 0 && p.scanline < 240 {
			p.cart.Scanline()
		}
	}

	if p.cycle >= 1 && p.cycle <= 256 && p.scanline >= 0 && p.scanline < 240 {
		p.renderPixel()
	}
}

func (p *PPU) shiftBackgroundRegisters() {
	if p.mask&maskShowBG != 0 {
		p.bgShiftPatLo <<= 1
		p.bgShiftPatHi <<= 1
		p.bgShiftAttrLo <<= 1
		p.bgShiftAttrHi <<= 1
	}
}

func (p *PPU) loadBackgroundShifters() {
	p.bgShiftPatLo = (p.bgShiftPatLo & 0xFF00) | uint16(p.bgNextLo)
	p.bgShiftPatHi = (p.bgShiftPatHi & 0xFF00) | uint16(p.bgNextHi)

	var lo, hi uint16
	if p.bgNextAttr&0x01 != 0 {
		lo = 0xFF
	}
	if p.bgNextAttr&0x02 != 0 {
		hi = 0xFF
	}
	p.bgShiftAttrLo = (p.bgShiftAttrLo & 0xFF00) | lo
	p.bgShiftAttrHi = (p.bgShiftAttrHi & 0xFF00) | hi
}

// evaluateSprites scans all 64 OAM entries for the up to 8 that intersect
// the NEXT scanline, flags sprite-zero presence, and sets overflow on a
// ninth hit. This is the "correct-behavior" version named in §4.2 -- the
// original hardware's off-by-one overflow bug is not reproduced.
func (p *PPU) evaluateSprites() {
	p.secondaryOAM = [32]uint8{}
	p.spriteCount = 0
	p.sprite0Possible = false

	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}

	next := p.scanline + 1

	for i := 0; i < 64; i++ {
		y := int(p.oam[i*4])
		row := next - y
		if row < 0 || row >= height {
			continue
		}
		if p.spriteCount == 8 {
			p.status |= statusOverflow
			break
		}
		copy(p.secondaryOAM[p.spriteCount*4:p.spriteCount*4+4], p.oam[i*4:i*4+4])
		if i == 0 {
			p.sprite0Possible = true
			p.spriteIsZero[p.spriteCount] = true
		} else {
			p.spriteIsZero[p.spriteCount] = false
		}
		p.spriteCount++
	}
}

func (p *PPU) fetchSpritePatterns() {
	height := 8
	if p.ctrl&ctrlSpriteSize != 0 {
		height = 16
	}
	next := p.scanline + 1

	for i := 0; i < p.spriteCount; i++ {
		y := int(p.secondaryOAM[i*4])
		tile := p.secondaryOAM[i*4+1]
		attr := p.secondaryOAM[i*4+2]
		x := p.secondaryOAM[i*4+3]

		row := next - y
		flipV := attr&0x80 != 0
		flipH := attr&0x40 != 0

		if flipV {
			row = height - 1 - row
		}

		var addr uint16
		if height == 8 {
			table := uint16(0)
			if p.ctrl&ctrlSpriteTable != 0 {
				table = 0x1000
			}
			addr = table + uint16(tile)*16 + uint16(row)
		} else {
			table := uint16(0)
			if tile&1 != 0 {
				table = 0x1000
			}
			t := tile &^ 1
			if row >= 8 {
				t++
				row -= 8
			}
			addr = table + uint16(t)*16 + uint16(row)
		}

		lo := p.read(addr)
		hi := p.read(addr + 8)
		if flipH {
			lo = reverseBits(lo)
			hi = reverseBits(hi)
		}

		p.spritePatternLo[i] = lo
		p.spritePatternHi[i] = hi
		p.spriteX[i] = x
		p.spriteAttr[i] = attr
	}
}

func reverseBits(b uint8) uint8 {
	var r uint8
	for i := 0; i < 8; i++ {
		r <<= 1
		r |= b & 1
		b >>= 1
	}
	return r
}

func (p *PPU) renderPixel() {
	x := p.cycle - 1

	var bgPixel, bgPalette uint8
	if p.mask&maskShowBG != 0 && (x >= 8 || p.mask&maskShowBGLeft != 0) {
		shift := uint16(15 - p.fineX)
		bgPixel = uint8((p.bgShiftPatHi>>shift)&1)<<1 | uint8((p.bgShiftPatLo>>shift)&1)
		bgPalette = uint8((p.bgShiftAttrHi>>shift)&1)<<1 | uint8((p.bgShiftAttrLo>>shift)&1)
	}

	var fgPixel, fgPalette uint8
	fgPriority := true
	fgIsZero := false
	spritesVisible := p.mask&maskShowSprites != 0 && (x >= 8 || p.mask&maskShowSprLeft != 0)

	if spritesVisible {
		for i := 0; i < p.spriteCount; i++ {
			offset := x - int(p.spriteX[i])
			if offset < 0 || offset > 7 {
				continue
			}
			shift := uint(7 - offset)
			pix := uint8((p.spritePatternHi[i]>>shift)&1)<<1 | uint8((p.spritePatternLo[i]>>shift)&1)
			if pix == 0 {
				continue
			}
			fgPixel = pix
			fgPalette = (p.spriteAttr[i] & 0x03) + 4
			fgPriority = p.spriteAttr[i]&0x20 == 0
			fgIsZero = p.spriteIsZero[i]
			break
		}
	}

	var palette, pixel uint8
	switch {
	case bgPixel == 0 && fgPixel == 0:
		palette, pixel = 0, 0
	case bgPixel == 0 && fgPixel != 0:
		palette, pixel = fgPalette, fgPixel
	case bgPixel != 0 && fgPixel == 0:
		palette, pixel = bgPalette, bgPixel
	default:
		if fgPriority {
			palette, pixel = fgPalette, fgPixel
		} else {
			palette, pixel = bgPalette, bgPixel
		}
		if fgIsZero && p.sprite0Possible && bgPixel != 0 && fgPixel != 0 &&
			p.mask&(maskShowBG|maskShowSprites) == (maskShowBG|maskShowSprites) &&
			x != 255 && (x >= 8 || p.mask&(maskShowBGLeft|maskShowSprLeft) == (maskShowBGLeft|maskShowSprLeft)) {
			p.status |= statusSprite0
		}
	}

	idx := p.readPalette(0x3F00 + uint16(palette)<<2 + uint16(pixel))
	rgb := masterPalette[idx&0x3F]

	if x >= 0 && x < 256 && p.scanline >= 0 && p.scanline < 240 {
		off := (p.scanline*256 + x) * 3
		p.Framebuffer[off] = rgb[0]
		p.Framebuffer[off+1] = rgb[1]
		p.Framebuffer[off+2] = rgb[2]
	}
}

func (p *PPU) advanceCounters() {
	p.cycle++

	if p.cycle > 340 {
		p.cycle = 0
		p.scanline++
		if p.scanline > 260 {
			p.scanline = -1
			p.frameReady = true

			// odd-frame skip: the pre-render line's cycle 0 is skipped when
			// rendering is enabled, shortening that scanline by one cycle. The
			// just-completed frame is counted before the skip is decided, so
			// the skip applies to the frame now starting.
			p.oddFrame = !p.oddFrame
			if p.oddFrame && p.renderingEnabled() {
				p.cycle = 1
			}
		}
	}
}
