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

// Package cartridge parses iNES/NES 2.0 ROM images and owns the PRG/CHR
// data, delegating all bank-switched memory access to the mapper package.
package cartridge

import (
	"github.com/nesgo/nesgo/curated"
	"github.com/nesgo/nesgo/internal/mapper"
	"github.com/nesgo/nesgo/logger"
)

const (
	headerSize  = 16
	trainerSize = 512
	prgUnit     = 16 * 1024
	chrUnit     = 8 * 1024
)

// Cartridge owns the raw ROM data for a loaded game and the mapper variant
// selected for it.
type Cartridge struct {
	Mapper mapper.Mapper

	MapperID   int
	HasBattery bool
	PRGRAM     []uint8

	prgSize int
	chrSize int
}

// Load parses an iNES or NES 2.0 image and constructs the appropriate
// mapper. Unknown mapper IDs fall back to mapper 0 (NROM) with a logged
// warning, matching the spec's "no runtime failure in steady state" policy.
func Load(data []byte) (*Cartridge, error) {
	if len(data) < headerSize {
		return nil, curated.Errorf("cartridge: %v", "truncated header")
	}
	if string(data[0:4]) != "NES\x1a" {
		return nil, curated.Errorf("cartridge: %v", "invalid iNES magic")
	}

	prgBanks := int(data[4])
	chrBanks := int(data[5])
	flags6 := data[6]
	flags7 := data[7]

	isNES2 := data[7]&0x0C == 0x08

	mapperID := int(flags6>>4) | int(flags7&0xF0)
	if isNES2 {
		mapperID |= int(data[8]&0x0F) << 8
	} else {
		// ignore upper nibble of flags7 if bytes 12-15 are nonzero
		// (a common heuristic for detecting non-header "junk" iNES files)
		if data[12] != 0 || data[13] != 0 || data[14] != 0 || data[15] != 0 {
			mapperID = int(flags6 >> 4)
		}
	}

	offset := headerSize
	if flags6&0x04 != 0 {
		offset += trainerSize
	}

	prgSize := prgBanks * prgUnit
	chrSize := chrBanks * chrUnit
	if isNES2 {
		prgSize = nes2ROMSize(data[4], data[9]&0x0F, prgUnit)
		chrSize = nes2ROMSize(data[5], data[9]>>4, chrUnit)
	}

	if offset+prgSize > len(data) {
		return nil, curated.Errorf("cartridge: %v", "truncated PRG ROM")
	}
	prg := make([]uint8, prgSize)
	copy(prg, data[offset:offset+prgSize])
	offset += prgSize

	chrIsRAM := chrSize == 0
	var chr []uint8
	if chrIsRAM {
		chr = make([]uint8, chrUnit)
	} else {
		chr = make([]uint8, chrSize)
		n := chrSize
		if offset+n > len(data) {
			n = len(data) - offset
		}
		if n > 0 {
			copy(chr, data[offset:offset+n])
		}
		// truncated CHR data is zero-filled; the rest of chr is already zero
	}

	mirror := mapper.MirrorHorizontal
	if flags6&0x01 != 0 {
		mirror = mapper.MirrorVertical
	}
	if flags6&0x08 != 0 {
		mirror = mapper.MirrorFourScreen
	}

	hasBattery := flags6&0x02 != 0

	c := &Cartridge{
		MapperID:   mapperID,
		HasBattery: hasBattery,
		PRGRAM:     make([]uint8, 0x2000),
		prgSize:    prgSize,
		chrSize:    chrSize,
	}

	if !supported(mapperID) {
		logger.Logf(logger.Allow, "cartridge", "unsupported mapper id %d, falling back to NROM", mapperID)
		mapperID = 0
	}

	c.Mapper = mapper.New(mapperID, mapper.ROM{
		PRG:        prg,
		CHR:        chr,
		CHRIsRAM:   chrIsRAM,
		PRGRAM:     c.PRGRAM,
		Mirror:     mirror,
		HasBattery: hasBattery,
	})

	return c, nil
}

// nes2ROMSize decodes a NES 2.0 PRG/CHR ROM size from its iNES-compatible
// low byte and its header byte 9 nibble. A nibble of 0x0F switches to
// exponent-multiplier notation (needed once a bank count would otherwise
// overflow the 8+4 bit field): bits 0-1 of lsb are the multiplier (doubled
// and made odd), bits 2-7 are the power-of-two exponent, and the size is
// 2^exponent * multiplier bytes rather than a bank count times unit.
func nes2ROMSize(lsb uint8, msbNibble uint8, unit int) int {
	if msbNibble == 0x0F {
		multiplier := int(lsb&0x03)*2 + 1
		exponent := int(lsb >> 2)
		return (1 << exponent) * multiplier
	}
	banks := int(msbNibble)<<8 | int(lsb)
	return banks * unit
}

func supported(id int) bool {
	switch id {
	case 0, 1, 2, 3, 4, 7, 9, 10, 11, 66, 71, 206:
		return true
	default:
		return false
	}
}

// Reset restores the cartridge's mapper to power-on state.
func (c *Cartridge) Reset() {
	c.Mapper.Reset()
}
