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

package cpu

// Mode identifies one of the 13 addressing modes below (implied and
// accumulator are kept as separate modes).
type Mode int

const (
	ModeImplied Mode = iota
	ModeAccumulator
	ModeImmediate
	ModeZeroPage
	ModeZeroPageX
	ModeZeroPageY
	ModeAbsolute
	ModeAbsoluteX
	ModeAbsoluteY
	ModeIndirect
	ModeIndirectX
	ModeIndirectY
	ModeRelative
)

// resolveAddress fills in c.addr (or c.fetched for implied/accumulator/
// immediate) for the given mode and reports whether the effective address
// computation crossed a page boundary.
func (c *CPU) resolveAddress(mode Mode) (pageCross bool) {
	switch mode {
	case ModeImplied:
		return false

	case ModeAccumulator:
		c.fetched = c.A
		return false

	case ModeImmediate:
		c.addr = c.PC
		c.PC++
		return false

	case ModeZeroPage:
		c.addr = uint16(c.read(c.PC))
		c.PC++
		return false

	case ModeZeroPageX:
		base := c.read(c.PC)
		c.PC++
		c.addr = uint16(base + c.X)
		return false

	case ModeZeroPageY:
		base := c.read(c.PC)
		c.PC++
		c.addr = uint16(base + c.Y)
		return false

	case ModeAbsolute:
		lo := c.read(c.PC)
		hi := c.read(c.PC + 1)
		c.PC += 2
		c.addr = uint16(hi)<<8 | uint16(lo)
		return false

	case ModeAbsoluteX:
		lo := c.read(c.PC)
		hi := c.read(c.PC + 1)
		c.PC += 2
		base := uint16(hi)<<8 | uint16(lo)
		c.addr = base + uint16(c.X)
		return (base & 0xFF00) != (c.addr & 0xFF00)

	case ModeAbsoluteY:
		lo := c.read(c.PC)
		hi := c.read(c.PC + 1)
		c.PC += 2
		base := uint16(hi)<<8 | uint16(lo)
		c.addr = base + uint16(c.Y)
		return (base & 0xFF00) != (c.addr & 0xFF00)

	case ModeIndirect:
		lo := c.read(c.PC)
		hi := c.read(c.PC + 1)
		c.PC += 2
		ptr := uint16(hi)<<8 | uint16(lo)
		// documented hardware bug: a pointer low byte of $FF fetches the
		// high byte from the same page rather than crossing.
		var hiAddr uint16
		if lo == 0xFF {
			hiAddr = ptr &^ 0x00FF
		} else {
			hiAddr = ptr + 1
		}
		rlo := c.read(ptr)
		rhi := c.read(hiAddr)
		c.addr = uint16(rhi)<<8 | uint16(rlo)
		return false

	case ModeIndirectX:
		base := c.read(c.PC)
		c.PC++
		ptr := base + c.X // wraps within zero page
		lo := c.read(uint16(ptr))
		hi := c.read(uint16(ptr + 1))
		c.addr = uint16(hi)<<8 | uint16(lo)
		return false

	case ModeIndirectY:
		base := c.read(c.PC)
		c.PC++
		lo := c.read(uint16(base))
		hi := c.read(uint16(base + 1))
		addrBase := uint16(hi)<<8 | uint16(lo)
		c.addr = addrBase + uint16(c.Y)
		return (addrBase & 0xFF00) != (c.addr & 0xFF00)

	case ModeRelative:
		off := c.read(c.PC)
		c.PC++
		c.relative = int8(off)
		c.addr = uint16(int32(c.PC) + int32(c.relative))
		return false
	}
	return false
}

func (c *CPU) operand(mode Mode) uint8 {
	if mode == ModeAccumulator {
		return c.A
	}
	return c.read(c.addr)
}

func (c *CPU) storeResult(mode Mode, v uint8) {
	if mode == ModeAccumulator {
		c.A = v
		return
	}
	c.write(c.addr, v)
}
