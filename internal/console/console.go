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

// Package console composes the CPU, PPU, APU and cartridge mapper behind a
// single cycle-driven bus, exactly as described by §4.5: one CPU cycle per
// Step, three PPU cycles per CPU cycle, OAM DMA stalling the CPU, and
// NMI/IRQ routed from the PPU, APU and mapper onto the CPU's interrupt
// lines.
package console

import (
	"github.com/nesgo/nesgo/internal/apu"
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/cpu"
	"github.com/nesgo/nesgo/internal/ppu"
)

// AudioSink receives one mixed APU sample, in the range [0.0, 1.0], at
// whatever decimated rate the host chooses to pull them at.
type AudioSink interface {
	WriteSample(v float32) error
}

// Console is the NES's aggregate bus: 2KiB of internal RAM, the CPU, PPU,
// APU, the loaded cartridge, and the two controller ports.
type Console struct {
	CPU *cpu.CPU
	PPU *ppu.PPU
	APU *apu.APU
	Cart *cartridge.Cartridge

	ram [2048]uint8

	pad1, pad2 controller

	dmaWait      int
	dmaRemaining int
	dmaPage      uint8
	dmaIndex     uint8
	dmaLatch     uint8
}

// New wires a console around an already-loaded cartridge.
func New(cart *cartridge.Cartridge) *Console {
	c := &Console{Cart: cart}
	c.PPU = ppu.New(cart.Mapper)
	c.APU = apu.New(c)
	c.CPU = cpu.New(c)
	return c
}

// Reset restores power-on state across the whole machine.
func (c *Console) Reset() {
	c.Cart.Reset()
	c.PPU.Reset()
	c.APU.Reset()
	c.CPU.Reset()
	c.dmaWait, c.dmaRemaining = 0, 0
}

// SetButtons updates a controller's button mask (1 = pressed). port is 0 or 1.
func (c *Console) SetButtons(port int, mask uint8) {
	if port == 0 {
		c.pad1.SetButtons(mask)
	} else {
		c.pad2.SetButtons(mask)
	}
}

// Step advances the whole machine by one CPU cycle's worth of time: either
// one CPU Tick or one OAM DMA transfer cycle, three PPU Ticks, and one APU
// Tick, then routes any interrupts the peripherals raised.
func (c *Console) Step() {
	if c.dmaWait > 0 {
		c.dmaWait--
	} else if c.dmaRemaining > 0 {
		c.stepDMA()
	} else {
		c.CPU.Tick()
	}

	c.PPU.Tick()
	c.PPU.Tick()
	c.PPU.Tick()
	c.APU.Tick()

	c.routeInterrupts()
}

func (c *Console) routeInterrupts() {
	if c.PPU.NMILatched() {
		c.PPU.AckNMI()
		c.CPU.NMI()
	}
	if c.Cart.Mapper.IRQState() {
		c.Cart.Mapper.IRQClear()
		c.CPU.IRQ()
	}
	if c.APU.DMCIRQ() {
		c.CPU.IRQ()
	}
}

func (c *Console) stepDMA() {
	// even countdown values are the read half of a read/write pair, odd
	// values are the write half, so the transfer naturally alternates.
	if c.dmaRemaining%2 == 0 {
		addr := uint16(c.dmaPage)<<8 | uint16(c.dmaIndex)
		c.dmaLatch = c.CPURead(addr)
	} else {
		c.PPU.DMAWrite(c.dmaLatch)
		c.dmaIndex++
	}
	c.dmaRemaining--
}

func (c *Console) startDMA(page uint8) {
	c.dmaPage = page
	c.dmaIndex = 0
	c.dmaRemaining = 512
	c.dmaWait = 1
	if c.CPU.Cycles%2 == 1 {
		c.dmaWait = 2
	}
}

// CPURead satisfies cpu.Bus and apu.CPUBus: the full $0000-$FFFF CPU memory
// map.
func (c *Console) CPURead(addr uint16) uint8 {
	switch {
	case addr < 0x2000:
		return c.ram[addr&0x07FF]
	case addr < 0x4000:
		return c.PPU.ReadRegister(addr)
	case addr == 0x4015:
		return c.APU.ReadStatus()
	case addr == 0x4016:
		return c.pad1.read()
	case addr == 0x4017:
		return c.pad2.read()
	case addr < 0x4018:
		return 0 // write-only APU registers read back as open bus
	default:
		if v, ok := c.Cart.Mapper.CPURead(addr); ok {
			return v
		}
		return 0
	}
}

// CPUWrite satisfies cpu.Bus.
func (c *Console) CPUWrite(addr uint16, v uint8) {
	switch {
	case addr < 0x2000:
		c.ram[addr&0x07FF] = v
	case addr < 0x4000:
		c.PPU.WriteRegister(addr, v)
	case addr == 0x4014:
		c.startDMA(v)
	case addr == 0x4016:
		c.pad1.write(v)
		c.pad2.write(v)
	case addr < 0x4018:
		c.APU.WriteRegister(addr, v)
	default:
		c.Cart.Mapper.CPUWrite(addr, v)
	}
}
