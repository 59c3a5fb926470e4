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

// Package apu implements the NES Audio Processing Unit: two pulse channels,
// a triangle, a noise channel, a delta-modulation channel, a frame
// sequencer, and the non-linear mixer that combines them into one sample.
package apu

// CPUBus is the read callback the DMC channel uses to fetch sample bytes
// from CPU address space.
type CPUBus interface {
	CPURead(addr uint16) uint8
}

var lengthTable = [32]uint8{
	10, 254, 20, 2, 40, 4, 80, 6, 160, 8, 60, 10, 14, 12, 26, 14,
	12, 16, 24, 18, 48, 20, 96, 22, 192, 24, 72, 26, 16, 28, 32, 30,
}

var dutyTable = [4][8]uint8{
	{0, 1, 0, 0, 0, 0, 0, 0},
	{0, 1, 1, 0, 0, 0, 0, 0},
	{0, 1, 1, 1, 1, 0, 0, 0},
	{1, 0, 0, 1, 1, 1, 1, 1},
}

var triangleTable = [32]uint8{
	15, 14, 13, 12, 11, 10, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0,
	0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

var noisePeriodTable = [16]uint16{
	4, 8, 16, 32, 64, 96, 128, 160, 202, 254, 380, 508, 762, 1016, 2034, 4068,
}

var dmcRateTable = [16]uint16{
	428, 380, 340, 320, 286, 254, 226, 214, 190, 160, 142, 128, 106, 84, 72, 54,
}

// APU is the 2A03's sound-generation state machine. Tick advances exactly
// one CPU cycle (the APU runs at the CPU clock, §4.3).
type APU struct {
	bus CPUBus

	pulse1, pulse2 pulse
	triangle       triangle
	noise          noise
	dmc            dmc

	frameCounter uint16
	fiveStepMode bool
	irqInhibit   bool
	frameIRQ     bool

	cpuCycle uint64
}

// New constructs an APU wired to the CPU bus (for DMC sample fetches).
func New(bus CPUBus) *APU {
	a := &APU{bus: bus}
	a.Reset()
	return a
}

// Reset restores power-on state.
func (a *APU) Reset() {
	a.pulse1 = pulse{sweepOnesComplement: true}
	a.pulse2 = pulse{}
	a.triangle = triangle{}
	a.noise = noise{shift: 1}
	a.dmc = dmc{bufferEmpty: true}
	a.frameCounter = 0
	a.fiveStepMode = false
	a.irqInhibit = false
	a.frameIRQ = false
	a.cpuCycle = 0
}

// Tick advances the APU by one CPU cycle.
func (a *APU) Tick() {
	a.clockFrameSequencer()

	if a.cpuCycle%2 == 0 {
		a.pulse1.clockTimer()
		a.pulse2.clockTimer()
	}
	a.triangle.clockTimer()
	a.noise.clockTimer()
	a.dmc.clockTimer(a.bus)

	a.cpuCycle++
}

func (a *APU) clockFrameSequencer() {
	a.frameCounter++

	if !a.fiveStepMode {
		switch a.frameCounter {
		case 3728:
			a.quarterFrame()
		case 7456:
			a.quarterFrame()
			a.halfFrame()
		case 11185:
			a.quarterFrame()
		case 14914:
			a.quarterFrame()
			a.halfFrame()
			if !a.irqInhibit {
				a.frameIRQ = true
			}
			a.frameCounter = 0
		}
	} else {
		switch a.frameCounter {
		case 3728:
			a.quarterFrame()
		case 7456:
			a.quarterFrame()
			a.halfFrame()
		case 11185:
			a.quarterFrame()
		case 18640:
			a.quarterFrame()
			a.halfFrame()
			a.frameCounter = 0
		}
	}
}

func (a *APU) quarterFrame() {
	a.pulse1.clockEnvelope()
	a.pulse2.clockEnvelope()
	a.triangle.clockLinearCounter()
	a.noise.clockEnvelope()
}

func (a *APU) halfFrame() {
	a.pulse1.clockLengthAndSweep()
	a.pulse2.clockLengthAndSweep()
	a.triangle.clockLength()
	a.noise.clockLength()
}

// FrameIRQ reports (without clearing) whether the frame sequencer's IRQ is
// pending. The frame sequencer IRQ is detected here and through
// ReadStatus's $4015 read, but is not itself routed to the CPU's IRQ line.
func (a *APU) FrameIRQ() bool { return a.frameIRQ }

// DMCIRQ reports whether the DMC channel currently holds its IRQ line low.
// This is the only APU interrupt source the Bus routes onto the CPU's IRQ
// line; the frame sequencer's IRQ is deliberately not wired to the CPU.
func (a *APU) DMCIRQ() bool { return a.dmc.IRQPending() }

// Sample produces the instantaneous non-linear mix of all five channels, as
// specified in §4.3.
func (a *APU) Sample() float32 {
	p1 := float32(a.pulse1.output())
	p2 := float32(a.pulse2.output())
	tr := float32(a.triangle.output())
	n := float32(a.noise.output())
	d := float32(a.dmc.output())

	var pulseOut float32
	if p1+p2 > 0 {
		pulseOut = 95.52 / (8128.0/(p1+p2) + 100.0)
	}

	var tndOut float32
	tnd := 3*tr + 2*n + d
	if tnd > 0 {
		tndOut = 163.67 / (24329.0/tnd + 100.0)
	}

	return pulseOut + tndOut
}
