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

import (
	"testing"

	"github.com/nesgo/nesgo/internal/mapper"
)

type fakeCart struct {
	chr    [0x2000]uint8
	mirror mapper.Mirror
}

func (f *fakeCart) PPURead(addr uint16) (uint8, bool) {
	if addr < 0x2000 {
		return f.chr[addr], true
	}
	return 0, false
}
func (f *fakeCart) PPUWrite(addr uint16, v uint8) bool {
	if addr < 0x2000 {
		f.chr[addr] = v
		return true
	}
	return false
}
func (f *fakeCart) Mirror() mapper.Mirror { return f.mirror }
func (f *fakeCart) Scanline()             {}

func newTestPPU() *PPU {
	return New(&fakeCart{mirror: mapper.MirrorHorizontal})
}

func TestOAMRoundTrip(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(3, 0x10) // OAMADDR
	p.WriteRegister(4, 0x42) // OAMDATA
	p.WriteRegister(3, 0x10)
	got := p.ReadRegister(4)
	if got != 0x42 {
		t.Fatalf("got %#02x, want $42", got)
	}
}

func TestPaletteMirroring(t *testing.T) {
	p := newTestPPU()
	mirrored := []uint16{0x3F10, 0x3F14, 0x3F18, 0x3F1C}
	for _, a := range mirrored {
		p.writePalette(a, 0x15)
		if got := p.readPalette(a - 0x10); got != 0x15 {
			t.Fatalf("palette %#04x not mirrored from %#04x: got %#02x", a, a-0x10, got)
		}
	}
}

func TestLoopyVTStayWithin15Bits(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(6, 0xFF)
	p.WriteRegister(6, 0xFF)
	if p.v >= 0x8000 || p.t >= 0x8000 {
		t.Fatalf("v=%#04x t=%#04x exceed 15 bits", p.v, p.t)
	}
	if p.fineX >= 8 {
		t.Fatalf("fineX=%d exceeds 3 bits", p.fineX)
	}
}

func TestTwoPPUADDRWritesSetVFromT(t *testing.T) {
	p := newTestPPU()
	p.WriteRegister(6, 0x21) // high byte
	p.WriteRegister(6, 0x08) // low byte
	if p.v != 0x2108 {
		t.Fatalf("v = %#04x, want $2108", p.v)
	}
}

func TestScanlineTakes341Ticks(t *testing.T) {
	p := newTestPPU()
	p.scanline, p.cycle = 100, 0
	start := p.scanline
	count := 0
	for p.scanline == start {
		p.Tick()
		count++
	}
	if count != 341 {
		t.Fatalf("scanline advanced after %d ticks, want 341", count)
	}
}

// ticksPerFrame runs the PPU until FrameReady reports a completed frame,
// counting ticks consumed.
func ticksPerFrame(p *PPU) int {
	count := 0
	for {
		p.Tick()
		count++
		if p.FrameReady() {
			return count
		}
	}
}

func TestOddFrameSkipsOneCycleEveryOtherFrame(t *testing.T) {
	p := newTestPPU()
	p.mask = maskShowBG | maskShowSprites
	p.scanline, p.cycle = -1, 0

	const fullFrame = 341 * 262
	want := []int{fullFrame, fullFrame - 1, fullFrame, fullFrame - 1}
	for i, w := range want {
		if got := ticksPerFrame(p); got != w {
			t.Fatalf("frame %d: got %d ticks, want %d", i, got, w)
		}
	}
}

func TestOddFrameSkipDisabledWhenRenderingOff(t *testing.T) {
	p := newTestPPU()
	p.scanline, p.cycle = -1, 0

	const fullFrame = 341 * 262
	for i := 0; i < 3; i++ {
		if got := ticksPerFrame(p); got != fullFrame {
			t.Fatalf("frame %d: got %d ticks, want %d (rendering disabled, no skip)", i, got, fullFrame)
		}
	}
}
