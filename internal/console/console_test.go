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

package console

import (
	"testing"

	"github.com/nesgo/nesgo/internal/cartridge"
)

func buildNROM(t *testing.T) []byte {
	t.Helper()
	data := make([]byte, 16+16384+8192)
	copy(data[0:4], []byte("NES\x1a"))
	data[4] = 1 // 1x 16KiB PRG
	data[5] = 1 // 1x 8KiB CHR
	// reset vector at $FFFC/$FFFD -> $8000
	data[16+16384-4] = 0x00
	data[16+16384-3] = 0x80
	return data
}

func newTestConsole(t *testing.T) *Console {
	t.Helper()
	cart, err := cartridge.Load(buildNROM(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	c := New(cart)
	c.Reset()
	return c
}

func TestRAMMirroring(t *testing.T) {
	c := newTestConsole(t)
	c.CPUWrite(0x0000, 0x42)
	for _, mirror := range []uint16{0x0800, 0x1000, 0x1800} {
		if got := c.CPURead(mirror); got != 0x42 {
			t.Fatalf("RAM mirror at %#04x = %#02x, want $42", mirror, got)
		}
	}
}

func TestControllerStrobeAndShift(t *testing.T) {
	c := newTestConsole(t)
	c.SetButtons(0, ButtonA|ButtonRight)

	c.CPUWrite(0x4016, 1) // strobe high
	c.CPUWrite(0x4016, 0) // strobe low, latches the shift register

	var bits []uint8
	for i := 0; i < 8; i++ {
		bits = append(bits, c.CPURead(0x4016)&0x01)
	}
	want := []uint8{1, 0, 0, 0, 0, 0, 0, 1} // A, B, Select, Start, Up, Down, Left, Right
	for i := range want {
		if bits[i] != want[i] {
			t.Fatalf("bit %d = %d, want %d (full: %v)", i, bits[i], want[i], bits)
		}
	}
}

func TestOAMDMACopiesPage(t *testing.T) {
	c := newTestConsole(t)
	for i := 0; i < 256; i++ {
		c.ram[i] = uint8(i)
	}
	c.CPUWrite(0x4014, 0x00) // page $00

	for c.dmaWait > 0 || c.dmaRemaining > 0 {
		c.Step()
	}

	c.CPUWrite(0x2003, 0x00) // OAMADDR
	for i := 0; i < 256; i++ {
		c.CPUWrite(0x2003, uint8(i))
		if got := c.CPURead(0x2004); got != uint8(i) {
			t.Fatalf("OAM[%d] = %#02x, want %#02x", i, got, uint8(i))
		}
	}
}

func TestStepAdvancesPPUThreeToOne(t *testing.T) {
	c := newTestConsole(t)
	_, startCycle := c.PPU.Debug()
	c.Step()
	_, cycle := c.PPU.Debug()
	if got, want := cycle-startCycle, 3; got != want {
		t.Fatalf("PPU advanced by %d cycles on one Step, want %d", got, want)
	}
}
