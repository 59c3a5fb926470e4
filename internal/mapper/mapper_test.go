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

import "testing"

func fillPRG(size int, stamp uint8) []uint8 {
	prg := make([]uint8, size)
	for i := range prg {
		prg[i] = stamp
	}
	return prg
}

func TestNROM16kMirrorsAcrossBothWindows(t *testing.T) {
	m := New(0, ROM{PRG: fillPRG(0x4000, 0x42), Mirror: MirrorHorizontal})
	lo, ok := m.CPURead(0x8000)
	if !ok || lo != 0x42 {
		t.Fatalf("got %v, %v", lo, ok)
	}
	hi, ok := m.CPURead(0xC000)
	if !ok || hi != 0x42 {
		t.Fatalf("got %v, %v", hi, ok)
	}
}

func TestUxROMFixesLastBank(t *testing.T) {
	prg := make([]uint8, 0x4000*4)
	for bank := 0; bank < 4; bank++ {
		for i := 0; i < 0x4000; i++ {
			prg[bank*0x4000+i] = uint8(bank)
		}
	}
	m := New(2, ROM{PRG: prg})
	v, _ := m.CPURead(0xC000)
	if v != 3 {
		t.Fatalf("expected fixed last bank (3), got %d", v)
	}
	m.CPUWrite(0x8000, 1)
	v, _ = m.CPURead(0x8000)
	if v != 1 {
		t.Fatalf("expected switched bank 1, got %d", v)
	}
}

func TestMMC1ResetBitForcesPRGMode3(t *testing.T) {
	prg := fillPRG(0x4000*4, 0)
	for bank := 0; bank < 4; bank++ {
		for i := 0; i < 0x4000; i++ {
			prg[bank*0x4000+i] = uint8(bank)
		}
	}
	m := New(1, ROM{PRG: prg})
	m.CPUWrite(0x8000, 0x80) // reset bit
	v, _ := m.CPURead(0xC000)
	if v != 3 {
		t.Fatalf("expected last bank fixed at $C000 after reset, got %d", v)
	}
}

func TestMMC3IRQFiresAfterSeventeenScanlinePulses(t *testing.T) {
	prg := fillPRG(0x2000*4, 0)
	m := New(4, ROM{PRG: prg}).(*mmc3)
	m.Reset()
	m.CPUWrite(0xC000, 0x10) // latch = 16
	m.CPUWrite(0xC001, 0)    // force reload
	m.CPUWrite(0xE001, 0)    // enable IRQ

	for i := 0; i < 17; i++ {
		m.Scanline()
	}

	if !m.IRQState() {
		t.Fatalf("expected IRQ pending after 17 scanline pulses with latch 16")
	}
}

func TestMMC3CHRInversionSwapsWindows(t *testing.T) {
	chr := make([]uint8, 0x0400*8)
	for i := range chr {
		chr[i] = uint8(i / 0x0400)
	}
	m := New(4, ROM{PRG: fillPRG(0x2000*4, 0), CHR: chr}).(*mmc3)
	m.CPUWrite(0x8000, 0x00) // select R0, no inversion
	m.CPUWrite(0x8001, 2)    // R0 -> bank 2 (clears low bit -> 2)
	v, _ := m.PPURead(0x0000)
	if v != 2 {
		t.Fatalf("expected bank 2 at window 0, got %d", v)
	}

	m.CPUWrite(0x8000, 0x80) // set inversion bit, still targeting R0
	v, _ = m.PPURead(0x1000)
	if v != 2 {
		t.Fatalf("expected inverted window to read R0's bank, got %d", v)
	}
}
