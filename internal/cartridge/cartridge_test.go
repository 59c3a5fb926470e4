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

package cartridge

import "testing"

func buildINES(mapperID int, prgBanks, chrBanks int, flags6 byte) []byte {
	data := make([]byte, headerSize+prgBanks*prgUnit+chrBanks*chrUnit)
	copy(data[0:4], "NES\x1a")
	data[4] = byte(prgBanks)
	data[5] = byte(chrBanks)
	data[6] = flags6 | byte(mapperID<<4)
	data[7] = byte(mapperID &^ 0x0F)
	return data
}

func TestLoadRejectsBadMagic(t *testing.T) {
	data := buildINES(0, 1, 1, 0)
	data[0] = 'X'
	if _, err := Load(data); err == nil {
		t.Fatalf("expected error for bad magic")
	}
}

func TestLoadNROM(t *testing.T) {
	data := buildINES(0, 2, 1, 0)
	c, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.MapperID != 0 {
		t.Fatalf("expected mapper 0, got %d", c.MapperID)
	}
}

func TestLoadUnsupportedMapperFallsBackToNROM(t *testing.T) {
	data := buildINES(250, 2, 1, 0)
	c, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := c.Mapper.CPURead(0x8000); !ok {
		t.Fatalf("expected fallback mapper to answer CPU reads")
	}
}

func TestLoadZeroFillsTruncatedCHR(t *testing.T) {
	data := buildINES(0, 1, 1, 0)
	data = data[:len(data)-0x1000] // chop half the CHR data off
	c, err := Load(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, ok := c.Mapper.PPURead(0x1FFF)
	if !ok || v != 0 {
		t.Fatalf("expected zero-filled tail of truncated CHR, got %d, %v", v, ok)
	}
}
