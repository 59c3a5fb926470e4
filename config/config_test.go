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

package config

import "testing"

func TestDefaultIsPlayable(t *testing.T) {
	cfg := Default()
	if cfg.Scale <= 0 {
		t.Fatalf("default scale must be positive, got %v", cfg.Scale)
	}
	if cfg.SampleRate <= 0 {
		t.Fatalf("default sample rate must be positive, got %v", cfg.SampleRate)
	}
}

func TestLoadFallsBackToDefaultsWhenFileAbsent(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load should not fail when no config file exists: %v", err)
	}
	if cfg.Scale != Default().Scale {
		t.Fatalf("expected default scale, got %v", cfg.Scale)
	}
}
