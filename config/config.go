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

// Package config holds the handful of host-level knobs the player needs,
// in the spirit of the teacher's prefs package (typed, atomically-readable
// values with a disk-backed load/save) but scaled down to what this module
// actually has a use for: display scale, audio on/off, the statsview
// toggle, and the default ROM search path.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/nesgo/nesgo/curated"
	"github.com/nesgo/nesgo/paths"
)

// Live holds the configuration values read at startup and updatable at
// runtime by the host.
type Live struct {
	Scale         float32
	AudioEnabled  bool
	SampleRate    int
	Statsview     bool
	ROMSearchPath string
}

// Default returns the built-in configuration before any file is loaded.
func Default() *Live {
	return &Live{
		Scale:         2.0,
		AudioEnabled:  true,
		SampleRate:    44100,
		Statsview:     false,
		ROMSearchPath: paths.ResourcePath("roms"),
	}
}

const configFilename = "config"

// Load reads the on-disk config file, falling back silently to defaults
// when absent -- matching the spec's "no runtime failure in steady state"
// policy (§7).
func Load() (*Live, error) {
	cfg := Default()

	f, err := os.Open(paths.ResourcePath(configFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, curated.Errorf("config: %v", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)

		switch key {
		case "scale":
			if v, err := strconv.ParseFloat(value, 32); err == nil {
				cfg.Scale = float32(v)
			}
		case "audio":
			cfg.AudioEnabled = value == "true"
		case "sample_rate":
			if v, err := strconv.Atoi(value); err == nil {
				cfg.SampleRate = v
			}
		case "statsview":
			cfg.Statsview = value == "true"
		case "rom_search_path":
			cfg.ROMSearchPath = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf("config: %v", err)
	}

	return cfg, nil
}

// Save writes the live configuration back out to disk.
func (l *Live) Save() error {
	f, err := os.Create(paths.ResourcePath(configFilename))
	if err != nil {
		return curated.Errorf("config: %v", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "scale=%.2f\n", l.Scale)
	fmt.Fprintf(f, "audio=%v\n", l.AudioEnabled)
	fmt.Fprintf(f, "sample_rate=%d\n", l.SampleRate)
	fmt.Fprintf(f, "statsview=%v\n", l.Statsview)
	fmt.Fprintf(f, "rom_search_path=%s\n", l.ROMSearchPath)

	return nil
}
