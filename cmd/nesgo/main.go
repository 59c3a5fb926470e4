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

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nesgo/nesgo/cartridgeloader"
	"github.com/nesgo/nesgo/config"
	"github.com/nesgo/nesgo/gui"
	"github.com/nesgo/nesgo/gui/sdl"
	"github.com/nesgo/nesgo/gui/sdlaudio"
	"github.com/nesgo/nesgo/internal/cartridge"
	"github.com/nesgo/nesgo/internal/console"
	"github.com/nesgo/nesgo/logger"
	"github.com/nesgo/nesgo/paths"
	"github.com/nesgo/nesgo/statsview"
	"github.com/nesgo/nesgo/wavwriter"
)

// cpuClockHz is the NTSC 2A03 clock rate, used to decimate APU samples down
// to the audio sink's playback rate.
const cpuClockHz = 1789773

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	scale := flag.Float64("scale", 0.0, "window scale (0 uses the configured default)")
	novideo := flag.Bool("novideo", false, "run without a display window")
	noaudio := flag.Bool("noaudio", false, "run without sound output")
	wavPath := flag.String("wav", "", "record audio to this WAV file instead of playing it ('auto' derives a name from the ROM and timestamp)")
	logEcho := flag.Bool("log", false, "echo the debugging log to stdout")
	flag.Parse()

	if *logEcho {
		logger.SetEcho(os.Stdout, false)
	}

	if flag.NArg() != 1 {
		return fmt.Errorf("usage: %s [flags] <rom-file>", os.Args[0])
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if *scale > 0.0 {
		cfg.Scale = float32(*scale)
	}

	if cfg.Statsview && statsview.Available() {
		statsview.Launch(os.Stdout)
	}

	cl := cartridgeloader.NewLoader(flag.Arg(0))
	if err := cl.Load(); err != nil {
		return err
	}

	cart, err := cartridge.Load(cl.Data)
	if err != nil {
		return err
	}

	nes := console.New(cart)
	nes.Reset()

	var audio console.AudioSink
	switch {
	case *wavPath != "":
		name := *wavPath
		if name == "auto" {
			name = paths.UniqueFilename("nesgo", cl.ShortName()) + ".wav"
		}
		aw, err := wavwriter.New(name)
		if err != nil {
			return err
		}
		defer aw.EndMixing()
		audio = aw
	case !*noaudio && cfg.AudioEnabled:
		aud, err := sdlaudio.NewAudio()
		if err != nil {
			return err
		}
		defer aud.EndMixing()
		audio = sdlAudioSink{aud}
	}

	var scr *sdl.GUI
	if !*novideo {
		scr, err = sdl.NewGUI(cfg.Scale)
		if err != nil {
			return err
		}
		defer scr.Destroy()
		scr.SetFeatureNoError(gui.ReqSetVisibility, true)
	}

	return playLoop(nes, scr, audio, cfg.SampleRate)
}

// playLoop drives the console one CPU cycle at a time, forwarding completed
// frames to the display and decimated samples to the audio sink, until the
// display (if any) requests the window be closed.
func playLoop(nes *console.Console, scr *sdl.GUI, audio console.AudioSink, sampleRate int) error {
	samplePeriod := float64(cpuClockHz) / float64(sampleRate)
	sampleAccum := 0.0

	for {
		nes.Step()

		if audio != nil {
			sampleAccum++
			if sampleAccum >= samplePeriod {
				sampleAccum -= samplePeriod
				if err := audio.WriteSample(nes.APU.Sample()); err != nil {
					return err
				}
			}
		}

		if nes.PPU.FrameReady() {
			if scr == nil {
				continue
			}

			if err := scr.NewFrame(nes.PPU.Framebuffer[:]); err != nil {
				return err
			}

			if done, err := serviceEvents(nes, scr); done || err != nil {
				return err
			}
		}
	}
}

// serviceEvents drains pending GUI events, updating controller state and
// reporting whether the window has been asked to close.
func serviceEvents(nes *console.Console, scr *sdl.GUI) (bool, error) {
	for {
		select {
		case ev := <-scr.Events():
			switch ev.ID {
			case gui.EventWindowClose:
				return true, nil
			case gui.EventKeyboard:
				data := ev.Data.(gui.EventDataKeyboard)
				if button, ok := pad1Keymap[data.Key]; ok {
					applyButton(nes, button, data.Down)
				}
			}
		default:
			return false, nil
		}
	}
}

var pad1Keymap = map[string]uint8{
	"Z":           console.ButtonA,
	"X":           console.ButtonB,
	"Right Shift": console.ButtonSelect,
	"Return":      console.ButtonStart,
	"Up":          console.ButtonUp,
	"Down":        console.ButtonDown,
	"Left":        console.ButtonLeft,
	"Right":       console.ButtonRight,
}

var pad1State uint8

func applyButton(nes *console.Console, button uint8, down bool) {
	if down {
		pad1State |= button
	} else {
		pad1State &^= button
	}
	nes.SetButtons(0, pad1State)
}

// sdlAudioSink adapts sdlaudio.Audio's PushSample to the console.AudioSink
// interface, which also has to serve wavwriter.WavWriter's WriteSample.
type sdlAudioSink struct {
	*sdlaudio.Audio
}

func (s sdlAudioSink) WriteSample(v float32) error {
	return s.PushSample(v)
}
