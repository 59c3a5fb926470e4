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

// Package sdl is the SDL implementation of the emulator's display: a single
// window blitting the PPU's 256x240 framebuffer every frame, and a
// keyboard-driven event loop feeding controller state back to the caller.
package sdl

import (
	"github.com/nesgo/nesgo/curated"
	"github.com/nesgo/nesgo/gui"

	"github.com/veandco/go-sdl2/sdl"
)

// GUI is the SDL-backed display and input source for one console instance.
type GUI struct {
	scr *screen

	fpsLimiter *fpsLimiter

	eventChannel chan gui.Event

	visible bool
}

// NewGUI opens an SDL window scaled by the given factor (1.0 = 256x240).
func NewGUI(scale float32) (*GUI, error) {
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	gtv := &GUI{
		eventChannel: make(chan gui.Event, 64),
	}

	var err error
	gtv.fpsLimiter, err = newFPSLimiter(60)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	gtv.scr, err = newScreen(scale)
	if err != nil {
		return nil, curated.Errorf("sdl: %v", err)
	}

	go gtv.guiLoop()

	return gtv, nil
}

// Events returns the channel window-close and keyboard events arrive on.
func (gtv *GUI) Events() <-chan gui.Event { return gtv.eventChannel }

// SetFeature implements gui.GUI for the small set of features this frontend
// supports.
func (gtv *GUI) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqSetVisibility:
		v, _ := args[0].(bool)
		gtv.visible = v
		if v {
			gtv.scr.window.Show()
		} else {
			gtv.scr.window.Hide()
		}
		return nil
	case gui.ReqState:
		return nil
	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}
}

// SetFeatureNoError implements gui.GUI.
func (gtv *GUI) SetFeatureNoError(request gui.FeatureReq, args ...gui.FeatureReqData) {
	_ = gtv.SetFeature(request, args...)
}

// GetFeature implements gui.GUI.
func (gtv *GUI) GetFeature(request gui.FeatureReq) (gui.FeatureReqData, error) {
	switch request {
	case gui.ReqSetVisibility:
		return gtv.visible, nil
	default:
		return nil, curated.Errorf(gui.UnsupportedGuiFeature, request)
	}
}

// NewFrame blits the given framebuffer (256*240*3 RGB bytes, as produced by
// ppu.PPU.Framebuffer) and paces the caller to roughly 60Hz.
func (gtv *GUI) NewFrame(framebuffer []uint8) error {
	gtv.fpsLimiter.wait()
	if err := gtv.scr.update(framebuffer); err != nil {
		return curated.Errorf("sdl: %v", err)
	}
	return nil
}

// Destroy tears down the SDL window and subsystems.
func (gtv *GUI) Destroy() {
	gtv.scr.destroy()
	sdl.Quit()
}
