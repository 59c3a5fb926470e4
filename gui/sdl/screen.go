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

package sdl

import (
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenWidth  = 256
	screenHeight = 240
)

// screen owns the SDL window, renderer and streaming texture the PPU
// framebuffer is blitted into every frame.
type screen struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
}

func newScreen(scale float32) (*screen, error) {
	scr := &screen{}

	w, h := int32(float32(screenWidth)*scale), int32(float32(screenHeight)*scale)

	var err error
	scr.window, err = sdl.CreateWindow("nesgo", sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		w, h, sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, err
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, err
	}
	if err := scr.renderer.SetLogicalSize(screenWidth, screenHeight); err != nil {
		return nil, err
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_RGB24, sdl.TEXTUREACCESS_STREAMING,
		screenWidth, screenHeight)
	if err != nil {
		return nil, err
	}

	return scr, nil
}

// update copies a 256*240*3 RGB framebuffer into the streaming texture and
// presents it.
func (scr *screen) update(framebuffer []uint8) error {
	if err := scr.texture.Update(nil, framebuffer, screenWidth*3); err != nil {
		return err
	}
	if err := scr.renderer.Clear(); err != nil {
		return err
	}
	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return err
	}
	scr.renderer.Present()
	return nil
}

func (scr *screen) destroy() {
	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
}
