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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

// Package sdlaudio streams the APU's mixed output through an SDL audio
// device. The emulator produces one sample per APU.Sample() call; this
// package batches them into a double buffer and queues them to the device
// in the teacher's flush/repeat style, adapted from 8-bit TIA samples to
// 16-bit signed samples converted from the mixer's float output.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SampleRate is the playback rate the SDL audio device is opened at. The
// host decimates APU samples from the CPU clock down to its own configured
// rate; this package does no resampling.
const SampleRate = 44100

// bufferLength was arrived at the same way the teacher's was: short enough
// to avoid audible lag, long enough to avoid flushing too often.
const bufferLength = 1024

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	buffer   *[]int16
	other    *[]int16
	bufferA  []int16
	bufferB  []int16
	bufferCt int

	isBufferEmpty chan bool
}

// NewAudio opens the default SDL audio device for 16-bit mono playback.
func NewAudio() (*Audio, error) {
	aud := &Audio{
		isBufferEmpty: make(chan bool, 1),
	}

	aud.bufferA = make([]int16, bufferLength)
	aud.bufferB = make([]int16, bufferLength)
	aud.buffer = &aud.bufferA
	aud.other = &aud.bufferB

	spec := &sdl.AudioSpec{
		Freq:     SampleRate,
		Format:   sdl.AUDIO_S16SYS,
		Channels: 1,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, err
	}
	aud.spec = actualSpec

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// PushSample queues one mixed APU sample, in the range [0, 1], converting
// it to a centred 16-bit signed value.
func (aud *Audio) PushSample(v float32) error {
	(*aud.buffer)[aud.bufferCt] = int16((v*2 - 1) * 32000)
	aud.bufferCt++

	if aud.bufferCt >= len(*aud.buffer) {
		return aud.flushAudio()
	}
	return nil
}

func (aud *Audio) flushAudio() error {
	bytes := int16SliceToBytes(*aud.buffer)
	if err := sdl.QueueAudio(aud.id, bytes); err != nil {
		return err
	}
	aud.bufferCt = 0
	if aud.buffer == &aud.bufferA {
		aud.buffer, aud.other = &aud.bufferB, &aud.bufferA
	} else {
		aud.buffer, aud.other = &aud.bufferA, &aud.bufferB
	}
	return nil
}

func int16SliceToBytes(s []int16) []byte {
	b := make([]byte, len(s)*2)
	for i, v := range s {
		b[i*2] = byte(v)
		b[i*2+1] = byte(v >> 8)
	}
	return b
}

// EndMixing flushes any remaining buffered audio and closes the device.
func (aud *Audio) EndMixing() error {
	defer sdl.CloseAudioDevice(aud.id)
	return aud.flushAudio()
}
