// This file is part of nesgo.
//
// nesgo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirety and written to disk
// only when EndMixing is called. It is therefore only suitable for capturing
// short sessions.
package wavwriter

import (
	"os"

	"github.com/nesgo/nesgo/curated"
	"github.com/nesgo/nesgo/logger"
	"github.com/youpy/go-wav"
)

// SampleFreq is the rate at which the APU mixer is sampled for the purposes
// of the WAV capture. NES audio is naturally produced at the CPU clock rate
// but nothing is gained by writing every clock's worth of samples to disk so
// we decimate to a conventional rate.
const SampleFreq = 44100

// WavWriter implements the console.AudioSink interface and accumulates
// samples in memory until EndMixing is called.
type WavWriter struct {
	filename string
	buffer   []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]wav.Sample, 0, SampleFreq*2),
	}

	return aw, nil
}

// WriteSample implements the console.AudioSink interface. v is the
// instantaneous mixed output of the APU in the range [0.0, 1.0].
func (aw *WavWriter) WriteSample(v float32) error {
	s := int(v * 0x7fff)

	w := wav.Sample{}
	w.Values[0] = s
	w.Values[1] = s

	aw.buffer = append(aw.buffer, w)

	return nil
}

// EndMixing flushes the buffered samples to disk as a stereo 16-bit WAV file
// (the two channels are identical; the NES mixer output is monophonic).
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, uint32(SampleFreq), 16)
	if enc == nil {
		return curated.Errorf("wavwriter: %v", "bad parameters for wav encoding")
	}

	logger.Logf(logger.Allow, "wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	return enc.WriteSamples(aw.buffer)
}

// Reset discards any buffered samples.
func (aw *WavWriter) Reset() {
	aw.buffer = aw.buffer[:0]
}
