// This file is part of drambench.
//
// drambench is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// drambench is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with drambench.  If not, see <https://www.gnu.org/licenses/>.

// Package chime synthesizes the bench chime and writes it to disk as a
// WAV file. The reference fixture sounds a rising triad on pass and a low
// buzz on fault; writing the same audio as a file gives a session
// artifact that can be played by whatever the bench has to hand.
package chime

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/hexbench/drambench/curated"
	"github.com/hexbench/drambench/logger"
)

// sentinel for errors from the chime package.
const EncodeFail = "chime: %v"

const sampleRate = 44100
const bitDepth = 8

// note frequencies in Hz.
const (
	notePass1 = 523 // C5
	notePass2 = 659 // E5
	notePass3 = 784 // G5
	noteFault = 110 // A2
)

// square appends a square wave tone to the sample buffer. amplitude is
// kept below full scale to avoid clipping on cheap bench speakers.
func square(data []int, freq int, duration float64) []int {
	n := int(float64(sampleRate) * duration)
	half := sampleRate / (2 * freq)

	for i := 0; i < n; i++ {
		v := 96
		if (i/half)%2 == 1 {
			v = -96
		}
		data = append(data, v+128)
	}

	return data
}

// PassChime returns the samples of the rising triad.
func PassChime() []int {
	data := make([]int, 0, sampleRate)
	data = square(data, notePass1, 0.15)
	data = square(data, notePass2, 0.15)
	data = square(data, notePass3, 0.3)
	return data
}

// FaultChime returns the samples of the low buzz.
func FaultChime() []int {
	data := make([]int, 0, sampleRate)
	return square(data, noteFault, 0.75)
}

// Write the samples to the named file as an 8-bit mono WAV.
func Write(filename string, data []int) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(EncodeFail, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(EncodeFail, err)
		}
	}()

	enc := wav.NewEncoder(f, sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(EncodeFail, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(EncodeFail, err)
	}

	logger.Logf("chime", "written to %s", filename)

	return nil
}
