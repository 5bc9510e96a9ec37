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

// Package sdllamp renders the status indicator as a coloured SDL window:
// a software stand-in for the bi-colour LED on the reference fixture.
//
// SDL requires window handling to happen on the main thread. The suite
// signals state changes from whatever goroutine it runs on; the Service()
// function must be called in a loop from the main thread to apply them.
package sdllamp

import (
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/hexbench/drambench/curated"
)

// sentinel for errors from the sdllamp package.
const SDLFail = "sdllamp: %v"

const (
	stateIdle int32 = iota
	stateRunning
	statePass
	stateFault
)

// number of Service() calls a progress pulse stays bright for.
const pulseFrames = 4

// Lamp is an SDL window showing the indicator state. Implements the
// indicator.Indicator interface.
type Lamp struct {
	window   *sdl.Window
	renderer *sdl.Renderer

	// written from the suite goroutine, read from the main thread
	state atomic.Int32
	pulse atomic.Int32
}

// NewLamp is the preferred method of initialisation for the Lamp type.
// Must be called from the main thread.
func NewLamp() (*Lamp, error) {
	l := &Lamp{}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLFail, err)
	}

	l.window, err = sdl.CreateWindow("drambench",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		160, 160,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, curated.Errorf(SDLFail, err)
	}

	l.renderer, err = sdl.CreateRenderer(l.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf(SDLFail, err)
	}

	return l, nil
}

// Destroy releases the SDL resources used by the lamp. Must be called
// from the main thread.
func (l *Lamp) Destroy() {
	if l.renderer != nil {
		_ = l.renderer.Destroy()
	}
	if l.window != nil {
		_ = l.window.Destroy()
	}
	sdl.Quit()
}

// Service applies pending state changes and redraws the lamp. Must be
// called in a loop from the main thread. Returns false when the window
// has been closed by the user.
func (l *Lamp) Service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if _, ok := ev.(*sdl.QuitEvent); ok {
			return false
		}
	}

	var r, g, b uint8

	switch l.state.Load() {
	case stateIdle:
		r, g, b = 64, 64, 64
	case stateRunning:
		r, g, b = 224, 144, 0
		if l.pulse.Load() > 0 {
			l.pulse.Add(-1)
			r, g, b = 255, 200, 64
		}
	case statePass:
		r, g, b = 0, 192, 0
	case stateFault:
		r, g, b = 208, 0, 0
	}

	_ = l.renderer.SetDrawColor(r, g, b, 255)
	_ = l.renderer.Clear()
	l.renderer.Present()

	return true
}

// Idle implements the indicator.Indicator interface.
func (l *Lamp) Idle() {
	l.state.Store(stateIdle)
}

// Running implements the indicator.Indicator interface.
func (l *Lamp) Running() {
	l.state.Store(stateRunning)
}

// PulseProgress implements the indicator.Indicator interface.
func (l *Lamp) PulseProgress() {
	l.pulse.Store(pulseFrames)
}

// Pass implements the indicator.Indicator interface.
func (l *Lamp) Pass() {
	l.state.Store(statePass)
}

// Fault implements the indicator.Indicator interface.
func (l *Lamp) Fault() {
	l.state.Store(stateFault)
}
