// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

// Package random provides the source of scrambled-but-reproducible values
// used to fill state the real hardware leaves undefined at power-on: the CPU
// registers on reset, when enabled. RIOT RAM is not filled from it.
package random

// Coords is the minimal timing reference the random source seeds itself
// from: a call at a different point in the emulated stream produces a
// different value, even for the same nominal request.
type Coords struct {
	Frame    int
	Scanline int
	Clock    int
}

// CoordsProvider is implemented by whatever component can report the
// console's current position in the video stream.
type CoordsProvider interface {
	GetCoords() Coords
}

// Random is the source of pseudo-random byte values.
type Random struct {
	coords CoordsProvider

	// ZeroSeed disables the coordinate-based scrambling, producing the same
	// sequence of values every time. Used by regression tests that need a
	// deterministic power-on state.
	ZeroSeed bool

	advance int
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(coords CoordsProvider) *Random {
	return &Random{coords: coords}
}

func (r *Random) seed() int {
	if r.ZeroSeed || r.coords == nil {
		return r.advance
	}
	c := r.coords.GetCoords()
	return c.Frame*31 + c.Scanline*17 + c.Clock + r.advance
}

// Rewindable returns a value in the range limit that is a pure function of
// the current coordinates — calling it again at the same coordinates
// returns the same value, which matters for rewind/replay consistency.
func (r *Random) Rewindable(limit int) uint8 {
	if limit <= 0 {
		return 0
	}
	s := r.seed()
	s = s*1103515245 + 12345
	if s < 0 {
		s = -s
	}
	return uint8(s % limit)
}

// NoRewind returns a value in the range limit that additionally advances an
// internal counter, so consecutive calls at the same coordinates differ.
func (r *Random) NoRewind(limit int) uint8 {
	v := r.Rewindable(limit)
	r.advance++
	return v
}
