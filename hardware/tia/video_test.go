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

package tia_test

import (
	"testing"

	"github.com/jetsetilly/vcs2600/hardware/clocks"
	"github.com/jetsetilly/vcs2600/hardware/tia"
	"github.com/jetsetilly/vcs2600/test"
)

// runToVisibleScanline advances ti past the vertical blank into the first
// visible scanline, leaving the horizontal counter at cycle 0 so a
// RESP0/RESM0/RESBL written immediately after lands at a predictable screen
// column on the very next tick.
func runToVisibleScanline(ti *tia.TIA, spec clocks.Spec) {
	ticksPerScanline := 68 + spec.XRes
	target := (3 + spec.VBlankLines) * ticksPerScanline
	for i := 0; i < target; i++ {
		ti.ExecuteTick()
	}
}

func TestPlayerMissileCollisionLatches(t *testing.T) {
	spec := clocks.SpecFor(clocks.ConsoleNTSC)
	ti := tia.New(spec)

	ti.Write(0x06, 0xff) // COLUP0, opaque if rendered
	ti.Write(0x07, 0xff) // COLUP1
	ti.Write(0x1b, 0xff) // GRP0, all 8 bits lit
	ti.Write(0x1d, 0x02) // ENAM0

	runToVisibleScanline(ti, spec)

	ti.Write(0x10, 0x00) // RESP0
	ti.Write(0x12, 0x00) // RESM0

	for i := 0; i < 80; i++ {
		ti.ExecuteTick()
	}

	cxm0p := ti.Read(0x00)
	if cxm0p&0x40 == 0 {
		t.Fatalf("expected missile 0 / player 0 collision to have latched, got %#02x", cxm0p)
	}
}

func TestHMCLRThenHMOVEIsANoOp(t *testing.T) {
	ti := tia.New(clocks.SpecFor(clocks.ConsoleNTSC))
	ti.Write(0x20, 0x70) // HMP0, maximum leftward nudge
	ti.Write(0x2b, 0x00) // HMCLR, zeroes every HM register including HMP0
	ti.Write(0x2a, 0x00) // HMOVE, now moves nothing

	// with no sprites enabled and nothing moved, collision latches should
	// remain untouched by the HMOVE itself.
	test.ExpectEquality(t, ti.Read(0x00), uint8(0))
}
