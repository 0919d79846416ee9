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

// Package clocks defines the constant values that define the speed of the main
// clock in the VCS console.
//
// The palette package does not use these values for colour generation.
//
// It should also used maybe, for the Supercharger soundloading. However, a
// choice has been made not to complicate the soundload code because it doesn't
// seem to make a difference to loading effectivenss
//
// Values taken from:
// http://www.taswegian.com/WoodgrainWizard/tiki-index.php?page=Clock-Speeds
package clocks

const (
	NTSC  = 1.193182
	PAL   = 1.182298
	PAL_M = 1.191870
	SECAM = 1.187500
)

const (
	NTSC_TIA  = NTSC * 3
	PAL_TIA   = PAL * 3
	PAL_M_TIA = PAL_M * 3
	SECAM_TIA = SECAM * 3
)

// ConsoleType identifies one of the three broadcast standards the console
// shipped for. Timing (frame rate, color-clock rate, vertical blank length)
// and screen dimensions all depend on it.
type ConsoleType int

const (
	ConsoleNTSC ConsoleType = iota
	ConsolePAL
	ConsoleSECAM
)

func (c ConsoleType) String() string {
	switch c {
	case ConsoleNTSC:
		return "NTSC"
	case ConsolePAL:
		return "PAL"
	case ConsoleSECAM:
		return "SECAM"
	}
	return "unknown"
}

// Spec gathers the timing and screen-geometry constants that vary by
// ConsoleType.
type Spec struct {
	ConsoleType ConsoleType
	FPS         int
	TicksPerSec int
	VBlankLines int
	XRes        int
	YRes        int
}

// SpecFor returns the timing/geometry constants for the given console type.
// SECAM is specified as identical to PAL timing.
func SpecFor(c ConsoleType) Spec {
	switch c {
	case ConsolePAL:
		return Spec{
			ConsoleType: ConsolePAL,
			FPS:         50,
			TicksPerSec: 3546894,
			VBlankLines: 45,
			XRes:        160,
			YRes:        228,
		}
	case ConsoleSECAM:
		return Spec{
			ConsoleType: ConsoleSECAM,
			FPS:         50,
			TicksPerSec: 3546894,
			VBlankLines: 45,
			XRes:        160,
			YRes:        228,
		}
	default:
		return Spec{
			ConsoleType: ConsoleNTSC,
			FPS:         60,
			TicksPerSec: 3579545,
			VBlankLines: 37,
			XRes:        160,
			YRes:        210,
		}
	}
}

// TicksPerFrame is the number of color clocks (TIA ticks) in one video
// frame: ticks-per-second divided by frames-per-second.
func (s Spec) TicksPerFrame() int {
	return s.TicksPerSec / s.FPS
}
