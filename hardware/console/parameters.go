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

package console

import "github.com/jetsetilly/vcs2600/hardware/clocks"

// Parameters describes everything needed to build a VCS: the ROM image and
// the broadcast standard to run it under. The broadcast standard cannot be
// auto-detected from the ROM, so it defaults to NTSC unless the caller
// overrides it.
type Parameters struct {
	ROM         []byte
	ConsoleType clocks.ConsoleType
}

// NewParameters returns Parameters for rom under NTSC timing.
func NewParameters(rom []byte) Parameters {
	return Parameters{ROM: rom, ConsoleType: clocks.ConsoleNTSC}
}

// Spec returns the timing/geometry constants for this console type.
func (p Parameters) Spec() clocks.Spec {
	return clocks.SpecFor(p.ConsoleType)
}
