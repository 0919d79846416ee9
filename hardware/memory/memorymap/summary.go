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

package memorymap

import (
	"fmt"
	"strings"
)

// Summary returns a human readable table of the entire 6507 address space,
// one line per contiguous 0x80 byte block, collapsed into a single line for
// cartridge space.
func Summary() string {
	s := strings.Builder{}

	for addr := uint16(0); addr < OriginCart; addr += 0x80 {
		fmt.Fprintf(&s, "%04x -> %04x\t%s\n", addr, addr+0x7f, Flag(addr))
	}

	fmt.Fprintf(&s, "%04x -> %04x\t%s\n", uint16(OriginCart), uint16(MemtopCart), Cartridge)

	return s.String()
}
