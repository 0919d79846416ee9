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

package memory_test

import (
	"testing"

	"github.com/jetsetilly/vcs2600/hardware/clocks"
	"github.com/jetsetilly/vcs2600/hardware/memory"
	"github.com/jetsetilly/vcs2600/hardware/memory/cartridge"
	"github.com/jetsetilly/vcs2600/hardware/riot"
	"github.com/jetsetilly/vcs2600/hardware/tia"
	"github.com/jetsetilly/vcs2600/test"
)

func newTestMemory(t *testing.T) (*memory.VCSMemory, *tia.TIA, *riot.RIOT) {
	t.Helper()
	data := make([]byte, 2048)
	data[1] = 0xff // keep the leading bytes non-uniform, no Superchip RAM
	cart, err := cartridge.NewCartridge("", data)
	test.ExpectSuccess(t, err)

	ti := tia.New(clocks.SpecFor(clocks.ConsoleNTSC))
	ri := riot.New()
	return memory.NewVCSMemory(ti, ri, cart), ti, ri
}

func TestWriteAndReadRoutesToTIA(t *testing.T) {
	mem, ti, _ := newTestMemory(t)

	err := mem.Write(0x02, 0x00) // WSYNC
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ti.IsCPUBlocked(), true)
}

func TestWriteAndReadRoutesToRIOTRAM(t *testing.T) {
	mem, _, _ := newTestMemory(t)

	err := mem.Write(0x80, 0x55)
	test.ExpectSuccess(t, err)

	v, err := mem.Read(0x80)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x55))
}

func TestWriteAndReadRoutesToRIOTIO(t *testing.T) {
	mem, _, ri := newTestMemory(t)

	err := mem.Write(0x294, 0x07) // TIM1T; INTIM reads back one less immediately
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ri.Read(0x04), uint8(0x06))
}

func TestReadRoutesToCartridge(t *testing.T) {
	mem, _, _ := newTestMemory(t)

	v, err := mem.Read(0x1001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0xff))
}

func TestPeekAndPokeMirrorReadAndWrite(t *testing.T) {
	mem, _, _ := newTestMemory(t)

	err := mem.Poke(0x81, 0x99)
	test.ExpectSuccess(t, err)

	v, err := mem.Peek(0x81)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x99))
}

func TestCartridgeMirrorsAcrossMask(t *testing.T) {
	mem, _, _ := newTestMemory(t)

	a, err := mem.Read(0x1001)
	test.ExpectSuccess(t, err)
	b, err := mem.Read(0x3001) // outside the 13 bit mask, should mirror
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, a, b)
}
