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

package console_test

import (
	"testing"

	"github.com/jetsetilly/vcs2600/hardware/console"
	"github.com/jetsetilly/vcs2600/hardware/input"
	"github.com/jetsetilly/vcs2600/test"
)

// newTestROM returns a minimal 2k cartridge image: an infinite loop at the
// reset vector, just enough for the scheduler to have somewhere to run.
func newTestROM() []byte {
	rom := make([]byte, 2048)
	rom[0x7fc] = 0x00
	rom[0x7fd] = 0x10
	rom[0x000] = 0x4c // JMP $1000
	rom[0x001] = 0x00
	rom[0x002] = 0x10
	return rom
}

func TestNewVCSBuildsFromParameters(t *testing.T) {
	vcs, err := console.NewVCS(console.NewParameters(newTestROM()))
	test.ExpectSuccess(t, err)
	vcs.StartUp()

	test.ExpectEquality(t, vcs.CPU.PC.Address(), uint16(0x1000))
}

func TestStartNextFrameAdvancesAndProducesAFrame(t *testing.T) {
	vcs, err := console.NewVCS(console.NewParameters(newTestROM()))
	test.ExpectSuccess(t, err)
	vcs.StartUp()

	err = vcs.StartNextFrame()
	test.ExpectSuccess(t, err)

	screen := vcs.Screen()
	if len(screen) == 0 {
		t.Fatalf("expected a non-empty screen buffer after a frame")
	}

	audio := vcs.AudioFrame()
	if len(audio) == 0 {
		t.Fatalf("expected a non-empty audio buffer after a frame")
	}
}

func TestPushedInputIsAppliedAtStartOfNextFrame(t *testing.T) {
	vcs, err := console.NewVCS(console.NewParameters(newTestROM()))
	test.ExpectSuccess(t, err)
	vcs.StartUp()

	ok := vcs.PushInput(input.Event{Kind: input.Player0Trigger, Value: 1})
	test.ExpectEquality(t, ok, true)

	err = vcs.StartNextFrame()
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, vcs.TIA.Read(0x0c)&0x80, uint8(0))
}

func TestMultipleFramesRunWithoutError(t *testing.T) {
	vcs, err := console.NewVCS(console.NewParameters(newTestROM()))
	test.ExpectSuccess(t, err)
	vcs.StartUp()

	// the CPU and RIOT are only ticked on every third TIA tick; running
	// several frames of the self-looping program exercises that interleave
	// without ever reaching an unmapped address.
	for i := 0; i < 3; i++ {
		err := vcs.StartNextFrame()
		test.ExpectSuccess(t, err)
	}
}
