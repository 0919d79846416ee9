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

package riot_test

import (
	"testing"

	"github.com/jetsetilly/vcs2600/hardware/riot"
	"github.com/jetsetilly/vcs2600/test"
)

func TestResetState(t *testing.T) {
	r := riot.New()
	test.ExpectEquality(t, r.Read(0x00), uint8(0xff)) // SWCHA
	test.ExpectEquality(t, r.Read(0x02)&0x03, uint8(0x03)) // SWCHB, nothing pressed
}

func TestRAMReadWrite(t *testing.T) {
	r := riot.New()
	r.WriteRAM(0x10, 0x42)
	test.ExpectEquality(t, r.ReadRAM(0x10), uint8(0x42))
}

func TestSelectAndResetSwitchesClearSWCHBBits(t *testing.T) {
	r := riot.New()
	r.SetSelectPressed(true)
	test.ExpectEquality(t, r.Read(0x02)&0x02, uint8(0))

	r.SetResetPressed(true)
	test.ExpectEquality(t, r.Read(0x02)&0x01, uint8(0))

	r.SetSelectPressed(false)
	r.SetResetPressed(false)
	test.ExpectEquality(t, r.Read(0x02)&0x03, uint8(0x03))
}

func TestJoystickUpDownClearsExactlyOneBit(t *testing.T) {
	r := riot.New()

	r.SetPlayer0UpDown(-1)
	test.ExpectEquality(t, r.Read(0x00)&0x30, uint8(0x10)) // up clear, down set

	r.SetPlayer0UpDown(1)
	test.ExpectEquality(t, r.Read(0x00)&0x30, uint8(0x20)) // down clear, up set

	r.SetPlayer0UpDown(0)
	test.ExpectEquality(t, r.Read(0x00)&0x30, uint8(0x30)) // centred, both released
}

func TestJoystickLeftRightClearsExactlyOneBit(t *testing.T) {
	r := riot.New()

	r.SetPlayer0LeftRight(-1)
	test.ExpectEquality(t, r.Read(0x00)&0xc0, uint8(0x80)) // left clear, right set

	r.SetPlayer0LeftRight(1)
	test.ExpectEquality(t, r.Read(0x00)&0xc0, uint8(0x40)) // right clear, left set
}

func TestTimerCountsDownAtSelectedStep(t *testing.T) {
	r := riot.New()
	r.Write(0x15, 0x05) // TIM8T, count from 5; INTIM reads back one less immediately
	test.ExpectEquality(t, r.Read(0x04), uint8(0x04))

	// no further decrement until 8 ticks have elapsed
	for i := 0; i < 7; i++ {
		r.ExecuteTick()
	}
	test.ExpectEquality(t, r.Read(0x04), uint8(0x04))

	r.ExecuteTick()
	test.ExpectEquality(t, r.Read(0x04), uint8(0x03))
}

func TestTimerUnderflowSetsInterruptStatusAndFreeRuns(t *testing.T) {
	r := riot.New()
	r.Write(0x14, 0x01) // TIM1T, count from 1; INTIM reads back 0 immediately
	test.ExpectEquality(t, r.Read(0x04), uint8(0x00))

	r.ExecuteTick() // at a step of 1, the very next tick underflows
	test.ExpectEquality(t, r.Read(0x05)&0x80, uint8(0x80))
	test.ExpectEquality(t, r.Read(0x04), uint8(0xff))
}

func TestReadingINTIMAfterOverflowClearsInstatOnNextNonOverflowRead(t *testing.T) {
	r := riot.New()
	r.Write(0x14, 0x01) // TIM1T, count from 1
	r.ExecuteTick()      // underflows
	test.ExpectEquality(t, r.Read(0x05)&0x80, uint8(0x80))

	r.ExecuteTick() // free-running now, decrementing without overflowing
	r.Read(0x04)
	test.ExpectEquality(t, r.Read(0x05)&0x40, uint8(0))
}
