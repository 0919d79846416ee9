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

package input_test

import (
	"testing"

	"github.com/jetsetilly/vcs2600/hardware/input"
	"github.com/jetsetilly/vcs2600/test"
)

type fakeSwitches struct {
	selectPressed, resetPressed bool
	upDown, leftRight           int
}

func (f *fakeSwitches) SetSelectPressed(pressed bool) { f.selectPressed = pressed }
func (f *fakeSwitches) SetResetPressed(pressed bool)  { f.resetPressed = pressed }
func (f *fakeSwitches) SetPlayer0UpDown(value int)    { f.upDown = value }
func (f *fakeSwitches) SetPlayer0LeftRight(value int) { f.leftRight = value }

type fakeTrigger struct {
	pressed bool
}

func (f *fakeTrigger) SetPlayer0Trigger(pressed bool) { f.pressed = pressed }

func TestPushedEventsAreNotAppliedUntilServiced(t *testing.T) {
	sw := &fakeSwitches{}
	tr := &fakeTrigger{}
	in := input.New(sw, tr)

	in.Push(input.Event{Kind: input.Select, Value: 1})
	test.ExpectEquality(t, sw.selectPressed, false)

	in.Service()
	test.ExpectEquality(t, sw.selectPressed, true)
}

func TestServiceDrainsEveryQueuedEventInOrder(t *testing.T) {
	sw := &fakeSwitches{}
	tr := &fakeTrigger{}
	in := input.New(sw, tr)

	in.Push(input.Event{Kind: input.Player0UpDown, Value: -1})
	in.Push(input.Event{Kind: input.Player0UpDown, Value: 1})
	in.Service()

	test.ExpectEquality(t, sw.upDown, 1)
}

func TestTriggerDispatchesToTIA(t *testing.T) {
	sw := &fakeSwitches{}
	tr := &fakeTrigger{}
	in := input.New(sw, tr)

	in.Push(input.Event{Kind: input.Player0Trigger, Value: 1})
	in.Service()
	test.ExpectEquality(t, tr.pressed, true)
}

func TestPushReturnsFalseWhenQueueIsFull(t *testing.T) {
	sw := &fakeSwitches{}
	tr := &fakeTrigger{}
	in := input.New(sw, tr)

	ok := true
	for i := 0; i < 100 && ok; i++ {
		ok = in.Push(input.Event{Kind: input.Reset, Value: 1})
	}
	test.ExpectEquality(t, ok, false)
}
