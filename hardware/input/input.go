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

// Package input dispatches host input events onto the RIOT's switches and
// the TIA's fire-button lines. Events are queued on a buffered channel so a
// host frontend can push them from its own goroutine without blocking on the
// console's frame loop; a full queue drops the event rather than stalling
// the emulation.
package input

// Kind identifies what an InputEvent affects.
type Kind int

const (
	Select Kind = iota
	Reset
	Player0UpDown
	Player0LeftRight
	Player0Trigger
)

// Event is a single host input change: a switch toggling, a joystick
// direction changing, or a fire button changing state.
//
// Value is interpreted according to Kind: for Select/Reset/Player0Trigger it
// is 0 (released) or 1 (pressed); for Player0UpDown/Player0LeftRight it is
// -1, 0 or +1 (up/left, centred, down/right).
type Event struct {
	Kind  Kind
	Value int
}

// Switches is the subset of the RIOT's behaviour input dispatch drives.
type Switches interface {
	SetSelectPressed(pressed bool)
	SetResetPressed(pressed bool)
	SetPlayer0UpDown(value int)
	SetPlayer0LeftRight(value int)
}

// Trigger is the subset of the TIA's behaviour input dispatch drives.
type Trigger interface {
	SetPlayer0Trigger(pressed bool)
}

const queueSize = 16

// Input queues host input events and applies them to the RIOT/TIA.
type Input struct {
	riot   Switches
	tia    Trigger
	pushed chan Event
}

// New returns an Input dispatching onto the given RIOT and TIA.
func New(riot Switches, tia Trigger) *Input {
	return &Input{
		riot:   riot,
		tia:    tia,
		pushed: make(chan Event, queueSize),
	}
}

// Push queues ev for dispatch on the next call to Service. Returns false
// without blocking if the queue is full.
func (in *Input) Push(ev Event) bool {
	select {
	case in.pushed <- ev:
		return true
	default:
		return false
	}
}

// Service drains every event queued since the last call and applies it. It
// is called once per frame by the console scheduler.
func (in *Input) Service() {
	for {
		select {
		case ev := <-in.pushed:
			in.apply(ev)
		default:
			return
		}
	}
}

func (in *Input) apply(ev Event) {
	switch ev.Kind {
	case Select:
		in.riot.SetSelectPressed(ev.Value != 0)
	case Reset:
		in.riot.SetResetPressed(ev.Value != 0)
	case Player0UpDown:
		in.riot.SetPlayer0UpDown(ev.Value)
	case Player0LeftRight:
		in.riot.SetPlayer0LeftRight(ev.Value)
	case Player0Trigger:
		in.tia.SetPlayer0Trigger(ev.Value != 0)
	}
}
