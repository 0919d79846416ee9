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

// Package riot implements the RIOT's timer and I/O registers (the
// PIA/"6532" half of the VCS's two support chips; the 128 bytes of console
// working RAM live on the same chip and are exposed here too). The
// interval timer counts down once per step-many RIOT ticks (one tick per CPU
// cycle) and, on underflow, latches an interrupt-status bit and free-runs at
// a 1-tick step until the timer is next written.
package riot

// normalised I/O register offsets, matching
// addresses.RIOTReadSymbols/RIOTWriteSymbols once masked down by
// memorymap.RIOTIOOrigin.
const (
	regSWCHA  = 0x00
	regSWACNT = 0x01
	regSWCHB  = 0x02
	regSWBCNT = 0x03
	regINTIM  = 0x04
	regINSTAT = 0x05

	regTIM1T   = 0x14
	regTIM8T   = 0x15
	regTIM64T  = 0x16
	regTIM1024 = 0x17
)

const ramSize = 128

// RIOT holds the timer, the two I/O ports, and the console's 128 bytes of
// battery-backed working RAM.
type RIOT struct {
	ram [ramSize]uint8

	swcha, swacnt uint8
	swbcnt        uint8

	intim  uint8
	instat uint8

	step      int
	stepCount int
	overflow  bool

	selectPressed bool
	resetPressed  bool
}

// New returns a RIOT in its power-on state.
func New() *RIOT {
	r := &RIOT{}
	r.Reset()
	return r
}

// Reset returns the RIOT to its power-on state: switches read as released
// (all high) and the timer free-runs with a step of 1.
func (r *RIOT) Reset() {
	r.ram = [ramSize]uint8{}
	r.swcha = 0xff
	r.swacnt = 0
	r.swbcnt = 0xff
	r.intim = 0
	r.instat = 0
	r.step = 1
	r.stepCount = 0
	r.overflow = false
	r.selectPressed = false
	r.resetPressed = false
}

// ReadRAM reads one of the 128 bytes of console working RAM, addr already
// masked to 0-0x7f by memorymap.RAMOrigin.
func (r *RIOT) ReadRAM(addr uint16) uint8 { return r.ram[addr] }

// WriteRAM writes one of the 128 bytes of console working RAM.
func (r *RIOT) WriteRAM(addr uint16, v uint8) { r.ram[addr] = v }

// SetSelectPressed and SetResetPressed drive the console's SELECT and RESET
// switches, mirrored into SWCHB on read.
func (r *RIOT) SetSelectPressed(pressed bool) { r.selectPressed = pressed }
func (r *RIOT) SetResetPressed(pressed bool)  { r.resetPressed = pressed }

// SetPlayer0UpDown drives the joystick's up/down lines for controller 0:
// negative is up, positive is down, zero is centred (both released).
func (r *RIOT) SetPlayer0UpDown(value int) {
	r.swcha |= 0x30
	switch {
	case value < 0:
		r.swcha &^= 0x20
	case value > 0:
		r.swcha &^= 0x10
	}
}

// SetPlayer0LeftRight drives the joystick's left/right lines for controller
// 0: negative is left, positive is right, zero is centred.
func (r *RIOT) SetPlayer0LeftRight(value int) {
	r.swcha |= 0xc0
	switch {
	case value < 0:
		r.swcha &^= 0x40
	case value > 0:
		r.swcha &^= 0x80
	}
}

// Read returns the value of an I/O register, addr already normalised to
// addresses.RIOTReadSymbols.
func (r *RIOT) Read(addr uint16) uint8 {
	switch addr {
	case regSWCHA:
		return r.swcha
	case regSWACNT:
		return r.swacnt
	case regSWCHB:
		result := uint8(0x0b)
		if r.selectPressed {
			result &^= 0x02
		}
		if r.resetPressed {
			result &^= 0x01
		}
		return result
	case regSWBCNT:
		return r.swbcnt
	case regINTIM:
		v := r.intim
		if !r.overflow {
			r.instat &^= 0x40
		}
		return v
	case regINSTAT:
		v := r.instat
		if !r.overflow {
			r.instat &^= 0x80
		}
		return v
	}
	return 0
}

// Write updates an I/O register, addr already normalised to
// addresses.RIOTWriteSymbols.
func (r *RIOT) Write(addr uint16, v uint8) {
	switch addr {
	case regSWCHA:
		r.swcha = v
	case regSWACNT:
		r.swacnt = v
	case regTIM1T:
		r.setTimer(v, 1)
	case regTIM8T:
		r.setTimer(v, 8)
	case regTIM64T:
		r.setTimer(v, 64)
	case regTIM1024:
		r.setTimer(v, 1024)
	}
}

func (r *RIOT) setTimer(v uint8, step int) {
	r.instat &^= 0xc0
	r.intim = v - 1
	r.step = step
	r.stepCount = 0
	r.overflow = false
}

// ExecuteTick advances the timer by one RIOT tick; the console calls it once
// per CPU cycle. The interval counter only decrements once every step-many
// ticks; on underflow the status register latches, and the timer reverts to a
// 1-tick step so it free-runs until the CPU next writes a timer register.
func (r *RIOT) ExecuteTick() {
	r.stepCount++
	if r.stepCount < r.step {
		return
	}
	r.stepCount = 0
	r.overflow = false

	if r.intim == 0 {
		r.intim = 0xff
		r.instat |= 0xc0
		r.step = 1
		r.overflow = true
		return
	}
	r.intim--
}
