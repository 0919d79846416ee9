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

// Package tia implements the Television Interface Adaptor: the VCS's video
// compositor. The TIA owns the colour clock, draws the playfield, two
// players, two missiles and a ball into a host-sized RGB framebuffer, latches
// collision bits, and asserts WSYNC to stall the CPU until the start of the
// next scanline.
//
// Register addresses passed to Read and Write are the normalised offsets
// from addresses.TIAReadSymbols/TIAWriteSymbols, not raw 6507 addresses --
// the memory mapper is responsible for that translation.
package tia

import (
	"github.com/jetsetilly/vcs2600/hardware/clocks"
	"github.com/jetsetilly/vcs2600/hardware/tia/palette"
)

// normalised write register offsets, matching addresses.TIAWriteSymbols.
const (
	regVSYNC  = 0x00
	regVBLANK = 0x01
	regWSYNC  = 0x02
	regRSYNC  = 0x03
	regNUSIZ0 = 0x04
	regNUSIZ1 = 0x05
	regCOLUP0 = 0x06
	regCOLUP1 = 0x07
	regCOLUPF = 0x08
	regCOLUBK = 0x09
	regCTRLPF = 0x0a
	regREFP0  = 0x0b
	regREFP1  = 0x0c
	regPF0    = 0x0d
	regPF1    = 0x0e
	regPF2    = 0x0f
	regRESP0  = 0x10
	regRESP1  = 0x11
	regRESM0  = 0x12
	regRESM1  = 0x13
	regRESBL  = 0x14
	regAUDC0  = 0x15
	regAUDC1  = 0x16
	regAUDF0  = 0x17
	regAUDF1  = 0x18
	regAUDV0  = 0x19
	regAUDV1  = 0x1a
	regGRP0   = 0x1b
	regGRP1   = 0x1c
	regENAM0  = 0x1d
	regENAM1  = 0x1e
	regENABL  = 0x1f
	regHMP0   = 0x20
	regHMP1   = 0x21
	regHMM0   = 0x22
	regHMM1   = 0x23
	regHMBL   = 0x24
	regVDELP0 = 0x25
	regVDELP1 = 0x26
	regVDELBL = 0x27
	regRESMP0 = 0x28
	regRESMP1 = 0x29
	regHMOVE  = 0x2a
	regHMCLR  = 0x2b
	regCXCLR  = 0x2c
)

// normalised read register offsets, matching addresses.TIAReadSymbols.
const (
	regCXM0P  = 0x00
	regCXM1P  = 0x01
	regCXP0FB = 0x02
	regCXP1FB = 0x03
	regCXM0FB = 0x04
	regCXM1FB = 0x05
	regCXBLPF = 0x06
	regCXPPMM = 0x07
	regINPT0  = 0x08
	regINPT1  = 0x09
	regINPT2  = 0x0a
	regINPT3  = 0x0b
	regINPT4  = 0x0c
	regINPT5  = 0x0d
)

// copy/size spacing, in colour clocks, between a sprite's duplicated copies.
const (
	spacingClose  = 16
	spacingMedium = 40
	spacingWide   = 72

	// spriteOffset accounts for the few colour clocks of latency between a
	// RESxx write and the counter actually starting.
	spriteOffset = 5
)

// TIA is the video compositor. The zero value is not usable; construct with
// New.
type TIA struct {
	spec clocks.Spec
	pal  palette.Palette

	vsync, vblank                    uint8
	nusiz0, nusiz1                   uint8
	colup0, colup1, colupf, colubk   uint8
	ctrlpf                           uint8
	refp0, refp1                     uint8
	pf0, pf1, pf2                    uint8
	audc0, audc1, audf0, audf1       uint8
	audv0, audv1                     uint8
	grp0, grp1                       uint8
	grp0Delay, grp1Delay             uint8
	enam0, enam1                     uint8
	enabl, enablDelay                uint8
	hmp0, hmp1, hmm0, hmm1, hmbl     uint8
	vdelp0, vdelp1, vdelbl           uint8
	resmp0, resmp1                   uint8

	cx   [8]uint8
	inpt [6]uint8

	cycle    int
	scanLine int
	wsyncSet bool

	resP0Cycle, resP1Cycle int
	resM0Cycle, resM1Cycle int
	resBLCycle             int

	screen        []uint8
	screenDisplay []uint8
}

// New creates a TIA for the given console timing/geometry.
func New(spec clocks.Spec) *TIA {
	t := &TIA{spec: spec}
	if spec.ConsoleType == clocks.ConsoleNTSC {
		t.pal = palette.NTSC
	} else {
		t.pal = palette.PAL
	}
	size := spec.XRes * spec.YRes * 3
	t.screen = make([]uint8, size)
	t.screenDisplay = make([]uint8, size)
	t.Reset()
	return t
}

// Reset returns the TIA to its power-on state.
func (t *TIA) Reset() {
	*t = TIA{spec: t.spec, pal: t.pal, screen: t.screen, screenDisplay: t.screenDisplay}
	for i := range t.inpt {
		t.inpt[i] = 0xff
	}
}

// Read returns the value of a TIA read-only register (collision latches and
// input ports), addr already normalised to addresses.TIAReadSymbols.
func (t *TIA) Read(addr uint16) uint8 {
	switch {
	case addr <= regCXPPMM:
		return t.cx[addr]
	case addr >= regINPT0 && addr <= regINPT5:
		return t.inpt[addr-regINPT0]
	}
	return t.cx[regCXM0P]
}

// Write updates a TIA write register, addr already normalised to
// addresses.TIAWriteSymbols, and applies any side effects the write causes.
func (t *TIA) Write(addr uint16, v uint8) {
	switch addr {
	case regVSYNC:
		if v&0x02 == 0 && t.vsync&0x02 != 0 {
			t.scanLine = 2
			t.vblank |= 0x02
		}
		t.vsync = v
	case regVBLANK:
		if v&0x02 == 0 && t.vblank&0x02 != 0 && t.scanLine > 30 {
			t.scanLine = 2 + t.spec.VBlankLines
		}
		t.vblank = v
	case regWSYNC:
		t.wsyncSet = true
	case regRSYNC:
		t.cycle = 0
	case regNUSIZ0:
		t.nusiz0 = v
	case regNUSIZ1:
		t.nusiz1 = v
	case regCOLUP0:
		t.colup0 = v
	case regCOLUP1:
		t.colup1 = v
	case regCOLUPF:
		t.colupf = v
	case regCOLUBK:
		t.colubk = v
	case regCTRLPF:
		t.ctrlpf = v
	case regREFP0:
		t.refp0 = v
	case regREFP1:
		t.refp1 = v
	case regPF0:
		t.pf0 = v
	case regPF1:
		t.pf1 = v
	case regPF2:
		t.pf2 = v
	case regRESP0:
		t.resP0Cycle = t.cycle + spriteOffset
		if t.resP0Cycle < 68 {
			t.resP0Cycle = 71
		}
	case regRESP1:
		t.resP1Cycle = t.cycle + spriteOffset
		if t.resP1Cycle < 68 {
			t.resP1Cycle = 71
		}
	case regRESM0:
		t.resM0Cycle = t.cycle + spriteOffset - 1
		if t.resM0Cycle < 68 {
			t.resM0Cycle = 71
		}
	case regRESM1:
		t.resM1Cycle = t.cycle + spriteOffset - 1
		if t.resM1Cycle < 68 {
			t.resM1Cycle = 71
		}
	case regRESBL:
		t.resBLCycle = t.cycle + spriteOffset
		if t.resBLCycle < 68 {
			t.resBLCycle = 71
		}
	case regAUDC0:
		t.audc0 = v
	case regAUDC1:
		t.audc1 = v
	case regAUDF0:
		t.audf0 = v
	case regAUDF1:
		t.audf1 = v
	case regAUDV0:
		t.audv0 = v
	case regAUDV1:
		t.audv1 = v
	case regGRP0:
		if t.vdelp0&0x01 != 0 {
			t.grp0Delay = v
		} else {
			t.grp0 = v
		}
		if t.vdelp1&0x01 != 0 {
			t.grp1 = t.grp1Delay
			t.grp1Delay = 0
		}
	case regGRP1:
		if t.vdelp1&0x01 != 0 {
			t.grp1Delay = v
		} else {
			t.grp1 = v
		}
		if t.vdelp0&0x01 != 0 {
			t.grp0 = t.grp0Delay
			t.grp0Delay = 0
		}
		if t.vdelbl&0x01 != 0 {
			t.enabl = t.enablDelay
			t.enablDelay = 0
		}
	case regENAM0:
		t.enam0 = v
	case regENAM1:
		t.enam1 = v
	case regENABL:
		if t.vdelbl&0x01 != 0 {
			t.enablDelay = v
		} else {
			t.enabl = v
		}
	case regHMP0:
		t.hmp0 = v
	case regHMP1:
		t.hmp1 = v
	case regHMM0:
		t.hmm0 = v
	case regHMM1:
		t.hmm1 = v
	case regHMBL:
		t.hmbl = v
	case regVDELP0:
		t.vdelp0 = v
	case regVDELP1:
		t.vdelp1 = v
	case regVDELBL:
		t.vdelbl = v
	case regRESMP0:
		t.resmp0 = v
	case regRESMP1:
		t.resmp1 = v
	case regHMOVE:
		t.applyMovement()
	case regHMCLR:
		t.clearMoveRegisters()
	case regCXCLR:
		t.cx = [8]uint8{}
	}
}

// IsCPUBlocked reports whether WSYNC is currently holding the CPU.
func (t *TIA) IsCPUBlocked() bool {
	return t.wsyncSet
}

// Screen returns the most recently completed frame's RGB pixel buffer,
// xres*yres*3 bytes, row major.
func (t *TIA) Screen() []uint8 {
	return t.screenDisplay
}

// GetAudioC0, GetAudioF0 and GetAudioV0 return channel 0's control, frequency
// and volume registers; the *1 variants return channel 1's.
func (t *TIA) GetAudioC0() uint8 { return t.audc0 }
func (t *TIA) GetAudioC1() uint8 { return t.audc1 }
func (t *TIA) GetAudioF0() uint8 { return t.audf0 }
func (t *TIA) GetAudioF1() uint8 { return t.audf1 }
func (t *TIA) GetAudioV0() uint8 { return t.audv0 }
func (t *TIA) GetAudioV1() uint8 { return t.audv1 }

// SetPlayer0Trigger and SetPlayer1Trigger drive INPT4/INPT5, the joystick
// fire button lines. pressed grounds the line (bit clear); released lets it
// float high.
func (t *TIA) SetPlayer0Trigger(pressed bool) { t.setTrigger(regINPT4, pressed) }
func (t *TIA) SetPlayer1Trigger(pressed bool) { t.setTrigger(regINPT5, pressed) }

func (t *TIA) setTrigger(reg int, pressed bool) {
	if pressed {
		t.inpt[reg-regINPT0] &= 0x7f
	} else {
		t.inpt[reg-regINPT0] |= 0x80
	}
}

// ExecuteTick advances the TIA by one colour clock: it steps the horizontal
// counter, renders a pixel when inside the visible window, and resolves any
// RESMPx "lock missile to player" requests.
func (t *TIA) ExecuteTick() {
	t.cycle++
	if t.cycle > 67+t.spec.XRes {
		t.cycle = 0
		t.scanLine++
	}

	if t.scanLine > 2+t.spec.VBlankLines &&
		t.scanLine <= 2+t.spec.VBlankLines+t.spec.YRes &&
		t.cycle > 67 {
		t.renderPixel()
	}

	if t.resmp0&0x02 != 0 {
		t.resM0Cycle = t.resP0Cycle + missileLockOffset(t.nusiz0)
	}
	if t.resmp1&0x02 != 0 {
		t.resM1Cycle = t.resP1Cycle + missileLockOffset(t.nusiz1)
	}

	if t.cycle == 3 {
		t.wsyncSet = false
	}
}

func missileLockOffset(size uint8) int {
	switch size & 0x07 {
	case 5:
		return 6
	case 7:
		return 10
	default:
		return 3
	}
}

// Repaint reports whether the frame buffer is ready to be displayed, latching
// the completed frame into the double-buffered display slice the first time
// it becomes true each frame.
func (t *TIA) Repaint() bool {
	ready := t.cycle == 0 && t.scanLine == 3
	if ready {
		copy(t.screenDisplay, t.screen)
	}
	return ready
}

func (t *TIA) move(mov uint8, objectCycle int) int {
	moveValue := int(int8((mov & 0x70) >> 4))
	if mov&0x80 != 0 {
		moveValue = int(int8(((mov & 0x70) >> 4) | 0xf8))
	}
	newValue := objectCycle - moveValue
	if newValue > 68+t.spec.XRes {
		newValue = 68
	}
	if newValue < 68 {
		newValue = 68 + t.spec.XRes
	}
	return newValue
}

func (t *TIA) applyMovement() {
	t.resP0Cycle = t.move(t.hmp0, t.resP0Cycle)
	t.resP1Cycle = t.move(t.hmp1, t.resP1Cycle)
	t.resM0Cycle = t.move(t.hmm0, t.resM0Cycle)
	t.resM1Cycle = t.move(t.hmm1, t.resM1Cycle)
	t.resBLCycle = t.move(t.hmbl, t.resBLCycle)
}

func (t *TIA) clearMoveRegisters() {
	t.hmp0, t.hmp1, t.hmm0, t.hmm1, t.hmbl = 0, 0, 0, 0, 0
}

func reverseBits(n uint8) uint8 {
	var out uint8
	for i := 0; i < 8; i++ {
		out |= (n & 1) << uint(7-i)
		n >>= 1
	}
	return out
}
