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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/vcs2600/hardware/cpu"
	"github.com/jetsetilly/vcs2600/test"
)

// mockMem is a flat 64k address space, enough to exercise the CPU in
// isolation without the real memory mapper's mirroring.
type mockMem struct {
	data [65536]uint8
}

func (m *mockMem) Read(address uint16) (uint8, error) {
	return m.data[address], nil
}

func (m *mockMem) Write(address uint16, v uint8) error {
	m.data[address] = v
	return nil
}

// newTestCPU loads program at address zero and points the reset vector at
// it, returning a freshly reset CPU.
func newTestCPU(program []byte) (*cpu.CPU, *mockMem) {
	mem := &mockMem{}
	copy(mem.data[0:], program)
	mem.data[0xfffc] = 0x00
	mem.data[0xfffd] = 0x00

	mc := cpu.NewCPU(nil, mem)
	return mc, mem
}

// run calls ExecuteTick the given number of times; tick counts in the tests
// include the 2 ticks of the initial post-reset NOP.
func run(mc *cpu.CPU, ticks int) {
	for i := 0; i < ticks; i++ {
		mc.ExecuteTick()
	}
}

func TestReset(t *testing.T) {
	mc, mem := newTestCPU([]byte{0xea})
	mem.data[0xfffc] = 0x34
	mem.data[0xfffd] = 0x12
	mc.Reset()

	test.ExpectEquality(t, mc.PC.Address(), uint16(0x1234))
	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
	test.ExpectEquality(t, mc.Killed, false)
}

func TestLDAImmediate(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0x42, 0xea})

	// two ticks to drain the preloaded NOP, two more to execute LDA
	run(mc, 4)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x42))
	test.ExpectEquality(t, mc.Status.Zero, false)
	test.ExpectEquality(t, mc.Status.Sign, false)
}

func TestLDAZero(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0x00, 0xea})
	run(mc, 4)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestLDASign(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0x80, 0xea})
	run(mc, 4)
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestSTAZeroPage(t *testing.T) {
	mc, mem := newTestCPU([]byte{0xa9, 0x55, 0x85, 0x10})

	// 2 (reset NOP) + 2 (LDA #) + 3 (STA zp)
	run(mc, 7)

	test.ExpectEquality(t, mem.data[0x10], uint8(0x55))
}

func TestTransfersAndFlags(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0x00, 0xaa, 0xe8})

	// 2 + 2 (LDA #$00) + 2 (TAX)
	run(mc, 6)
	test.ExpectEquality(t, mc.X.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.Zero, true)

	// + 2 (INX)
	run(mc, 2)
	test.ExpectEquality(t, mc.X.Value(), uint8(1))
	test.ExpectEquality(t, mc.Status.Zero, false)
}

func TestADCBinary(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0x01, 0x69, 0x01})

	// 2 + 2 (LDA #1) + 2 (ADC #1)
	run(mc, 6)

	test.ExpectEquality(t, mc.A.Value(), uint8(2))
	test.ExpectEquality(t, mc.Status.Carry, false)
	test.ExpectEquality(t, mc.Status.Overflow, false)
}

func TestADCCarryOut(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0xff, 0x69, 0x01})

	run(mc, 6)

	test.ExpectEquality(t, mc.A.Value(), uint8(0))
	test.ExpectEquality(t, mc.Status.Carry, true)
	test.ExpectEquality(t, mc.Status.Zero, true)
}

func TestADCOverflow(t *testing.T) {
	// 0x7f + 0x01 = 0x80: signed overflow, no carry
	mc, _ := newTestCPU([]byte{0xa9, 0x7f, 0x69, 0x01})

	run(mc, 6)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x80))
	test.ExpectEquality(t, mc.Status.Overflow, true)
	test.ExpectEquality(t, mc.Status.Carry, false)
}

func TestBranchTaken(t *testing.T) {
	// LDA #$00 sets Z; BEQ +2 should skip the LDA #$AA and land on LDA #$BB
	mc, _ := newTestCPU([]byte{0xa9, 0x00, 0xf0, 0x02, 0xa9, 0xaa, 0xa9, 0xbb})

	// 2 (reset NOP) + 2 (LDA #$00) + 3 (BEQ taken, no page cross) + 2 (LDA #$BB)
	run(mc, 9)

	test.ExpectEquality(t, mc.A.Value(), uint8(0xbb))
}

func TestBranchNotTaken(t *testing.T) {
	// LDA #$01 leaves Z clear, so BEQ falls through to LDA #$AA
	mc, _ := newTestCPU([]byte{0xa9, 0x01, 0xf0, 0x02, 0xa9, 0xaa, 0xa9, 0xbb})

	// 2 + 2 (LDA #$01) + 2 (BEQ not taken) + 2 (LDA #$AA)
	run(mc, 8)

	test.ExpectEquality(t, mc.A.Value(), uint8(0xaa))
}

func TestJSRAndRTS(t *testing.T) {
	// JSR $0010; at $0010: INX; RTS
	program := []byte{0x20, 0x10, 0x00}
	mc, mem := newTestCPU(program)
	mem.data[0x0010] = 0xe8 // INX
	mem.data[0x0011] = 0x60 // RTS

	// 2 (reset NOP) + 6 (JSR)
	run(mc, 8)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfd))

	// + 2 (INX)
	run(mc, 2)
	test.ExpectEquality(t, mc.X.Value(), uint8(1))

	// + 6 (RTS)
	run(mc, 6)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestStackPushPull(t *testing.T) {
	mc, _ := newTestCPU([]byte{0xa9, 0x99, 0x48, 0xa9, 0x00, 0x68})

	// 2 + 2 (LDA #$99) + 3 (PHA)
	run(mc, 7)
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xfe))

	// + 2 (LDA #$00) + 4 (PLA)
	run(mc, 6)
	test.ExpectEquality(t, mc.A.Value(), uint8(0x99))
	test.ExpectEquality(t, mc.SP.Value(), uint8(0xff))
}

func TestShiftAccumulator(t *testing.T) {
	// LDA #$81; ASL A -- carry out of bit 7, result 0x02
	mc, _ := newTestCPU([]byte{0xa9, 0x81, 0x0a})

	run(mc, 6)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x02))
	test.ExpectEquality(t, mc.Status.Carry, true)
}

func TestIncMemory(t *testing.T) {
	mc, mem := newTestCPU([]byte{0xe6, 0x20})
	mem.data[0x20] = 0x7f

	// 2 + 5 (INC zp)
	run(mc, 7)

	test.ExpectEquality(t, mem.data[0x20], uint8(0x80))
	test.ExpectEquality(t, mc.Status.Sign, true)
}

func TestUnofficialLAX(t *testing.T) {
	mc, mem := newTestCPU([]byte{0xa7, 0x30})
	mem.data[0x30] = 0x7e

	// 2 + 3 (LAX zp)
	run(mc, 5)

	test.ExpectEquality(t, mc.A.Value(), uint8(0x7e))
	test.ExpectEquality(t, mc.X.Value(), uint8(0x7e))
}

func TestKIL(t *testing.T) {
	mc, _ := newTestCPU([]byte{0x02})

	// 2 (reset NOP) + 2 (KIL)
	run(mc, 4)
	test.ExpectEquality(t, mc.Killed, true)

	pcBefore := mc.PC.Address()
	run(mc, 10)
	test.ExpectEquality(t, mc.PC.Address(), pcBefore)
}
