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

package instructions

import (
	"fmt"
)

// Definition defines each instruction in the instruction set; one per instruction
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
	Undocumented   bool
	Stability      Stability
}

// String returns a single instruction definition as a string
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]", defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Stability classifies how reliably an (almost always undocumented) opcode
// behaves across physical 6502/6507 revisions.
type Stability int

const (
	// Stable opcodes, documented or not, behave identically on every chip.
	Stable Stability = iota

	// Unstable opcodes depend on bus capacitance/decay effects and may
	// differ between individual chips (AHX, TAS, SHX, SHY, LAS).
	Unstable

	// Magic opcodes depend on a manufacturing-specific constant ANDed into
	// the result (XAA).
	Magic
)

func (s Stability) String() string {
	switch s {
	case Stable:
		return "stable"
	case Unstable:
		return "unstable"
	case Magic:
		return "magic"
	}
	return "unknown stability"
}

// Definitions is the complete 256 entry instruction set of the 6507,
// indexed by opcode. Every slot is populated: truly unused opcodes don't
// exist on the 6502 -- the illegal opcode space is fully occupied by
// combinations of the legal ALU/memory operations, several of which are
// useful enough that real cartridges rely on them.
var Definitions = [256]Definition{
	{0x00, BRK, 1, 7, Implied, false, Interrupt, false, Stable},
	{0x01, ORA, 2, 6, PreIndexed, false, Read, false, Stable},
	{0x02, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x03, SLO, 2, 8, PreIndexed, false, Modify, true, Stable},
	{0x04, NOP, 2, 3, Absolute, false, Read, true, Stable},
	{0x05, ORA, 2, 3, Absolute, false, Read, false, Stable},
	{0x06, ASL, 2, 5, Absolute, false, Modify, false, Stable},
	{0x07, SLO, 2, 5, Absolute, false, Modify, true, Stable},
	{0x08, PHP, 1, 3, Implied, false, Write, false, Stable},
	{0x09, ORA, 2, 2, Immediate, false, Read, false, Stable},
	{0x0a, ASL, 1, 2, Implied, false, Modify, false, Stable},
	{0x0b, ANC, 2, 2, Immediate, false, Read, true, Stable},
	{0x0c, NOP, 3, 4, Absolute, false, Read, true, Stable},
	{0x0d, ORA, 3, 4, Absolute, false, Read, false, Stable},
	{0x0e, ASL, 3, 6, Absolute, false, Modify, false, Stable},
	{0x0f, SLO, 3, 6, Absolute, false, Modify, true, Stable},

	{0x10, BPL, 2, 2, Relative, true, Flow, false, Stable},
	{0x11, ORA, 2, 5, PostIndexed, true, Read, false, Stable},
	{0x12, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x13, SLO, 2, 8, PostIndexed, false, Modify, true, Stable},
	{0x14, NOP, 2, 4, AbsoluteX, true, Read, true, Stable},
	{0x15, ORA, 2, 4, AbsoluteX, true, Read, false, Stable},
	{0x16, ASL, 2, 6, AbsoluteX, false, Modify, false, Stable},
	{0x17, SLO, 2, 6, AbsoluteX, false, Modify, true, Stable},
	{0x18, CLC, 1, 2, Implied, false, Modify, false, Stable},
	{0x19, ORA, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0x1a, NOP, 1, 2, Implied, false, Modify, true, Stable},
	{0x1b, SLO, 3, 7, AbsoluteY, false, Modify, true, Stable},
	{0x1c, NOP, 3, 4, AbsoluteX, true, Read, true, Stable},
	{0x1d, ORA, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0x1e, ASL, 3, 7, AbsoluteX, false, Modify, false, Stable},
	{0x1f, SLO, 3, 7, AbsoluteX, false, Modify, true, Stable},

	{0x20, JSR, 3, 6, Absolute, false, Subroutine, false, Stable},
	{0x21, AND, 2, 6, PreIndexed, false, Read, false, Stable},
	{0x22, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x23, RLA, 2, 8, PreIndexed, false, Modify, true, Stable},
	{0x24, BIT, 2, 3, Absolute, false, Read, false, Stable},
	{0x25, AND, 2, 3, Absolute, false, Read, false, Stable},
	{0x26, ROL, 2, 5, Absolute, false, Modify, false, Stable},
	{0x27, RLA, 2, 5, Absolute, false, Modify, true, Stable},
	{0x28, PLP, 1, 4, Implied, false, Read, false, Stable},
	{0x29, AND, 2, 2, Immediate, false, Read, false, Stable},
	{0x2a, ROL, 1, 2, Implied, false, Modify, false, Stable},
	{0x2b, ANC, 2, 2, Immediate, false, Read, true, Stable},
	{0x2c, BIT, 3, 4, Absolute, false, Read, false, Stable},
	{0x2d, AND, 3, 4, Absolute, false, Read, false, Stable},
	{0x2e, ROL, 3, 6, Absolute, false, Modify, false, Stable},
	{0x2f, RLA, 3, 6, Absolute, false, Modify, true, Stable},

	{0x30, BMI, 2, 2, Relative, true, Flow, false, Stable},
	{0x31, AND, 2, 5, PostIndexed, true, Read, false, Stable},
	{0x32, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x33, RLA, 2, 8, PostIndexed, false, Modify, true, Stable},
	{0x34, NOP, 2, 4, AbsoluteX, true, Read, true, Stable},
	{0x35, AND, 2, 4, AbsoluteX, true, Read, false, Stable},
	{0x36, ROL, 2, 6, AbsoluteX, false, Modify, false, Stable},
	{0x37, RLA, 2, 6, AbsoluteX, false, Modify, true, Stable},
	{0x38, SEC, 1, 2, Implied, false, Modify, false, Stable},
	{0x39, AND, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0x3a, NOP, 1, 2, Implied, false, Modify, true, Stable},
	{0x3b, RLA, 3, 7, AbsoluteY, false, Modify, true, Stable},
	{0x3c, NOP, 3, 4, AbsoluteX, true, Read, true, Stable},
	{0x3d, AND, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0x3e, ROL, 3, 7, AbsoluteX, false, Modify, false, Stable},
	{0x3f, RLA, 3, 7, AbsoluteX, false, Modify, true, Stable},

	{0x40, RTI, 1, 6, Implied, false, Interrupt, false, Stable},
	{0x41, EOR, 2, 6, PreIndexed, false, Read, false, Stable},
	{0x42, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x43, SRE, 2, 8, PreIndexed, false, Modify, true, Stable},
	{0x44, NOP, 2, 3, Absolute, false, Read, true, Stable},
	{0x45, EOR, 2, 3, Absolute, false, Read, false, Stable},
	{0x46, LSR, 2, 5, Absolute, false, Modify, false, Stable},
	{0x47, SRE, 2, 5, Absolute, false, Modify, true, Stable},
	{0x48, PHA, 1, 3, Implied, false, Write, false, Stable},
	{0x49, EOR, 2, 2, Immediate, false, Read, false, Stable},
	{0x4a, LSR, 1, 2, Implied, false, Modify, false, Stable},
	{0x4b, ASR, 2, 2, Immediate, false, Read, true, Stable},
	{0x4c, JMP, 3, 3, Absolute, false, Flow, false, Stable},
	{0x4d, EOR, 3, 4, Absolute, false, Read, false, Stable},
	{0x4e, LSR, 3, 6, Absolute, false, Modify, false, Stable},
	{0x4f, SRE, 3, 6, Absolute, false, Modify, true, Stable},

	{0x50, BVC, 2, 2, Relative, true, Flow, false, Stable},
	{0x51, EOR, 2, 5, PostIndexed, true, Read, false, Stable},
	{0x52, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x53, SRE, 2, 8, PostIndexed, false, Modify, true, Stable},
	{0x54, NOP, 2, 4, AbsoluteX, true, Read, true, Stable},
	{0x55, EOR, 2, 4, AbsoluteX, true, Read, false, Stable},
	{0x56, LSR, 2, 6, AbsoluteX, false, Modify, false, Stable},
	{0x57, SRE, 2, 6, AbsoluteX, false, Modify, true, Stable},
	{0x58, CLI, 1, 2, Implied, false, Modify, false, Stable},
	{0x59, EOR, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0x5a, NOP, 1, 2, Implied, false, Modify, true, Stable},
	{0x5b, SRE, 3, 7, AbsoluteY, false, Modify, true, Stable},
	{0x5c, NOP, 3, 4, AbsoluteX, true, Read, true, Stable},
	{0x5d, EOR, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0x5e, LSR, 3, 7, AbsoluteX, false, Modify, false, Stable},
	{0x5f, SRE, 3, 7, AbsoluteX, false, Modify, true, Stable},

	{0x60, RTS, 1, 6, Implied, false, Subroutine, false, Stable},
	{0x61, ADC, 2, 6, PreIndexed, false, Read, false, Stable},
	{0x62, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x63, RRA, 2, 8, PreIndexed, false, Modify, true, Stable},
	{0x64, NOP, 2, 3, Absolute, false, Read, true, Stable},
	{0x65, ADC, 2, 3, Absolute, false, Read, false, Stable},
	{0x66, ROR, 2, 5, Absolute, false, Modify, false, Stable},
	{0x67, RRA, 2, 5, Absolute, false, Modify, true, Stable},
	{0x68, PLA, 1, 4, Implied, false, Read, false, Stable},
	{0x69, ADC, 2, 2, Immediate, false, Read, false, Stable},
	{0x6a, ROR, 1, 2, Implied, false, Modify, false, Stable},
	{0x6b, ARR, 2, 2, Immediate, false, Read, true, Stable},
	{0x6c, JMP, 3, 5, Indirect, false, Flow, false, Stable},
	{0x6d, ADC, 3, 4, Absolute, false, Read, false, Stable},
	{0x6e, ROR, 3, 6, Absolute, false, Modify, false, Stable},
	{0x6f, RRA, 3, 6, Absolute, false, Modify, true, Stable},

	{0x70, BVS, 2, 2, Relative, true, Flow, false, Stable},
	{0x71, ADC, 2, 5, PostIndexed, true, Read, false, Stable},
	{0x72, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x73, RRA, 2, 8, PostIndexed, false, Modify, true, Stable},
	{0x74, NOP, 2, 4, AbsoluteX, true, Read, true, Stable},
	{0x75, ADC, 2, 4, AbsoluteX, true, Read, false, Stable},
	{0x76, ROR, 2, 6, AbsoluteX, false, Modify, false, Stable},
	{0x77, RRA, 2, 6, AbsoluteX, false, Modify, true, Stable},
	{0x78, SEI, 1, 2, Implied, false, Modify, false, Stable},
	{0x79, ADC, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0x7a, NOP, 1, 2, Implied, false, Modify, true, Stable},
	{0x7b, RRA, 3, 7, AbsoluteY, false, Modify, true, Stable},
	{0x7c, NOP, 3, 4, AbsoluteX, true, Read, true, Stable},
	{0x7d, ADC, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0x7e, ROR, 3, 7, AbsoluteX, false, Modify, false, Stable},
	{0x7f, RRA, 3, 7, AbsoluteX, false, Modify, true, Stable},

	{0x80, NOP, 2, 2, Immediate, false, Read, true, Stable},
	{0x81, STA, 2, 6, PreIndexed, false, Write, false, Stable},
	{0x82, NOP, 2, 2, Immediate, false, Read, true, Stable},
	{0x83, SAX, 2, 6, PreIndexed, false, Write, true, Stable},
	{0x84, STY, 2, 3, Absolute, false, Write, false, Stable},
	{0x85, STA, 2, 3, Absolute, false, Write, false, Stable},
	{0x86, STX, 2, 3, Absolute, false, Write, false, Stable},
	{0x87, SAX, 2, 3, Absolute, false, Write, true, Stable},
	{0x88, DEY, 1, 2, Implied, false, Modify, false, Stable},
	{0x89, NOP, 2, 2, Immediate, false, Read, true, Stable},
	{0x8a, TXA, 1, 2, Implied, false, Modify, false, Stable},
	{0x8b, XAA, 2, 2, Immediate, false, Read, true, Magic},
	{0x8c, STY, 3, 4, Absolute, false, Write, false, Stable},
	{0x8d, STA, 3, 4, Absolute, false, Write, false, Stable},
	{0x8e, STX, 3, 4, Absolute, false, Write, false, Stable},
	{0x8f, SAX, 3, 4, Absolute, false, Write, true, Stable},

	{0x90, BCC, 2, 2, Relative, true, Flow, false, Stable},
	{0x91, STA, 2, 6, PostIndexed, false, Write, false, Stable},
	{0x92, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0x93, AHX, 2, 6, PostIndexed, false, Write, true, Unstable},
	{0x94, STY, 2, 4, AbsoluteX, false, Write, false, Stable},
	{0x95, STA, 2, 4, AbsoluteX, false, Write, false, Stable},
	{0x96, STX, 2, 4, AbsoluteY, false, Write, false, Stable},
	{0x97, SAX, 2, 4, AbsoluteY, false, Write, true, Stable},
	{0x98, TYA, 1, 2, Implied, false, Modify, false, Stable},
	{0x99, STA, 3, 5, AbsoluteY, false, Write, false, Stable},
	{0x9a, TXS, 1, 2, Implied, false, Modify, false, Stable},
	{0x9b, TAS, 3, 5, AbsoluteY, false, Write, true, Unstable},
	{0x9c, SHY, 3, 5, AbsoluteX, false, Write, true, Unstable},
	{0x9d, STA, 3, 5, AbsoluteX, false, Write, false, Stable},
	{0x9e, SHX, 3, 5, AbsoluteY, false, Write, true, Unstable},
	{0x9f, AHX, 3, 5, AbsoluteY, false, Write, true, Unstable},

	{0xa0, LDY, 2, 2, Immediate, false, Read, false, Stable},
	{0xa1, LDA, 2, 6, PreIndexed, false, Read, false, Stable},
	{0xa2, LDX, 2, 2, Immediate, false, Read, false, Stable},
	{0xa3, LAX, 2, 6, PreIndexed, false, Read, true, Stable},
	{0xa4, LDY, 2, 3, Absolute, false, Read, false, Stable},
	{0xa5, LDA, 2, 3, Absolute, false, Read, false, Stable},
	{0xa6, LDX, 2, 3, Absolute, false, Read, false, Stable},
	{0xa7, LAX, 2, 3, Absolute, false, Read, true, Stable},
	{0xa8, TAY, 1, 2, Implied, false, Modify, false, Stable},
	{0xa9, LDA, 2, 2, Immediate, false, Read, false, Stable},
	{0xaa, TAX, 1, 2, Implied, false, Modify, false, Stable},
	{0xab, LAX, 2, 2, Immediate, false, Read, true, Magic},
	{0xac, LDY, 3, 4, Absolute, false, Read, false, Stable},
	{0xad, LDA, 3, 4, Absolute, false, Read, false, Stable},
	{0xae, LDX, 3, 4, Absolute, false, Read, false, Stable},
	{0xaf, LAX, 3, 4, Absolute, false, Read, true, Stable},

	{0xb0, BCS, 2, 2, Relative, true, Flow, false, Stable},
	{0xb1, LDA, 2, 5, PostIndexed, true, Read, false, Stable},
	{0xb2, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0xb3, LAX, 2, 5, PostIndexed, true, Read, true, Stable},
	{0xb4, LDY, 2, 4, AbsoluteX, false, Read, false, Stable},
	{0xb5, LDA, 2, 4, AbsoluteX, false, Read, false, Stable},
	{0xb6, LDX, 2, 4, AbsoluteY, false, Read, false, Stable},
	{0xb7, LAX, 2, 4, AbsoluteY, false, Read, true, Stable},
	{0xb8, CLV, 1, 2, Implied, false, Modify, false, Stable},
	{0xb9, LDA, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0xba, TSX, 1, 2, Implied, false, Modify, false, Stable},
	{0xbb, LAS, 3, 4, AbsoluteY, true, Read, true, Unstable},
	{0xbc, LDY, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0xbd, LDA, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0xbe, LDX, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0xbf, LAX, 3, 4, AbsoluteY, true, Read, true, Stable},

	{0xc0, CPY, 2, 2, Immediate, false, Read, false, Stable},
	{0xc1, CMP, 2, 6, PreIndexed, false, Read, false, Stable},
	{0xc2, NOP, 2, 2, Immediate, false, Read, true, Stable},
	{0xc3, DCP, 2, 8, PreIndexed, false, Modify, true, Stable},
	{0xc4, CPY, 2, 3, Absolute, false, Read, false, Stable},
	{0xc5, CMP, 2, 3, Absolute, false, Read, false, Stable},
	{0xc6, DEC, 2, 5, Absolute, false, Modify, false, Stable},
	{0xc7, DCP, 2, 5, Absolute, false, Modify, true, Stable},
	{0xc8, INY, 1, 2, Implied, false, Modify, false, Stable},
	{0xc9, CMP, 2, 2, Immediate, false, Read, false, Stable},
	{0xca, DEX, 1, 2, Implied, false, Modify, false, Stable},
	{0xcb, AXS, 2, 2, Immediate, false, Read, true, Stable},
	{0xcc, CPY, 3, 4, Absolute, false, Read, false, Stable},
	{0xcd, CMP, 3, 4, Absolute, false, Read, false, Stable},
	{0xce, DEC, 3, 6, Absolute, false, Modify, false, Stable},
	{0xcf, DCP, 3, 6, Absolute, false, Modify, true, Stable},

	{0xd0, BNE, 2, 2, Relative, true, Flow, false, Stable},
	{0xd1, CMP, 2, 5, PostIndexed, true, Read, false, Stable},
	{0xd2, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0xd3, DCP, 2, 8, PostIndexed, false, Modify, true, Stable},
	{0xd4, NOP, 2, 4, AbsoluteX, true, Read, true, Stable},
	{0xd5, CMP, 2, 4, AbsoluteX, true, Read, false, Stable},
	{0xd6, DEC, 2, 6, AbsoluteX, false, Modify, false, Stable},
	{0xd7, DCP, 2, 6, AbsoluteX, false, Modify, true, Stable},
	{0xd8, CLD, 1, 2, Implied, false, Modify, false, Stable},
	{0xd9, CMP, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0xda, NOP, 1, 2, Implied, false, Modify, true, Stable},
	{0xdb, DCP, 3, 7, AbsoluteY, false, Modify, true, Stable},
	{0xdc, NOP, 3, 4, AbsoluteX, true, Read, true, Stable},
	{0xdd, CMP, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0xde, DEC, 3, 7, AbsoluteX, false, Modify, false, Stable},
	{0xdf, DCP, 3, 7, AbsoluteX, false, Modify, true, Stable},

	{0xe0, CPX, 2, 2, Immediate, false, Read, false, Stable},
	{0xe1, SBC, 2, 6, PreIndexed, false, Read, false, Stable},
	{0xe2, NOP, 2, 2, Immediate, false, Read, true, Stable},
	{0xe3, ISC, 2, 8, PreIndexed, false, Modify, true, Stable},
	{0xe4, CPX, 2, 3, Absolute, false, Read, false, Stable},
	{0xe5, SBC, 2, 3, Absolute, false, Read, false, Stable},
	{0xe6, INC, 2, 5, Absolute, false, Modify, false, Stable},
	{0xe7, ISC, 2, 5, Absolute, false, Modify, true, Stable},
	{0xe8, INX, 1, 2, Implied, false, Modify, false, Stable},
	{0xe9, SBC, 2, 2, Immediate, false, Read, false, Stable},
	{0xea, NOP, 1, 2, Implied, false, Modify, false, Stable},
	{0xeb, SBC, 2, 2, Immediate, false, Read, true, Stable},
	{0xec, CPX, 3, 4, Absolute, false, Read, false, Stable},
	{0xed, SBC, 3, 4, Absolute, false, Read, false, Stable},
	{0xee, INC, 3, 6, Absolute, false, Modify, false, Stable},
	{0xef, ISC, 3, 6, Absolute, false, Modify, true, Stable},

	{0xf0, BEQ, 2, 2, Relative, true, Flow, false, Stable},
	{0xf1, SBC, 2, 5, PostIndexed, true, Read, false, Stable},
	{0xf2, KIL, 1, 2, Implied, false, Interrupt, true, Stable},
	{0xf3, ISC, 2, 8, PostIndexed, false, Modify, true, Stable},
	{0xf4, NOP, 2, 4, AbsoluteX, true, Read, true, Stable},
	{0xf5, SBC, 2, 4, AbsoluteX, true, Read, false, Stable},
	{0xf6, INC, 2, 6, AbsoluteX, false, Modify, false, Stable},
	{0xf7, ISC, 2, 6, AbsoluteX, false, Modify, true, Stable},
	{0xf8, SED, 1, 2, Implied, false, Modify, false, Stable},
	{0xf9, SBC, 3, 4, AbsoluteY, true, Read, false, Stable},
	{0xfa, NOP, 1, 2, Implied, false, Modify, true, Stable},
	{0xfb, ISC, 3, 7, AbsoluteY, false, Modify, true, Stable},
	{0xfc, NOP, 3, 4, AbsoluteX, true, Read, true, Stable},
	{0xfd, SBC, 3, 4, AbsoluteX, true, Read, false, Stable},
	{0xfe, INC, 3, 7, AbsoluteX, false, Modify, false, Stable},
	{0xff, ISC, 3, 7, AbsoluteX, false, Modify, true, Stable},
}
