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

package cartridge

import (
	"bytes"
	"fmt"
)

// Cartridge wraps the detected cartMapper implementation and presents the
// interface the memory bus uses to address cartridge space.
type Cartridge struct {
	Filename string
	mapper   cartMapper
}

// NewCartridge detects the format of data and returns a Cartridge wrapping
// the appropriate mapper. Detection is size-based: a 2048 byte image is the
// "2k" format; a 4096 byte image is the "4k" format unless its two halves
// are byte-identical, in which case it is really a mirrored 2k image. Any
// cartridge whose first 256 bytes are uniform is additionally given
// Superchip RAM.
func NewCartridge(filename string, data []byte) (*Cartridge, error) {
	var mapper cartMapper
	var err error

	switch len(data) {
	case 2048:
		mapper, err = newAtari2k(data)
	case 4096:
		if bytes.Equal(data[:2048], data[2048:]) {
			mapper, err = newAtari2k(data[:2048])
		} else {
			mapper, err = newAtari4k(data)
		}
	default:
		return nil, fmt.Errorf("cartridge: unsupported cartridge size (%d bytes)", len(data))
	}
	if err != nil {
		return nil, fmt.Errorf("cartridge: %w", err)
	}

	if sc, ok := mapper.(optionalSuperchip); ok {
		sc.addSuperchip()
	}

	return &Cartridge{Filename: filename, mapper: mapper}, nil
}

// String returns a short description of the cartridge format.
func (cart *Cartridge) String() string {
	return fmt.Sprintf("%s (%s)", cart.Filename, cart.mapper)
}

// NumBanks returns the number of banks available to the cartridge. Always 1
// for the supported formats.
func (cart *Cartridge) NumBanks() int {
	return cart.mapper.numBanks()
}

// Read returns the byte at addr, which must already be normalised to the
// 0x0000-0x0fff cartridge address range.
func (cart *Cartridge) Read(addr uint16) (uint8, error) {
	return cart.mapper.read(addr)
}

// Write stores data at addr. Only addresses within Superchip RAM's write
// window succeed; anything else is a bus error.
func (cart *Cartridge) Write(addr uint16, data uint8) error {
	return cart.mapper.write(addr, data)
}

// Listen notifies the cartridge of bus activity outside of cartridge space.
// None of the supported formats act on this.
func (cart *Cartridge) Listen(addr uint16, data uint8) {
	cart.mapper.listen(addr, data)
}

// Poke writes data directly into the currently selected bank, bypassing any
// RAM/ROM distinction. Used by debugging tools.
func (cart *Cartridge) Poke(addr uint16, data uint8) error {
	return cart.mapper.poke(addr, data)
}

// Patch alters a byte as though it had been read from the original
// cartridge image, rather than being written over the bus.
func (cart *Cartridge) Patch(addr uint16, data uint8) error {
	return cart.mapper.patch(addr, data)
}

// GetRAMinfo describes any additional RAM (Superchip) present on the
// cartridge. Returns nil if the cartridge has no extra RAM.
func (cart *Cartridge) GetRAMinfo() []RAMinfo {
	return cart.mapper.getRAMinfo()
}

// the following detector hooks are extension points for cartridge formats
// not implemented by this module (CommaVid's bankswitched RAM, the 4k
// Superchip variant distinguished from bank-switched F8SC, the "FC" Chetiry
// format, and "GL" glued-logic ROMs). each would require its own signature
// scan of the image; none are wired into NewCartridge.

func detectCommaVid(data []byte) bool {
	return false
}

func detect4KSuperchip(data []byte) bool {
	return false
}

func detectFC(data []byte) bool {
	return false
}

func detectGL(data []byte) bool {
	return false
}
