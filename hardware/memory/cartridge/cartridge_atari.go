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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package cartridge

import (
	"fmt"

	"github.com/jetsetilly/vcs2600/hardware/memory/bus"
)

// from bankswitch_sizes.txt:
//
// 2K:
//
// -These carts are not bankswitched, however the data repeats twice in the
// 4K address space.
//
// 4K:
//
// -These images are not bankswitched.
//
// Some carts have extra RAM; Atari's 'Super Chip' is nothing more than a
// 128-byte RAM chip that maps itself in the first 256 bytes of cart memory
// (1000-10FFh). The first 128 bytes is the write port, while the second 128
// bytes is the read port. This is needed because there is no R/W line to
// the cart.

type atari struct {
	formatID    string
	description string

	bankSize int

	// 2k and 4k ROMs conceptually have one bank
	banks [][]uint8

	// some ROMs support additional RAM, known as the superchip. in these
	// instances the first 128 bytes of the bank is mapped to RAM
	superchip []uint8

	// ram details
	ramInfo []RAMinfo
}

func (cart atari) String() string {
	return cart.description
}

func (cart atari) format() string {
	return cart.formatID
}

func (cart *atari) initialise() {
	for i := range cart.superchip {
		cart.superchip[i] = 0x00
	}
}

func (cart atari) getBank(addr uint16) int {
	return 0
}

func (cart *atari) setBank(addr uint16, bank int) error {
	if bank != 0 {
		return fmt.Errorf("%s: invalid bank [%d]", cart.formatID, bank)
	}
	return nil
}

func (cart *atari) saveState() interface{} {
	superchip := make([]uint8, len(cart.superchip))
	copy(superchip, cart.superchip)
	return superchip
}

func (cart *atari) restoreState(state interface{}) error {
	copy(cart.superchip, state.([]uint8))
	return nil
}

func (cart *atari) read(addr uint16) (uint8, bool) {
	if cart.superchip != nil {
		if addr > 127 && addr < 256 {
			return cart.superchip[addr-128], true
		}
	}
	return 0, false
}

func (cart *atari) write(addr uint16, data uint8) bool {
	if cart.superchip != nil {
		if addr <= 127 {
			cart.superchip[addr] = data
			return true
		}
	}
	return false
}

// addSuperchip checks for the presence of Superchip RAM by inspecting
// whether the first 256 bytes of the bank are uniform. real cartridges that
// use the superchip ship with this area blanked out because it is never
// read as ROM.
func (cart *atari) addSuperchip() bool {
	nullChar := cart.banks[0][0]
	for a := 0; a < 256; a++ {
		if cart.banks[0][a] != nullChar {
			return false
		}
	}

	cart.superchip = make([]uint8, 128)
	cart.description = fmt.Sprintf("%s (+ superchip RAM)", cart.description)

	cart.ramInfo = make([]RAMinfo, 1)
	cart.ramInfo[0] = RAMinfo{
		Label:       "Superchip",
		Active:      true,
		ReadOrigin:  0x1080,
		ReadMemtop:  0x10ff,
		WriteOrigin: 0x1000,
		WriteMemtop: 0x107f,
	}

	return true
}

func (cart *atari) listen(addr uint16, data uint8) {
}

func (cart *atari) poke(addr uint16, data uint8) error {
	cart.banks[0][addr] = data
	return nil
}

func (cart *atari) patch(addr uint16, data uint8) error {
	cart.banks[0][addr%uint16(cart.bankSize)] = data
	return nil
}

func (cart atari) getRAMinfo() []RAMinfo {
	return cart.ramInfo
}

// atari4k is the original and most straightforward format
//
//	o Pitfall
//	o Adventure
//	o Yars' Revenge
//	o etc.
type atari4k struct {
	atari
}

func newAtari4k(data []byte) (cartMapper, error) {
	cart := &atari4k{}
	cart.bankSize = 4096
	cart.description = "atari 4k"
	cart.formatID = "4k"
	cart.banks = make([][]uint8, 1)

	if len(data) != cart.bankSize {
		return nil, fmt.Errorf("%s: wrong number of bytes in the cartridge file", cart.formatID)
	}

	cart.banks[0] = make([]uint8, cart.bankSize)
	copy(cart.banks[0], data)

	cart.initialise()

	return cart, nil
}

func (cart atari4k) numBanks() int {
	return 1
}

func (cart *atari4k) read(addr uint16) (uint8, error) {
	if data, ok := cart.atari.read(addr); ok {
		return data, nil
	}
	return cart.banks[0][addr], nil
}

func (cart *atari4k) write(addr uint16, data uint8) error {
	if ok := cart.atari.write(addr, data); ok {
		return nil
	}
	return fmt.Errorf("%s: write to %#04x: %w", cart.formatID, addr, bus.AddressError)
}

// atari2k is the half-size cartridge of 2048 bytes, mirrored across the
// remaining 2k of cartridge space.
//
//	o Combat
//	o Dragster
//	o Outlaw
//	o Surround
//	o early cartridges
type atari2k struct {
	atari
}

func newAtari2k(data []byte) (cartMapper, error) {
	cart := &atari2k{}
	cart.bankSize = 2048
	cart.description = "atari 2k"
	cart.formatID = "2k"
	cart.banks = make([][]uint8, 1)

	if len(data) != cart.bankSize {
		return nil, fmt.Errorf("%s: wrong number of bytes in the cartridge file", cart.formatID)
	}

	cart.banks[0] = make([]uint8, cart.bankSize)
	copy(cart.banks[0], data)

	cart.initialise()

	return cart, nil
}

func (cart atari2k) numBanks() int {
	return 1
}

func (cart *atari2k) read(addr uint16) (uint8, error) {
	if data, ok := cart.atari.read(addr); ok {
		return data, nil
	}
	return cart.banks[0][addr&0x07ff], nil
}

func (cart *atari2k) write(addr uint16, data uint8) error {
	if ok := cart.atari.write(addr, data); ok {
		return nil
	}
	return fmt.Errorf("%s: write to %#04x: %w", cart.formatID, addr, bus.AddressError)
}
