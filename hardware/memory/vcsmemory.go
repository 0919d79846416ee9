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

// Package memory wires the CPU's 13 bit address bus to the four chips that
// answer it: the TIA, the RIOT's working RAM, the RIOT's I/O and timer
// registers, and the cartridge. It is the only place the masking described
// by memorymap.Flag is turned into an actual read or write.
package memory

import (
	"fmt"

	"github.com/jetsetilly/vcs2600/hardware/memory/bus"
	"github.com/jetsetilly/vcs2600/hardware/memory/cartridge"
	"github.com/jetsetilly/vcs2600/hardware/memory/memorymap"
	"github.com/jetsetilly/vcs2600/hardware/riot"
	"github.com/jetsetilly/vcs2600/hardware/tia"
)

// VCSMemory implements bus.CPUBus over the TIA, RIOT and cartridge.
type VCSMemory struct {
	tia       *tia.TIA
	riot      *riot.RIOT
	cartridge *cartridge.Cartridge
}

// NewVCSMemory builds the address decoder over already-constructed chips.
func NewVCSMemory(t *tia.TIA, r *riot.RIOT, c *cartridge.Cartridge) *VCSMemory {
	return &VCSMemory{tia: t, riot: r, cartridge: c}
}

// Read implements bus.CPUBus.
func (m *VCSMemory) Read(address uint16) (uint8, error) {
	address &= memorymap.Mask

	switch memorymap.Flag(address) {
	case memorymap.TIA:
		return m.tia.Read(memorymap.TIAOrigin(address) & 0x0f), nil
	case memorymap.RAM:
		return m.riot.ReadRAM(memorymap.RAMOrigin(address)), nil
	case memorymap.RIOT:
		return m.riot.Read(riotReadOffset(memorymap.RIOTIOOrigin(address) & 0x07)), nil
	case memorymap.Cartridge:
		return m.cartridge.Read(address - memorymap.OriginCart)
	}

	return 0, fmt.Errorf("memory: address %#04x decoded to no chip: %w", address, bus.AddressError)
}

// Write implements bus.CPUBus.
func (m *VCSMemory) Write(address uint16, v uint8) error {
	address &= memorymap.Mask

	switch memorymap.Flag(address) {
	case memorymap.TIA:
		offset := memorymap.TIAOrigin(address)
		if offset >= 0x40 {
			offset -= 0x40
		}
		m.tia.Write(offset, v)
		return nil
	case memorymap.RAM:
		m.riot.WriteRAM(memorymap.RAMOrigin(address), v)
		return nil
	case memorymap.RIOT:
		m.riot.Write(memorymap.RIOTIOOrigin(address), v)
		return nil
	case memorymap.Cartridge:
		return m.cartridge.Write(address-memorymap.OriginCart, v)
	}

	return fmt.Errorf("memory: address %#04x decoded to no chip: %w", address, bus.AddressError)
}

// Peek and Poke implement bus.DebuggerBus by calling Read and Write, so they
// have the same decode and the same side effects as a CPU access (a Poke to
// WSYNC stalls the CPU, a Peek of INTIM or INSTAT clears status bits).
func (m *VCSMemory) Peek(address uint16) (uint8, error) {
	return m.Read(address)
}

func (m *VCSMemory) Poke(address uint16, v uint8) error {
	return m.Write(address, v)
}

// riotReadOffset maps the 3 bit read address onto the RIOT package's
// register offsets. Addresses 0x06/0x07 are a documented mirror of
// INTIM/INSTAT (0x04/0x05) with the edge-detect control bits stripped.
func riotReadOffset(addr uint16) uint16 {
	switch addr {
	case 0x06:
		return 0x04
	case 0x07:
		return 0x05
	}
	return addr
}
