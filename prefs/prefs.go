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

// Package prefs carries the run-scoped knobs that affect emulation but are
// not part of the machine state itself. There is no on-disk persistence
// here; callers that want persistence own that themselves.
package prefs

// Prefs holds the preferences consulted by the CPU on reset.
type Prefs struct {
	// RandomState, when true, fills the CPU registers with scrambled values
	// on power-on/reset instead of zeroing them, matching the real
	// hardware's undefined startup state. RIOT RAM is zeroed on reset
	// whatever the setting.
	RandomState bool
}

// NewPrefs is the preferred method of initialisation for Prefs.
func NewPrefs() *Prefs {
	return &Prefs{}
}

// SetDefaults resets Prefs to the default configuration.
func (p *Prefs) SetDefaults() {
	p.RandomState = false
}
