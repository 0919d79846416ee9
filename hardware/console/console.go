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

// Package console assembles the CPU, memory, TIA, RIOT, audio mixer and
// input dispatch into a runnable VCS, and drives them with the same
// fixed-ratio scheduler the original hardware used: the CPU and RIOT are
// clocked at a third of the TIA's colour clock rate, since the 6507 only
// samples the bus on every third colour cycle.
package console

import (
	"fmt"

	"github.com/jetsetilly/vcs2600/hardware/clocks"
	"github.com/jetsetilly/vcs2600/hardware/cpu"
	"github.com/jetsetilly/vcs2600/hardware/input"
	"github.com/jetsetilly/vcs2600/hardware/instance"
	"github.com/jetsetilly/vcs2600/hardware/memory"
	"github.com/jetsetilly/vcs2600/hardware/memory/cartridge"
	"github.com/jetsetilly/vcs2600/hardware/riot"
	"github.com/jetsetilly/vcs2600/hardware/tia"
	"github.com/jetsetilly/vcs2600/hardware/tia/audio"
	"github.com/jetsetilly/vcs2600/random"
)

// VCS is a complete, runnable console built from Parameters.
type VCS struct {
	Instance *instance.Instance

	CPU   *cpu.CPU
	Mem   *memory.VCSMemory
	TIA   *tia.TIA
	RIOT  *riot.RIOT
	Audio *audio.Mixer
	Input *input.Input
	Cart  *cartridge.Cartridge

	spec clocks.Spec

	totalTicks    int
	frameCount    int
	ticksPerFrame int
}

// NewVCS builds a VCS from params, detecting the cartridge format from the
// ROM bytes.
func NewVCS(params Parameters) (*VCS, error) {
	spec := params.Spec()

	cart, err := cartridge.NewCartridge("", params.ROM)
	if err != nil {
		return nil, fmt.Errorf("console: %w", err)
	}

	v := &VCS{
		TIA:  tia.New(spec),
		RIOT: riot.New(),
		Cart: cart,
		spec: spec,
	}
	v.ticksPerFrame = spec.TicksPerFrame()

	v.Instance = instance.NewInstance(coordsProvider{v})
	v.Mem = memory.NewVCSMemory(v.TIA, v.RIOT, v.Cart)
	v.CPU = cpu.NewCPU(v.Instance, v.Mem)
	v.Audio = audio.NewMixer()
	v.Input = input.New(v.RIOT, v.TIA)

	return v, nil
}

// coordsProvider adapts VCS to random.CoordsProvider without requiring the
// console package to depend on a not-yet-constructed VCS at Instance
// creation time.
type coordsProvider struct{ v *VCS }

func (c coordsProvider) GetCoords() random.Coords {
	return random.Coords{Frame: c.v.frameCount}
}

// StartUp powers on the CPU, RIOT and TIA, equivalent to holding the
// console's RESET line on power-up.
func (v *VCS) StartUp() {
	v.CPU.Reset()
	v.RIOT.Reset()
	v.TIA.Reset()
	v.totalTicks = 0
}

// PushInput queues a host input event for dispatch at the start of the next
// frame. Returns false if the event queue is full.
func (v *VCS) PushInput(ev input.Event) bool {
	return v.Input.Push(ev)
}

// StartNextFrame runs the console for exactly one video frame: the CPU and
// RIOT advance once every three colour clocks, the TIA advances every
// colour clock, and the audio mixer snapshots the TIA's audio registers
// once at the start of the frame.
func (v *VCS) StartNextFrame() error {
	v.Input.Service()
	v.Audio.ExecuteTick(v.TIA)

	for frameTicks := 0; frameTicks < v.ticksPerFrame; frameTicks++ {
		if v.totalTicks%3 == 0 {
			if !v.TIA.IsCPUBlocked() {
				if err := v.CPU.ExecuteTick(); err != nil {
					return err
				}
			}
			v.RIOT.ExecuteTick()
		}
		v.TIA.ExecuteTick()
		v.TIA.Repaint()

		v.totalTicks++
	}

	v.frameCount++
	return nil
}

// Screen returns the most recently completed frame's RGB pixel buffer.
func (v *VCS) Screen() []uint8 {
	return v.TIA.Screen()
}

// AudioFrame returns this frame's mixed PCM samples.
func (v *VCS) AudioFrame() []uint8 {
	return v.Audio.GenerateFrame()
}
