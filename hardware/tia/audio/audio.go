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

package audio

import goaudio "github.com/go-audio/audio"

// Source is the subset of TIA register accessors the mixer needs to snapshot
// each frame.
type Source interface {
	GetAudioC0() uint8
	GetAudioF0() uint8
	GetAudioV0() uint8
	GetAudioC1() uint8
	GetAudioF1() uint8
	GetAudioV1() uint8
}

// Mixer drives the two TIA audio channels and combines them into a single
// mono PCM stream.
type Mixer struct {
	channels [2]*Channel
}

// NewMixer returns a Mixer with both channels silent.
func NewMixer() *Mixer {
	return &Mixer{channels: [2]*Channel{NewChannel(), NewChannel()}}
}

// ExecuteTick snapshots the TIA's audio registers into both channels. This is
// called once per video frame, not once per colour clock -- the channels
// free-run at their own sample rate between snapshots.
func (m *Mixer) ExecuteTick(t Source) {
	m.channels[0].SetControls(t.GetAudioV0(), t.GetAudioF0(), t.GetAudioC0())
	m.channels[1].SetControls(t.GetAudioV1(), t.GetAudioF1(), t.GetAudioC1())
}

// GenerateFrame synthesises one frame's worth of PCM samples, mixing the two
// channels by halving and summing them.
func (m *Mixer) GenerateFrame() []uint8 {
	a := m.channels[0].generateBufferData(SamplesPerFrame)
	b := m.channels[1].generateBufferData(SamplesPerFrame)

	out := make([]uint8, SamplesPerFrame)
	for i := range out {
		out[i] = uint8(int(a[i])>>1) + uint8(int(b[i])>>1)
	}
	return out
}

// IntBuffer packs a frame's PCM samples into a go-audio IntBuffer, ready to
// be appended to a wav.Encoder or any other go-audio consumer.
func (m *Mixer) IntBuffer() *goaudio.IntBuffer {
	samples := m.GenerateFrame()
	data := make([]int, len(samples))
	for i, s := range samples {
		// centre the unsigned 8 bit sample around zero for a conventional
		// signed PCM stream.
		data[i] = int(s) - 128
	}
	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: 1,
			SampleRate:  sampleRateHz,
		},
		Data:           data,
		SourceBitDepth: 8,
	}
}
