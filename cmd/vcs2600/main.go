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

// Command vcs2600 is a headless demonstration host: it loads a cartridge
// image, drives the console for a fixed number of frames reading a raw
// terminal for joystick/console-switch input, and optionally dumps the
// mixed audio output to a wav file for inspection (there is no realtime
// audio device output -- this is a correctness harness, not a player).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-audio/wav"
	"github.com/jetsetilly/vcs2600/hardware/console"
	"github.com/jetsetilly/vcs2600/hardware/input"
	"github.com/pkg/term"
)

func main() {
	romPath := flag.String("rom", "", "path to cartridge image")
	frames := flag.Int("frames", 60, "number of video frames to run")
	wavPath := flag.String("wav", "", "optional path to dump mixed audio as a wav file")
	flag.Parse()

	if err := run(*romPath, *frames, *wavPath); err != nil {
		fmt.Fprintln(os.Stderr, "vcs2600:", err)
		os.Exit(1)
	}
}

func run(romPath string, frames int, wavPath string) error {
	if romPath == "" {
		return fmt.Errorf("-rom is required")
	}

	rom, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}

	vcs, err := console.NewVCS(console.NewParameters(rom))
	if err != nil {
		return fmt.Errorf("building console: %w", err)
	}
	vcs.StartUp()

	var enc *wav.Encoder
	if wavPath != "" {
		f, err := os.Create(wavPath)
		if err != nil {
			return fmt.Errorf("creating wav file: %w", err)
		}
		defer f.Close()
		enc = wav.NewEncoder(f, 48000, 8, 1, 1)
		defer enc.Close()
	}

	keys, closeKeys := openKeyboard()
	defer closeKeys()

	for i := 0; i < frames; i++ {
		drainKeyboard(vcs, keys)

		if err := vcs.StartNextFrame(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		if enc != nil {
			if err := enc.Write(vcs.Audio.IntBuffer()); err != nil {
				return fmt.Errorf("writing audio: %w", err)
			}
		}
	}

	return nil
}

// openKeyboard puts the controlling terminal into raw mode and returns a
// channel of single-byte keypresses, along with a function that restores the
// terminal. If no terminal is available (piped stdin, CI), it returns a
// channel that never yields and a no-op close.
func openKeyboard() (<-chan byte, func()) {
	t, err := term.Open("/dev/tty", term.RawMode)
	if err != nil {
		return nil, func() {}
	}

	keys := make(chan byte, 16)
	go func() {
		buf := make([]byte, 1)
		for {
			n, err := t.Read(buf)
			if err != nil || n == 0 {
				close(keys)
				return
			}
			keys <- buf[0]
		}
	}()

	return keys, func() {
		t.Restore()
		t.Close()
	}
}

// drainKeyboard maps a handful of keys onto the console's switches and
// controller 0: WASD for direction, space for fire, q/r for select/reset.
func drainKeyboard(vcs *console.VCS, keys <-chan byte) {
	if keys == nil {
		return
	}
	for {
		select {
		case k, ok := <-keys:
			if !ok {
				return
			}
			switch k {
			case 'w':
				vcs.PushInput(input.Event{Kind: input.Player0UpDown, Value: -1})
			case 's':
				vcs.PushInput(input.Event{Kind: input.Player0UpDown, Value: 1})
			case 'a':
				vcs.PushInput(input.Event{Kind: input.Player0LeftRight, Value: -1})
			case 'd':
				vcs.PushInput(input.Event{Kind: input.Player0LeftRight, Value: 1})
			case ' ':
				vcs.PushInput(input.Event{Kind: input.Player0Trigger, Value: 1})
			case 'r':
				vcs.PushInput(input.Event{Kind: input.Reset, Value: 1})
			case 'q':
				vcs.PushInput(input.Event{Kind: input.Select, Value: 1})
			}
		default:
			return
		}
	}
}
