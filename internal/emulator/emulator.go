// Package emulator runs a machine against the windowed presenter: it batches
// CPU steps into video frames, ticks the timers at 60Hz, redraws when a cycle
// touched the display and feeds key edges back into the core.
package emulator

import (
	"log"
	"time"

	"github.com/albertofem/chippuhachi/internal/chip8"
	"github.com/albertofem/chippuhachi/internal/pixel"
	"github.com/albertofem/chippuhachi/internal/sound"
)

// refreshRate is the video frame and timer cadence. The original COSMAC VIP
// ticked its timers at exactly this rate.
const refreshRate = 60

// Run drives m until the window is closed, executing cyclesPerFrame
// instructions per video frame.
func Run(m chip8.Machine, win *pixel.Window, cyclesPerFrame int) {
	frame := time.NewTicker(time.Second / refreshRate)
	defer frame.Stop()

	// A missing or broken audio device only loses the buzzer, not the run.
	buzzer, err := sound.NewBuzzer()
	if err != nil {
		log.Printf("buzzer disabled: %v", err)
	}

	for range frame.C {
		if win.Closed() {
			break
		}

		drawn := false
		for i := 0; i < cyclesPerFrame; i++ {
			if m.Step() {
				drawn = true
			}
		}
		m.TickTimers()

		if buzzer != nil {
			buzzer.Set(m.Buzzing())
		}

		if drawn {
			snapshot := m.Pixels()
			win.DrawGraphics(snapshot[:])
		} else {
			win.UpdateInput()
		}

		win.PollKeys(func(key byte, down bool) {
			value := 0
			if down {
				value = 1
			}
			m.KeyPressed(key, value)
		})
	}

	log.Println("exit signal detected, gracefully shutting down...")
}
