// Package sound drives the buzzer. The tone sample is embedded into the
// binary with packr, buffered, and looped behind a pause switch so the buzzer
// tracks the sound timer as a level instead of replaying one-shot beeps.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/gobuffalo/packr"
)

var box = packr.NewBox("./data")

// Buzzer loops the embedded tone while switched on. The zero value is not
// usable; construct with NewBuzzer.
type Buzzer struct {
	ctrl *beep.Ctrl
}

// NewBuzzer decodes the embedded tone, initializes the speaker and starts the
// loop muted. The speaker keeps the loop running for the life of the process.
func NewBuzzer() (*Buzzer, error) {
	raw, err := box.Find("beep.wav")
	if err != nil {
		return nil, fmt.Errorf("missing embedded tone: %w", err)
	}

	stream, format, err := wav.Decode(io.NopCloser(bytes.NewReader(raw)))
	if err != nil {
		return nil, fmt.Errorf("decoding tone: %w", err)
	}
	defer stream.Close()

	// Buffer the whole sample up front; looping must never rewind the decoder.
	buf := beep.NewBuffer(format)
	buf.Append(stream)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	ctrl := &beep.Ctrl{
		Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len())),
		Paused:   true,
	}
	speaker.Play(ctrl)

	return &Buzzer{ctrl: ctrl}, nil
}

// Set switches the buzzer on or off. Calling it with the current state again
// every frame is fine.
func (b *Buzzer) Set(on bool) {
	speaker.Lock()
	b.ctrl.Paused = !on
	speaker.Unlock()
}
