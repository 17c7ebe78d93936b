// Package pixel is the windowed presenter. Display snapshots are decoded into
// a picture once per frame and stretched over the window as a single textured
// sprite; the host keyboard is mapped onto the CHIP-8 hex keypad.
package pixel

import (
	"fmt"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

// pixelScale is how many window pixels one machine pixel occupies.
const pixelScale = 16

// keyMap lays the hex keypad under the left hand:
//
//	1 2 3 4      1 2 3 C
//	Q W E R  ->  4 5 6 D
//	A S D F      7 8 9 E
//	Z X C V      A 0 B F
var keyMap = map[pixelgl.Button]byte{
	pixelgl.Key1: 0x1, pixelgl.Key2: 0x2, pixelgl.Key3: 0x3, pixelgl.Key4: 0xC,
	pixelgl.KeyQ: 0x4, pixelgl.KeyW: 0x5, pixelgl.KeyE: 0x6, pixelgl.KeyR: 0xD,
	pixelgl.KeyA: 0x7, pixelgl.KeyS: 0x8, pixelgl.KeyD: 0x9, pixelgl.KeyF: 0xE,
	pixelgl.KeyZ: 0xA, pixelgl.KeyX: 0x0, pixelgl.KeyC: 0xB, pixelgl.KeyV: 0xF,
}

// Window wraps a pixelgl window together with the picture that display
// snapshots are decoded into between frames.
type Window struct {
	*pixelgl.Window
	frame *pixel.PictureData
}

// NewWindow opens a window sized to the machine's render dimensions.
func NewWindow(width, height uint16) (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippuhachi",
		Bounds: pixel.R(0, 0, float64(width)*pixelScale, float64(height)*pixelScale),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %w", err)
	}
	return &Window{
		Window: w,
		frame:  pixel.MakePictureData(pixel.R(0, 0, float64(width), float64(height))),
	}, nil
}

// DrawGraphics presents a display snapshot, row-major with a top-left origin.
// The frame picture's origin is the bottom left, so rows land mirrored in the
// pixel buffer before the sprite is scaled up over the window.
func (w *Window) DrawGraphics(gfx []byte) {
	width := w.frame.Stride
	rows := len(gfx) / width

	for i, px := range gfx {
		x, y := i%width, i/width
		cell := (rows-1-y)*width + x
		if px == 1 {
			w.frame.Pix[cell] = colornames.Lime
		} else {
			w.frame.Pix[cell] = colornames.Black
		}
	}

	w.Clear(colornames.Black)
	sprite := pixel.NewSprite(w.frame, w.frame.Bounds())
	sprite.Draw(w.Window, pixel.IM.Scaled(pixel.ZV, pixelScale).Moved(w.Bounds().Center()))
	w.Update()
}

// PollKeys reports every keypad edge since the last frame. The core owns the
// pressed/released state, so the presenter forwards transitions only.
func (w *Window) PollKeys(report func(key byte, down bool)) {
	for btn, key := range keyMap {
		switch {
		case w.JustPressed(btn):
			report(key, true)
		case w.JustReleased(btn):
			report(key, false)
		}
	}
}
