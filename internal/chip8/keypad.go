package chip8

// Keypad is the state of the 16-key hex matrix:
//
//	1  2  3  C
//	4  5  6  D
//	7  8  9  E
//	A  0  B  F
//
// The host reports presses and releases; EX9E, EXA1 and FX0A sample it.
type Keypad struct {
	keys [numKeys]bool
}

// Reset releases every key.
func (k *Keypad) Reset() {
	k.keys = [numKeys]bool{}
}

// Press records key as down or up. Only the low nibble of key is significant.
func (k *Keypad) Press(key byte, down bool) {
	k.keys[key&0x0F] = down
}

// Pressed reports whether key is currently down.
func (k *Keypad) Pressed(key byte) bool {
	return k.keys[key&0x0F]
}

// FirstPressed returns the lowest-indexed key that is down, if any. FX0A uses
// this so that the lowest index wins when several keys are held.
func (k *Keypad) FirstPressed() (byte, bool) {
	for i, down := range k.keys {
		if down {
			return byte(i), true
		}
	}
	return 0, false
}
