package chip8

import "testing"

func TestKeypadPressRelease(t *testing.T) {
	var k Keypad

	k.Press(5, true)
	if !k.Pressed(5) {
		t.Error("key 5 should be pressed")
	}

	k.Press(5, false)
	if k.Pressed(5) {
		t.Error("key 5 should be released")
	}
}

func TestKeypadMasksKeyIndex(t *testing.T) {
	var k Keypad

	k.Press(0x15, true)
	if !k.Pressed(0x05) {
		t.Error("key index should be taken modulo 16")
	}
}

func TestKeypadFirstPressed(t *testing.T) {
	var k Keypad

	if _, ok := k.FirstPressed(); ok {
		t.Error("no key should be reported on an idle keypad")
	}

	k.Press(0xB, true)
	k.Press(0x3, true)

	key, ok := k.FirstPressed()
	if !ok || key != 0x3 {
		t.Errorf("lowest pressed key should win, got %#x (ok=%v)", key, ok)
	}
}
