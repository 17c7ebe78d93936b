package chip8

import (
	"bytes"
	"testing"
)

func TestNewState(t *testing.T) {
	s := New()

	if s.cpu.pc != romStart {
		t.Errorf("PC should be %#x, got %#x", romStart, s.cpu.pc)
	}
	if s.cpu.sp != 0 {
		t.Errorf("SP should be 0, got %d", s.cpu.sp)
	}
	if s.cpu.i != 0 {
		t.Errorf("I should be 0, got %d", s.cpu.i)
	}
	for i, v := range s.cpu.v {
		if v != 0 {
			t.Errorf("V%X should be 0, got %d", i, v)
		}
	}
	if s.timers.Delay() != 0 || s.timers.Sound() != 0 {
		t.Error("both timers should be 0")
	}
	for i, px := range s.gpu.gfx {
		if px != 0 {
			t.Fatalf("pixel %d should be 0", i)
		}
	}
	if !bytes.Equal(s.mem.cells[:len(wantFont)], wantFont) {
		t.Error("font table should be installed at 0x000")
	}
}

func TestStepRequiresStartAndROM(t *testing.T) {
	s := New()
	if s.Step() {
		t.Error("Step on a fresh system should be a no-op")
	}

	s.Start()
	if s.Step() {
		t.Error("Step without a ROM should be a no-op")
	}

	s.Init()
	if err := s.LoadROM([]byte{0x00, 0xE0}); err != nil {
		t.Fatalf("LoadROM failed: %v", err)
	}
	if s.Step() {
		t.Error("Step before Start should be a no-op")
	}

	s.Start()
	if !s.Step() {
		t.Error("Step should run CLS once started with a ROM loaded")
	}
}

func TestInitRestoresResetState(t *testing.T) {
	s := loadProgram(t, 0x6005, 0xF018, 0xA300, 0xD005)
	for i := 0; i < 4; i++ {
		s.Step()
	}
	s.KeyPressed(7, 1)

	s.Init()

	if s.cpu.pc != romStart || s.cpu.i != 0 || s.cpu.v[0] != 0 {
		t.Error("Init should restore the power-on register state")
	}
	if s.timers.Sound() != 0 {
		t.Error("Init should clear the timers")
	}
	if s.keypad.Pressed(7) {
		t.Error("Init should release the keypad")
	}
	if s.started || s.romLoaded {
		t.Error("Init should clear the started and rom-loaded flags")
	}
	if s.mem.Read(romStart) != 0 {
		t.Error("Init should clear the loaded ROM")
	}
	for i, px := range s.gpu.gfx {
		if px != 0 {
			t.Fatalf("pixel %d should be 0 after Init", i)
		}
	}
}

func TestRenderDimensions(t *testing.T) {
	s := New()

	if s.RenderWidth() != 64 {
		t.Errorf("render width should be 64, got %d", s.RenderWidth())
	}
	if s.RenderHeight() != 32 {
		t.Errorf("render height should be 32, got %d", s.RenderHeight())
	}
}

func TestKeyPressedMasksAndReleases(t *testing.T) {
	s := New()

	s.KeyPressed(0x1F, 1)
	if !s.keypad.Pressed(0xF) {
		t.Error("key indices should be taken modulo 16")
	}

	s.KeyPressed(0xF, 0)
	if s.keypad.Pressed(0xF) {
		t.Error("value 0 should release the key")
	}
}

// Running an opcode that does not touch the display must leave snapshots
// bit-identical.
func TestPixelsUnchangedByNonDisplayOpcode(t *testing.T) {
	s := loadProgram(t, 0xD005, 0x6642)

	s.Step()
	before := s.Pixels()

	s.Step()
	if s.Pixels() != before {
		t.Error("a register load must not change the display snapshot")
	}
}

func TestTickTimersForwards(t *testing.T) {
	s := New()
	s.timers.SetDelay(2)

	s.TickTimers()

	if s.timers.Delay() != 1 {
		t.Errorf("delay timer should be 1, got %d", s.timers.Delay())
	}
}
