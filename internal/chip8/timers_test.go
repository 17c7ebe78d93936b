package chip8

import "testing"

func TestTimersDecrementAndSaturate(t *testing.T) {
	var tm Timers
	tm.SetDelay(60)

	for i := 0; i < 60; i++ {
		tm.Tick()
	}
	if tm.Delay() != 0 {
		t.Errorf("delay timer should reach 0 after 60 ticks, got %d", tm.Delay())
	}

	tm.Tick()
	if tm.Delay() != 0 {
		t.Errorf("delay timer should saturate at 0, got %d", tm.Delay())
	}
}

func TestTimersIndependent(t *testing.T) {
	var tm Timers
	tm.SetDelay(3)
	tm.SetSound(1)

	tm.Tick()

	if tm.Delay() != 2 {
		t.Errorf("delay timer should be 2, got %d", tm.Delay())
	}
	if tm.Sound() != 0 {
		t.Errorf("sound timer should be 0, got %d", tm.Sound())
	}
}

func TestTimersBuzzing(t *testing.T) {
	var tm Timers

	if tm.Buzzing() {
		t.Error("should not buzz when the sound timer is 0")
	}

	tm.SetSound(5)
	if !tm.Buzzing() {
		t.Error("should buzz while the sound timer is running")
	}

	for i := 0; i < 5; i++ {
		tm.Tick()
	}
	if tm.Buzzing() {
		t.Error("should stop buzzing once the sound timer hits 0")
	}
}
