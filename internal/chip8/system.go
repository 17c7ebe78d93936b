package chip8

import (
	"fmt"
	"log"
	"os"
)

// Machine is the capability set a presenter needs to drive the core. The
// graphical window, a headless driver and the test harness all consume the
// same interface.
type Machine interface {
	// Init restores the machine to its power-on state.
	Init()

	// LoadROM places a program image at 0x200.
	LoadROM(rom []byte) error

	// Start enables execution. Step is a no-op until Start has been called
	// and a ROM has been loaded.
	Start()

	// Step executes one instruction and reports whether it changed the
	// display.
	Step() bool

	// RenderWidth and RenderHeight are the display dimensions in pixels.
	RenderWidth() uint16
	RenderHeight() uint16

	// Pixels is a copy of the display, row-major from the top left.
	Pixels() [DisplayWidth * DisplayHeight]byte

	// KeyPressed records a key transition; value != 0 means down.
	KeyPressed(key byte, value int)

	// TickTimers decrements the delay and sound timers once. The host calls
	// it at 60Hz.
	TickTimers()

	// Buzzing reports whether the sound timer is running.
	Buzzing() bool
}

// System wires the memory, display, keypad, timers and CPU together and is
// the only type the outside world talks to. It owns all of the machine state
// exclusively; callers from more than one goroutine must serialize access
// themselves.
type System struct {
	mem    *Memory
	gpu    *Display
	keypad *Keypad
	timers *Timers
	cpu    *CPU

	started   bool
	romLoaded bool
}

// Statically ensure the facade keeps satisfying the presenter contract.
var _ Machine = (*System)(nil)

// New returns a System reset to its power-on state with no ROM loaded.
func New() *System {
	s := &System{
		mem:    &Memory{},
		gpu:    &Display{},
		keypad: &Keypad{},
		timers: &Timers{},
	}
	s.cpu = NewCPU(s.mem, s.gpu, s.keypad, s.timers)
	s.Init()
	return s
}

// Init reinitializes every component and clears the started and rom-loaded
// flags. Calling it again after a fault or mid-run restores the exact
// post-reset state.
func (s *System) Init() {
	s.mem.Init()
	s.gpu.Clear()
	s.keypad.Reset()
	s.timers.Reset()
	s.cpu.Reset()
	s.started = false
	s.romLoaded = false
}

// LoadROM loads a program image into memory at 0x200 and marks the system
// rom-loaded on success.
func (s *System) LoadROM(rom []byte) error {
	if err := s.mem.LoadROM(rom); err != nil {
		return err
	}
	s.romLoaded = true
	return nil
}

// LoadROMFile reads a ROM image from disk and loads it.
func (s *System) LoadROMFile(path string) error {
	rom, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading rom %q: %w", path, err)
	}
	return s.LoadROM(rom)
}

// Start enables execution.
func (s *System) Start() {
	s.started = true
}

// Step forwards one cycle to the CPU and reports whether the display changed.
// It is a no-op unless the system is started with a ROM loaded. A fatal CPU
// fault is logged once and latches; every Step after it returns false until
// Init, while Pixels keeps returning the last valid display.
func (s *System) Step() bool {
	if !s.started || !s.romLoaded {
		return false
	}

	drawn, err := s.cpu.Cycle()
	if err != nil {
		log.Printf("chip8: cpu fault: %v", err)
		return false
	}
	return drawn
}

// RenderWidth returns the display width in pixels.
func (s *System) RenderWidth() uint16 {
	return DisplayWidth
}

// RenderHeight returns the display height in pixels.
func (s *System) RenderHeight() uint16 {
	return DisplayHeight
}

// Pixels returns a snapshot of the display.
func (s *System) Pixels() [DisplayWidth * DisplayHeight]byte {
	return s.gpu.Snapshot()
}

// KeyPressed records a key press (value != 0) or release (value == 0).
func (s *System) KeyPressed(key byte, value int) {
	s.keypad.Press(key, value != 0)
}

// TickTimers decrements both timers once.
func (s *System) TickTimers() {
	s.timers.Tick()
}

// Buzzing reports whether the sound timer is running.
func (s *System) Buzzing() bool {
	return s.timers.Buzzing()
}

// SetDebug toggles per-cycle opcode logging on the CPU.
func (s *System) SetDebug(on bool) {
	s.cpu.Debug = on
}

// Seed re-seeds the CPU's random source, pinning the CXNN sequence.
func (s *System) Seed(seed int64) {
	s.cpu.Seed(seed)
}
