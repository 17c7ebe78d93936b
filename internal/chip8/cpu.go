package chip8

import (
	"fmt"
	"log"
	"math/rand"
	"time"
)

// CPU is the fetch/decode/execute engine. It borrows the memory, display,
// keypad and timers it was constructed with; none of them refer back.
type CPU struct {
	// Log every executed opcode when set.
	Debug bool

	// Opcode under examination
	opcode uint16

	// 8-bit general purpose registers (V0 - VF). VF doubles as the flag
	// register for carry, borrow, shift and sprite collision results.
	v [16]byte

	// Index register. Held as 16 bits; only the low 12 bits address memory.
	i uint16

	// Program counter. Held as 16 bits; only the low 12 bits address memory.
	pc uint16

	// Internal stack to store return addresses when calling procedures
	stack [stackDepth]uint16

	// Stack pointer indexes the next free stack slot
	sp uint16

	// Source for CXNN. Seedable so tests can pin the sequence.
	rng *rand.Rand

	// Set on a fatal fault; further cycles are refused until Reset.
	halted bool

	mem    *Memory
	disp   *Display
	keypad *Keypad
	timers *Timers
}

// NewCPU returns a CPU operating on the given components, reset to its
// power-on state.
func NewCPU(mem *Memory, disp *Display, keypad *Keypad, timers *Timers) *CPU {
	c := &CPU{
		mem:    mem,
		disp:   disp,
		keypad: keypad,
		timers: timers,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.Reset()
	return c
}

// Reset restores the power-on register state. The borrowed components are not
// touched; System.Init resets those.
func (c *CPU) Reset() {
	c.opcode = 0
	c.v = [16]byte{}
	c.i = 0
	c.pc = romStart
	c.stack = [stackDepth]uint16{}
	c.sp = 0
	c.halted = false
}

// Seed re-seeds the CXNN random source.
func (c *CPU) Seed(seed int64) {
	c.rng = rand.New(rand.NewSource(seed))
}

// Cycle runs a full fetch, decode, and execute cycle and reports whether the
// instruction modified the display. One opcode is 2 bytes long (ex. 0xA2F0) so
// we fetch two successive bytes (ex. 0xA2 and 0xF0) and merge them: shift the
// high byte left 8, then OR in the low byte.
//
// A returned error is a fatal fault (stack fault or, in this strict-mode CPU,
// an unknown opcode); after one, Cycle refuses to run until Reset.
func (c *CPU) Cycle() (bool, error) {
	if c.halted {
		return false, nil
	}

	c.opcode = uint16(c.mem.Read(c.pc))<<8 | uint16(c.mem.Read(c.pc+1))

	drawn, err := c.execute()
	if err != nil {
		c.halted = true
		if c.Debug {
			log.Printf("cpu fault state:%s", c.dump())
		}
		return false, err
	}

	if c.Debug {
		log.Printf("opcode: 0x%04X pc: 0x%03X sp: %d i: 0x%03X", c.opcode, c.pc, c.sp, c.i)
	}

	return drawn, nil
}

// Halted reports whether a fatal fault has latched.
func (c *CPU) Halted() bool {
	return c.halted
}

func (c *CPU) dump() string {
	return fmt.Sprintf(`
opcode: 0x%04X
pc: 0x%03X
sp: %d
i: 0x%03X
---Registers---
V0: %d V1: %d V2: %d V3: %d
V4: %d V5: %d V6: %d V7: %d
V8: %d V9: %d VA: %d VB: %d
VC: %d VD: %d VE: %d VF: %d`,
		c.opcode, c.pc, c.sp, c.i, c.v[0], c.v[1], c.v[2], c.v[3], c.v[4],
		c.v[5], c.v[6], c.v[7], c.v[8], c.v[9], c.v[10], c.v[11], c.v[12],
		c.v[13], c.v[14], c.v[15],
	)
}

// execute dispatches the current opcode on its top nibble, sub-decoding on the
// low nibble or byte where the instruction set requires it.
func (c *CPU) execute() (bool, error) {
	x := (c.opcode & 0x0F00) >> 8 // Decode Vx register identifier.
	y := (c.opcode & 0x00F0) >> 4 // Decode Vy register identifier.
	n := c.opcode & 0x000F        // load last 4 bits
	nn := byte(c.opcode & 0x00FF) // load last 8 bits
	nnn := c.opcode & 0x0FFF      // load last 12 bits

	switch c.opcode & 0xF000 {
	case 0x0000:
		switch c.opcode & 0x00FF {
		case 0x00E0:
			c._0x00E0()
			return true, nil
		case 0x00EE:
			return false, c._0x00EE()
		default:
			return false, UnknownOpcodeError{c.opcode}
		}
	case 0x1000:
		c._0x1NNN(nnn)
	case 0x2000:
		return false, c._0x2NNN(nnn)
	case 0x3000:
		c._0x3XNN(x, nn)
	case 0x4000:
		c._0x4XNN(x, nn)
	case 0x5000:
		if n != 0 {
			return false, UnknownOpcodeError{c.opcode}
		}
		c._0x5XY0(x, y)
	case 0x6000:
		c._0x6XNN(x, nn)
	case 0x7000:
		c._0x7XNN(x, nn)
	case 0x8000:
		switch n {
		case 0x0:
			c._0x8XY0(x, y)
		case 0x1:
			c._0x8XY1(x, y)
		case 0x2:
			c._0x8XY2(x, y)
		case 0x3:
			c._0x8XY3(x, y)
		case 0x4:
			c._0x8XY4(x, y)
		case 0x5:
			c._0x8XY5(x, y)
		case 0x6:
			c._0x8XY6(x)
		case 0x7:
			c._0x8XY7(x, y)
		case 0xE:
			c._0x8XYE(x)
		default:
			return false, UnknownOpcodeError{c.opcode}
		}
	case 0x9000:
		if n != 0 {
			return false, UnknownOpcodeError{c.opcode}
		}
		c._0x9XY0(x, y)
	case 0xA000:
		c._0xANNN(nnn)
	case 0xB000:
		c._0xBNNN(nnn)
	case 0xC000:
		c._0xCXNN(x, nn)
	case 0xD000:
		c._0xDXYN(x, y, n)
		return true, nil
	case 0xE000:
		switch c.opcode & 0x00FF {
		case 0x009E:
			c._0xEX9E(x)
		case 0x00A1:
			c._0xEXA1(x)
		default:
			return false, UnknownOpcodeError{c.opcode}
		}
	case 0xF000:
		switch c.opcode & 0x00FF {
		case 0x0007:
			c._0xFX07(x)
		case 0x000A:
			c._0xFX0A(x)
		case 0x0015:
			c._0xFX15(x)
		case 0x0018:
			c._0xFX18(x)
		case 0x001E:
			c._0xFX1E(x)
		case 0x0029:
			c._0xFX29(x)
		case 0x0033:
			c._0xFX33(x)
		case 0x0055:
			c._0xFX55(x)
		case 0x0065:
			c._0xFX65(x)
		default:
			return false, UnknownOpcodeError{c.opcode}
		}
	}

	return false, nil
}
