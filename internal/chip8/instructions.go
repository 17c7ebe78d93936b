package chip8

// 00E0 -> Clear the screen
func (c *CPU) _0x00E0() {
	c.disp.Clear()
	c.pc += 2
}

// 00EE -> Return from a subroutine
func (c *CPU) _0x00EE() error {
	if c.sp == 0 {
		return ErrStackUnderflow
	}
	c.sp--
	c.pc = c.stack[c.sp] + 2
	return nil
}

// 1NNN -> Jump to address NNN
func (c *CPU) _0x1NNN(nnn uint16) {
	c.pc = nnn
}

// 2NNN -> Execute subroutine starting at address NNN
func (c *CPU) _0x2NNN(nnn uint16) error {
	if c.sp == stackDepth {
		return ErrStackOverflow
	}
	c.stack[c.sp] = c.pc
	c.sp++
	c.pc = nnn
	return nil
}

// 3XNN -> Skip the following instruction if VX == NN
func (c *CPU) _0x3XNN(x uint16, nn byte) {
	if c.v[x] == nn {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// 4XNN -> Skip the following instruction if VX != NN
func (c *CPU) _0x4XNN(x uint16, nn byte) {
	if c.v[x] != nn {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// 5XY0 -> Skip the following instruction if VX == VY
func (c *CPU) _0x5XY0(x, y uint16) {
	if c.v[x] == c.v[y] {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// 6XNN -> Store number NN in register VX
func (c *CPU) _0x6XNN(x uint16, nn byte) {
	c.v[x] = nn
	c.pc += 2
}

// 7XNN -> Add the value NN to register VX. Unlike 8XY4 this never touches VF.
func (c *CPU) _0x7XNN(x uint16, nn byte) {
	c.v[x] += nn
	c.pc += 2
}

// 8XY0 -> Store the value of register VY in register VX
func (c *CPU) _0x8XY0(x, y uint16) {
	c.v[x] = c.v[y]
	c.pc += 2
}

// 8XY1 -> Set VX to VX OR VY
func (c *CPU) _0x8XY1(x, y uint16) {
	c.v[x] |= c.v[y]
	c.pc += 2
}

// 8XY2 -> Set VX to VX AND VY
func (c *CPU) _0x8XY2(x, y uint16) {
	c.v[x] &= c.v[y]
	c.pc += 2
}

// 8XY3 -> Set VX to VX XOR VY
func (c *CPU) _0x8XY3(x, y uint16) {
	c.v[x] ^= c.v[y]
	c.pc += 2
}

// 8XY4 -> Add the value of register VY to register VX
// Set VF to 01 if a carry occurs
// Set VF to 00 if a carry does not occur
func (c *CPU) _0x8XY4(x, y uint16) {
	vx, vy := c.v[x], c.v[y]
	c.v[x] = vx + vy
	if vy > 0xFF-vx {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
	c.pc += 2
}

// 8XY5 -> Subtract the value of register VY from register VX
// Set VF to 00 if a borrow occurs
// Set VF to 01 if a borrow does not occur
func (c *CPU) _0x8XY5(x, y uint16) {
	vx, vy := c.v[x], c.v[y]
	c.v[x] = vx - vy
	if vy > vx {
		c.v[0xF] = 0
	} else {
		c.v[0xF] = 1
	}
	c.pc += 2
}

// 8XY6 -> Shift VX right one bit in place (CHIP-48 behaviour; VY is ignored)
// Set register VF to the least significant bit prior to the shift
func (c *CPU) _0x8XY6(x uint16) {
	vx := c.v[x]
	c.v[x] = vx >> 1
	c.v[0xF] = vx & 0x01
	c.pc += 2
}

// 8XY7 -> Set register VX to the value of VY minus VX
// Set VF to 00 if a borrow occurs
// Set VF to 01 if a borrow does not occur
func (c *CPU) _0x8XY7(x, y uint16) {
	vx, vy := c.v[x], c.v[y]
	c.v[x] = vy - vx
	if vx > vy {
		c.v[0xF] = 0
	} else {
		c.v[0xF] = 1
	}
	c.pc += 2
}

// 8XYE -> Shift VX left one bit in place (CHIP-48 behaviour; VY is ignored)
// Set register VF to the most significant bit prior to the shift
func (c *CPU) _0x8XYE(x uint16) {
	vx := c.v[x]
	c.v[x] = vx << 1
	c.v[0xF] = (vx >> 7) & 0x01
	c.pc += 2
}

// 9XY0 -> Skip the following instruction if VX != VY
func (c *CPU) _0x9XY0(x, y uint16) {
	if c.v[x] != c.v[y] {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// ANNN -> Store memory address NNN in the index register
func (c *CPU) _0xANNN(nnn uint16) {
	c.i = nnn
	c.pc += 2
}

// BNNN -> Jump to address NNN + V0
func (c *CPU) _0xBNNN(nnn uint16) {
	c.pc = (nnn + uint16(c.v[0])) & addressMask
}

// CXNN -> Set VX to a random number from 0-255 with a mask of NN
func (c *CPU) _0xCXNN(x uint16, nn byte) {
	c.v[x] = byte(c.rng.Intn(256)) & nn
	c.pc += 2
}

// DXYN -> Draw a sprite at position VX, VY with N bytes of sprite data
// starting at the address stored in the index register. The origin wraps
// modulo the display size; rows and columns that then run off the edge clip.
// Set VF to 01 if any set pixels are changed to unset, and 00 otherwise
func (c *CPU) _0xDXYN(x, y, n uint16) {
	xPos := uint16(c.v[x]) % DisplayWidth
	yPos := uint16(c.v[y]) % DisplayHeight
	c.v[0xF] = 0

	for row := uint16(0); row < n; row++ {
		if yPos+row >= DisplayHeight {
			break
		}
		sprite := c.mem.Read(c.i + row)

		for bit := uint16(0); bit < 8; bit++ {
			if xPos+bit >= DisplayWidth {
				break
			}
			if sprite&(0x80>>bit) == 0 {
				continue
			}

			index := xPos + bit + (yPos+row)*DisplayWidth
			// If the pixel was already lit, set the VF register to 1.
			// This indicates a collision.
			if c.disp.Read(index) == 1 {
				c.v[0xF] = 1
			}
			c.disp.Write(index, c.disp.Read(index)^1)
		}
	}

	c.pc += 2
}

// EX9E -> Skip the following instruction if the key corresponding to the hex
// value currently stored in register VX is pressed
func (c *CPU) _0xEX9E(x uint16) {
	if c.keypad.Pressed(c.v[x]) {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// EXA1 -> Skip the following instruction if the key corresponding to the hex
// value currently stored in register VX is not pressed
func (c *CPU) _0xEXA1(x uint16) {
	if !c.keypad.Pressed(c.v[x]) {
		c.pc += 4
	} else {
		c.pc += 2
	}
}

// FX07 -> Store the current value of the delay timer in register VX
func (c *CPU) _0xFX07(x uint16) {
	c.v[x] = c.timers.Delay()
	c.pc += 2
}

// FX0A -> Wait for a keypress and store the result in register VX. The program
// counter does not advance until a key is down at sample time, so the
// instruction re-executes every cycle until then. The lowest-indexed key wins.
func (c *CPU) _0xFX0A(x uint16) {
	key, ok := c.keypad.FirstPressed()
	if !ok {
		return
	}
	c.v[x] = key
	c.pc += 2
}

// FX15 -> Set the delay timer to the value of register VX
func (c *CPU) _0xFX15(x uint16) {
	c.timers.SetDelay(c.v[x])
	c.pc += 2
}

// FX18 -> Set the sound timer to the value of register VX
func (c *CPU) _0xFX18(x uint16) {
	c.timers.SetSound(c.v[x])
	c.pc += 2
}

// FX1E -> Add the value stored in register VX to the index register
// Set VF to 01 if the sum runs past 0x0FFF (CHIP-48 behaviour)
func (c *CPU) _0xFX1E(x uint16) {
	sum := c.i + uint16(c.v[x])
	if sum > addressMask {
		c.v[0xF] = 1
	} else {
		c.v[0xF] = 0
	}
	c.i = sum
	c.pc += 2
}

// FX29 -> Set the index register to the address of the font sprite for the
// hexadecimal digit stored in register VX
func (c *CPU) _0xFX29(x uint16) {
	c.i = uint16(c.v[x]&0x0F) * glyphSize
	c.pc += 2
}

// FX33 -> Store the binary-coded decimal equivalent of the value stored in
// register VX at addresses i, i+1, and i+2. The index register is unchanged.
func (c *CPU) _0xFX33(x uint16) {
	c.mem.Write(c.i, c.v[x]/100)
	c.mem.Write(c.i+1, (c.v[x]/10)%10)
	c.mem.Write(c.i+2, c.v[x]%10)
	c.pc += 2
}

// FX55 -> Store the values of registers V0 to VX inclusive in memory starting
// at address i; i is set to i+x+1 after the operation
func (c *CPU) _0xFX55(x uint16) {
	for ind := uint16(0); ind <= x; ind++ {
		c.mem.Write(c.i+ind, c.v[ind])
	}
	c.i += x + 1
	c.pc += 2
}

// FX65 -> Fill registers V0 to VX inclusive with the values stored in memory
// starting at address i; i is set to i+x+1 after the operation
func (c *CPU) _0xFX65(x uint16) {
	for ind := uint16(0); ind <= x; ind++ {
		c.v[ind] = c.mem.Read(c.i + ind)
	}
	c.i += x + 1
	c.pc += 2
}
