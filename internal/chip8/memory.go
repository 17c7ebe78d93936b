package chip8

// Memory is the 4K byte-addressable RAM of the machine. The font set lives in
// the low 80 bytes, programs start at 0x200.
type Memory struct {
	cells [memorySize]byte
}

// Init clears every cell and reinstalls the font set.
func (m *Memory) Init() {
	m.cells = [memorySize]byte{}
	copy(m.cells[:len(fontSet)], fontSet[:])
}

// LoadROM copies rom into memory starting at 0x200. The writable region is
// cleared and the font reinstalled first, so loading a second ROM never sees
// leftovers of the first. Marking the system as rom-loaded is the caller's job.
func (m *Memory) LoadROM(rom []byte) error {
	if len(rom) > maxROMSize {
		return ErrROMTooLarge
	}
	m.Init()
	copy(m.cells[romStart:], rom)
	return nil
}

// Read returns the byte at addr. Addresses wrap at the 12-bit boundary.
func (m *Memory) Read(addr uint16) byte {
	return m.cells[addr&addressMask]
}

// Write stores val at addr. Addresses wrap at the 12-bit boundary.
func (m *Memory) Write(addr uint16, val byte) {
	m.cells[addr&addressMask] = val
}
