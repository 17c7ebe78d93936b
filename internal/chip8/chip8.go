// Package chip8 is the core of a CHIP-8 virtual machine. Chip-8 used to be implemented on 4k systems
// like the Telmac 1800 and Cosmac VIP where the chip-8 interpreter itself occupied the first 512 bytes
// of memory (up to 0x200). In modern CHIP-8 implementations (like ours here), where the interpreter is
// running natively outside the 4K memory space, there is no need to avoid the lower 512 bytes of memory
// (0x000-0x200), and it is common to store font data there.
//
// The core is split the way the original hardware was: a Memory, a Display, a Keypad, two Timers and a
// CPU that borrows all four, wired together behind a System facade. A presenter drives the System
// through the Machine interface and never touches the parts directly.
package chip8

//		System memory map
// 		+---------------+= 0xFFF (4095) End Chip-8 RAM
// 		|               |
// 		|               |
// 		|               |
// 		|               |
// 		|               |
// 		| 0x200 to 0xFFF|
// 		|     Chip-8    |
// 		| Program / Data|
// 		|     Space     |
// 		|               |
// 		|               |
// 		|               |
// 		+- - - - - - - -+= 0x600 (1536) Start ETI 660 Chip-8 programs
// 		|               |
// 		|               |
// 		|               |
// 		+---------------+= 0x200 (512) Start of most Chip-8 programs
// 		| 0x000 to 0x1FF|
// 		| Reserved for  |
// 		|  interpreter  |
// 		+---------------+= 0x000 (0) Begin Chip-8 RAM. We store font data here instead of storing the interpreter because we don't have that restriction.
//

const (
	// DisplayWidth is the horizontal resolution of the CHIP-8 display.
	DisplayWidth = 64

	// DisplayHeight is the vertical resolution of the CHIP-8 display.
	DisplayHeight = 32

	// memorySize is the full 4K address space.
	memorySize = 4096

	// addressMask keeps addresses inside the architectural 12-bit space.
	addressMask = 0x0FFF

	// romStart is where programs are loaded and where the program counter boots.
	romStart = 0x200

	// maxROMSize is the program space left above romStart.
	maxROMSize = memorySize - romStart

	// stackDepth is the number of nested subroutine calls the machine supports.
	stackDepth = 16

	// numKeys is the size of the hex keypad.
	numKeys = 16
)
