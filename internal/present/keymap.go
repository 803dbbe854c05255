// Package present hosts the host-facing I/O adapters that sit on top of
// a chip8.Machine: terminal rendering, an optional windowed renderer,
// audio, and raw-frame export. None of it participates in emulation;
// it only reads Display()/SoundTimer() and calls SetKey/ClearKey.
package present

// KeyMap is the standard CHIP-8 hex keypad laid out over a QWERTY
// keyboard, matching the COSMAC VIP's physical 4x4 pad:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   -->   q w e r
//	7 8 9 E        a s d f
//	A 0 B F        z x c v
var KeyMap = map[rune]uint8{
	'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xC,
	'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xD,
	'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xE,
	'z': 0xA, 'x': 0x0, 'c': 0xB, 'v': 0xF,
}
