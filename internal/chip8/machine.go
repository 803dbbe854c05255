package chip8

// Machine is the capability set a host drives: reset, step, tick the
// timers, and feed key events. Each variant owns a *Core inline and
// dispatches opcodes according to its own rules.
type Machine interface {
	Reset(rom []byte)
	Step() error
	UpdateTimer(deltaMillis uint64)
	SetKey(k uint8)
	ClearKey(k uint8)
	SoundTimer() byte
	DelayTimer() byte
	Display() Surface
	Variant() Variant

	// Quirks exposes the live quirk bitmask by pointer so a host can
	// read or override it after construction.
	Quirks() *Quirks

	// Exited reports whether the ROM requested termination (SUPER 00FD).
	Exited() bool
}
