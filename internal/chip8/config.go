package chip8

import "math/rand"

// Config maps `chippy run`'s flags onto machine construction. It has no
// file-format counterpart; flags are the only configuration surface.
type Config struct {
	Variant Variant

	// QuirkSet and QuirkClear are applied after the variant's defaults,
	// set bits first. Repeated flags like --quirk=+wrapsprite
	// --quirk=-bxnn parse into both.
	QuirkSet   Quirks
	QuirkClear Quirks

	// InstructionsPerFrame governs how many Step calls the run loop
	// issues per host frame tick (massung calls this ipf). CHIP-8 carries
	// no canonical clock speed; this is the knob a host exposes instead.
	InstructionsPerFrame int

	RNG *rand.Rand
}

// DefaultInstructionsPerFrame is a commonly used rate for ROMs authored
// against octo/massung-style interpreters.
const DefaultInstructionsPerFrame = 11

// New builds the Machine described by cfg and resets it with rom.
func (cfg Config) New(rom []byte) (Machine, error) {
	vm, err := New(cfg.Variant, cfg.RNG)
	if err != nil {
		return nil, err
	}
	vm.Reset(rom)

	q := *vm.Quirks()
	q |= cfg.QuirkSet
	q &^= cfg.QuirkClear
	*vm.Quirks() = q

	return vm, nil
}
