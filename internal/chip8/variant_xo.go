package chip8

import "math/rand"

// XO is a deliberate stub. XO-CHIP (64K RAM, a second display plane, an
// audio pattern buffer, 0xF000 long addressing, and plane masking) is
// explicitly out of scope for this spec; XO exists only so chip8.New can
// return a Machine for VariantXO without the caller special-casing it.
type XO struct {
	core *Core
	fb   vipDisplay
}

// NewXO allocates a stub XO-CHIP machine. Every Step call fails with
// ErrUnsupportedVariant.
func NewXO(rng *rand.Rand) *XO {
	return &XO{core: newCore(vipRAMSize, vipStackDepth, 0, rng)}
}

func (vm *XO) Reset(rom []byte)                  { vm.core.reset(rom) }
func (vm *XO) Step() error                       { return ErrUnsupportedVariant }
func (vm *XO) UpdateTimer(deltaMillis uint64)    { vm.core.UpdateTimer(deltaMillis) }
func (vm *XO) SetKey(k uint8)                    { vm.core.SetKey(k) }
func (vm *XO) ClearKey(k uint8)                  { vm.core.ClearKey(k) }
func (vm *XO) SoundTimer() byte                  { return vm.core.GetSoundTimer() }
func (vm *XO) DelayTimer() byte                  { return vm.core.GetDelayTimer() }
func (vm *XO) Display() Surface                  { return &vm.fb }
func (vm *XO) Variant() Variant                  { return VariantXO }
func (vm *XO) Quirks() *Quirks                   { return &vm.core.Quirks }
func (vm *XO) Exited() bool                      { return vm.core.Exit }
