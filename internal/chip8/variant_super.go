package chip8

import "math/rand"

const (
	superRAMSize    = 4096
	superStackDepth = 16
	superStartAddr  = 0x200
)

// Super implements Machine for the SUPER-CHIP 1.1 extension: 128x64
// hires with a pixel-doubled lores mode, a 16-slot stack, RPL user
// flags, and six extended opcodes decoded ahead of the common set.
type Super struct {
	core *Core
	fb   superDisplay
}

// NewSuper allocates a SUPER machine.
func NewSuper(rng *rand.Rand) *Super {
	vm := &Super{core: newCore(superRAMSize, superStackDepth, SuperDefaultQuirks, rng)}
	vm.core.base = superStartAddr
	return vm
}

func (vm *Super) Reset(rom []byte) {
	vm.fb = superDisplay{}
	vm.core.reset(rom)
	copy(vm.core.RAM[FontStart:], SmallFont[:])
	copy(vm.core.RAM[LargeFontStart:], LargeFont[:])
}

func (vm *Super) Step() error {
	c := vm.core
	if c.resolveWait() {
		return nil
	}

	oldPC := c.PC
	high := c.RAM[c.addr(c.PC)]
	low := c.RAM[c.addr(c.PC+1)]
	c.PC += 2
	opcode := uint16(high)<<8 | uint16(low)

	if inst, ok := DecodeSuperExtended(opcode); ok {
		if err := vm.executeExtended(inst); err != nil {
			c.PC = oldPC
			return err
		}
		return nil
	}

	inst, ok := Decode(opcode)
	if !ok {
		c.PC = oldPC
		return ErrUnknownOpcode
	}
	if err := Execute(c, &vm.fb, inst); err != nil {
		c.PC = oldPC
		return err
	}
	return nil
}

// scrollAmount doubles n for lores scrolls, since a lores scroll is
// defined in logical 64-wide pixels while the framebuffer is physically
// 128 wide, unless HalfPixelScrollLowRes asks for the unscaled amount.
func (vm *Super) scrollAmount(n int) int {
	if !vm.fb.hires && !vm.core.Quirks.Has(HalfPixelScrollLowRes) {
		return n * 2
	}
	return n
}

func (vm *Super) executeExtended(inst Instruction) error {
	c := vm.core
	switch inst.Op {
	case OpScrollDown:
		vm.fb.scrollDown(vm.scrollAmount(int(inst.N)))
	case OpScrollUp:
		vm.fb.scrollUp(vm.scrollAmount(int(inst.N)))
	case OpScrollRight:
		vm.fb.scrollRight(vm.scrollAmount(4))
	case OpScrollLeft:
		vm.fb.scrollLeft(vm.scrollAmount(4))
	case OpExit:
		c.Exit = true
	case OpLow:
		vm.fb.setHires(c, false)
	case OpHigh:
		vm.fb.setHires(c, true)
	case OpLDHFVx:
		c.I = LargeFontStart + LargeFontGlyphSize*uint16(c.V[inst.X])
	case OpLDRVx:
		x := inst.X
		if x > 7 {
			x = 7
		}
		copy(c.RPL[:], c.V[:x+1])
	case OpLDVxR:
		x := inst.X
		if x > 7 {
			x = 7
		}
		copy(c.V[:], c.RPL[:x+1])
	default:
		return ErrUnknownOpcode
	}
	return nil
}

func (vm *Super) UpdateTimer(deltaMillis uint64) { vm.core.UpdateTimer(deltaMillis) }
func (vm *Super) SetKey(k uint8)                 { vm.core.SetKey(k) }
func (vm *Super) ClearKey(k uint8)               { vm.core.ClearKey(k) }
func (vm *Super) SoundTimer() byte               { return vm.core.GetSoundTimer() }
func (vm *Super) DelayTimer() byte               { return vm.core.GetDelayTimer() }
func (vm *Super) Display() Surface               { return &vm.fb }
func (vm *Super) Variant() Variant               { return VariantSUPER }
func (vm *Super) Quirks() *Quirks                { return &vm.core.Quirks }
func (vm *Super) Exited() bool                   { return vm.core.Exit }

// Core exposes the shared state for tests and the disassembler.
func (vm *Super) Core() *Core { return vm.core }

// Hires reports the current SUPER display mode.
func (vm *Super) Hires() bool { return vm.fb.hires }
