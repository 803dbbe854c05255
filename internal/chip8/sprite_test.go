package chip8

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVIPSpriteClipsAtRightEdgeWithoutWrap(t *testing.T) {
	vm := NewVIP(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	c := vm.Core()
	c.RAM[0x300] = 0xFF // full byte, 8 lit pixels
	c.I = 0x300

	fb := &vm.fb
	fb.DrawSprite(c, 63, 0, 1)

	assert.True(t, fb.Pixel(63, 0), "leftmost (only on-screen) sprite column should be lit")
	// the remaining seven columns wrap off past x=63 and must not appear at x=0..6
	for x := 0; x < 7; x++ {
		assert.False(t, fb.Pixel(x, 0), "column %d should be clipped, not wrapped", x)
	}
}

func TestVIPSpriteWrapsWithQuirk(t *testing.T) {
	vm := NewVIP(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	*vm.Quirks() = vm.Core().Quirks | WrapSprite
	c := vm.Core()
	c.RAM[0x300] = 0xFF
	c.I = 0x300

	fb := &vm.fb
	fb.DrawSprite(c, 63, 0, 1)

	assert.True(t, fb.Pixel(63, 0))
	for x := 0; x < 7; x++ {
		assert.True(t, fb.Pixel(x, 0), "column %d should have wrapped around", x)
	}
}

func TestSuperLoresDoublesPixels(t *testing.T) {
	vm := NewSuper(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	c := vm.Core()
	vm.fb.setHires(c, false)
	c.RAM[0x300] = 0x80 // single lit bit, leftmost
	c.I = 0x300

	vf := vm.fb.DrawSprite(c, 0, 0, 1)
	assert.Equal(t, byte(0), vf)
	assert.True(t, vm.fb.Pixel(0, 0))
	assert.True(t, vm.fb.Pixel(1, 0))
	assert.True(t, vm.fb.Pixel(0, 1))
	assert.True(t, vm.fb.Pixel(1, 1))
	assert.False(t, vm.fb.Pixel(2, 0))
}

func TestSuperHires16x16CollisionCountsClippedRows(t *testing.T) {
	vm := NewSuper(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	c := vm.Core()
	vm.fb.setHires(c, true)
	c.I = 0x300
	for i := 0; i < 32; i++ {
		c.RAM[0x300+i] = 0xFF
	}

	// vy=52 leaves 12 on-screen rows (52..63) and clips the remaining 4
	// (64..67) off the bottom without WrapSprite.
	vf := vm.fb.DrawSprite(c, 0, 52, 0)
	assert.Equal(t, byte(4), vf, "4 of 16 rows should clip past y=63")
}

func TestSuperHiresCollisionCountsOverlap(t *testing.T) {
	vm := NewSuper(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	c := vm.Core()
	vm.fb.setHires(c, true)
	c.I = 0x300
	c.RAM[0x300] = 0xFF
	c.RAM[0x301] = 0xFF
	c.RAM[0x302] = 0xFF

	vf1 := vm.fb.DrawSprite(c, 0, 0, 3)
	require.Equal(t, byte(0), vf1)
	vf2 := vm.fb.DrawSprite(c, 0, 0, 3)
	assert.Equal(t, byte(3), vf2, "all three rows collide on the second draw")
}

func TestSuperScrollDownShiftsRowsAndZeroesTop(t *testing.T) {
	vm := NewSuper(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	vm.fb.setHires(vm.Core(), true)
	vm.fb.rows[0] = vm.fb.rows[0].SetBit(127, true)

	vm.fb.scrollDown(4)

	assert.True(t, vm.fb.rows[4].Bit(127))
	assert.True(t, vm.fb.rows[0].IsZero())
}

func TestSuperScrollAmountDoublesInLoresWithoutHalfPixelQuirk(t *testing.T) {
	vm := NewSuper(rand.New(rand.NewSource(1)))
	vm.Reset(nil)
	vm.fb.setHires(vm.Core(), false)
	assert.Equal(t, 8, vm.scrollAmount(4))

	*vm.Quirks() = vm.Core().Quirks | HalfPixelScrollLowRes
	assert.Equal(t, 4, vm.scrollAmount(4))
}
