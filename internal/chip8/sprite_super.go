package chip8

import "github.com/chippyvm/chippy8/internal/bits"

// superDisplay is the SUPER-CHIP 128x64 framebuffer. Lores (64x32
// logical) mode still draws onto this physical 128x64 buffer, doubling
// every sprite pixel into a 2x2 block.
type superDisplay struct {
	rows  [64]bits.Row
	hires bool
}

func (d *superDisplay) Width() int  { return 128 }
func (d *superDisplay) Height() int { return 64 }

func (d *superDisplay) Clear() {
	d.rows = [64]bits.Row{}
}

func (d *superDisplay) Pixel(x, y int) bool {
	if x < 0 || x >= 128 || y < 0 || y >= 64 {
		return false
	}
	return d.rows[y].Bit(uint(127 - x))
}

// setHires switches the rendering resolution. Entering lores clears the
// framebuffer when the ClearScreenOnLores quirk is set.
func (d *superDisplay) setHires(c *Core, hires bool) {
	if !hires && c.Quirks.Has(ClearScreenOnLores) {
		d.Clear()
	}
	d.hires = hires
}

func (d *superDisplay) scrollDown(n int) {
	if n <= 0 {
		return
	}
	var next [64]bits.Row
	for y := 63; y >= 0; y-- {
		if y-n >= 0 {
			next[y] = d.rows[y-n]
		}
	}
	d.rows = next
}

// scrollUp is the XO-CHIP 00DN stub; SUPER recognizes but does not
// implement vertical scroll-up.
func (d *superDisplay) scrollUp(int) {}

func (d *superDisplay) scrollRight(px int) {
	for y := range d.rows {
		d.rows[y] = d.rows[y].ShrLogical(uint(px))
	}
}

func (d *superDisplay) scrollLeft(px int) {
	for y := range d.rows {
		d.rows[y] = d.rows[y].Shl(uint(px))
	}
}

// placeRow128 positions a bitsWidth-bit sprite chunk (MSB = leftmost
// pixel, bitsWidth <= 64) so its first pixel lands at column col of a
// 128-wide row, clipping at the right edge unless wrap is set.
func placeRow128(value uint64, bitsWidth uint, col int, wrap bool) bits.Row {
	top := bits.Row{Hi: value << (64 - bitsWidth)}
	col &= 127
	if col == 0 {
		return top
	}
	if wrap {
		return top.ShrLogical(uint(col)).Or(top.Shl(uint(128 - col)))
	}
	return top.ShrLogical(uint(col))
}

// doubleBits expands every bit of b into an adjacent pair, preserving
// left-to-right order, for SUPER's lores pixel-doubling.
func doubleBits(b byte) uint16 {
	var out uint16
	for i := uint(0); i < 8; i++ {
		if b&(1<<i) != 0 {
			out |= 3 << (i * 2)
		}
	}
	return out
}

// DrawSprite handles SUPER-CHIP's three drawing modes: lores
// pixel-doubled drawing, hires 8-wide drawing, and the hires 16x16
// extended sprite (n == 0) with per-row collision/clip counting.
func (d *superDisplay) DrawSprite(c *Core, vx, vy uint8, n uint8) byte {
	if !d.hires {
		return d.drawLores(c, vx, vy, n)
	}
	if n == 0 {
		return d.drawHires(c, vx, vy, 16, 16)
	}
	return d.drawHires(c, vx, vy, int(n), 8)
}

func (d *superDisplay) drawLores(c *Core, vx, vy uint8, n uint8) byte {
	wrap := c.Quirks.Has(WrapSprite)
	fbx := (int(vx) % 64) * 2
	fby := (int(vy) % 32) * 2

	collided := false
	for i := 0; i < int(n); i++ {
		s := c.RAM[c.addr(c.I+uint16(i))]
		row := placeRow128(uint64(doubleBits(s)), 16, fbx, wrap)

		for _, ry := range [2]int{fby, fby + 1} {
			y := ry
			if y >= 64 {
				if !wrap {
					continue
				}
				y %= 64
			}
			existing := d.rows[y]
			if !existing.And(row).IsZero() {
				collided = true
			}
			d.rows[y] = existing.Xor(row)
		}

		fby += 2
		if fby >= 64 {
			if !wrap {
				break
			}
			fby %= 64
		}
	}

	if collided {
		return 1
	}
	return 0
}

func (d *superDisplay) drawHires(c *Core, vx, vy uint8, height, width int) byte {
	wrap := c.Quirks.Has(WrapSprite)
	fbx := int(vx) % 128
	fby := int(vy) % 64
	bytesPerRow := width / 8

	count := 0
	for row := 0; row < height; row++ {
		y := fby + row
		if y >= 64 {
			if !wrap {
				count++
				continue
			}
			y %= 64
		}

		var value uint64
		for b := 0; b < bytesPerRow; b++ {
			idx := c.I + uint16(row*bytesPerRow+b)
			value = value<<8 | uint64(c.RAM[c.addr(idx)])
		}

		sprow := placeRow128(value, uint(width), fbx, wrap)
		existing := d.rows[y]
		if !existing.And(sprow).IsZero() {
			count++
		}
		d.rows[y] = existing.Xor(sprow)
	}

	return byte(count)
}
