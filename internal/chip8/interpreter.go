package chip8

// Execute runs the semantics of a single decoded instruction against c
// and fb. It never fetches or advances PC itself beyond what an
// individual opcode defines (e.g. JP sets PC directly, CALL pushes and
// jumps); the caller (Step) is responsible for the fetch/advance/rollback
// protocol around it.
func Execute(c *Core, fb Surface, inst Instruction) error {
	switch inst.Op {
	case OpCLS:
		fb.Clear()

	case OpRET:
		ret, err := c.pop()
		if err != nil {
			return err
		}
		c.PC = ret

	case OpJP:
		c.PC = inst.NNN

	case OpCALL:
		if err := c.push(c.PC); err != nil {
			return err
		}
		c.PC = inst.NNN

	case OpSEVxByte:
		if c.V[inst.X] == inst.NN {
			c.PC += 2
		}

	case OpSNEVxByte:
		if c.V[inst.X] != inst.NN {
			c.PC += 2
		}

	case OpSEVxVy:
		if c.V[inst.X] == c.V[inst.Y] {
			c.PC += 2
		}

	case OpSNEVxVy:
		if c.V[inst.X] != c.V[inst.Y] {
			c.PC += 2
		}

	case OpLDVxByte:
		c.V[inst.X] = inst.NN

	case OpADDVxByte:
		c.V[inst.X] += inst.NN

	case OpLDVxVy:
		c.V[inst.X] = c.V[inst.Y]

	case OpORVxVy:
		c.V[inst.X] |= c.V[inst.Y]
		if c.Quirks.Has(ResetVF) {
			c.V[0xF] = 0
		}

	case OpANDVxVy:
		c.V[inst.X] &= c.V[inst.Y]
		if c.Quirks.Has(ResetVF) {
			c.V[0xF] = 0
		}

	case OpXORVxVy:
		c.V[inst.X] ^= c.V[inst.Y]
		if c.Quirks.Has(ResetVF) {
			c.V[0xF] = 0
		}

	case OpADDVxVy:
		sum := uint16(c.V[inst.X]) + uint16(c.V[inst.Y])
		c.V[inst.X] = byte(sum)
		if sum > 0xFF {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}

	case OpSUBVxVy:
		vx, vy := c.V[inst.X], c.V[inst.Y]
		c.V[inst.X] = vx - vy
		if vx >= vy {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}

	case OpSUBNVxVy:
		vx, vy := c.V[inst.X], c.V[inst.Y]
		c.V[inst.X] = vy - vx
		if vy >= vx {
			c.V[0xF] = 1
		} else {
			c.V[0xF] = 0
		}

	case OpSHRVxVy:
		var src byte
		if c.Quirks.Has(ShiftVY) {
			src = c.V[inst.Y]
		} else {
			src = c.V[inst.X]
		}
		lsb := src & 0x01
		c.V[inst.X] = src >> 1
		c.V[0xF] = lsb

	case OpSHLVxVy:
		var src byte
		if c.Quirks.Has(ShiftVY) {
			src = c.V[inst.Y]
		} else {
			src = c.V[inst.X]
		}
		msb := (src & 0x80) >> 7
		c.V[inst.X] = src << 1
		c.V[0xF] = msb

	case OpLDI:
		c.I = inst.NNN

	case OpJPOffset:
		if c.Quirks.Has(BXNN) {
			x := inst.NNN >> 8
			c.PC = (inst.NNN & 0xFFF) + uint16(c.V[x])
		} else {
			c.PC = inst.NNN + uint16(c.V[0])
		}

	case OpRND:
		c.V[inst.X] = byte(c.RNG.Intn(256)) & inst.NN

	case OpDRW:
		c.V[0xF] = fb.DrawSprite(c, c.V[inst.X], c.V[inst.Y], inst.N)

	case OpSKP:
		if c.KeyDown(c.V[inst.X]) {
			c.PC += 2
		}

	case OpSKNP:
		if !c.KeyDown(c.V[inst.X]) {
			c.PC += 2
		}

	case OpLDVxDT:
		c.V[inst.X] = c.DelayTimer

	case OpLDVxK:
		c.Waiting = true
		c.Released = false
		c.WaitRegister = inst.X

	case OpLDDTVx:
		c.DelayTimer = c.V[inst.X]

	case OpLDSTVx:
		c.SoundTimer = c.V[inst.X]

	case OpADDIVx:
		c.I += uint16(c.V[inst.X])

	case OpLDFVx:
		c.I = FontStart + SmallFontGlyphSize*uint16(c.V[inst.X])

	case OpLDBVx:
		v := c.V[inst.X]
		c.RAM[c.addr(c.I)] = v / 100
		c.RAM[c.addr(c.I+1)] = (v / 10) % 10
		c.RAM[c.addr(c.I+2)] = v % 10

	case OpLDIVx:
		for i := uint16(0); i <= uint16(inst.X); i++ {
			c.RAM[c.addr(c.I+i)] = c.V[i]
		}
		if c.Quirks.Has(IncrementI) {
			c.I += uint16(inst.X) + 1
		}

	case OpLDVxI:
		for i := uint16(0); i <= uint16(inst.X); i++ {
			c.V[i] = c.RAM[c.addr(c.I+i)]
		}
		if c.Quirks.Has(IncrementI) {
			c.I += uint16(inst.X) + 1
		}

	default:
		return ErrUnknownOpcode
	}
	return nil
}
