package cmd

import (
	"strings"

	"github.com/chippyvm/chippy8/internal/chip8"
	"github.com/pkg/errors"
)

var quirkNames = map[string]chip8.Quirks{
	"shiftvy":            chip8.ShiftVY,
	"incrementi":         chip8.IncrementI,
	"resetvf":            chip8.ResetVF,
	"clearscreenonlores": chip8.ClearScreenOnLores,
	"wrapsprite":         chip8.WrapSprite,
	"bxnn":               chip8.BXNN,
	"halfpixelscroll":    chip8.HalfPixelScrollLowRes,
}

// parseQuirkFlags parses repeated --quirk flags of the form
// "+name" (force on) or "-name" (force off) into the set/clear masks
// chip8.Config applies on top of a variant's defaults.
func parseQuirkFlags(flags []string) (set, clear chip8.Quirks, err error) {
	for _, f := range flags {
		if len(f) < 2 {
			return 0, 0, errors.Errorf("invalid --quirk value %q: want +name or -name", f)
		}
		sign, name := f[0], strings.ToLower(f[1:])
		q, ok := quirkNames[name]
		if !ok {
			return 0, 0, errors.Errorf("unknown quirk %q", name)
		}
		switch sign {
		case '+':
			set |= q
		case '-':
			clear |= q
		default:
			return 0, 0, errors.Errorf("invalid --quirk value %q: want +name or -name", f)
		}
	}
	return set, clear, nil
}

// parseVariant maps a CLI --variant value onto a chip8.Variant.
func parseVariant(s string) (chip8.Variant, error) {
	switch strings.ToLower(s) {
	case "vip", "":
		return chip8.VariantVIP, nil
	case "super", "schip":
		return chip8.VariantSUPER, nil
	case "xo", "xochip":
		return chip8.VariantXO, nil
	default:
		return 0, errors.Errorf("unknown variant %q: want vip, super, or xo", s)
	}
}
