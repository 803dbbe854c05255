// Package chip8 is a CHIP-8 virtual machine core. It implements the
// instruction-decoding/execution engine, the shared register, memory and
// framebuffer state model, the 60Hz timer subsystem, the key-interrupt
// protocol, and the VIP/SUPER variant dispatch. It performs no I/O: a
// host drives it through the Machine interface and reads back the
// framebuffer and sound timer for presentation.
package chip8

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// New constructs a Machine for the requested variant. rng seeds CXKK's
// random byte source; pass nil to seed from wall-clock time. The
// source's global RNG seeding becomes a per-Machine concern here so
// tests can inject a deterministic generator instead (design note: the
// process-wide side effect of a global RNG is not reproducible).
func New(v Variant, rng *rand.Rand) (Machine, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	switch v {
	case VariantVIP:
		return NewVIP(rng), nil
	case VariantSUPER:
		return NewSuper(rng), nil
	case VariantXO:
		return NewXO(rng), nil
	default:
		return nil, errors.Errorf("chip8: unknown variant %d", v)
	}
}
