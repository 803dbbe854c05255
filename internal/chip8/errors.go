package chip8

import "errors"

// Sentinel errors returned by Step. They're compared with errors.Is so a
// host can distinguish a fatal decode failure from a stack fault.
var (
	// ErrUnknownOpcode is returned when the fetched opcode matched
	// nothing in the active variant's extended set nor the common
	// interpreter. PC is rolled back to the offending instruction.
	ErrUnknownOpcode = errors.New("chip8: unknown opcode")

	// ErrStackOverflow is returned by CALL when the stack is already at
	// capacity.
	ErrStackOverflow = errors.New("chip8: stack overflow")

	// ErrStackUnderflow is returned by RET when the stack is empty.
	ErrStackUnderflow = errors.New("chip8: stack underflow")

	// ErrUnsupportedVariant is returned by the XO-CHIP stub on every
	// Step call; XO-CHIP is explicitly out of scope.
	ErrUnsupportedVariant = errors.New("chip8: variant not implemented")
)
