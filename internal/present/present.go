package present

import "github.com/chippyvm/chippy8/internal/chip8"

// Presenter is the host-facing side of the emulator loop: render the
// current frame, poll for key events, and report whether the user
// asked to quit. Termbox and the chippy_gl-gated GLWindow both
// implement it; tests can stub it out entirely.
type Presenter interface {
	Render(fb chip8.Surface) error
	PollInput(vm chip8.Machine) (quit bool)
	Close() error
}
