package present

import (
	"time"

	"github.com/chippyvm/chippy8/internal/chip8"
	"github.com/nsf/termbox-go"
	"github.com/pkg/errors"
)

// keyHoldDuration is how long a key stays "down" after termbox reports a
// press. Terminals don't deliver key-release events, so a key is held
// for this long and then auto-released by a per-key timer.
const keyHoldDuration = 150 * time.Millisecond

// Termbox is a Presenter that renders a chip8.Surface to the controlling
// terminal using half-block characters (two framebuffer rows per cell)
// and reads keyboard input through termbox's event loop.
type Termbox struct {
	events    chan termbox.Event
	done      chan struct{}
	keyTimers [16]*time.Timer
}

// NewTermbox initializes termbox and starts the background event pump.
func NewTermbox() (*Termbox, error) {
	if err := termbox.Init(); err != nil {
		return nil, errors.Wrap(err, "present: initializing termbox")
	}
	termbox.SetInputMode(termbox.InputEsc)
	termbox.SetOutputMode(termbox.OutputNormal)

	t := &Termbox{
		events: make(chan termbox.Event, 16),
		done:   make(chan struct{}),
	}
	go t.pump()
	return t, nil
}

func (t *Termbox) pump() {
	for {
		ev := termbox.PollEvent()
		select {
		case t.events <- ev:
		case <-t.done:
			return
		}
		if ev.Type == termbox.EventInterrupt {
			return
		}
	}
}

// Render draws fb to the terminal. Two framebuffer rows share one
// terminal cell via the upper-half-block glyph, roughly correcting for
// a terminal cell being about twice as tall as it is wide.
func (t *Termbox) Render(fb chip8.Surface) error {
	if err := termbox.Clear(termbox.ColorDefault, termbox.ColorDefault); err != nil {
		return errors.Wrap(err, "present: clearing terminal")
	}

	w, h := fb.Width(), fb.Height()
	for y := 0; y < h; y += 2 {
		for x := 0; x < w; x++ {
			top := fb.Pixel(x, y)
			bottom := y+1 < h && fb.Pixel(x, y+1)
			if !top && !bottom {
				continue
			}

			fg, bg := termbox.ColorDefault, termbox.ColorDefault
			switch {
			case top && bottom:
				fg = termbox.ColorWhite
				bg = termbox.ColorWhite
			case top:
				fg = termbox.ColorWhite
			case bottom:
				bg = termbox.ColorWhite
			}
			termbox.SetCell(x, y/2, '▀', fg, bg)
		}
	}

	return termbox.Flush()
}

// PollInput drains any pending termbox events, forwarding key presses to
// vm and arming an auto-release timer for each. It reports whether the
// user asked to quit (Esc or Ctrl-C).
func (t *Termbox) PollInput(vm chip8.Machine) (quit bool) {
	for {
		select {
		case ev := <-t.events:
			if ev.Type != termbox.EventKey {
				continue
			}
			if ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC {
				return true
			}
			hex, ok := KeyMap[ev.Ch]
			if !ok {
				continue
			}
			t.press(vm, hex)
		default:
			return false
		}
	}
}

func (t *Termbox) press(vm chip8.Machine, hex uint8) {
	vm.SetKey(hex)
	if timer := t.keyTimers[hex]; timer != nil {
		timer.Stop()
	}
	t.keyTimers[hex] = time.AfterFunc(keyHoldDuration, func() {
		vm.ClearKey(hex)
	})
}

// Close tears down termbox and stops the event pump.
func (t *Termbox) Close() error {
	close(t.done)
	termbox.Interrupt()
	for _, timer := range t.keyTimers {
		if timer != nil {
			timer.Stop()
		}
	}
	termbox.Close()
	return nil
}
