package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/chippyvm/chippy8/internal/chip8"
	"github.com/chippyvm/chippy8/internal/present"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const hostRefreshHz = 60

var (
	runVariant string
	runQuirks  []string
	runIPF     int
	runAudio   bool
	runPresent string
)

// runCmd runs the chippy emulator and drives it from a terminal Presenter
// until the ROM exits, the window is closed, or the user quits.
var runCmd = &cobra.Command{
	Use:   "run path/to/rom",
	Short: "run a ROM in the chippy emulator",
	Args:  cobra.ExactArgs(1),
	RunE:  runChippy,
}

func init() {
	runCmd.Flags().StringVar(&runVariant, "variant", "vip", "CHIP-8 dialect: vip, super, or xo")
	runCmd.Flags().StringArrayVar(&runQuirks, "quirk", nil, "override a quirk, e.g. +wrapsprite or -bxnn (repeatable)")
	runCmd.Flags().IntVar(&runIPF, "ipf", chip8.DefaultInstructionsPerFrame, "instructions executed per host frame")
	runCmd.Flags().BoolVar(&runAudio, "audio", false, "play a tone while the sound timer is nonzero")
	runCmd.Flags().StringVar(&runPresent, "present", "termbox", "frame presenter: termbox, gl (requires -tags chippy_gl), or none")
}

func runChippy(cmd *cobra.Command, args []string) error {
	rom, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading ROM %s", args[0])
	}

	variant, err := parseVariant(runVariant)
	if err != nil {
		return err
	}
	quirkSet, quirkClear, err := parseQuirkFlags(runQuirks)
	if err != nil {
		return err
	}
	if runIPF <= 0 {
		return errors.Errorf("--ipf must be positive, got %d", runIPF)
	}

	cfg := chip8.Config{
		Variant:              variant,
		QuirkSet:             quirkSet,
		QuirkClear:           quirkClear,
		InstructionsPerFrame: runIPF,
	}
	vm, err := cfg.New(rom)
	if err != nil {
		return errors.Wrap(err, "constructing machine")
	}

	var presenter present.Presenter
	switch runPresent {
	case "termbox":
		presenter, err = present.NewTermbox()
		if err != nil {
			return err
		}
	case "gl":
		presenter, err = newGLPresenter()
		if err != nil {
			return err
		}
	case "none":
		presenter = nil
	default:
		return errors.Errorf("unknown --present value %q: want termbox, gl, or none", runPresent)
	}
	if presenter != nil {
		defer presenter.Close()
	}

	var beeper *present.Beeper
	if runAudio {
		beeper, err = present.NewBeeper()
		if err != nil {
			return err
		}
		defer beeper.Close()
	}

	return runLoop(vm, cfg, presenter, beeper)
}

func runLoop(vm chip8.Machine, cfg chip8.Config, presenter present.Presenter, beeper *present.Beeper) error {
	ticker := time.NewTicker(time.Second / hostRefreshHz)
	defer ticker.Stop()

	last := time.Now()
	for range ticker.C {
		now := time.Now()
		vm.UpdateTimer(uint64(now.Sub(last).Milliseconds()))
		last = now

		for i := 0; i < cfg.InstructionsPerFrame; i++ {
			if err := vm.Step(); err != nil {
				return errors.Wrap(err, "executing ROM")
			}
			if vm.Exited() {
				return nil
			}
		}

		if beeper != nil {
			beeper.SetActive(vm.SoundTimer() > 0)
		}

		if presenter == nil {
			continue
		}
		if err := presenter.Render(vm.Display()); err != nil {
			return err
		}
		if presenter.PollInput(vm) {
			fmt.Println("quit requested, shutting down")
			return nil
		}
	}
	return nil
}
