package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/chippyvm/chippy8/internal/chip8"
	"github.com/chippyvm/chippy8/internal/present"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	inspectVariant    string
	inspectRender     bool
	inspectRenderOut  string
	inspectRenderStep int
)

// inspectCmd disassembles and validates a ROM without running it as a
// live machine: it reports size/truncation and a best-effort mnemonic
// listing from the same decode table Step uses, grounded on massung's
// disasm.go but reimplemented against this repo's Instruction type.
var inspectCmd = &cobra.Command{
	Use:   "inspect path/to/rom",
	Short: "disassemble and validate a ROM",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().StringVar(&inspectVariant, "variant", "vip", "CHIP-8 dialect: vip, super, or xo (affects the extended opcode table)")
	inspectCmd.Flags().BoolVar(&inspectRender, "render", false, "run the ROM headlessly and dump an annotated PNG of the resulting frame")
	inspectCmd.Flags().StringVar(&inspectRenderOut, "out", "", "PNG path for --render (default: <rom>.png)")
	inspectCmd.Flags().IntVar(&inspectRenderStep, "render-steps", 500, "instructions to execute before capturing the --render frame")
}

func runInspect(cmd *cobra.Command, args []string) error {
	path := args[0]
	rom, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading ROM %s", path)
	}

	variant, err := parseVariant(inspectVariant)
	if err != nil {
		return err
	}

	base := 0x200
	ramSize := 4096
	fmt.Printf("%s: %d bytes, variant=%s\n", path, len(rom), variant)
	if len(rom) > ramSize-base {
		fmt.Printf("warning: ROM exceeds %d usable bytes and will be truncated at load\n", ramSize-base)
	}

	disassemble(rom, base, variant)

	if inspectRender {
		return renderFrame(rom, variant, path)
	}
	return nil
}

func disassemble(rom []byte, base int, variant chip8.Variant) {
	for i := 0; i+1 < len(rom); i += 2 {
		opcode := uint16(rom[i])<<8 | uint16(rom[i+1])
		addr := base + i

		var (
			inst chip8.Instruction
			ok   bool
		)
		if variant == chip8.VariantSUPER {
			inst, ok = chip8.DecodeSuperExtended(opcode)
		}
		if !ok {
			inst, ok = chip8.Decode(opcode)
		}
		if !ok {
			fmt.Printf("0x%03X: DW 0x%04X  ; unrecognized opcode\n", addr, opcode)
			continue
		}
		fmt.Printf("0x%03X: %s\n", addr, inst)
	}
}

func renderFrame(rom []byte, variant chip8.Variant, romPath string) error {
	cfg := chip8.Config{Variant: variant, InstructionsPerFrame: inspectRenderStep}
	vm, err := cfg.New(rom)
	if err != nil {
		return errors.Wrap(err, "constructing machine for --render")
	}
	for i := 0; i < inspectRenderStep; i++ {
		if err := vm.Step(); err != nil {
			break // a ROM that halts or waits on input mid-preview still has a frame worth capturing
		}
		if vm.Exited() {
			break
		}
	}

	out := inspectRenderOut
	if out == "" {
		out = romPath + ".png"
	}
	f, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(err, "creating %s", out)
	}
	defer f.Close()

	caption := fmt.Sprintf("%s (%s)", filepath.Base(romPath), variant)
	if err := present.EncodeAnnotatedPNG(f, vm.Display(), 8, caption); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", out)
	return nil
}
