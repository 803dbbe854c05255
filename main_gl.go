//go:build chippy_gl

package main

import (
	"github.com/chippyvm/chippy8/cmd"
	"github.com/faiface/pixel/pixelgl"
)

func main() {
	// pixelgl owns the OS thread it's called from, so the whole CLI tree
	// has to run underneath pixelgl.Run rather than as a normal func main.
	pixelgl.Run(func() { cmd.Execute() })
}
