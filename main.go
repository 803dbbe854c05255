//go:build !chippy_gl

package main

import "github.com/chippyvm/chippy8/cmd"

func main() {
	cmd.Execute()
}
