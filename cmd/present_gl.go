//go:build chippy_gl

package cmd

import "github.com/chippyvm/chippy8/internal/present"

func newGLPresenter() (present.Presenter, error) {
	return present.NewGLWindow()
}
