//go:build !chippy_gl

package cmd

import (
	"github.com/chippyvm/chippy8/internal/present"
	"github.com/pkg/errors"
)

func newGLPresenter() (present.Presenter, error) {
	return nil, errors.New("this build was compiled without the chippy_gl tag; rebuild with -tags chippy_gl for --present=gl")
}
