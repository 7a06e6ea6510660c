//go:build !cgo
// +build !cgo

package shell

import (
	"context"
	"errors"

	"github.com/example/notch/internal/menu"
)

type windowController struct{}

func newWindowController(string, string) controller {
	return windowController{}
}

// Run returns an error indicating the window shell is unavailable without cgo.
func (windowController) Run(context.Context, <-chan *menu.Tree, Events) error {
	return errors.New("native window is unavailable without cgo support")
}
