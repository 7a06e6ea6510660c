//go:build !cgo && !windows
// +build !cgo,!windows

package shell

import (
	"context"
	"errors"

	"github.com/example/notch/internal/menu"
)

type trayController struct{}

func newTrayController(string, string) controller {
	return trayController{}
}

// Run returns an error indicating tray functionality is unavailable without cgo.
func (trayController) Run(context.Context, <-chan *menu.Tree, Events) error {
	return errors.New("system tray is unavailable without cgo support")
}
