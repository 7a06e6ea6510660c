package events

import "github.com/example/notch/internal/logging"

type ShellTracer struct{}

var Shell = ShellTracer{}

func (ShellTracer) Start(kind, digest string) {
	logging.Trace("shell.start", map[string]interface{}{"shell": kind, "digest": digest})
}

func (ShellTracer) Stop(reason string) {
	logging.Trace("shell.stop", map[string]interface{}{"reason": reason})
}

func (ShellTracer) Focus(view string) {
	logging.Trace("shell.focus", map[string]interface{}{"view": view})
}

func (ShellTracer) Blur() {
	logging.Trace("shell.blur", nil)
}

func (ShellTracer) Rebuild(digest string, commands int) {
	logging.Trace("shell.rebuild", map[string]interface{}{"digest": digest, "commands": commands})
}

func (ShellTracer) Overflow(id string) {
	logging.Trace("shell.overflow", map[string]interface{}{"id": id})
}
