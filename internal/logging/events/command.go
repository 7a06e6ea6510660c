package events

import "github.com/example/notch/internal/logging"

type CommandTracer struct{}

var Command = CommandTracer{}

func (CommandTracer) Activate(invocation, id string) {
	logging.Trace("command.activate", map[string]interface{}{"invocation": invocation, "id": id})
}

func (CommandTracer) Deliver(invocation, id, signal string) {
	logging.Trace("command.deliver", map[string]interface{}{"invocation": invocation, "id": id, "signal": signal})
}

func (CommandTracer) Drop(invocation, id string) {
	logging.Trace("command.drop", map[string]interface{}{"invocation": invocation, "id": id})
}

func (CommandTracer) Unmapped(invocation, id string) {
	logging.Trace("command.unmapped", map[string]interface{}{"invocation": invocation, "id": id})
}

func (CommandTracer) Unknown(invocation, id string) {
	logging.Trace("command.unknown", map[string]interface{}{"invocation": invocation, "id": id})
}

func (CommandTracer) Disabled(invocation, id string) {
	logging.Trace("command.disabled", map[string]interface{}{"invocation": invocation, "id": id})
}
