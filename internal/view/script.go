package view

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/example/notch/internal/dispatch"
	"github.com/example/notch/internal/logging"
)

// DefaultNamespace is the global object the web view registers its handlers on.
const DefaultNamespace = "window.__NOTCH__"

// Evaluator runs a script in the view's context. Implementations post the
// script and return without waiting for it to run.
type Evaluator interface {
	Eval(script string) error
}

// EvaluatorFunc adapts a function to Evaluator.
type EvaluatorFunc func(script string) error

func (f EvaluatorFunc) Eval(script string) error {
	return f(script)
}

// Script delivers signals to a web view by evaluating
// "<namespace>.<signal>(<arg>)".
type Script struct {
	name      string
	namespace string
	eval      Evaluator
}

// NewScript binds a view surface. An empty namespace uses DefaultNamespace.
func NewScript(name, namespace string, eval Evaluator) *Script {
	if strings.TrimSpace(namespace) == "" {
		namespace = DefaultNamespace
	}
	return &Script{name: name, namespace: namespace, eval: eval}
}

// Name identifies the surface in logs.
func (s *Script) Name() string {
	return s.name
}

// Expression renders sig as a call on the namespace object.
func (s *Script) Expression(sig dispatch.Signal) string {
	return s.namespace + "." + sig.String()
}

// Deliver implements dispatch.ViewHandle. Evaluation failures belong to the
// view and are only logged.
func (s *Script) Deliver(sig dispatch.Signal) {
	if s.eval == nil {
		return
	}
	script := s.Expression(sig)
	if err := s.eval.Eval(script); err != nil {
		logging.Debugf("view %s failed to evaluate %s: %v", s.name, script, err)
	}
}

// Writer is an Evaluator that prints each script on its own line; used by
// headless hosts and the dispatch CLI.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
}

// NewWriter returns a Writer evaluator.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

func (w *Writer) Eval(script string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := fmt.Fprintln(w.out, script)
	return err
}
