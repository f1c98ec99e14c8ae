package dock

import (
	"fmt"
	"io"
	"os"
)

// AppActivation is passed to an ActivationHook when a dock icon is clicked.
type AppActivation struct {
	ID      string
	CanOpen bool
}

// ActivationHook receives activations of enabled dock icons.
type ActivationHook interface {
	Activate(AppActivation)
}

// HookFunc adapts a plain function to ActivationHook.
type HookFunc func(AppActivation)

// Activate calls f(a).
func (f HookFunc) Activate(a AppActivation) { f(a) }

// LogHook is the default hook: it prints the activation and does nothing
// else. W defaults to stderr.
type LogHook struct {
	W io.Writer
}

// Activate writes "[dock] open app: <id>".
func (h LogHook) Activate(a AppActivation) {
	w := h.W
	if w == nil {
		w = os.Stderr
	}
	_, _ = fmt.Fprintf(w, "[dock] open app: %s\n", a.ID)
}
