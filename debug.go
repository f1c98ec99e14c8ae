package dock

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame draw metrics.
// Only populated when Scene.debug is true.
type debugStats struct {
	drawTime    time.Duration
	spriteCount int
}

// debugLog prints frame stats to stderr.
func (s *Scene) debugLog(stats debugStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dock] draw: %v | sprites: %d | tweens: %d\n",
		stats.drawTime, stats.spriteCount, s.animator.Len())
}

// debugf prints a diagnostic line to stderr when debug mode is on.
func debugf(format string, args ...any) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[dock] "+format+"\n", args...)
}

// warnf prints a warning line to stderr regardless of debug mode.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[dock] warning: "+format+"\n", args...)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Callers only invoke it in debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("dock debug: %s on disposed node %q", op, n.Name))
	}
}
