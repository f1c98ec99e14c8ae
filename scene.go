package dock

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, interaction events on nodes with a non-zero EntityID
// are forwarded to the store.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type     EventType
	EntityID uint32
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// Scene is the top-level object that owns the node tree, input state, the
// animation scheduler, and the viewport size.
type Scene struct {
	root  *Node
	store EntityStore
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	animator Animator

	// Viewport
	viewW, viewH  int
	resizePending bool

	// Input state
	handlers    handlerRegistry
	pointer     pointerState
	hitBuf      []*Node
	injectQueue []syntheticPointerEvent

	testRunner      *TestRunner
	screenshotQueue []string
	updateFunc      func() error

	drawOp ebiten.DrawImageOptions
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	root := NewContainer("root")
	root.Interactable = true
	return &Scene{
		root:          root,
		ScreenshotDir: "screenshots",
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Animator returns the scene's animation scheduler. It is advanced once
// per Scene.Update.
func (s *Scene) Animator() *Animator {
	return &s.animator
}

// SetUpdateFunc registers a function called once per tick by Run after the
// scene has updated. A non-nil error stops the game loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetViewportSize records the screen size in pixels. A change fires the
// OnResize callbacks on the next Update.
func (s *Scene) SetViewportSize(w, h int) {
	if w == s.viewW && h == s.viewH {
		return
	}
	s.viewW, s.viewH = w, h
	s.resizePending = true
}

// ViewportSize returns the last recorded screen size.
func (s *Scene) ViewportSize() (w, h int) {
	return s.viewW, s.viewH
}

// Update runs the test runner, dispatches resize and pointer input,
// advances animations, and calls per-node OnUpdate callbacks.
func (s *Scene) Update() {
	s.tick(1.0/float64(ebiten.TPS()), true)
}

// tick advances the scene by dt seconds. When readMouse is false only
// injected pointer events are processed.
func (s *Scene) tick(dt float64, readMouse bool) {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processResize()

	// Refresh world transforms so hit testing sees this frame's positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)

	if !s.processInjectedInput() && readMouse {
		s.processMousePointer()
	}
	s.animator.Update(float32(dt))
	updateNodes(s.root, dt)
}

func (s *Scene) processResize() {
	if !s.resizePending {
		return
	}
	s.resizePending = false
	debugf("viewport resized to %dx%d", s.viewW, s.viewH)
	s.fireResize(s.viewW, s.viewH)
}

// updateNodes calls OnUpdate depth-first on visible nodes.
func updateNodes(n *Node, dt float64) {
	if !n.Visible {
		return
	}
	if n.OnUpdate != nil {
		n.OnUpdate(dt)
	}
	for _, child := range n.children {
		updateNodes(child, dt)
	}
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics and diagnostics plus per-frame draw stats are printed to
// stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that node
// operations (which lack a Scene pointer) can check it cheaply.
var globalDebug bool
