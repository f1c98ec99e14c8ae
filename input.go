package dock

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Built-in HitShape types ---

// HitRect is an axis-aligned rectangular hit area in local coordinates.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer state ---

type pointerState struct {
	down      bool
	lastX     float64
	lastY     float64
	hitNode   *Node
	hoverNode *Node       // last node the pointer was hovering over (for enter/leave)
	button    MouseButton // button captured at press time
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type clickHandler struct {
	id uint32
	fn func(ClickContext)
}

type resizeHandler struct {
	id uint32
	fn func(ResizeContext)
}

type handlerRegistry struct {
	pointerDown  []pointerHandler
	pointerUp    []pointerHandler
	pointerMove  []pointerHandler
	pointerEnter []pointerHandler
	pointerLeave []pointerHandler
	click        []clickHandler
	resize       []resizeHandler
	nextID       uint32
}

// count returns the total number of registered handlers.
func (r *handlerRegistry) count() int {
	return len(r.pointerDown) + len(r.pointerUp) + len(r.pointerMove) +
		len(r.pointerEnter) + len(r.pointerLeave) + len(r.click) + len(r.resize)
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
// Removing twice, or removing a zero handle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removeHandler(h.reg.pointerDown, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerUp:
		h.reg.pointerUp = removeHandler(h.reg.pointerUp, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerMove:
		h.reg.pointerMove = removeHandler(h.reg.pointerMove, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerEnter:
		h.reg.pointerEnter = removeHandler(h.reg.pointerEnter, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventPointerLeave:
		h.reg.pointerLeave = removeHandler(h.reg.pointerLeave, h.id, func(p pointerHandler) uint32 { return p.id })
	case EventClick:
		h.reg.click = removeHandler(h.reg.click, h.id, func(c clickHandler) uint32 { return c.id })
	case EventResize:
		h.reg.resize = removeHandler(h.reg.resize, h.id, func(r resizeHandler) uint32 { return r.id })
	}
}

// removeHandler deletes the entry with the given id, zeroing the vacated
// tail slot so the backing array does not retain the closure.
func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// --- Scene-level event registration ---

func (s *Scene) nextHandlerID() uint32 {
	s.handlers.nextID++
	return s.handlers.nextID
}

// OnPointerDown registers a scene-level callback for pointer down events.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerDown = append(s.handlers.pointerDown, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerDown}
}

// OnPointerUp registers a scene-level callback for pointer up events.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerUp = append(s.handlers.pointerUp, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerUp}
}

// OnPointerMove registers a scene-level callback for hover move events.
// The context's Node is the topmost interactable node under the pointer, or
// nil over empty space.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerMove = append(s.handlers.pointerMove, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerMove}
}

// OnPointerEnter registers a scene-level callback for pointer enter events.
// Fired when the pointer moves over a new node (or from nil to a node).
func (s *Scene) OnPointerEnter(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerEnter = append(s.handlers.pointerEnter, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerEnter}
}

// OnPointerLeave registers a scene-level callback for pointer leave events.
// Fired when the pointer leaves a node (moves to a different node or to empty space).
func (s *Scene) OnPointerLeave(fn func(PointerContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.pointerLeave = append(s.handlers.pointerLeave, pointerHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventPointerLeave}
}

// OnClick registers a scene-level callback for click events.
func (s *Scene) OnClick(fn func(ClickContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.click = append(s.handlers.click, clickHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventClick}
}

// OnResize registers a scene-level callback fired when the viewport size
// changes.
func (s *Scene) OnResize(fn func(ResizeContext)) CallbackHandle {
	id := s.nextHandlerID()
	s.handlers.resize = append(s.handlers.resize, resizeHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, event: EventResize}
}

// HandlerCount returns the number of scene-level callbacks currently registered.
func (s *Scene) HandlerCount() int {
	return s.handlers.count()
}

// --- Hit testing ---

// nodeDimensions returns the unscaled local size of a sprite: its image
// bounds, or 1x1 for a solid color quad. Containers have no size.
func nodeDimensions(n *Node) (w, h float64) {
	if n.Type != NodeTypeSprite {
		return 0, 0
	}
	if n.customImage == nil {
		return 1, 1
	}
	b := n.customImage.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Uses HitShape if set; otherwise derives the area from node dimensions.
// Containers with no HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape != nil {
		return n.HitShape.Contains(lx, ly)
	}
	w, h := nodeDimensions(n)
	if w == 0 && h == 0 {
		return false
	}
	return lx >= 0 && lx <= w && ly >= 0 && ly <= h
}

// collectInteractable walks the tree in painter order, appending
// hit-testable nodes to buf. Skips Visible=false or Interactable=false subtrees.
func collectInteractable(n *Node, buf []*Node) []*Node {
	if !n.Visible || !n.Interactable {
		return buf
	}
	if n.HitShape != nil || n.Type != NodeTypeContainer {
		buf = append(buf, n)
	}
	for _, child := range n.children {
		buf = collectInteractable(child, buf)
	}
	return buf
}

// hitTest finds the topmost interactable node at (worldX, worldY).
// Returns nil if nothing is hit.
func (s *Scene) hitTest(worldX, worldY float64) *Node {
	s.hitBuf = collectInteractable(s.root, s.hitBuf[:0])

	// Iterate backward (reverse painter order): topmost visual node first.
	for i := len(s.hitBuf) - 1; i >= 0; i-- {
		n := s.hitBuf[i]
		lx, ly := n.WorldToLocal(worldX, worldY)
		if nodeContainsLocal(n, lx, ly) {
			return n
		}
	}
	return nil
}

// --- Input processing ---

// processMousePointer feeds the real mouse through the pointer state
// machine. Injected events take precedence for the frame they are consumed.
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		pressed, button = true, MouseButtonLeft
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		pressed, button = true, MouseButtonRight
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle):
		pressed, button = true, MouseButtonMiddle
	}

	s.processPointer(float64(mx), float64(my), pressed, button)
}

// processPointer runs the pointer state machine.
func (s *Scene) processPointer(wx, wy float64, pressed bool, button MouseButton) {
	ps := &s.pointer
	target := s.hitTest(wx, wy)

	// Fire hover enter/leave when the hovered node changes.
	if target != ps.hoverNode {
		if ps.hoverNode != nil {
			s.firePointer(EventPointerLeave, ps.hoverNode, wx, wy, button)
		}
		if target != nil {
			s.firePointer(EventPointerEnter, target, wx, wy, button)
		}
		ps.hoverNode = target
	}

	// Moves fire in every button state, before any down or up of the frame.
	if wx != ps.lastX || wy != ps.lastY {
		moveButton := button
		if ps.down {
			moveButton = ps.button
		}
		s.firePointer(EventPointerMove, target, wx, wy, moveButton)
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.hitNode = target
		s.firePointer(EventPointerDown, target, wx, wy, button)
	case !pressed && ps.down:
		if ps.hitNode != nil && ps.hitNode == target {
			s.fireClick(target, wx, wy, ps.button)
		}
		s.firePointer(EventPointerUp, target, wx, wy, ps.button)
		ps.down = false
		ps.hitNode = nil
	}
	ps.lastX = wx
	ps.lastY = wy
}

// --- Event dispatch ---

func (s *Scene) pointerContext(node *Node, wx, wy float64, button MouseButton) PointerContext {
	ctx := PointerContext{GlobalX: wx, GlobalY: wy, Button: button}
	if node != nil {
		ctx.Node = node
		ctx.LocalX, ctx.LocalY = node.WorldToLocal(wx, wy)
		ctx.EntityID = node.EntityID
		ctx.UserData = node.UserData
	}
	return ctx
}

// firePointer dispatches a pointer event: scene-level handlers first, then
// the node's own callback, then the ECS bridge.
func (s *Scene) firePointer(event EventType, node *Node, wx, wy float64, button MouseButton) {
	ctx := s.pointerContext(node, wx, wy, button)

	var handlers []pointerHandler
	var own func(PointerContext)
	switch event {
	case EventPointerDown:
		handlers = s.handlers.pointerDown
		if node != nil {
			own = node.OnPointerDown
		}
	case EventPointerUp:
		handlers = s.handlers.pointerUp
		if node != nil {
			own = node.OnPointerUp
		}
	case EventPointerMove:
		handlers = s.handlers.pointerMove
		if node != nil {
			own = node.OnPointerMove
		}
	case EventPointerEnter:
		handlers = s.handlers.pointerEnter
		if node != nil {
			own = node.OnPointerEnter
		}
	case EventPointerLeave:
		handlers = s.handlers.pointerLeave
		if node != nil {
			own = node.OnPointerLeave
		}
	}

	for _, h := range handlers {
		h.fn(ctx)
	}
	if own != nil {
		own(ctx)
	}
	s.emitInteractionEvent(event, ctx.Node, ctx.EntityID, wx, wy, ctx.LocalX, ctx.LocalY, button)
}

func (s *Scene) fireClick(node *Node, wx, wy float64, button MouseButton) {
	p := s.pointerContext(node, wx, wy, button)
	ctx := ClickContext(p)
	for _, h := range s.handlers.click {
		h.fn(ctx)
	}
	if node != nil && node.OnClick != nil {
		node.OnClick(ctx)
	}
	s.emitInteractionEvent(EventClick, node, p.EntityID, wx, wy, p.LocalX, p.LocalY, button)
}

func (s *Scene) fireResize(w, h int) {
	ctx := ResizeContext{Width: w, Height: h}
	for _, hd := range s.handlers.resize {
		hd.fn(ctx)
	}
}

// --- ECS bridge ---

func (s *Scene) emitInteractionEvent(eventType EventType, node *Node, entityID uint32,
	wx, wy, lx, ly float64, button MouseButton) {
	if s.store == nil || node == nil || entityID == 0 {
		return
	}
	s.store.EmitEvent(InteractionEvent{
		Type:     eventType,
		EntityID: entityID,
		GlobalX:  wx,
		GlobalY:  wy,
		LocalX:   lx,
		LocalY:   ly,
		Button:   button,
	})
}
