package dock

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// HitShape is used for custom hit testing regions in local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// PointerContext carries pointer event data.
type PointerContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// ClickContext carries click event data.
type ClickContext struct {
	Node     *Node
	EntityID uint32
	UserData any
	GlobalX  float64
	GlobalY  float64
	LocalX   float64
	LocalY   float64
	Button   MouseButton
}

// ResizeContext carries the new viewport size in screen pixels.
type ResizeContext struct {
	Width, Height int
}

// nodeIDCounter is a plain counter. Scenes are single-threaded.
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element. Containers group children; sprites draw
// an image (or a solid color quad when no image is set).
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). OffsetX/OffsetY displace the node after scaling
	// without moving its layout position; tweens animate them for lifts.
	X, Y             float64
	ScaleX, ScaleY   float64
	PivotX, PivotY   float64
	OffsetX, OffsetY float64

	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha        float64
	Visible      bool
	Renderable   bool
	Interactable bool

	// Metadata
	UserData any
	EntityID uint32

	// Sprite fields (NodeTypeSprite)
	Color       Color
	customImage *ebiten.Image

	// Hit testing
	HitShape HitShape

	// Per-node callbacks (nil by default)
	OnPointerDown  func(PointerContext)
	OnPointerUp    func(PointerContext)
	OnPointerMove  func(PointerContext)
	OnPointerEnter func(PointerContext)
	OnPointerLeave func(PointerContext)
	OnClick        func(ClickContext)

	// OnUpdate runs once per Scene.Update with the tick duration in seconds.
	OnUpdate func(dt float64)

	disposed bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.Renderable = true
	n.transformDirty = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node drawing img. A nil img draws a 1x1 solid
// quad tinted by Color; scale it to the desired size.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, customImage: img}
	nodeDefaults(n)
	return n
}

// SetImage replaces the image drawn by a sprite.
func (n *Node) SetImage(img *ebiten.Image) {
	n.customImage = img
}

// Image returns the sprite's image, or nil for solid color sprites.
func (n *Node) Image() *ebiten.Image {
	return n.customImage
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("dock: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("dock: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("dock: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	n.children = n.children[:0]
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// IsDescendantOf reports whether n is ancestor itself or lies anywhere below it.
func (n *Node) IsDescendantOf(ancestor *Node) bool {
	return ancestor != nil && isAncestor(ancestor, n)
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants. Tweens targeting a disposed
// node stop on their next update.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.customImage = nil
	n.UserData = nil
	n.OnPointerDown = nil
	n.OnPointerUp = nil
	n.OnPointerMove = nil
	n.OnPointerEnter = nil
	n.OnPointerLeave = nil
	n.OnClick = nil
	n.OnUpdate = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}

// topmost returns the root of the tree n belongs to.
func topmost(n *Node) *Node {
	for n.Parent != nil {
		n = n.Parent
	}
	return n
}
