package dock

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Property names a float field of a Node that the Animator can drive.
type Property uint8

const (
	PropScale   Property = iota // ScaleX and ScaleY together
	PropOffsetX                 // OffsetX
	PropOffsetY                 // OffsetY (vertical lift)
	PropAlpha                   // Alpha
)

// animKey identifies the single live tween allowed per node property.
type animKey struct {
	node *Node
	prop Property
}

type activeTween struct {
	key   animKey
	tween *gween.Tween
}

// Animator schedules tweens on node properties and advances them once per
// tick. At most one tween runs per (node, property): a new request replaces
// the running one and starts from the property's current value, so rapid
// retargeting never queues animations.
//
// A Scene owns one Animator and updates it from Scene.Update; a standalone
// Animator is advanced by calling Update yourself.
type Animator struct {
	tweens []activeTween
	index  map[animKey]int
}

// Animate tweens prop of n from its current value to `to` over duration
// seconds. A non-positive duration sets the value immediately.
func (a *Animator) Animate(n *Node, prop Property, to float64, duration float32, fn ease.TweenFunc) {
	a.AnimateFrom(n, prop, propValue(n, prop), to, duration, fn)
}

// AnimateFrom sets prop of n to `from` and tweens it to `to`.
func (a *Animator) AnimateFrom(n *Node, prop Property, from, to float64, duration float32, fn ease.TweenFunc) {
	if n == nil || n.disposed {
		return
	}
	if duration <= 0 {
		a.Cancel(n, prop)
		setPropValue(n, prop, to)
		return
	}
	if fn == nil {
		fn = ease.Linear
	}
	setPropValue(n, prop, from)
	tw := gween.New(float32(from), float32(to), duration, fn)

	key := animKey{node: n, prop: prop}
	if a.index == nil {
		a.index = make(map[animKey]int)
	}
	if i, ok := a.index[key]; ok {
		a.tweens[i].tween = tw
		return
	}
	a.index[key] = len(a.tweens)
	a.tweens = append(a.tweens, activeTween{key: key, tween: tw})
}

// Update advances every tween by dt seconds, writes the values to their
// nodes, and drops finished tweens. Tweens whose node has been disposed are
// dropped without writing.
func (a *Animator) Update(dt float32) {
	live := a.tweens[:0]
	for _, at := range a.tweens {
		if at.key.node.disposed {
			continue
		}
		val, finished := at.tween.Update(dt)
		setPropValue(at.key.node, at.key.prop, float64(val))
		if !finished {
			live = append(live, at)
		}
	}
	for i := len(live); i < len(a.tweens); i++ {
		a.tweens[i] = activeTween{}
	}
	a.tweens = live
	a.reindex()
}

// Cancel stops the tween on (n, prop), leaving the property at its
// current value.
func (a *Animator) Cancel(n *Node, prop Property) {
	key := animKey{node: n, prop: prop}
	if _, ok := a.index[key]; !ok {
		return
	}
	a.removeIf(func(k animKey) bool { return k == key })
}

// CancelTree stops every tween targeting root or one of its descendants.
func (a *Animator) CancelTree(root *Node) {
	a.removeIf(func(k animKey) bool { return isAncestor(root, k.node) })
}

// Running reports whether a tween is live on (n, prop).
func (a *Animator) Running(n *Node, prop Property) bool {
	_, ok := a.index[animKey{node: n, prop: prop}]
	return ok
}

// Len returns the number of live tweens.
func (a *Animator) Len() int {
	return len(a.tweens)
}

func (a *Animator) removeIf(match func(animKey) bool) {
	live := a.tweens[:0]
	for _, at := range a.tweens {
		if !match(at.key) {
			live = append(live, at)
		}
	}
	for i := len(live); i < len(a.tweens); i++ {
		a.tweens[i] = activeTween{}
	}
	a.tweens = live
	a.reindex()
}

func (a *Animator) reindex() {
	clear(a.index)
	for i, at := range a.tweens {
		a.index[at.key] = i
	}
}

func propValue(n *Node, prop Property) float64 {
	switch prop {
	case PropScale:
		return n.ScaleX
	case PropOffsetX:
		return n.OffsetX
	case PropOffsetY:
		return n.OffsetY
	case PropAlpha:
		return n.Alpha
	}
	return 0
}

func setPropValue(n *Node, prop Property, v float64) {
	switch prop {
	case PropScale:
		n.ScaleX = v
		n.ScaleY = v
	case PropOffsetX:
		n.OffsetX = v
	case PropOffsetY:
		n.OffsetY = v
	case PropAlpha:
		n.Alpha = v
	}
	n.transformDirty = true
}
