package dock

import (
	"math"

	"github.com/tanema/gween/ease"
)

// IconEntry is the cached geometry of one mounted icon.
type IconEntry struct {
	Node    *Node
	CenterX float64 // world x of the icon center at the last refresh
}

// Intensity returns the magnification factor in [0, 1] for an icon at the
// given distance from the pointer: a cosine falloff that is 1 at distance
// 0 and exactly 0 from maxRadius on.
func Intensity(distance, maxRadius float64) float64 {
	distance = math.Abs(distance)
	if maxRadius <= 0 || distance >= maxRadius {
		return 0
	}
	return math.Max(0, math.Cos(distance/maxRadius*math.Pi/2))
}

// Refresh rebuilds the icon registry from the icons currently in the dock,
// recording each icon's world center x. The previous entries are replaced
// in one assignment.
func (d *Dock) Refresh() {
	refreshTree(d.root)
	entries := make([]IconEntry, 0, len(d.icons))
	for _, child := range d.root.Children() {
		if _, ok := child.UserData.(*dockIcon); !ok || !child.Visible {
			continue
		}
		cx, _ := child.LocalToWorld(0, 0)
		entries = append(entries, IconEntry{Node: child, CenterX: cx})
	}
	d.entries = entries
}

// Entries returns the icon registry as of the last Refresh. The returned
// slice MUST NOT be mutated.
func (d *Dock) Entries() []IconEntry {
	return d.entries
}

// PointerMove retargets every icon toward the scale and lift implied by a
// pointer at screen x. No-op when the dock is not mounted.
func (d *Dock) PointerMove(x float64) {
	if d.scene == nil {
		return
	}
	anim := &d.scene.animator
	for _, e := range d.entries {
		in := Intensity(x-e.CenterX, d.cfg.MaxRadius)
		anim.Animate(e.Node, PropScale, 1+in*d.cfg.MaxScale, d.cfg.MoveDuration, ease.OutCubic)
		anim.Animate(e.Node, PropOffsetY, -in*d.cfg.MaxLift, d.cfg.MoveDuration, ease.OutCubic)
	}
}

// PointerLeave returns every icon to scale 1 and no lift, superseding any
// proximity tween. No-op when the dock is not mounted.
func (d *Dock) PointerLeave() {
	if d.scene == nil {
		return
	}
	anim := &d.scene.animator
	for _, e := range d.entries {
		anim.Animate(e.Node, PropScale, 1, d.cfg.ResetDuration, ease.OutCubic)
		anim.Animate(e.Node, PropOffsetY, 0, d.cfg.ResetDuration, ease.OutCubic)
	}
}
