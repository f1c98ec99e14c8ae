package dock

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Draw traverses the scene tree in painter order and draws every visible,
// renderable sprite to screen.
func (s *Scene) Draw(screen *ebiten.Image) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	count := s.drawNode(screen, s.root, identityTransform, 1.0, false)

	if s.debug {
		s.debugLog(debugStats{drawTime: time.Since(t0), spriteCount: count})
	}
	s.flushScreenshots(screen)
}

// drawNode updates the world transform of n and draws it and its children.
// Returns the number of sprites drawn.
func (s *Scene) drawNode(target *ebiten.Image, n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) int {
	if !n.Visible {
		return 0
	}

	recompute := n.transformDirty || parentRecomputed
	if recompute {
		n.worldTransform = multiplyAffine(parentTransform, computeLocalTransform(n))
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	count := 0
	if n.Type == NodeTypeSprite && n.Renderable && n.worldAlpha > 0 {
		s.drawSprite(target, n)
		count++
	}
	for _, child := range n.children {
		count += s.drawNode(target, child, n.worldTransform, n.worldAlpha, recompute)
	}
	return count
}

// drawSprite submits a single sprite with its world transform and
// premultiplied tint.
func (s *Scene) drawSprite(target *ebiten.Image, n *Node) {
	img := n.customImage
	if img == nil {
		img = WhitePixel
	}

	op := &s.drawOp
	op.GeoM = affineGeoM(n.worldTransform)
	op.ColorScale.Reset()
	a := float32(n.Color.A * n.worldAlpha)
	op.ColorScale.Scale(float32(n.Color.R)*a, float32(n.Color.G)*a, float32(n.Color.B)*a, a)

	target.DrawImage(img, op)
}

// affineGeoM converts a [6]float64 affine matrix into an ebiten.GeoM.
func affineGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
