package dock

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// goRegularSource is parsed on first use and shared by every tooltip.
var goRegularSource *text.GoTextFaceSource

func defaultFaceSource() (*text.GoTextFaceSource, error) {
	if goRegularSource != nil {
		return goRegularSource, nil
	}
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load tooltip font: %w", err)
	}
	goRegularSource = src
	return src, nil
}

// Tooltip is a floating single-line label drawn above an anchor node.
// Its sprite must be added to the tree (typically as the last child so it
// draws on top); it follows the anchor every frame while shown.
type Tooltip struct {
	node    *Node
	face    *text.GoTextFace
	content string
	anchor  *Node

	Padding    float64 // space between text and background edge
	Gap        float64 // space between the label and the anchor's top
	Background Color
	Foreground Color
}

// NewTooltip creates a hidden tooltip rendering text at the given size.
func NewTooltip(size float64) (*Tooltip, error) {
	src, err := defaultFaceSource()
	if err != nil {
		return nil, err
	}
	t := &Tooltip{
		node:       NewSprite("tooltip", nil),
		face:       &text.GoTextFace{Source: src, Size: size},
		Padding:    6,
		Gap:        10,
		Background: Color{R: 0.1, G: 0.1, B: 0.12, A: 0.9},
		Foreground: ColorWhite,
	}
	t.node.Visible = false
	t.node.OnUpdate = func(float64) { t.follow() }
	return t, nil
}

// Node returns the sprite node that displays the tooltip.
func (t *Tooltip) Node() *Node {
	return t.node
}

// Show displays content above anchor. The label image is only re-rendered
// when content changes.
func (t *Tooltip) Show(anchor *Node, content string) {
	if anchor == nil {
		return
	}
	if content != t.content || t.node.customImage == nil {
		t.render(content)
	}
	t.anchor = anchor
	t.node.Visible = true
	t.follow()
}

// Hide hides the tooltip and forgets its anchor.
func (t *Tooltip) Hide() {
	t.anchor = nil
	t.node.Visible = false
}

// Visible reports whether the tooltip is shown.
func (t *Tooltip) Visible() bool {
	return t.node.Visible
}

// Content returns the text last shown.
func (t *Tooltip) Content() string {
	return t.content
}

// Anchor returns the node the tooltip is attached to, or nil when hidden.
func (t *Tooltip) Anchor() *Node {
	return t.anchor
}

// Dispose releases the label image and the tooltip node.
func (t *Tooltip) Dispose() {
	if img := t.node.customImage; img != nil {
		img.Deallocate()
	}
	t.anchor = nil
	t.node.Dispose()
}

func (t *Tooltip) render(content string) {
	t.content = content
	w, h := text.Measure(content, t.face, t.face.Size*1.25)
	iw := int(math.Ceil(w + 2*t.Padding))
	ih := int(math.Ceil(h + 2*t.Padding))

	if old := t.node.customImage; old != nil {
		old.Deallocate()
	}
	img := ebiten.NewImage(max(iw, 1), max(ih, 1))
	img.Fill(t.Background.toRGBA())

	op := &text.DrawOptions{}
	op.GeoM.Translate(t.Padding, t.Padding)
	op.ColorScale.ScaleWithColor(color.NRGBA{
		R: uint8(clamp01(t.Foreground.R) * 255),
		G: uint8(clamp01(t.Foreground.G) * 255),
		B: uint8(clamp01(t.Foreground.B) * 255),
		A: uint8(clamp01(t.Foreground.A) * 255),
	})
	text.Draw(img, content, t.face, op)

	t.node.SetImage(img)
	t.node.SetPivot(float64(iw)/2, float64(ih))
}

// follow places the tooltip's bottom-center above the anchor's top-center.
// Transforms are refreshed first so tweens applied earlier in the same tick
// are seen.
func (t *Tooltip) follow() {
	if t.anchor == nil || t.node.Parent == nil {
		return
	}
	refreshTree(t.anchor)
	ax, ay := anchorTop(t.anchor)
	wx, wy := t.anchor.LocalToWorld(ax, ay)
	lx, ly := t.node.Parent.WorldToLocal(wx, wy-t.Gap)
	t.node.SetPosition(lx, ly)
}

// anchorTop returns the local top-center of a node's hit area.
func anchorTop(n *Node) (float64, float64) {
	switch hs := n.HitShape.(type) {
	case HitRect:
		return hs.X + hs.Width/2, hs.Y
	case HitCircle:
		return hs.CenterX, hs.CenterY - hs.Radius
	}
	w, _ := nodeDimensions(n)
	return w / 2, 0
}
