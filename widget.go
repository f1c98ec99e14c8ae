package dock

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween/ease"
)

// DockConfig tunes the dock's layout and animation. Zero fields take the
// defaults noted beside them.
type DockConfig struct {
	IconSize     float64 // icon edge length in pixels (56)
	Gap          float64 // space between icons (12)
	Padding      float64 // space between icons and panel edge (10)
	BottomMargin float64 // distance from the viewport bottom (16)

	MaxRadius float64 // pointer distance at which magnification reaches zero (180)
	MaxScale  float64 // extra scale at full intensity (0.65)
	MaxLift   float64 // upward lift at full intensity (26)

	MoveDuration   float32 // seconds to approach a proximity target (0.22)
	ResetDuration  float32 // seconds to return to rest on leave (0.35)
	BounceDuration float32 // seconds of the click bounce (0.45)
	BounceHeight   float64 // starting lift of the click bounce (22)

	DisabledAlpha float64 // alpha of icons whose app cannot open (0.6)
	PanelColor    Color   // panel background (translucent slate)
	TooltipSize   float64 // tooltip font size (14)

	// Hook receives activations of enabled icons. Defaults to LogHook.
	Hook ActivationHook
}

func (c DockConfig) withDefaults() DockConfig {
	setDefault(&c.IconSize, 56)
	setDefault(&c.Gap, 12)
	setDefault(&c.Padding, 10)
	setDefault(&c.BottomMargin, 16)
	setDefault(&c.MaxRadius, 180)
	setDefault(&c.MaxScale, 0.65)
	setDefault(&c.MaxLift, 26)
	setDefault(&c.MoveDuration, 0.22)
	setDefault(&c.ResetDuration, 0.35)
	setDefault(&c.BounceDuration, 0.45)
	setDefault(&c.BounceHeight, 22)
	setDefault(&c.DisabledAlpha, 0.6)
	setDefault(&c.TooltipSize, 14)
	if c.PanelColor == (Color{}) {
		c.PanelColor = Color{R: 0.85, G: 0.87, B: 0.9, A: 0.35}
	}
	if c.Hook == nil {
		c.Hook = LogHook{}
	}
	return c
}

func setDefault[T float32 | float64](v *T, def T) {
	if *v == 0 {
		*v = def
	}
}

// dockIcon is stored in the slot node's UserData.
type dockIcon struct {
	app    AppDescriptor
	slot   *Node // centered container: scaled and lifted by the animator
	sprite *Node // icon image, sized to IconSize
}

// Dock is an animated row of application icons. Build it with NewDock,
// attach it with Mount, and detach it with Unmount.
type Dock struct {
	cfg     DockConfig
	root    *Node
	panel   *Node
	icons   []*dockIcon
	tooltip *Tooltip

	// entries is the icon registry: replaced wholesale by Refresh.
	entries  []IconEntry
	hovering bool

	scene        *Scene
	handles      []CallbackHandle
	viewW, viewH int
	bounds       Rect
}

// NewDock builds a dock with one icon per app, in order. Icons missing from
// icons are drawn with a placeholder.
func NewDock(apps []AppDescriptor, icons IconSet, cfg DockConfig) (*Dock, error) {
	cfg = cfg.withDefaults()
	tip, err := NewTooltip(cfg.TooltipSize)
	if err != nil {
		return nil, fmt.Errorf("new dock: %w", err)
	}

	d := &Dock{
		cfg:     cfg,
		root:    NewContainer("dock"),
		panel:   NewSprite("dock-panel", nil),
		tooltip: tip,
	}
	d.root.Interactable = true
	d.panel.Color = cfg.PanelColor
	d.panel.Interactable = true
	d.root.AddChild(d.panel)

	seen := make(map[string]bool, len(apps))
	for _, app := range apps {
		if seen[app.Key()] {
			warnf("duplicate dock entry %q", app.Key())
		}
		seen[app.Key()] = true
		d.addIcon(app, icons.lookup(app.Icon))
	}
	d.root.AddChild(tip.Node())
	return d, nil
}

func (d *Dock) addIcon(app AppDescriptor, img *ebiten.Image) {
	size := d.cfg.IconSize
	ic := &dockIcon{
		app:    app,
		slot:   NewContainer("icon:" + app.Key()),
		sprite: NewSprite("icon-image:"+app.Key(), img),
	}
	b := img.Bounds()
	ic.sprite.SetScale(size/float64(max(b.Dx(), 1)), size/float64(max(b.Dy(), 1)))
	ic.sprite.SetPosition(-size/2, -size/2)

	ic.slot.UserData = ic
	ic.slot.Interactable = true
	ic.slot.HitShape = HitRect{X: -size / 2, Y: -size / 2, Width: size, Height: size}
	if !app.CanOpen {
		ic.slot.Alpha = d.cfg.DisabledAlpha
	}
	ic.slot.AddChild(ic.sprite)
	d.root.AddChild(ic.slot)
	d.icons = append(d.icons, ic)
}

// AddApp appends an icon after construction and re-lays out the dock. The
// icon registry is not refreshed: proximity uses the previous centers until
// the next Refresh or viewport resize.
func (d *Dock) AddApp(app AppDescriptor, img *ebiten.Image) {
	if img == nil {
		img = ensurePlaceholderIcon()
	}
	d.addIcon(app, img)
	d.root.AddChild(d.tooltip.Node()) // keep the tooltip on top
	d.Layout(d.viewW, d.viewH)
}

// Root returns the dock's container node.
func (d *Dock) Root() *Node {
	return d.root
}

// Tooltip returns the dock's tooltip.
func (d *Dock) Tooltip() *Tooltip {
	return d.tooltip
}

// Icon returns the slot node of the first app with the given id, or nil.
func (d *Dock) Icon(id string) *Node {
	for _, ic := range d.icons {
		if ic.app.ID == id {
			return ic.slot
		}
	}
	return nil
}

// Bounds returns the panel's screen rectangle as of the last Layout.
// Magnified icons may extend above it.
func (d *Dock) Bounds() Rect {
	return d.bounds
}

// Mounted reports whether the dock is attached to a scene.
func (d *Dock) Mounted() bool {
	return d.scene != nil
}

// Mount attaches the dock to scene, registers its pointer, click, and
// resize listeners, lays it out, and fills the icon registry. A nil scene
// aborts silently. Mounting an already mounted dock remounts it.
func (d *Dock) Mount(scene *Scene) {
	if scene == nil {
		return
	}
	if d.scene != nil {
		d.Unmount()
	}
	d.scene = scene
	scene.Root().AddChild(d.root)
	d.handles = append(d.handles[:0],
		scene.OnPointerMove(d.handlePointerMove),
		scene.OnPointerEnter(d.handlePointerEnter),
		scene.OnPointerLeave(d.handlePointerLeave),
		scene.OnClick(d.handleClick),
		scene.OnResize(d.handleResize),
	)
	w, h := scene.ViewportSize()
	d.Layout(w, h)
	d.Refresh()
	debugf("dock mounted with %d icons", len(d.entries))
}

// Unmount removes every listener registered by Mount, cancels the dock's
// tweens, returns icons to rest, and detaches the dock from the scene.
// No-op when not mounted.
func (d *Dock) Unmount() {
	if d.scene == nil {
		return
	}
	for _, h := range d.handles {
		h.Remove()
	}
	clear(d.handles)
	d.handles = d.handles[:0]

	d.scene.animator.CancelTree(d.root)
	for _, ic := range d.icons {
		ic.slot.SetScale(1, 1)
		ic.slot.SetOffset(0, 0)
	}
	d.tooltip.Hide()
	d.root.RemoveFromParent()

	d.entries = nil
	d.hovering = false
	d.scene = nil
}

// Dispose unmounts the dock and releases its nodes and the tooltip's label
// image. The dock must not be used afterwards. Calling Dispose twice is a
// no-op.
func (d *Dock) Dispose() {
	if d.root.IsDisposed() {
		return
	}
	d.Unmount()
	d.tooltip.Dispose()
	d.root.Dispose()
	d.icons = nil
}

// Layout centers the dock horizontally at the bottom of a w×h viewport and
// spaces the icons along it.
func (d *Dock) Layout(w, h int) {
	d.viewW, d.viewH = w, h
	size, gap, pad := d.cfg.IconSize, d.cfg.Gap, d.cfg.Padding

	n := float64(len(d.icons))
	width := 2*pad + n*size + max(n-1, 0)*gap
	height := size + 2*pad

	d.bounds = Rect{X: (float64(w) - width) / 2, Y: float64(h) - d.cfg.BottomMargin - height, Width: width, Height: height}
	d.root.SetPosition(d.bounds.X, d.bounds.Y)
	d.panel.SetScale(width, height)
	for i, ic := range d.icons {
		ic.slot.SetPosition(pad+size/2+float64(i)*(size+gap), pad+size/2)
	}
}

// --- Event wiring ---

func (d *Dock) handlePointerMove(ctx PointerContext) {
	if ctx.Node != nil && ctx.Node.IsDescendantOf(d.root) {
		d.hovering = true
		d.PointerMove(ctx.GlobalX)
		return
	}
	if d.hovering {
		d.hovering = false
		d.PointerLeave()
	}
}

func (d *Dock) handlePointerEnter(ctx PointerContext) {
	if ic := d.iconFor(ctx.Node); ic != nil {
		d.tooltip.Show(ic.slot, ic.app.Name)
	}
}

func (d *Dock) handlePointerLeave(ctx PointerContext) {
	if ic := d.iconFor(ctx.Node); ic != nil && d.tooltip.Anchor() == ic.slot {
		d.tooltip.Hide()
	}
}

func (d *Dock) handleClick(ctx ClickContext) {
	d.Activate(ctx.Node)
}

func (d *Dock) handleResize(ctx ResizeContext) {
	d.Layout(ctx.Width, ctx.Height)
	d.Refresh()
}

// iconFor returns the icon owning n (n itself or its closest icon
// ancestor within the dock), or nil.
func (d *Dock) iconFor(n *Node) *dockIcon {
	for p := n; p != nil && p != d.root; p = p.Parent {
		if ic, ok := p.UserData.(*dockIcon); ok {
			return ic
		}
	}
	return nil
}

// --- Activation ---

// Activate handles a click on target. If target lies on an enabled icon the
// icon plays a one-shot bounce and the activation hook runs once. Clicks
// elsewhere, clicks on disabled icons and calls on an unmounted dock do
// nothing.
func (d *Dock) Activate(target *Node) {
	if d.scene == nil {
		return
	}
	ic := d.iconFor(target)
	if ic == nil {
		return
	}
	if !ic.app.CanOpen {
		debugf("activation of %q suppressed: app cannot open", ic.app.ID)
		return
	}
	d.scene.animator.AnimateFrom(ic.slot, PropOffsetY,
		-d.cfg.BounceHeight, 0, d.cfg.BounceDuration, ease.OutBounce)
	d.open(ic.app)
}

func (d *Dock) open(app AppDescriptor) {
	if !app.CanOpen {
		return
	}
	d.cfg.Hook.Activate(AppActivation{ID: app.ID, CanOpen: app.CanOpen})
}
