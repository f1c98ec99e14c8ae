package dock

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertMatrix(t *testing.T, name string, got, want [6]float64) {
	t.Helper()
	for i := range got {
		if math.Abs(got[i]-want[i]) > epsilon {
			t.Errorf("%s[%d] = %v, want %v (full: %v vs %v)", name, i, got[i], want[i], got, want)
		}
	}
}

// --- computeLocalTransform ---

func TestLocalTransformIdentity(t *testing.T) {
	n := NewContainer("test")
	got := computeLocalTransform(n)
	assertMatrix(t, "identity", got, [6]float64{1, 0, 0, 1, 0, 0})
}

func TestLocalTransformTranslation(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.Y = 20
	got := computeLocalTransform(n)
	assertMatrix(t, "translation", got, [6]float64{1, 0, 0, 1, 10, 20})
}

func TestLocalTransformScale(t *testing.T) {
	n := NewContainer("test")
	n.ScaleX = 2
	n.ScaleY = 3
	got := computeLocalTransform(n)
	assertMatrix(t, "scale", got, [6]float64{2, 0, 0, 3, 0, 0})
}

func TestLocalTransformPivot(t *testing.T) {
	n := NewContainer("test")
	n.X = 100
	n.Y = 100
	n.PivotX = 16
	n.PivotY = 16
	n.ScaleX = 2
	n.ScaleY = 2
	got := computeLocalTransform(n)
	// The pivot point lands on (X, Y) regardless of scale.
	x, y := transformPoint(got, 16, 16)
	assertNear(t, "pivot.x", x, 100)
	assertNear(t, "pivot.y", y, 100)
}

func TestLocalTransformOffset(t *testing.T) {
	n := NewContainer("test")
	n.X = 10
	n.OffsetY = -26
	got := computeLocalTransform(n)
	assertMatrix(t, "offset", got, [6]float64{1, 0, 0, 1, 10, -26})
}

// A scaled icon slot grows around its local origin, so its center stays put.
func TestScaleAroundCenter(t *testing.T) {
	n := NewContainer("slot")
	n.SetPosition(300, 342)
	n.SetScale(1.65, 1.65)
	n.SetOffset(0, -26)
	updateWorldTransform(n, identityTransform, 1, false)

	cx, cy := n.LocalToWorld(0, 0)
	assertNear(t, "center.x", cx, 300)
	assertNear(t, "center.y", cy, 316)
	left, _ := n.LocalToWorld(-32, 0)
	assertNear(t, "left edge", left, 300-32*1.65)
}

// --- multiplyAffine / invertAffine ---

func TestMultiplyAffineIdentity(t *testing.T) {
	m := [6]float64{2, 0, 0, 3, 10, 20}
	assertMatrix(t, "I*m", multiplyAffine(identityTransform, m), m)
	assertMatrix(t, "m*I", multiplyAffine(m, identityTransform), m)
}

func TestMultiplyAffineTranslations(t *testing.T) {
	a := [6]float64{1, 0, 0, 1, 10, 20}
	b := [6]float64{1, 0, 0, 1, 5, 7}
	assertMatrix(t, "a*b", multiplyAffine(a, b), [6]float64{1, 0, 0, 1, 15, 27})
}

func TestInvertAffine(t *testing.T) {
	m := [6]float64{2, 0, 0, 4, 10, 20}
	inv := invertAffine(m)
	assertMatrix(t, "m*inv=id", multiplyAffine(m, inv), identityTransform)
}

func TestInvertAffineSingularReturnsIdentity(t *testing.T) {
	m := [6]float64{0, 0, 0, 1, 5, 5}
	assertMatrix(t, "singular", invertAffine(m), identityTransform)
}

// --- updateWorldTransform ---

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.tx", parent.worldTransform[4], 100)
	assertNear(t, "child.tx", child.worldTransform[4], 110)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.Alpha = 0.5
	child.Alpha = 0.6

	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "parent.worldAlpha", parent.WorldAlpha(), 0.5)
	assertNear(t, "child.worldAlpha", child.WorldAlpha(), 0.3)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.X = 999 // dirty flag NOT set
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (stale)", child.worldTransform[4], 110)
}

func TestDirtyFlagRecomputes(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	child.SetPosition(20, 0)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (updated)", child.worldTransform[4], 120)
}

func TestParentRecomputedPropagates(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	child.X = 10
	updateWorldTransform(parent, identityTransform, 1.0, false)

	parent.SetPosition(200, 0)
	updateWorldTransform(parent, identityTransform, 1.0, false)

	assertNear(t, "child.tx (from parent)", child.worldTransform[4], 210)
}

func TestRefreshTreeStartsAtTopmost(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewContainer("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	root.SetPosition(50, 0)
	leaf.SetPosition(5, 0)
	refreshTree(leaf)

	x, _ := leaf.LocalToWorld(0, 0)
	assertNear(t, "leaf.x", x, 55)
}

// --- WorldToLocal / LocalToWorld ---

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewContainer("parent")
	child := NewContainer("child")
	parent.AddChild(child)

	parent.X = 100
	parent.Y = 50
	child.X = 10
	child.Y = 20
	child.ScaleX = 2
	child.ScaleY = 3

	updateWorldTransform(parent, identityTransform, 1.0, false)

	wx, wy := 150.0, 80.0
	lx, ly := child.WorldToLocal(wx, wy)
	wx2, wy2 := child.LocalToWorld(lx, ly)
	assertNear(t, "roundtrip.x", wx2, wx)
	assertNear(t, "roundtrip.y", wy2, wy)
}

func TestSettersDirty(t *testing.T) {
	n := NewContainer("n")
	setters := map[string]func(){
		"SetPosition": func() { n.SetPosition(1, 2) },
		"SetScale":    func() { n.SetScale(2, 2) },
		"SetPivot":    func() { n.SetPivot(3, 3) },
		"SetOffset":   func() { n.SetOffset(0, -4) },
		"SetAlpha":    func() { n.SetAlpha(0.5) },
		"MarkDirty":   func() { n.MarkDirty() },
	}
	for name, set := range setters {
		n.transformDirty = false
		set()
		if !n.transformDirty {
			t.Errorf("%s should mark the node dirty", name)
		}
	}
}
