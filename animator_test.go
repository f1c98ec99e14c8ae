package dock

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestAnimateReachesTarget(t *testing.T) {
	var a Animator
	n := NewContainer("n")

	a.Animate(n, PropScale, 2, 0.5, ease.Linear)
	a.Update(0.25)
	assertNearTol(t, "mid scale", n.ScaleX, 1.5, 1e-5)
	if n.ScaleX != n.ScaleY {
		t.Errorf("ScaleX %v != ScaleY %v", n.ScaleX, n.ScaleY)
	}

	a.Update(0.25)
	assertNearTol(t, "end scale", n.ScaleX, 2, 1e-6)
	if a.Len() != 0 {
		t.Errorf("Len = %d, want 0 after finish", a.Len())
	}
}

func TestAnimateSupersedesFromCurrentValue(t *testing.T) {
	var a Animator
	n := NewContainer("n")

	a.Animate(n, PropOffsetY, -100, 1, ease.Linear)
	a.Update(0.5)
	assertNearTol(t, "offset", n.OffsetY, -50, 1e-4)

	a.Animate(n, PropOffsetY, 0, 1, ease.Linear)
	if a.Len() != 1 {
		t.Fatalf("Len = %d, want 1", a.Len())
	}
	// The replacement starts where the old tween left off.
	assertNearTol(t, "offset after retarget", n.OffsetY, -50, 1e-4)
	a.Update(0.5)
	assertNearTol(t, "offset", n.OffsetY, -25, 1e-4)
}

func TestAnimateFromJumpsToStart(t *testing.T) {
	var a Animator
	n := NewContainer("n")

	a.AnimateFrom(n, PropOffsetY, -22, 0, 0.45, ease.OutBounce)
	if n.OffsetY != -22 {
		t.Errorf("OffsetY = %v, want -22", n.OffsetY)
	}
	for range 10 {
		a.Update(0.05)
	}
	if n.OffsetY != 0 {
		t.Errorf("OffsetY = %v, want 0", n.OffsetY)
	}
}

func TestAnimateZeroDurationSetsImmediately(t *testing.T) {
	var a Animator
	n := NewContainer("n")

	a.Animate(n, PropAlpha, 1, 1, ease.Linear)
	n.Alpha = 0.2
	a.Animate(n, PropAlpha, 0.5, 0, nil)

	if n.Alpha != 0.5 {
		t.Errorf("Alpha = %v, want 0.5", n.Alpha)
	}
	if a.Running(n, PropAlpha) {
		t.Error("zero-duration animate should cancel the running tween")
	}
}

func TestAnimateNilEasingIsLinear(t *testing.T) {
	var a Animator
	n := NewContainer("n")
	a.Animate(n, PropOffsetX, 10, 1, nil)
	a.Update(0.3)
	assertNearTol(t, "OffsetX", n.OffsetX, 3, 1e-4)
}

func TestAnimatorIndependentProperties(t *testing.T) {
	var a Animator
	n := NewContainer("n")

	a.Animate(n, PropScale, 2, 1, ease.Linear)
	a.Animate(n, PropOffsetY, -10, 0.5, ease.Linear)
	if a.Len() != 2 {
		t.Fatalf("Len = %d, want 2", a.Len())
	}

	a.Update(0.5)
	if a.Running(n, PropOffsetY) {
		t.Error("OffsetY tween should have finished")
	}
	if !a.Running(n, PropScale) {
		t.Error("scale tween should still run")
	}
}

func TestAnimatorCancel(t *testing.T) {
	var a Animator
	n := NewContainer("n")

	a.Animate(n, PropScale, 3, 1, ease.Linear)
	a.Update(0.5)
	a.Cancel(n, PropScale)
	a.Update(0.5)

	assertNearTol(t, "scale", n.ScaleX, 2, 1e-4)
	a.Cancel(n, PropScale) // no-op
}

func TestAnimatorCancelTree(t *testing.T) {
	var a Animator
	root := NewContainer("root")
	child := NewContainer("child")
	other := NewContainer("other")
	root.AddChild(child)

	a.Animate(root, PropAlpha, 0, 1, nil)
	a.Animate(child, PropScale, 2, 1, nil)
	a.Animate(other, PropScale, 2, 1, nil)

	a.CancelTree(root)
	if a.Len() != 1 || !a.Running(other, PropScale) {
		t.Errorf("only the unrelated tween should survive, Len = %d", a.Len())
	}
}

func TestAnimatorDropsDisposedNodes(t *testing.T) {
	var a Animator
	n := NewContainer("n")
	keep := NewContainer("keep")

	a.Animate(n, PropScale, 2, 1, nil)
	a.Animate(keep, PropScale, 2, 1, nil)
	n.Dispose()
	a.Update(0.1)

	if a.Len() != 1 || a.Running(n, PropScale) {
		t.Errorf("disposed node tween should be dropped, Len = %d", a.Len())
	}
	a.Animate(n, PropScale, 3, 1, nil)
	if a.Running(n, PropScale) {
		t.Error("animating a disposed node should be ignored")
	}
}

func TestAnimatorMarksTransformDirty(t *testing.T) {
	var a Animator
	n := NewContainer("n")
	n.transformDirty = false

	a.Animate(n, PropOffsetY, -5, 1, nil)
	if !n.transformDirty {
		t.Error("animated property should dirty the transform")
	}
}

func TestSceneUpdateAdvancesAnimator(t *testing.T) {
	s := NewScene()
	n := NewContainer("n")
	s.Root().AddChild(n)

	s.Animator().Animate(n, PropScale, 2, 0.5, ease.Linear)
	s.tick(0.25, false)
	assertNearTol(t, "scale", n.ScaleX, 1.5, 1e-5)
}
