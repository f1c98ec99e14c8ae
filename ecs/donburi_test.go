package ecs

import (
	"testing"

	"github.com/phanxgames/dock"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDonburiStore_EmitEvent(t *testing.T) {
	world := donburi.NewWorld()
	store := NewDonburiStore(world)

	var received []dock.InteractionEvent
	InteractionEventType.Subscribe(world, func(w donburi.World, e dock.InteractionEvent) {
		received = append(received, e)
	})

	store.EmitEvent(dock.InteractionEvent{
		Type:     dock.EventPointerDown,
		EntityID: 42,
		GlobalX:  100,
		GlobalY:  200,
		Button:   dock.MouseButtonLeft,
	})
	store.EmitEvent(dock.InteractionEvent{Type: dock.EventClick, EntityID: 42})

	// Events are queued; process them.
	InteractionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	if e := received[0]; e.Type != dock.EventPointerDown || e.EntityID != 42 || e.GlobalX != 100 || e.GlobalY != 200 {
		t.Errorf("event 0: %+v", e)
	}
	if received[1].Type != dock.EventClick {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiHook_PublishesActivation(t *testing.T) {
	world := donburi.NewWorld()
	hook := NewDonburiHook(world)

	var got []dock.AppActivation
	ActivationEventType.Subscribe(world, func(w donburi.World, a dock.AppActivation) {
		got = append(got, a)
	})

	hook.Activate(dock.AppActivation{ID: "terminal", CanOpen: true})
	if len(got) != 0 {
		t.Fatal("activation delivered before ProcessEvents")
	}
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0].ID != "terminal" || !got[0].CanOpen {
		t.Fatalf("got %+v, want one activation of terminal", got)
	}
}

func TestDonburiHook_DrivenByDockClick(t *testing.T) {
	world := donburi.NewWorld()

	var got []string
	ActivationEventType.Subscribe(world, func(w donburi.World, a dock.AppActivation) {
		got = append(got, a.ID)
	})

	apps := []dock.AppDescriptor{
		{ID: "finder", Name: "Finder", CanOpen: true},
		{ID: "trash", Name: "Trash", CanOpen: false},
	}
	d, err := dock.NewDock(apps, nil, dock.DockConfig{Hook: NewDonburiHook(world)})
	if err != nil {
		t.Fatal(err)
	}
	scene := dock.NewScene()
	scene.SetViewportSize(800, 600)
	d.Mount(scene)

	d.Activate(d.Icon("finder"))
	d.Activate(d.Icon("trash"))
	events.ProcessAllEvents(world)

	if len(got) != 1 || got[0] != "finder" {
		t.Fatalf("got %v, want [finder]", got)
	}
}

func TestImplementsInterfaces(t *testing.T) {
	world := donburi.NewWorld()
	var _ dock.EntityStore = NewDonburiStore(world)
	var _ dock.ActivationHook = NewDonburiHook(world)
}
