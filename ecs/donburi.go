package ecs

import (
	"github.com/phanxgames/dock"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InteractionEventType is the Donburi event type for scene interaction events.
var InteractionEventType = events.NewEventType[dock.InteractionEvent]()

// ActivationEventType is the Donburi event type for dock icon activations.
var ActivationEventType = events.NewEventType[dock.AppActivation]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EntityStore backed by a Donburi world.
// Interaction events are published to InteractionEventType.
func NewDonburiStore(world donburi.World) dock.EntityStore {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event dock.InteractionEvent) {
	InteractionEventType.Publish(s.world, event)
}

type donburiHook struct {
	world donburi.World
}

// NewDonburiHook creates an ActivationHook that publishes every activation
// to ActivationEventType in world.
func NewDonburiHook(world donburi.World) dock.ActivationHook {
	return &donburiHook{world: world}
}

func (h *donburiHook) Activate(a dock.AppActivation) {
	ActivationEventType.Publish(h.world, a)
}
