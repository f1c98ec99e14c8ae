// Package ecs bridges the dock into a [Donburi] world.
//
// [NewDonburiHook] publishes dock activations as [ActivationEventType]
// events, so launch logic can live in an ECS system instead of a callback.
// [NewDonburiStore] forwards scene interaction events (pointer, click) for
// nodes that carry an EntityID.
//
// Usage:
//
//	world := donburi.NewWorld()
//	d, err := dock.NewDock(apps, icons, dock.DockConfig{Hook: ecs.NewDonburiHook(world)})
//	scene.SetEntityStore(ecs.NewDonburiStore(world))
//
// Call events.ProcessAllEvents(world) once per tick to deliver them.
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
