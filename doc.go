// Package dock is an animated application dock for [Ebitengine]: a row of
// clickable icons that grow and lift as the pointer approaches them.
//
// The dock sits on a small retained-mode scene graph. Every visual element
// is a [Node]; a [Scene] owns the tree, the pointer input state machine, an
// [Animator] that drives tweens (via [gween]), and the viewport size.
//
// # Quick start
//
//	apps, err := dock.LoadRegistry(registryJSON)
//	// ...
//	d, err := dock.NewDock(apps, dock.LoadIcons(assets, apps), dock.DockConfig{})
//	// ...
//	scene := dock.NewScene()
//	d.Mount(scene)
//	dock.Run(scene, dock.RunConfig{Title: "Dock", Width: 960, Height: 540})
//
// For full control, implement [ebiten.Game] yourself, call
// [Scene.SetViewportSize] from Layout, and call [Scene.Update] and
// [Scene.Draw] from Update and Draw.
//
// # Proximity animation
//
// On every pointer move over the dock, each icon's [Intensity] is computed
// from its horizontal distance to the pointer with a cosine falloff that
// reaches zero at [DockConfig.MaxRadius]. Scale and lift are tweened toward
// the result; a newer target replaces the running tween instead of queuing
// behind it. Leaving the dock tweens every icon back to rest, and clicking
// an enabled icon plays a bounce and calls the [ActivationHook].
//
// Icon centers are cached at mount and on every viewport resize
// ([Dock.Refresh]). Icons added later with [Dock.AddApp] join the cache at
// the next refresh.
//
// # Testing
//
// [Scene.InjectHover], [Scene.InjectClick], and [LoadTestScript] drive the
// same input path as the real mouse, one event per frame, and
// [Scene.Screenshot] captures frames as PNG files.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package dock
