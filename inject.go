package dock

// syntheticPointerEvent is a single queued pointer event in screen
// coordinates, fed through the same state machine as the real mouse.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
	button  MouseButton
}

// InjectHover queues a hover move (no button held) at the given screen
// coordinates. The event is consumed on the next frame's input pass.
func (s *Scene) InjectHover(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectPress queues a left-button press at the given screen coordinates.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		button: MouseButtonLeft,
	})
}

// InjectDrag queues a move with the left button held at the given screen
// coordinates. Pair it with InjectPress and InjectRelease.
func (s *Scene) InjectDrag(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{
		x: x, y: y,
		pressed: true,
		button:  MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectSweep queues hover moves from (fromX, y) to (toX, y) spread evenly
// over frames frames. Minimum frames is 1 (a single move to the end point).
func (s *Scene) InjectSweep(fromX, toX, y float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.InjectHover(fromX+(toX-fromX)*t, y)
	}
}

// PendingInput returns the number of queued synthetic pointer events.
func (s *Scene) PendingInput() int {
	return len(s.injectQueue)
}

// processInjectedInput pops one event from the inject queue and feeds it
// through processPointer. Returns true if an event was consumed.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, evt.pressed, evt.button)
	return true
}
