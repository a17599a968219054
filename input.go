package camrig

// PointerButton is a bit in PointerEvent.Buttons.
type PointerButton uint8

const (
	MouseButtonLeft PointerButton = 1 << iota
	MouseButtonRight
	MouseButtonMiddle
)

type PointerEventType int

const (
	PointerMove PointerEventType = iota
	PointerDown
	PointerUp
	PointerWheel
)

// PointerEvent is one decoded pointer sample from a Surface.
// DeltaX/DeltaY are the movement since the previous sample; while the
// pointer is captured they are the only meaningful coordinates.
type PointerEvent struct {
	Type           PointerEventType
	X, Y           float64
	DeltaX, DeltaY float64
	Wheel          float64
	Button         PointerButton // button that changed, for PointerDown/PointerUp
	Buttons        PointerButton // buttons currently held
}

func (e PointerEvent) Held(b PointerButton) bool {
	return e.Buttons&b != 0
}

type PointerListener interface {
	HandlePointer(ev PointerEvent)
}

// Surface is the input surface controls attach to. CapturePointer and
// ReleasePointer lock and unlock the cursor.
type Surface interface {
	Listen(l PointerListener)
	Unlisten(l PointerListener)
	CapturePointer()
	ReleasePointer()
}

// ListenerSet fans pointer events out to listeners in registration order.
// Surfaces embed it.
type ListenerSet struct {
	listeners []PointerListener
}

func (s *ListenerSet) Listen(l PointerListener) {
	for _, existing := range s.listeners {
		if existing == l {
			return
		}
	}
	s.listeners = append(s.listeners, l)
}

func (s *ListenerSet) Unlisten(l PointerListener) {
	for i, existing := range s.listeners {
		if existing == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

func (s *ListenerSet) Listening(l PointerListener) bool {
	for _, existing := range s.listeners {
		if existing == l {
			return true
		}
	}
	return false
}

// Dispatch delivers ev to a snapshot of the listeners, so a listener may
// unlisten itself from inside HandlePointer.
func (s *ListenerSet) Dispatch(ev PointerEvent) {
	snapshot := make([]PointerListener, len(s.listeners))
	copy(snapshot, s.listeners)
	for _, l := range snapshot {
		l.HandlePointer(ev)
	}
}
