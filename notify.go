package sticker

// Event identifies a notification emitted by an Element.
type Event uint8

// Events emitted by an Element, in no particular order.
const (
	// EventWillShowHandles fires before the border and handles appear.
	EventWillShowHandles Event = iota
	// EventDidShowHandles fires after the border and handles appear.
	EventDidShowHandles
	// EventDidHideHandles fires after the border and handles disappear.
	EventDidHideHandles
	// EventDidStartEditing fires when the text content gains input focus.
	EventDidStartEditing
	// EventDidBeginEditing fires at the first movement of a move or resize gesture.
	EventDidBeginEditing
	// EventDidChangeEditing fires on every geometry update of a gesture.
	EventDidChangeEditing
	// EventDidEndEditing fires when a move or resize gesture ends or is cancelled.
	EventDidEndEditing
	// EventDidClose fires when the close handle is tapped. The host should
	// dispose of the element.
	EventDidClose

	numEvents
)

var eventNames = [numEvents]string{
	EventWillShowHandles:  "WillShowHandles",
	EventDidShowHandles:   "DidShowHandles",
	EventDidHideHandles:   "DidHideHandles",
	EventDidStartEditing:  "DidStartEditing",
	EventDidBeginEditing:  "DidBeginEditing",
	EventDidChangeEditing: "DidChangeEditing",
	EventDidEndEditing:    "DidEndEditing",
	EventDidClose:         "DidClose",
}

// String returns the event name.
func (ev Event) String() string {
	if ev < numEvents {
		return eventNames[ev]
	}
	return "Unknown"
}

// Handler receives the element that emitted an event.
type Handler func(*Element)

type subscription struct {
	id uint64
	fn func(Event, *Element)
}

// Notifier delivers element events to subscribers. Every event is an
// independent channel: a host subscribes only to the events it needs and
// unobserved events cost nothing.
//
// Subscribers run synchronously, in subscription order, on the goroutine
// that delivered the input to the element. The zero value is ready to use.
type Notifier struct {
	subs   [numEvents][]subscription
	any    []subscription
	nextID uint64
}

// On subscribes fn to ev and returns a function that removes the
// subscription. Calling the returned function more than once is harmless.
func (n *Notifier) On(ev Event, fn Handler) (cancel func()) {
	if ev >= numEvents || fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.subs[ev] = append(n.subs[ev], subscription{id: id, fn: func(_ Event, e *Element) { fn(e) }})
	return func() { n.subs[ev] = removeSub(n.subs[ev], id) }
}

// OnAny subscribes fn to every event. Useful for undo stacks and logging.
func (n *Notifier) OnAny(fn func(Event, *Element)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.any = append(n.any, subscription{id: id, fn: fn})
	return func() { n.any = removeSub(n.any, id) }
}

// emit delivers ev. The subscriber lists are snapshotted so handlers may
// subscribe or cancel while being called.
func (n *Notifier) emit(ev Event, e *Element) {
	if ev >= numEvents {
		return
	}
	subs := n.subs[ev]
	anys := n.any
	if len(subs) == 0 && len(anys) == 0 {
		return
	}
	for _, s := range append(subs[:len(subs):len(subs)], anys...) {
		s.fn(ev, e)
	}
}

func removeSub(subs []subscription, id uint64) []subscription {
	for i, s := range subs {
		if s.id == id {
			out := make([]subscription, 0, len(subs)-1)
			out = append(out, subs[:i]...)
			return append(out, subs[i+1:]...)
		}
	}
	return subs
}
