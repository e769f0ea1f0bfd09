package sticker

import (
	"slices"
	"testing"
)

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{EventWillShowHandles, "WillShowHandles"},
		{EventDidShowHandles, "DidShowHandles"},
		{EventDidHideHandles, "DidHideHandles"},
		{EventDidStartEditing, "DidStartEditing"},
		{EventDidBeginEditing, "DidBeginEditing"},
		{EventDidChangeEditing, "DidChangeEditing"},
		{EventDidEndEditing, "DidEndEditing"},
		{EventDidClose, "DidClose"},
		{Event(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Event(%d).String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestNotifierOrder(t *testing.T) {
	var n Notifier
	var got []string

	n.On(EventDidClose, func(*Element) { got = append(got, "first") })
	n.OnAny(func(ev Event, _ *Element) { got = append(got, "any:"+ev.String()) })
	n.On(EventDidClose, func(*Element) { got = append(got, "second") })
	n.On(EventDidShowHandles, func(*Element) { got = append(got, "other") })

	n.emit(EventDidClose, nil)

	want := []string{"first", "second", "any:DidClose"}
	if !slices.Equal(got, want) {
		t.Errorf("delivery = %v, want %v", got, want)
	}
}

func TestNotifierCancel(t *testing.T) {
	var n Notifier
	calls := 0
	cancel := n.On(EventDidChangeEditing, func(*Element) { calls++ })
	cancelAny := n.OnAny(func(Event, *Element) { calls++ })

	n.emit(EventDidChangeEditing, nil)
	cancel()
	cancel()
	n.emit(EventDidChangeEditing, nil)
	cancelAny()
	n.emit(EventDidChangeEditing, nil)

	if calls != 3 {
		t.Errorf("calls = %d, want 3", calls)
	}
}

func TestNotifierCancelDuringEmit(t *testing.T) {
	var n Notifier
	var got []int
	var cancelSecond func()

	n.On(EventDidClose, func(*Element) {
		got = append(got, 1)
		cancelSecond()
	})
	cancelSecond = n.On(EventDidClose, func(*Element) { got = append(got, 2) })

	n.emit(EventDidClose, nil)
	n.emit(EventDidClose, nil)

	// The running emit still reaches the second handler; the next does not.
	if want := []int{1, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("calls = %v, want %v", got, want)
	}
}

func TestNotifierIgnoresBadInput(t *testing.T) {
	var n Notifier
	n.On(Event(99), func(*Element) { t.Error("out-of-range event delivered") })()
	n.On(EventDidClose, nil)()
	n.OnAny(nil)()
	n.emit(Event(99), nil)
	n.emit(EventDidClose, nil)
}

func TestNotifierReceivesElement(t *testing.T) {
	e := newTestElement(t)
	var got *Element
	e.Events().On(EventDidShowHandles, func(x *Element) { got = x })
	e.ShowEditingHandles()
	if got != e {
		t.Error("handler did not receive the emitting element")
	}
}
