package editor

import (
	"reflect"
	"testing"
)

func TestDispatchOrder(t *testing.T) {
	var l listenerList[int]
	var got []string

	l.subscribe(func(int) { got = append(got, "a") })
	l.subscribe(func(int) { got = append(got, "b") })
	l.subscribe(func(int) { got = append(got, "c") })

	l.dispatch(0)

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delivery order = %v; want %v", got, want)
	}
}

func TestCancel(t *testing.T) {
	var l listenerList[int]
	var calls int

	sub := l.subscribe(func(int) { calls++ })
	l.dispatch(1)
	sub.Cancel()
	l.dispatch(2)

	if calls != 1 {
		t.Errorf("calls = %d; want 1", calls)
	}
	if l.len() != 0 {
		t.Errorf("len = %d; want 0", l.len())
	}

	// Cancelling twice is a no-op.
	sub.Cancel()
}

func TestCancelPreservesOrder(t *testing.T) {
	var l listenerList[int]
	var got []string

	l.subscribe(func(int) { got = append(got, "a") })
	mid := l.subscribe(func(int) { got = append(got, "b") })
	l.subscribe(func(int) { got = append(got, "c") })

	mid.Cancel()
	l.dispatch(0)

	want := []string{"a", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("delivery order = %v; want %v", got, want)
	}
}

func TestCancelDuringDispatch(t *testing.T) {
	// The dispatch snapshot is taken before iterating: a listener that
	// cancels a later subscription does not stop this delivery.
	var l listenerList[int]
	var got []string

	var second *Subscription
	l.subscribe(func(int) {
		got = append(got, "first")
		second.Cancel()
	})
	second = l.subscribe(func(int) { got = append(got, "second") })

	l.dispatch(0)
	if !reflect.DeepEqual(got, []string{"first", "second"}) {
		t.Errorf("delivery = %v; want snapshot delivery to both", got)
	}

	l.dispatch(0)
	if len(got) != 3 || got[2] != "first" {
		t.Errorf("second dispatch delivery = %v; want only first", got)
	}
}

func TestSubscribeDuringDispatch(t *testing.T) {
	var l listenerList[int]
	var calls int

	l.subscribe(func(int) {
		if calls == 0 {
			l.subscribe(func(int) { calls += 100 })
		}
		calls++
	})

	l.dispatch(0)
	if calls != 1 {
		t.Errorf("calls after first dispatch = %d; want 1 (new listener not in snapshot)", calls)
	}

	l.dispatch(0)
	if calls != 102 {
		t.Errorf("calls after second dispatch = %d; want 102", calls)
	}
}
