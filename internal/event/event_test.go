package event

import (
	"testing"

	"ringtime/internal/component"
)

type recorder struct {
	got []Event
}

func (r *recorder) OnEvent(e Event) { r.got = append(r.got, e) }

func TestDispatchReachesSubscribers(t *testing.T) {
	d := NewDispatcher()
	first, second := &recorder{}, &recorder{}
	d.Subscribe(ActionAccepted, first)
	d.Subscribe(ActionAccepted, second)
	d.Subscribe(RoundLost, second)

	d.Dispatch(Event{Type: ActionAccepted, Data: HitData{Points: 10}})

	if len(first.got) != 1 || len(second.got) != 1 {
		t.Fatalf("expected one event each, got %d and %d", len(first.got), len(second.got))
	}
	if hit, ok := first.got[0].Data.(HitData); !ok || hit.Points != 10 {
		t.Errorf("unexpected payload %#v", first.got[0].Data)
	}
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(RoundLost, a)
	d.Subscribe(RoundLost, b)
	d.Unsubscribe(RoundLost, a)

	d.Dispatch(Event{Type: RoundLost})

	if len(a.got) != 0 {
		t.Error("expected unsubscribed listener to stay silent")
	}
	if len(b.got) != 1 {
		t.Errorf("expected remaining listener to get 1 event, got %d", len(b.got))
	}
}

func TestListenerFunc(t *testing.T) {
	d := NewDispatcher()
	calls := 0
	d.Subscribe(HighScoreBeaten, ListenerFunc(func(Event) { calls++ }))
	d.Dispatch(Event{Type: HighScoreBeaten})
	d.Dispatch(Event{Type: ActionAccepted})
	if calls != 1 {
		t.Errorf("expected 1 call, got %d", calls)
	}
}

func TestKindOf(t *testing.T) {
	if KindOf(Event{Type: ActionAccepted}) != component.ResetHit {
		t.Error("expected ActionAccepted to map to hit")
	}
	if KindOf(Event{Type: RoundLost}) != component.ResetLoss {
		t.Error("expected RoundLost to map to loss")
	}
	if KindOf(Event{Type: HighScoreBeaten}) != component.ResetNone {
		t.Error("expected HighScoreBeaten to map to none")
	}
}
