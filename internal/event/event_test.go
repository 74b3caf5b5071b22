package event

import "testing"

type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(e Event) {
	r.events = append(r.events, e)
}

func TestDispatcher_SubscribeDispatch(t *testing.T) {
	d := NewDispatcher()
	a, b := &recorder{}, &recorder{}
	d.Subscribe(EnemyKilled, a)
	d.Subscribe(EnemyKilled, b)
	d.Subscribe(WaveEnded, b)

	d.Dispatch(Event{Type: EnemyKilled, Data: EnemyRemovedData{ID: 7, Reward: 10}})
	d.Dispatch(Event{Type: WaveEnded, Data: 1})
	d.Dispatch(Event{Type: GameOver})

	if len(a.events) != 1 {
		t.Fatalf("a received %d events, want 1", len(a.events))
	}
	if data, ok := a.events[0].Data.(EnemyRemovedData); !ok || data.ID != 7 || data.Reward != 10 {
		t.Errorf("unexpected payload %+v", a.events[0].Data)
	}
	if len(b.events) != 2 || b.events[1].Type != WaveEnded {
		t.Errorf("b received %+v", b.events)
	}
}

// subscriber подписывает late в момент первого события.
type subscriber struct {
	recorder
	d    *Dispatcher
	late *recorder
}

func (s *subscriber) OnEvent(e Event) {
	s.recorder.OnEvent(e)
	if len(s.events) == 1 {
		s.d.Subscribe(e.Type, s.late)
	}
}

func TestDispatcher_SubscribeDuringDispatch(t *testing.T) {
	d := NewDispatcher()
	late := &recorder{}
	d.Subscribe(TowerPlaced, &subscriber{d: d, late: late})

	d.Dispatch(Event{Type: TowerPlaced})
	if len(late.events) != 0 {
		t.Fatalf("listener added during dispatch got the same event")
	}
	d.Dispatch(Event{Type: TowerPlaced})
	if len(late.events) != 1 {
		t.Errorf("late listener got %d events, want 1", len(late.events))
	}
}
