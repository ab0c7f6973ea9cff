package game

import "testing"

func TestEventBusDeliversInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	var order []int
	first := &funcSubscriber{fn: func(TournamentEvent) { order = append(order, 1) }}
	second := &funcSubscriber{fn: func(TournamentEvent) { order = append(order, 2) }}
	bus.Subscribe(first)
	bus.Subscribe(second)

	bus.Publish(NewReplayEvent(1, 0))

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Errorf("delivery order = %v, want [1 2]", order)
	}
}

func TestEventBusUnsubscribe(t *testing.T) {
	t.Parallel()

	bus := NewEventBus()
	calls := 0
	sub := &funcSubscriber{fn: func(TournamentEvent) { calls++ }}
	bus.Subscribe(sub)

	bus.Publish(NewReplayEvent(1, 0))
	bus.Unsubscribe(sub)
	bus.Publish(NewReplayEvent(1, 0))

	if calls != 1 {
		t.Errorf("calls = %d, want 1 after unsubscribe", calls)
	}
}

func TestEventTypesAreDistinct(t *testing.T) {
	t.Parallel()

	types := []EventType{
		EventTypeTournamentStart,
		EventTypeRoundStart,
		EventTypeGroupsFormed,
		EventTypeChoicesCollected,
		EventTypeDuelsCompared,
		EventTypeScoreTable,
		EventTypeReplay,
		EventTypeElimination,
		EventTypeTournamentEnd,
	}
	seen := make(map[EventType]bool)
	for _, et := range types {
		if seen[et] {
			t.Errorf("duplicate event type %q", et)
		}
		seen[et] = true
	}
}

type funcSubscriber struct {
	fn func(TournamentEvent)
}

func (s *funcSubscriber) OnEvent(event TournamentEvent) { s.fn(event) }
