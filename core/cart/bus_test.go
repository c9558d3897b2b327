package cart

import (
	"sync"
	"testing"
)

func TestBus_publishOrder(t *testing.T) {
	bus := NewBus()

	var got []string
	bus.Subscribe(EventItemAdded, func(Event) { got = append(got, "first") })
	bus.Subscribe(EventItemAdded, func(Event) { got = append(got, "second") })
	bus.Subscribe(EventCartCleared, func(Event) { got = append(got, "cleared") })

	bus.Publish(Event{Kind: EventItemAdded})
	bus.Publish(Event{Kind: EventCartCleared})
	bus.Publish(Event{Kind: EventItemRemoved}) // no subscribers, no-op

	want := []string{"first", "second", "cleared"}
	if len(got) != len(want) {
		t.Fatalf("handlers called = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("handler order[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBus_concurrentSubscribePublish(t *testing.T) {
	bus := NewBus()

	var mu sync.Mutex
	var count int
	bus.Subscribe(EventCartUpdated, func(Event) {
		mu.Lock()
		count++
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			bus.Publish(Event{Kind: EventCartUpdated})
		}()
		go func() {
			defer wg.Done()
			bus.Subscribe(EventError, func(Event) {})
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if count != 10 {
		t.Errorf("publish count = %d, want 10", count)
	}
}
