package sim

import (
	"testing"
	"time"
)

func TestGameLoop_TickLimit(t *testing.T) {
	a := newTestArena(t, duel(), 2)
	loop := NewGameLoop(a, 60, false, 25, 10)

	loop.Run()

	if tick := a.Stats().Tick; tick != 25 {
		t.Errorf("tick = %d, want 25", tick)
	}
}

func TestGameLoop_Stop(t *testing.T) {
	a := newTestArena(t, duel(), 2)
	loop := NewGameLoop(a, 1000, true, 0, 0)

	done := make(chan struct{})
	go func() {
		loop.Run()
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	loop.Stop()
	loop.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after Stop")
	}
}
