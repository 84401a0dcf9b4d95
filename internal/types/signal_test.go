package types

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSignal_Set(t *testing.T) {
	t.Run("starts pending", func(t *testing.T) {
		s := NewSignal()
		if s.IsSet() {
			t.Error("new signal should be pending")
		}
		select {
		case <-s.Done():
			t.Error("done channel should not be closed before Set")
		default:
		}
	})

	t.Run("set is idempotent", func(t *testing.T) {
		s := NewSignal()
		s.Set()
		s.Set()
		if !s.IsSet() {
			t.Error("signal should be set")
		}
	})

	t.Run("concurrent set does not panic", func(t *testing.T) {
		s := NewSignal()
		var wg sync.WaitGroup
		for range 16 {
			wg.Go(s.Set)
		}
		wg.Wait()
		if !s.IsSet() {
			t.Error("signal should be set")
		}
	})
}

func TestSignal_Wait(t *testing.T) {
	t.Run("wait returns after set", func(t *testing.T) {
		s := NewSignal()
		var finished atomic.Bool

		go func() {
			time.Sleep(30 * time.Millisecond)
			finished.Store(true)
			s.Set()
		}()

		s.Wait()
		if !finished.Load() {
			t.Error("wait returned before the producer finished")
		}
	})

	t.Run("wait on set signal returns immediately", func(t *testing.T) {
		s := NewSignal()
		s.Set()

		start := time.Now()
		s.Wait()
		if elapsed := time.Since(start); elapsed > 10*time.Millisecond {
			t.Errorf("wait on set signal took %v", elapsed)
		}
	})

	t.Run("set before wait is not missed", func(t *testing.T) {
		s := NewSignal()
		s.Set()

		done := make(chan struct{})
		go func() {
			s.Wait()
			close(done)
		}()

		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatal("waiter missed a signal set before it started waiting")
		}
	})
}

func TestSignal_Monotonic(t *testing.T) {
	s := NewSignal()
	var sawSet atomic.Bool
	var regressed atomic.Bool

	var wg sync.WaitGroup
	for range 4 {
		wg.Go(func() {
			for range 10000 {
				if s.IsSet() {
					sawSet.Store(true)
				} else if sawSet.Load() {
					regressed.Store(true)
				}
			}
		})
	}
	s.Set()
	wg.Wait()

	if regressed.Load() {
		t.Error("signal observed pending after being observed signaled")
	}
	if !s.IsSet() {
		t.Error("signal should stay set")
	}
}
