package connection

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestBackoff(t *testing.T) {
	t.Run("DefaultSequence", func(t *testing.T) {
		b := NewBackoff()

		// Base values: 500ms, 1s, 2s, 4s, 8s, 10s, 10s...
		expected := append(BackoffSequence(), MaxBackoff)

		for i, exp := range expected {
			base := b.Current()
			_ = b.Next()
			if base != exp {
				t.Errorf("Attempt %d: base = %v, want %v", i, base, exp)
			}
		}
	})

	t.Run("Jitter", func(t *testing.T) {
		b := NewBackoff()

		samples := make([]time.Duration, 20)
		for i := range samples {
			samples[i] = b.Peek()
		}

		upper := time.Duration(float64(InitialBackoff)*(1+JitterFactor)) + time.Millisecond
		allSame := true
		for i, s := range samples {
			if s < InitialBackoff || s > upper {
				t.Errorf("Sample %d: %v out of range [%v, %v]", i, s, InitialBackoff, upper)
			}
			if s != samples[0] {
				allSame = false
			}
		}
		if allSame {
			t.Error("All jittered samples are identical - jitter may not be working")
		}
		if b.Attempts() != 0 {
			t.Errorf("Peek advanced the backoff: Attempts() = %d", b.Attempts())
		}
	})

	t.Run("Reset", func(t *testing.T) {
		b := NewBackoff()
		for i := 0; i < 4; i++ {
			b.Next()
		}
		if b.Current() <= InitialBackoff {
			t.Error("Backoff should have increased")
		}

		b.Reset()
		if b.Current() != InitialBackoff {
			t.Errorf("Current() = %v after reset, want %v", b.Current(), InitialBackoff)
		}
		if b.Attempts() != 0 {
			t.Errorf("Attempts() = %d after reset, want 0", b.Attempts())
		}
	})

	t.Run("CustomConfig", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{
			Initial:    100 * time.Millisecond,
			Max:        500 * time.Millisecond,
			Multiplier: 3.0,
		})

		expected := []time.Duration{
			100 * time.Millisecond,
			300 * time.Millisecond,
			500 * time.Millisecond,
			500 * time.Millisecond,
		}
		for i, exp := range expected {
			if got := b.Next(); got != exp {
				t.Errorf("Attempt %d: got %v, want %v", i, got, exp)
			}
		}
	})

	t.Run("InvalidConfigFallsBack", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Multiplier: 0.5, Jitter: -1})
		if got := b.Next(); got != InitialBackoff {
			t.Errorf("Next() = %v, want %v", got, InitialBackoff)
		}
		if got := b.Current(); got != 2*InitialBackoff {
			t.Errorf("Current() = %v, want %v", got, 2*InitialBackoff)
		}
	})

	t.Run("ConcurrentUse", func(t *testing.T) {
		b := NewBackoff()
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 10; j++ {
					b.Next()
					b.Peek()
				}
			}()
		}
		wg.Wait()
		if b.Attempts() != 80 {
			t.Errorf("Attempts() = %d, want 80", b.Attempts())
		}
	})
}

func TestBackoffWait(t *testing.T) {
	t.Run("Sleeps", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Initial: 20 * time.Millisecond, Max: time.Second})
		start := time.Now()
		if err := b.Wait(context.Background()); err != nil {
			t.Fatalf("Wait: %v", err)
		}
		if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
			t.Errorf("Wait returned after %v, want >= 20ms", elapsed)
		}
		if b.Attempts() != 1 {
			t.Errorf("Attempts() = %d, want 1", b.Attempts())
		}
	})

	t.Run("Cancelled", func(t *testing.T) {
		b := NewBackoffWithConfig(BackoffConfig{Initial: time.Hour, Max: time.Hour})
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := b.Wait(ctx)
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("Wait err = %v, want DeadlineExceeded", err)
		}
		if time.Since(start) > time.Second {
			t.Error("Wait ignored cancellation")
		}
	})
}

func TestBackoffSequence(t *testing.T) {
	seq := BackoffSequence()
	if len(seq) != 6 {
		t.Errorf("BackoffSequence() has %d elements, want 6", len(seq))
	}
	if seq[0] != InitialBackoff {
		t.Errorf("First element = %v, want %v", seq[0], InitialBackoff)
	}
	if seq[len(seq)-1] != MaxBackoff {
		t.Errorf("Last element = %v, want %v", seq[len(seq)-1], MaxBackoff)
	}
}
