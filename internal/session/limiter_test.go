package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

type MockCounter struct {
	counts  map[string]int64
	expires map[string]time.Duration
	fail    bool
}

func (m *MockCounter) Incr(_ context.Context, key string) (int64, error) {
	if m.fail {
		return 0, errors.New("redis down")
	}
	m.counts[key]++
	return m.counts[key], nil
}

func (m *MockCounter) Expire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.expires[key] = ttl
	return true, nil
}

func TestLimiter_Allow(t *testing.T) {
	counter := &MockCounter{counts: map[string]int64{}, expires: map[string]time.Duration{}}
	l := NewLimiter(counter, 2, time.Hour)
	ctx := context.Background()

	for i, want := range []bool{true, true, false} {
		ok, err := l.Allow(ctx, 7, "export")
		if err != nil {
			t.Fatalf("Allow failed: %v", err)
		}
		if ok != want {
			t.Errorf("call %d: got %v, want %v", i+1, ok, want)
		}
	}

	if counter.expires["ratelimit:7:export"] != time.Hour {
		t.Errorf("window not set, got %v", counter.expires["ratelimit:7:export"])
	}

	if ok, _ := l.Allow(ctx, 8, "export"); !ok {
		t.Error("other chat should not be limited")
	}
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&MockCounter{fail: true}, 0, time.Hour)

	ok, err := l.Allow(context.Background(), 1, "export")
	if err != nil || !ok {
		t.Errorf("got (%v, %v), want (true, nil)", ok, err)
	}
}

func TestLimiter_CounterError(t *testing.T) {
	l := NewLimiter(&MockCounter{fail: true}, 5, time.Hour)

	if _, err := l.Allow(context.Background(), 1, "export"); err == nil {
		t.Error("expected error, got nil")
	}
}
