package httputil

import (
	"context"
	"errors"
	"testing"
	"time"
)

var errTransient = errors.New("transient")

func TestRetryable(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}
	err := Retryable(errTransient)
	if !IsRetryable(err) {
		t.Error("IsRetryable should report a wrapped error")
	}
	if err.Error() != errTransient.Error() {
		t.Errorf("message not preserved: %s", err)
	}
	if !errors.Is(err, errTransient) {
		t.Error("Retryable should unwrap to the cause")
	}
	if IsRetryable(errTransient) {
		t.Error("plain errors are not retryable")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name      string
		failures  int
		retryable bool
		attempts  int
		wantCalls int
		wantErr   bool
	}{
		{"first try", 0, true, 3, 1, false},
		{"recovers", 2, true, 3, 3, false},
		{"exhausted", 5, true, 3, 3, true},
		{"permanent", 5, false, 3, 1, true},
		{"zero attempts runs once", 0, true, 0, 1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := Retry(ctx, tt.attempts, time.Millisecond, func() error {
				calls++
				if calls <= tt.failures {
					if tt.retryable {
						return Retryable(errTransient)
					}
					return errTransient
				}
				return nil
			})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Hour, func() error {
		return Retryable(errTransient)
	})
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestPolicyDo(t *testing.T) {
	calls := 0
	p := Policy{Attempts: 2, Delay: time.Millisecond}
	_ = p.Do(context.Background(), func() error {
		calls++
		return Retryable(errTransient)
	})
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
