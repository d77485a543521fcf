package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		// Retryable errors
		{"connection refused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), true},
		{"connection reset", errors.New("read: connection reset by peer"), true},
		{"timeout", errors.New("i/o timeout"), true},
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("ping: %w", context.DeadlineExceeded), true},
		{"sqlite busy", errors.New("database is locked (5) (SQLITE_BUSY)"), true},
		{"http 503", errors.New("libsql: server returned 503"), true},
		{"too many connections", errors.New("FATAL: sorry, too many connections for role"), true},
		{"case insensitive", errors.New("Connection Refused"), true},

		// Non-retryable errors
		{"bad password", errors.New("FATAL: password authentication failed for user"), false},
		{"unauthorized", errors.New("HTTP 401 Unauthorized"), false},
		{"missing database", errors.New(`database "specs" does not exist`), false},
		{"invalid dsn", errors.New("invalid connection string"), false},

		// Edge cases
		{"nil error", nil, false},
		{"cancelled", context.Canceled, false},
		{"unknown error", errors.New("something went wrong"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRetryable(tt.err); got != tt.expected {
				t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.expected)
			}
		})
	}
}

func TestCalculateDelay(t *testing.T) {
	tests := []struct {
		name             string
		base             time.Duration
		attempt          int
		maxJitterPercent int
		expectedMin      time.Duration
		expectedMax      time.Duration
	}{
		{"first attempt", time.Second, 0, 0, time.Second, time.Second},
		{"second attempt doubles", time.Second, 1, 0, 2 * time.Second, 2 * time.Second},
		{"third attempt quadruples", time.Second, 2, 0, 4 * time.Second, 4 * time.Second},
		{"with 25% jitter", time.Second, 0, 25, time.Second, 1250 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay := CalculateDelay(tt.base, tt.attempt, tt.maxJitterPercent)
			if delay < tt.expectedMin || delay > tt.expectedMax {
				t.Errorf("CalculateDelay(%v, %d, %d) = %v, want between %v and %v",
					tt.base, tt.attempt, tt.maxJitterPercent, delay, tt.expectedMin, tt.expectedMax)
			}
		})
	}
}

func TestDo_SuccessOnFirstAttempt(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxRetries: 3, BaseDelay: time.Millisecond}, func(context.Context) error {
		attempts++
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDo_SuccessAfterRetries(t *testing.T) {
	attempts := 0
	var notified []int
	cfg := Config{
		MaxRetries: 3,
		BaseDelay:  time.Millisecond,
		OnRetry:    func(_ time.Duration, attempt, _ int) { notified = append(notified, attempt) },
	}

	err := Do(context.Background(), cfg, func(context.Context) error {
		attempts++
		if attempts < 3 {
			return errors.New("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Do() error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
	if len(notified) != 2 || notified[0] != 1 || notified[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", notified)
	}
}

func TestDo_NonRetryableError(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxRetries: 3, BaseDelay: time.Millisecond}, func(context.Context) error {
		attempts++
		return errors.New("password authentication failed")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1 (no retries for non-retryable)", attempts)
	}
}

func TestDo_ExhaustedRetries(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	attempts := 0
	cfg := Config{MaxRetries: 3, BaseDelay: time.Millisecond, Logger: zap.New(core)}

	err := Do(context.Background(), cfg, func(context.Context) error {
		attempts++
		return errors.New("connection refused")
	})
	if err == nil {
		t.Fatal("expected error after exhausted retries")
	}
	// Initial attempt + 3 retries = 4 total
	if attempts != 4 {
		t.Errorf("attempts = %d, want 4 (initial + 3 retries)", attempts)
	}
	if got := logs.FilterMessage("retrying").Len(); got != 3 {
		t.Errorf("logged %d retries, want 3", got)
	}
	if got := logs.FilterMessage("retry attempts exhausted").Len(); got != 1 {
		t.Errorf("logged %d exhaustion messages, want 1", got)
	}
}

func TestDo_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	attempts := 0
	err := Do(ctx, Config{MaxRetries: 3, BaseDelay: 100 * time.Millisecond}, func(context.Context) error {
		attempts++
		if attempts == 1 {
			cancel()
		}
		return errors.New("connection refused")
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Do() error = %v, want context.Canceled", err)
	}
	if attempts != 1 {
		t.Errorf("attempts = %d, want 1", attempts)
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.MaxRetries != DefaultMaxRetries {
		t.Errorf("MaxRetries = %d, want %d", cfg.MaxRetries, DefaultMaxRetries)
	}
	if cfg.BaseDelay != DefaultBaseDelay {
		t.Errorf("BaseDelay = %v, want %v", cfg.BaseDelay, DefaultBaseDelay)
	}
	if cfg.MaxJitterPercent != DefaultMaxJitterPercent {
		t.Errorf("MaxJitterPercent = %d, want %d", cfg.MaxJitterPercent, DefaultMaxJitterPercent)
	}
	if cfg.Logger != nil {
		t.Error("Logger should be nil by default")
	}
}
