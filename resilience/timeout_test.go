package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestNewTimeout_Default(t *testing.T) {
	timeout := NewTimeout(TimeoutConfig{})

	if timeout.config.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", timeout.config.Timeout)
	}
}

func TestTimeout_ExecuteSuccess(t *testing.T) {
	timeout := NewTimeout(TimeoutConfig{Timeout: time.Second})

	executed := false
	err := timeout.Execute(context.Background(), func(ctx context.Context) error {
		executed = true
		return nil
	})

	if err != nil {
		t.Errorf("Execute() error = %v", err)
	}
	if !executed {
		t.Error("operation was not executed")
	}
}

func TestTimeout_ExecuteError(t *testing.T) {
	timeout := NewTimeout(TimeoutConfig{Timeout: time.Second})

	testErr := errors.New("load failed")
	err := timeout.Execute(context.Background(), func(ctx context.Context) error {
		return testErr
	})

	if !errors.Is(err, testErr) {
		t.Errorf("Execute() error = %v, want %v", err, testErr)
	}
}

func TestTimeout_ExecuteTimeout(t *testing.T) {
	timeout := NewTimeout(TimeoutConfig{Timeout: 10 * time.Millisecond})

	err := timeout.Execute(context.Background(), func(ctx context.Context) error {
		time.Sleep(100 * time.Millisecond)
		return nil
	})

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Execute() error = %v, want ErrTimeout", err)
	}
}

func TestTimeout_ExecuteContextCancelled(t *testing.T) {
	timeout := NewTimeout(TimeoutConfig{Timeout: time.Second})

	ctx, cancel := context.WithCancel(context.Background())

	err := timeout.Execute(ctx, func(ctx context.Context) error {
		cancel()
		<-ctx.Done()
		return ctx.Err()
	})

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Execute() error = %v, want context.Canceled", err)
	}
}

func TestTimeout_OperationSeesCancellation(t *testing.T) {
	timeout := NewTimeout(TimeoutConfig{Timeout: 50 * time.Millisecond})

	ctxDoneCh := make(chan bool, 1)
	err := timeout.Execute(context.Background(), func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			ctxDoneCh <- true
			return ctx.Err()
		case <-time.After(time.Second):
			ctxDoneCh <- false
			return nil
		}
	})

	if !errors.Is(err, ErrTimeout) {
		t.Errorf("Execute() error = %v, want ErrTimeout", err)
	}

	select {
	case ctxDone := <-ctxDoneCh:
		if !ctxDone {
			t.Error("operation never saw the cancelled context")
		}
	case <-time.After(100 * time.Millisecond):
		t.Error("operation goroutine did not complete")
	}
}

func TestExecuteWithTimeout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		err := ExecuteWithTimeout(context.Background(), time.Second, func(ctx context.Context) error {
			return nil
		})
		if err != nil {
			t.Errorf("ExecuteWithTimeout() error = %v", err)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		err := ExecuteWithTimeout(context.Background(), 10*time.Millisecond, func(ctx context.Context) error {
			time.Sleep(100 * time.Millisecond)
			return nil
		})
		if !errors.Is(err, ErrTimeout) {
			t.Errorf("ExecuteWithTimeout() error = %v, want ErrTimeout", err)
		}
	})
}
