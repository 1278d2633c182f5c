package shutdown

import (
	"context"
	"errors"
	"sync"
	"syscall"
	"testing"
	"time"
)

func waitResult(t *testing.T, errCh <-chan error) error {
	t.Helper()
	select {
	case err := <-errCh:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Wait() did not complete in time")
		return nil
	}
}

func TestHandler_Wait_WithSignal(t *testing.T) {
	h := NewHandler(5 * time.Second)

	var (
		mu    sync.Mutex
		order []int
	)
	for i := 1; i <= 3; i++ {
		i := i
		h.OnShutdown(func(context.Context) error {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			return nil
		})
	}

	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()

	time.Sleep(50 * time.Millisecond)
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGINT)

	if err := waitResult(t, errCh); err != nil {
		t.Errorf("Wait() = %v, want nil", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(order) != 3 || order[0] != 3 || order[1] != 2 || order[2] != 1 {
		t.Errorf("hooks ran as %v, want [3 2 1]", order)
	}

	select {
	case <-h.Done():
	default:
		t.Error("Done channel should be closed after Wait")
	}
}

func TestHandler_Fail(t *testing.T) {
	h := NewHandler(time.Second)
	ran := false
	h.OnShutdown(func(context.Context) error {
		ran = true
		return nil
	})

	acceptErr := errors.New("accept: too many open files")
	errCh := make(chan error, 1)
	go func() { errCh <- h.Wait() }()

	h.Fail(acceptErr)
	h.Fail(errors.New("ignored"))

	err := waitResult(t, errCh)
	if !errors.Is(err, acceptErr) {
		t.Errorf("Wait() = %v, want %v", err, acceptErr)
	}
	if !ran {
		t.Error("hooks should run on Fail")
	}
}

func TestHandler_FailNil(t *testing.T) {
	h := NewHandler(time.Second)
	h.Fail(nil)

	if err := h.Wait(); err != nil {
		t.Errorf("Wait() after Fail(nil) = %v, want nil", err)
	}
}

func TestHandler_Wait_HookError(t *testing.T) {
	h := NewHandler(time.Second)
	hookErr := errors.New("flush failed")
	secondRan := false

	h.OnShutdown(func(context.Context) error {
		secondRan = true
		return nil
	})
	h.OnShutdown(func(context.Context) error { return hookErr })

	h.Fail(nil)
	err := h.Wait()
	if !errors.Is(err, hookErr) {
		t.Errorf("Wait() = %v, want %v", err, hookErr)
	}
	if !secondRan {
		t.Error("a failing hook must not stop the remaining hooks")
	}
}

func TestHandler_HookTimeout(t *testing.T) {
	h := NewHandler(20 * time.Millisecond)
	h.OnShutdown(func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	h.Fail(nil)
	if err := h.Wait(); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Wait() = %v, want deadline exceeded", err)
	}
}

func TestHandler_ConcurrentOnShutdown(t *testing.T) {
	h := NewHandler(time.Second)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			h.OnShutdown(func(context.Context) error { return nil })
		}()
	}
	wg.Wait()

	h.mu.Lock()
	n := len(h.hooks)
	h.mu.Unlock()
	if n != 50 {
		t.Errorf("registered %d hooks, want 50", n)
	}
}
