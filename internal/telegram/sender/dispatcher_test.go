package sender

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/WorldDarkMarket/telegram-bot-admin/internal/config"
	"github.com/WorldDarkMarket/telegram-bot-admin/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(config.LoggingConfig{Level: "error"})
	os.Exit(m.Run())
}

func TestDispatcherRunsJob(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1, QueueSize: 4})

	done := make(chan struct{})
	err := d.Enqueue(context.Background(), "send", "/test", func() error {
		close(done)
		return nil
	})
	if err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not run")
	}

	d.Close()
	if n := d.ErrorCount(); n != 0 {
		t.Fatalf("unexpected error count: %d", n)
	}
}

func TestDispatcherCountsFailedJobs(t *testing.T) {
	d := NewDispatcher(Options{
		Workers:      1,
		QueueSize:    4,
		RetryBackoff: time.Millisecond,
		MaxDuration:  time.Second,
	})

	for i := 0; i < 2; i++ {
		err := d.Enqueue(context.Background(), "send", "/test", func() error {
			return errors.New("send rejected")
		})
		if err != nil {
			t.Fatalf("enqueue: %v", err)
		}
	}

	d.Close()
	if n := d.ErrorCount(); n != 2 {
		t.Fatalf("unexpected error count: %d", n)
	}
}

func TestEnqueueAfterClose(t *testing.T) {
	d := NewDispatcher(Options{Workers: 1})
	d.Close()

	err := d.Enqueue(context.Background(), "send", "/test", func() error { return nil })
	if !errors.Is(err, ErrQueueClosed) {
		t.Fatalf("unexpected error: %v", err)
	}
}
