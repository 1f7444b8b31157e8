package lifecycle_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/triage-labs/quorum/pkg/lifecycle"
)

func TestStartupHooks(t *testing.T) {
	c := lifecycle.New()

	var count atomic.Int32
	c.OnStartup(func() { count.Add(1) })
	c.OnStartup(func() { count.Add(1) })

	if c.Ready() {
		t.Error("Ready() true before WaitForStartup")
	}

	c.WaitForStartup()

	if count.Load() != 2 {
		t.Errorf("startup hooks ran %d times, want 2", count.Load())
	}
	if !c.Ready() {
		t.Error("Ready() false after WaitForStartup")
	}
}

func TestShutdown(t *testing.T) {
	c := lifecycle.New()

	var cleaned atomic.Bool
	c.OnShutdown(func() {
		<-c.Context().Done()
		cleaned.Store(true)
	})

	if err := c.Shutdown(time.Second); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if !cleaned.Load() {
		t.Error("shutdown hook did not run")
	}
	if c.Context().Err() == nil {
		t.Error("context not cancelled after shutdown")
	}
}

func TestShutdownTimeout(t *testing.T) {
	c := lifecycle.New()

	c.OnShutdown(func() {
		<-c.Context().Done()
		time.Sleep(time.Second)
	})

	if err := c.Shutdown(10 * time.Millisecond); err == nil {
		t.Fatal("expected timeout error")
	}
}
