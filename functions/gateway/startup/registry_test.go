package startup

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRegistryRunAll(t *testing.T) {
	var order []string
	r := &Registry{}
	r.Register("first", func(ctx context.Context) error {
		order = append(order, "first")
		return nil
	})
	r.Register("second", func(ctx context.Context) error {
		order = append(order, "second")
		return nil
	})

	if err := r.RunAll(context.Background()); err != nil {
		t.Fatalf("RunAll() error = %v", err)
	}
	if strings.Join(order, ",") != "first,second" {
		t.Errorf("unexpected order %v", order)
	}
}

func TestRegistryStopsOnFailure(t *testing.T) {
	ran := false
	r := &Registry{}
	r.Register("broken", func(ctx context.Context) error {
		return errors.New("boom")
	})
	r.Register("never", func(ctx context.Context) error {
		ran = true
		return nil
	})

	err := r.RunAll(context.Background())
	if err == nil || !strings.Contains(err.Error(), "startup task 'broken' failed") {
		t.Errorf("RunAll() error = %v", err)
	}
	if ran {
		t.Error("tasks after a failure should not run")
	}
	if len(r.tasks) != 2 {
		t.Errorf("expected 2 tasks, got %d", len(r.tasks))
	}
}
