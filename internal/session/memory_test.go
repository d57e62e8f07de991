package session

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	t.Run("GetMissing", func(t *testing.T) {
		sess, err := store.Get(ctx, 1)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if sess != nil {
			t.Errorf("Expected nil session, got %+v", sess)
		}
	})

	t.Run("SetGet", func(t *testing.T) {
		if err := store.Set(ctx, &Session{UserID: 1, Step: StepService}); err != nil {
			t.Fatalf("Set failed: %v", err)
		}

		sess, err := store.Get(ctx, 1)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if sess == nil || sess.Step != StepService {
			t.Errorf("Expected session at service step, got %+v", sess)
		}
	})

	t.Run("GetReturnsCopy", func(t *testing.T) {
		sess, _ := store.Get(ctx, 1)
		sess.Service = "Стрижка"

		again, _ := store.Get(ctx, 1)
		if again.Service != "" {
			t.Error("Mutation of returned session leaked into the store")
		}
	})

	t.Run("Clear", func(t *testing.T) {
		if err := store.Clear(ctx, 1); err != nil {
			t.Fatalf("Clear failed: %v", err)
		}
		sess, _ := store.Get(ctx, 1)
		if sess != nil {
			t.Errorf("Expected nil after clear, got %+v", sess)
		}
	})

	t.Run("UsersIndependent", func(t *testing.T) {
		store.Set(ctx, &Session{UserID: 2, Step: StepDate, Service: "Масаж"})
		store.Set(ctx, &Session{UserID: 3, Step: StepService})

		store.Clear(ctx, 3)

		sess, _ := store.Get(ctx, 2)
		if sess == nil || sess.Service != "Масаж" {
			t.Errorf("Clearing one user affected another: %+v", sess)
		}
	})
}
