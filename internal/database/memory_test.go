package database

import (
	"context"
	"sync"
	"testing"
)

func TestMemoryCreateBooking(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	nb := NewBooking{
		UserID:  42,
		Service: "Стрижка",
		Name:    "Olena",
		Phone:   "+380991234567",
		Date:    "2025-03-11",
		Time:    "10:00",
	}

	b, err := store.CreateBooking(ctx, nb)
	if err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}
	if b.ID == 0 {
		t.Error("Expected assigned ID")
	}
	if b.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}

	taken, err := store.SlotTaken(ctx, "2025-03-11", "10:00")
	if err != nil {
		t.Fatalf("SlotTaken failed: %v", err)
	}
	if !taken {
		t.Error("Expected slot to be taken after create")
	}

	// Тот же слот повторно — конфликт
	if _, err := store.CreateBooking(ctx, nb); err != ErrSlotTaken {
		t.Errorf("Expected ErrSlotTaken, got %v", err)
	}

	// Другое время того же дня — свободно
	nb.Time = "11:00"
	if _, err := store.CreateBooking(ctx, nb); err != nil {
		t.Errorf("Expected second slot to be free, got %v", err)
	}
}

func TestMemoryConcurrentCreateSameSlot(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = store.CreateBooking(ctx, NewBooking{
				UserID: int64(i),
				Date:   "2025-03-11",
				Time:   "10:00",
			})
		}(i)
	}
	wg.Wait()

	var created, conflicts int
	for _, err := range errs {
		switch err {
		case nil:
			created++
		case ErrSlotTaken:
			conflicts++
		default:
			t.Fatalf("Unexpected error: %v", err)
		}
	}

	if created != 1 {
		t.Errorf("Expected exactly one successful create, got %d", created)
	}
	if conflicts != attempts-1 {
		t.Errorf("Expected %d conflicts, got %d", attempts-1, conflicts)
	}

	bookings, err := store.BookingsByDateRange(ctx, "2025-03-11", "2025-03-11")
	if err != nil {
		t.Fatalf("BookingsByDateRange failed: %v", err)
	}
	if len(bookings) != 1 {
		t.Errorf("Expected one stored booking for the slot, got %d", len(bookings))
	}
}

func TestMemoryBookingsByUser(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	slots := []string{"10:00", "11:00", "12:00"}
	for _, slot := range slots {
		if _, err := store.CreateBooking(ctx, NewBooking{UserID: 7, Date: "2025-03-11", Time: slot}); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}
	if _, err := store.CreateBooking(ctx, NewBooking{UserID: 8, Date: "2025-03-11", Time: "13:00"}); err != nil {
		t.Fatalf("CreateBooking failed: %v", err)
	}

	bookings, err := store.BookingsByUser(ctx, 7)
	if err != nil {
		t.Fatalf("BookingsByUser failed: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("Expected 3 bookings, got %d", len(bookings))
	}

	// Новые первыми
	if bookings[0].Time != "12:00" || bookings[2].Time != "10:00" {
		t.Errorf("Expected most-recent-first order, got %s..%s", bookings[0].Time, bookings[2].Time)
	}

	empty, err := store.BookingsByUser(ctx, 999)
	if err != nil {
		t.Fatalf("BookingsByUser failed: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected no bookings for unknown user, got %d", len(empty))
	}
}

func TestMemoryBookingsByDateRange(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	seed := []NewBooking{
		{UserID: 1, Date: "2025-03-13", Time: "12:00"},
		{UserID: 2, Date: "2025-03-11", Time: "11:00"},
		{UserID: 3, Date: "2025-03-11", Time: "10:00"},
		{UserID: 4, Date: "2025-03-20", Time: "10:00"},
	}
	for _, nb := range seed {
		if _, err := store.CreateBooking(ctx, nb); err != nil {
			t.Fatalf("CreateBooking failed: %v", err)
		}
	}

	bookings, err := store.BookingsByDateRange(ctx, "2025-03-11", "2025-03-14")
	if err != nil {
		t.Fatalf("BookingsByDateRange failed: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("Expected 3 bookings in range, got %d", len(bookings))
	}

	// Сортировка по дате, затем по времени
	if bookings[0].Time != "10:00" || bookings[1].Time != "11:00" || bookings[2].Date != "2025-03-13" {
		t.Errorf("Unexpected order: %+v", bookings)
	}
}
