package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"zapysnyk/internal/models"
)

// Memory — хранилище записей в памяти. Используется в тестах и при запуске
// без PostgreSQL (driver: memory). Уникальность слота обеспечивается
// проверкой и вставкой под одним мьютексом.
type Memory struct {
	mu       sync.Mutex
	nextID   int64
	bookings []models.Booking
	slots    map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{
		nextID: 1,
		slots:  make(map[string]struct{}),
	}
}

func slotKey(date, timeLabel string) string {
	return date + " " + timeLabel
}

func (m *Memory) CreateBooking(ctx context.Context, nb NewBooking) (*models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	key := slotKey(nb.Date, nb.Time)
	if _, taken := m.slots[key]; taken {
		return nil, ErrSlotTaken
	}

	b := models.Booking{
		ID:        m.nextID,
		UserID:    nb.UserID,
		Service:   nb.Service,
		Name:      nb.Name,
		Phone:     nb.Phone,
		Date:      nb.Date,
		Time:      nb.Time,
		CreatedAt: time.Now(),
	}
	m.nextID++
	m.slots[key] = struct{}{}
	m.bookings = append(m.bookings, b)

	return &b, nil
}

func (m *Memory) SlotTaken(ctx context.Context, date, timeLabel string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, taken := m.slots[slotKey(date, timeLabel)]
	return taken, nil
}

func (m *Memory) BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	// Новые записи первыми
	for i := len(m.bookings) - 1; i >= 0; i-- {
		if m.bookings[i].UserID == userID {
			out = append(out, m.bookings[i])
		}
	}
	return out, nil
}

func (m *Memory) BookingsByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if b.Date >= from && b.Date <= to {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		return out[i].Time < out[j].Time
	})
	return out, nil
}
