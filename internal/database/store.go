package database

import (
	"context"
	"errors"

	"zapysnyk/internal/models"
)

// ErrSlotTaken возвращается, когда слот (дата, время) уже занят другой записью.
// Проверка выполняется атомарно в момент вставки, а не только при выборе
// времени в диалоге.
var ErrSlotTaken = errors.New("slot already taken")

// NewBooking — данные для создания записи. ID и CreatedAt назначает хранилище.
type NewBooking struct {
	UserID  int64
	Service string
	Name    string
	Phone   string
	Date    string // YYYY-MM-DD
	Time    string // HH:MM
}

// Store — хранилище записей. Записи append-only: обновление и удаление
// не предусмотрены.
type Store interface {
	// CreateBooking создаёт запись. Возвращает ErrSlotTaken, если слот занят.
	CreateBooking(ctx context.Context, nb NewBooking) (*models.Booking, error)
	// SlotTaken сообщает, существует ли запись на (дата, время).
	SlotTaken(ctx context.Context, date, timeLabel string) (bool, error)
	// BookingsByUser возвращает записи пользователя, новые первыми.
	BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error)
	// BookingsByDateRange возвращает записи за период [from, to] включительно,
	// отсортированные по дате и времени.
	BookingsByDateRange(ctx context.Context, from, to string) ([]models.Booking, error)
}
