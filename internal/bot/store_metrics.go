package bot

import (
	"context"

	"zapysnyk/internal/database"
	"zapysnyk/internal/models"
)

// instrumentedStore оборачивает хранилище и считает исходы записи.
type instrumentedStore struct {
	database.Store
	metrics *Metrics
}

// InstrumentStore добавляет метрики поверх хранилища записей.
func InstrumentStore(s database.Store, m *Metrics) database.Store {
	return &instrumentedStore{Store: s, metrics: m}
}

func (s *instrumentedStore) CreateBooking(ctx context.Context, nb database.NewBooking) (*models.Booking, error) {
	b, err := s.Store.CreateBooking(ctx, nb)
	switch err {
	case nil:
		s.metrics.BookingsCreated.Inc()
	case database.ErrSlotTaken:
		s.metrics.SlotConflicts.Inc()
	}
	return b, err
}
