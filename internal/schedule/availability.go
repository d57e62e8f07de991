package schedule

import (
	"context"
	"fmt"
)

// SlotChecker — минимальный срез хранилища, нужный индексу доступности.
type SlotChecker interface {
	SlotTaken(ctx context.Context, date, timeLabel string) (bool, error)
}

// Index вычисляет свободные слоты на дату: каталог времени минус занятые.
// Результат не кэшируется — каталог мал, а пересчёт всегда отражает
// последние записи.
type Index struct {
	slots []string
	store SlotChecker
}

func NewIndex(slots []string, store SlotChecker) *Index {
	return &Index{slots: slots, store: store}
}

// AvailableTimes возвращает свободные метки времени на дату в порядке
// каталога. Пустой результат означает, что дата полностью занята —
// вызывающий код обязан показать явный признак отсутствия слотов.
func (i *Index) AvailableTimes(ctx context.Context, date string) ([]string, error) {
	var available []string
	for _, t := range i.slots {
		taken, err := i.store.SlotTaken(ctx, date, t)
		if err != nil {
			return nil, fmt.Errorf("check slot %s %s: %w", date, t, err)
		}
		if !taken {
			available = append(available, t)
		}
	}
	return available, nil
}
