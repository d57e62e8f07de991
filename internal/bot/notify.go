package bot

import (
	"context"
	"log"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// NotifyAll рассылает текст каждому оператору независимо: отправки идут
// параллельно, сбой одной не блокирует остальные и не влияет на результат
// записи. Повторов нет — доставка best-effort.
func (b *Bot) NotifyAll(ctx context.Context, text string) {
	var wg sync.WaitGroup
	for adminID := range b.admins {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			msg := tgbotapi.NewMessage(id, text)
			if _, err := b.api.Send(msg); err != nil {
				log.Printf("Failed to notify admin %d: %v", id, err)
				if b.metrics != nil {
					b.metrics.NotifyErrors.Inc()
				}
			}
		}(adminID)
	}
	wg.Wait()
}
