package bot

import (
	"context"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"zapysnyk/internal/database"
	"zapysnyk/internal/dialog"
)

// Bot — транспортный слой: принимает апдейты Telegram, прогоняет их через
// диалоговый менеджер и отправляет ответы.
type Bot struct {
	api        *tgbotapi.BotAPI
	manager    *dialog.Manager
	store      database.Store
	admins     map[int64]struct{}
	metrics    *Metrics
	exportPath string
}

func NewBot(token string, admins []int64, exportPath string, store database.Store, metrics *Metrics) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	adminSet := make(map[int64]struct{}, len(admins))
	for _, id := range admins {
		adminSet[id] = struct{}{}
	}

	return &Bot{
		api:        api,
		store:      store,
		admins:     adminSet,
		metrics:    metrics,
		exportPath: exportPath,
	}, nil
}

// SetManager подключает диалоговый менеджер. Отдельный сеттер нужен из-за
// взаимной зависимости: менеджеру нужен бот как Notifier.
func (b *Bot) SetManager(m *dialog.Manager) {
	b.manager = m
}

// Start запускает long polling до отмены контекста.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	log.Printf("Authorized on account %s", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update)
		}
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
}

func (b *Bot) handleMessage(ctx context.Context, update tgbotapi.Update) {
	start := time.Now()
	defer func() {
		if b.metrics != nil {
			b.metrics.UpdateProcessingTime.Observe(time.Since(start).Seconds())
		}
	}()

	if b.metrics != nil {
		b.metrics.MessagesProcessed.Inc()
	}

	userID := update.Message.From.ID
	chatID := update.Message.Chat.ID
	text := update.Message.Text

	if b.isAdmin(userID) && b.handleAdminCommand(ctx, update) {
		return
	}

	for _, reply := range b.manager.HandleMessage(ctx, userID, text) {
		b.send(chatID, reply)
	}
}

func (b *Bot) send(chatID int64, reply dialog.Reply) {
	msg := tgbotapi.NewMessage(chatID, reply.Text)
	if reply.Buttons != nil {
		msg.ReplyMarkup = replyKeyboard(reply.Buttons)
	}
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message to %d: %v", chatID, err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(chatID, dialog.Reply{Text: text})
}

func (b *Bot) isAdmin(userID int64) bool {
	_, ok := b.admins[userID]
	return ok
}

// handleAdminCommand обрабатывает команды операторов; true — сообщение
// обработано и в диалог не передаётся.
func (b *Bot) handleAdminCommand(ctx context.Context, update tgbotapi.Update) bool {
	text := strings.TrimSpace(update.Message.Text)

	switch {
	case text == "/bookings":
		b.showWeekBookings(ctx, update.Message.Chat.ID)
		return true

	case text == "/export_week":
		b.handleExportWeek(ctx, update.Message.Chat.ID)
		return true
	}

	return false
}

func replyKeyboard(rows [][]string) tgbotapi.ReplyKeyboardMarkup {
	kbRows := make([][]tgbotapi.KeyboardButton, 0, len(rows))
	for _, row := range rows {
		btns := make([]tgbotapi.KeyboardButton, 0, len(row))
		for _, label := range row {
			btns = append(btns, tgbotapi.NewKeyboardButton(label))
		}
		kbRows = append(kbRows, btns)
	}
	return tgbotapi.NewReplyKeyboard(kbRows...)
}
