package dialog

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"zapysnyk/internal/database"
	"zapysnyk/internal/models"
	"zapysnyk/internal/schedule"
	"zapysnyk/internal/session"
)

// Notifier рассылает текст всем настроенным операторам. Ошибки доставки
// не влияют на результат записи.
type Notifier interface {
	NotifyAll(ctx context.Context, text string)
}

// Journal — необязательный журнал подтверждённых записей (Google Sheets).
type Journal interface {
	AppendBooking(ctx context.Context, b *models.Booking) error
}

// Manager — конечный автомат диалога записи: одна сессия на пользователя,
// переходы по входящим сообщениям. Шаг обрабатывается целиком под
// пользовательским мьютексом, поэтому конкурентные сообщения одного
// пользователя не портят состояние; разные пользователи независимы.
type Manager struct {
	sessions session.Store
	store    database.Store
	avail    *schedule.Index
	notifier Notifier
	journal  Journal
	services []string
	now      func() time.Time

	mu    sync.Mutex
	locks map[int64]*sync.Mutex
}

func NewManager(sessions session.Store, store database.Store, avail *schedule.Index, notifier Notifier, services []string) *Manager {
	return &Manager{
		sessions: sessions,
		store:    store,
		avail:    avail,
		notifier: notifier,
		services: services,
		now:      time.Now,
		locks:    make(map[int64]*sync.Mutex),
	}
}

// SetJournal включает журналирование подтверждённых записей.
func (m *Manager) SetJournal(j Journal) {
	m.journal = j
}

func (m *Manager) userLock(userID int64) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		m.locks[userID] = lock
	}
	return lock
}

// HandleMessage обрабатывает одно входящее сообщение пользователя и
// возвращает ответы для отправки.
func (m *Manager) HandleMessage(ctx context.Context, userID int64, text string) []Reply {
	lock := m.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	text = strings.TrimSpace(text)

	// Глобальные команды работают на любом шаге
	switch text {
	case "/start":
		m.clearSession(ctx, userID)
		return []Reply{{Text: msgWelcome, Buttons: mainKeyboard()}}

	case BtnBook:
		sess := &session.Session{UserID: userID, Step: session.StepService}
		if err := m.sessions.Set(ctx, sess); err != nil {
			log.Printf("dialog: set session %d: %v", userID, err)
			return []Reply{{Text: msgInternal, Buttons: mainKeyboard()}}
		}
		return []Reply{{Text: msgChooseService, Buttons: m.servicesKeyboard()}}

	case BtnMyBookings:
		return m.listBookings(ctx, userID)

	case BtnBack:
		m.clearSession(ctx, userID)
		return []Reply{{Text: msgBackToMenu, Buttons: mainKeyboard()}}
	}

	sess, err := m.sessions.Get(ctx, userID)
	if err != nil {
		log.Printf("dialog: get session %d: %v", userID, err)
		return []Reply{{Text: msgInternal, Buttons: mainKeyboard()}}
	}
	if sess == nil {
		return []Reply{{Text: msgPressBook, Buttons: mainKeyboard()}}
	}

	switch sess.Step {
	case session.StepService:
		return m.stepService(ctx, sess, text)
	case session.StepDate:
		return m.stepDate(ctx, sess, text)
	case session.StepTime:
		return m.stepTime(ctx, sess, text)
	case session.StepName:
		return m.stepName(ctx, sess, text)
	case session.StepPhone:
		return m.stepPhone(ctx, sess, text)
	case session.StepConfirm:
		return m.stepConfirm(ctx, sess, text)
	}

	// Неизвестный шаг — сбрасываем диалог
	log.Printf("dialog: unknown step %q for user %d", sess.Step, userID)
	m.clearSession(ctx, userID)
	return []Reply{{Text: msgPressBook, Buttons: mainKeyboard()}}
}

func (m *Manager) stepService(ctx context.Context, sess *session.Session, text string) []Reply {
	if !contains(m.services, text) {
		return []Reply{{Text: msgBadService, Buttons: m.servicesKeyboard()}}
	}

	sess.Service = text
	sess.Step = session.StepDate
	if err := m.sessions.Set(ctx, sess); err != nil {
		log.Printf("dialog: set session %d: %v", sess.UserID, err)
		return []Reply{{Text: msgInternal, Buttons: m.servicesKeyboard()}}
	}

	return []Reply{{Text: msgChooseDate, Buttons: datesKeyboard(m.upcomingDates())}}
}

func (m *Manager) stepDate(ctx context.Context, sess *session.Session, text string) []Reply {
	if !validDate(text) {
		return []Reply{{Text: msgBadDate, Buttons: datesKeyboard(m.upcomingDates())}}
	}

	sess.Date = text
	sess.Step = session.StepTime
	if err := m.sessions.Set(ctx, sess); err != nil {
		log.Printf("dialog: set session %d: %v", sess.UserID, err)
		return []Reply{{Text: msgInternal, Buttons: datesKeyboard(m.upcomingDates())}}
	}

	return []Reply{{Text: msgChooseTime, Buttons: m.timesFor(ctx, text)}}
}

func (m *Manager) stepTime(ctx context.Context, sess *session.Session, text string) []Reply {
	available, err := m.avail.AvailableTimes(ctx, sess.Date)
	if err != nil {
		log.Printf("dialog: availability for %s: %v", sess.Date, err)
		return []Reply{{Text: msgInternal}}
	}

	if !contains(available, text) {
		// Либо метка не из каталога, либо слот успели занять — в обоих
		// случаях перерисовываем актуальную доступность
		taken, terr := m.store.SlotTaken(ctx, sess.Date, text)
		msg := msgBadTime
		if terr == nil && taken {
			msg = msgSlotTaken
		}
		return []Reply{{Text: msg, Buttons: timesKeyboard(available)}}
	}

	sess.Time = text
	sess.Step = session.StepName
	if err := m.sessions.Set(ctx, sess); err != nil {
		log.Printf("dialog: set session %d: %v", sess.UserID, err)
		return []Reply{{Text: msgInternal, Buttons: timesKeyboard(available)}}
	}

	return []Reply{{Text: msgAskName}}
}

func (m *Manager) stepName(ctx context.Context, sess *session.Session, text string) []Reply {
	if !validName(text) {
		return []Reply{{Text: msgNameTooShort}}
	}

	sess.Name = text
	sess.Step = session.StepPhone
	if err := m.sessions.Set(ctx, sess); err != nil {
		log.Printf("dialog: set session %d: %v", sess.UserID, err)
		return []Reply{{Text: msgInternal}}
	}

	return []Reply{{Text: msgAskPhone}}
}

func (m *Manager) stepPhone(ctx context.Context, sess *session.Session, text string) []Reply {
	phone := normalizePhone(text)
	if !validPhone(phone) {
		return []Reply{{Text: msgBadPhone}}
	}

	sess.Phone = phone
	sess.Step = session.StepConfirm
	if err := m.sessions.Set(ctx, sess); err != nil {
		log.Printf("dialog: set session %d: %v", sess.UserID, err)
		return []Reply{{Text: msgInternal}}
	}

	summary := fmt.Sprintf("✅ Підтверди запис:\n\n🧾 %s\n📅 %s %s\n👤 %s\n📞 %s",
		sess.Service, sess.Date, sess.Time, sess.Name, sess.Phone)
	return []Reply{{Text: summary, Buttons: confirmKeyboard()}}
}

func (m *Manager) stepConfirm(ctx context.Context, sess *session.Session, text string) []Reply {
	switch text {
	case BtnConfirm:
		return m.finalize(ctx, sess)

	case BtnCancel:
		m.clearSession(ctx, sess.UserID)
		return []Reply{{Text: msgCancelled, Buttons: mainKeyboard()}}
	}

	return []Reply{{Text: msgPickButton, Buttons: confirmKeyboard()}}
}

// finalize записывает бронь. Уникальность слота проверяет хранилище в момент
// вставки: проигравший конкурентную запись возвращается к выбору времени
// со свежей доступностью.
func (m *Manager) finalize(ctx context.Context, sess *session.Session) []Reply {
	booking, err := m.store.CreateBooking(ctx, database.NewBooking{
		UserID:  sess.UserID,
		Service: sess.Service,
		Name:    sess.Name,
		Phone:   sess.Phone,
		Date:    sess.Date,
		Time:    sess.Time,
	})

	if err == database.ErrSlotTaken {
		sess.Time = ""
		sess.Step = session.StepTime
		if serr := m.sessions.Set(ctx, sess); serr != nil {
			log.Printf("dialog: set session %d: %v", sess.UserID, serr)
		}
		return []Reply{{Text: msgSlotLost, Buttons: m.timesFor(ctx, sess.Date)}}
	}
	if err != nil {
		log.Printf("dialog: create booking for %d: %v", sess.UserID, err)
		return []Reply{{Text: msgInternal, Buttons: confirmKeyboard()}}
	}

	m.notifier.NotifyAll(ctx, fmt.Sprintf(
		"📢 НОВИЙ ЗАПИС\n\n🧾 Послуга: %s\n📅 Дата: %s\n⏰ Час: %s\n👤 Імʼя: %s\n📞 Телефон: %s\n🆔 ID клієнта: %d",
		booking.Service, booking.Date, booking.Time, booking.Name, booking.Phone, booking.UserID))

	if m.journal != nil {
		if jerr := m.journal.AppendBooking(ctx, booking); jerr != nil {
			log.Printf("dialog: journal booking %d: %v", booking.ID, jerr)
		}
	}

	m.clearSession(ctx, sess.UserID)
	return []Reply{{Text: msgSaved, Buttons: mainKeyboard()}}
}

// listBookings показывает историю пользователя, не трогая сессию.
func (m *Manager) listBookings(ctx context.Context, userID int64) []Reply {
	bookings, err := m.store.BookingsByUser(ctx, userID)
	if err != nil {
		log.Printf("dialog: bookings for %d: %v", userID, err)
		return []Reply{{Text: msgInternal, Buttons: mainKeyboard()}}
	}
	if len(bookings) == 0 {
		return []Reply{{Text: msgNoBookings, Buttons: mainKeyboard()}}
	}

	var out strings.Builder
	out.WriteString("🧾 Твої записи:\n\n")
	for _, b := range bookings {
		out.WriteString(fmt.Sprintf("• %s — %s %s\n", b.Service, b.Date, b.Time))
	}
	return []Reply{{Text: out.String(), Buttons: mainKeyboard()}}
}

func (m *Manager) clearSession(ctx context.Context, userID int64) {
	if err := m.sessions.Clear(ctx, userID); err != nil {
		log.Printf("dialog: clear session %d: %v", userID, err)
	}
}

// upcomingDates — даты на 7 дней вперёд начиная с завтрашнего дня.
func (m *Manager) upcomingDates() []string {
	today := m.now()
	dates := make([]string, 0, 7)
	for i := 1; i <= 7; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format("2006-01-02"))
	}
	return dates
}

func (m *Manager) timesFor(ctx context.Context, date string) [][]string {
	available, err := m.avail.AvailableTimes(ctx, date)
	if err != nil {
		log.Printf("dialog: availability for %s: %v", date, err)
	}
	return timesKeyboard(available)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
