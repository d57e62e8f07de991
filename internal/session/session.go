package session

import "context"

// Step — шаг диалога записи.
type Step string

const (
	StepService Step = "service"
	StepDate    Step = "date"
	StepTime    Step = "time"
	StepName    Step = "name"
	StepPhone   Step = "phone"
	StepConfirm Step = "confirm"
)

// Session — состояние незавершённого диалога одного пользователя.
// Поля заполняются по мере прохождения шагов. Не переживает рестарт
// процесса: диалог начинается заново.
type Session struct {
	UserID  int64  `json:"user_id"`
	Step    Step   `json:"step"`
	Service string `json:"service,omitempty"`
	Date    string `json:"date,omitempty"`
	Time    string `json:"time,omitempty"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
}

// Store — каталог сессий: user_id -> активная сессия. Единственный
// владелец объектов Session. TTL нет: брошенная сессия живёт до явной
// очистки или рестарта.
type Store interface {
	// Get возвращает сессию пользователя или nil, если диалог не начат.
	Get(ctx context.Context, userID int64) (*Session, error)
	Set(ctx context.Context, s *Session) error
	Clear(ctx context.Context, userID int64) error
}
