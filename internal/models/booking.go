package models

import "time"

// Booking — подтверждённая запись клиента. После создания не изменяется.
type Booking struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Service   string    `json:"service"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      string    `json:"date"` // YYYY-MM-DD
	Time      string    `json:"time"` // HH:MM
	CreatedAt time.Time `json:"created_at"`
}
