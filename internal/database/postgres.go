package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"zapysnyk/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id         BIGSERIAL PRIMARY KEY,
	user_id    BIGINT      NOT NULL,
	service    TEXT        NOT NULL,
	name       TEXT        NOT NULL,
	phone      TEXT        NOT NULL,
	date       TEXT        NOT NULL,
	time       TEXT        NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_bookings_slot ON bookings (date, time);
CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings (user_id);
`

// Postgres — хранилище записей в PostgreSQL. Уникальность слота обеспечивает
// индекс idx_bookings_slot: из двух конкурентных вставок на один слот
// проходит ровно одна.
type Postgres struct {
	db *sql.DB
}

// NewPostgres открывает соединение и применяет схему.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Postgres{db: db}, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

func (p *Postgres) CreateBooking(ctx context.Context, nb NewBooking) (*models.Booking, error) {
	b := &models.Booking{
		UserID:  nb.UserID,
		Service: nb.Service,
		Name:    nb.Name,
		Phone:   nb.Phone,
		Date:    nb.Date,
		Time:    nb.Time,
	}

	err := p.db.QueryRowContext(ctx, `
		INSERT INTO bookings (user_id, service, name, phone, date, time)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		nb.UserID, nb.Service, nb.Name, nb.Phone, nb.Date, nb.Time,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return b, nil
}

func (p *Postgres) SlotTaken(ctx context.Context, date, timeLabel string) (bool, error) {
	var exists bool
	err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM bookings WHERE date = $1 AND time = $2)`,
		date, timeLabel,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slot: %w", err)
	}
	return exists, nil
}

func (p *Postgres) BookingsByUser(ctx context.Context, userID int64) ([]models.Booking, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, user_id, service, name, phone, date, time, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY id DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("select user bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (p *Postgres) BookingsByDateRange(ctx context.Context, from, to string) ([]models.Booking, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, user_id, service, name, phone, date, time, created_at
		FROM bookings
		WHERE date >= $1 AND date <= $2
		ORDER BY date, time`,
		from, to)
	if err != nil {
		return nil, fmt.Errorf("select bookings by range: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.Service, &b.Name, &b.Phone, &b.Date, &b.Time, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
