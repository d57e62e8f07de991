package sheets

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"zapysnyk/internal/models"
)

const bookingsRange = "Bookings!A:A"

// Service ведёт журнал подтверждённых записей в Google Таблице. Журнал
// необязателен: ошибки добавления логируются вызывающим кодом и не влияют
// на результат записи.
type Service struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewService создаёт сервис по файлу сервисного аккаунта.
func NewService(credentialsFile, spreadsheetID string) (*Service, error) {
	ctx := context.Background()

	credentialsJSON, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("unable to read credentials file: %w", err)
	}

	config, err := google.JWTConfigFromJSON(credentialsJSON, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse credentials: %w", err)
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(config.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("unable to create Sheets service: %w", err)
	}

	return &Service{
		service:       srv,
		spreadsheetID: spreadsheetID,
	}, nil
}

// TestConnection проверяет доступ к таблице.
func (s *Service) TestConnection(ctx context.Context) error {
	_, err := s.service.Spreadsheets.Values.Get(s.spreadsheetID, "Bookings!A1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("connection test failed: %w", err)
	}
	return nil
}

// AppendBooking добавляет запись в конец листа Bookings.
func (s *Service) AppendBooking(ctx context.Context, b *models.Booking) error {
	values := &sheets.ValueRange{
		Values: [][]interface{}{{
			b.ID,
			b.Date,
			b.Time,
			b.Service,
			b.Name,
			b.Phone,
			b.UserID,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}},
	}

	_, err := s.service.Spreadsheets.Values.Append(s.spreadsheetID, bookingsRange, values).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append booking %d: %w", b.ID, err)
	}
	return nil
}
