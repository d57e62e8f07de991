package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/xuri/excelize/v2"

	"zapysnyk/internal/models"
)

const exportSheet = "Записи"

// showWeekBookings показывает оператору записи на ближайшую неделю.
func (b *Bot) showWeekBookings(ctx context.Context, chatID int64) {
	from := time.Now().Format("2006-01-02")
	to := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	bookings, err := b.store.BookingsByDateRange(ctx, from, to)
	if err != nil {
		log.Printf("Error getting bookings: %v", err)
		b.sendText(chatID, "⚠️ Не вдалося отримати записи")
		return
	}

	if len(bookings) == 0 {
		b.sendText(chatID, "Записів на найближчий тиждень немає.")
		return
	}

	var out strings.Builder
	out.WriteString("📊 Записи на тиждень:\n\n")
	for _, booking := range bookings {
		out.WriteString(fmt.Sprintf("• #%d %s %s — %s, %s (%s)\n",
			booking.ID, booking.Date, booking.Time, booking.Service, booking.Name, booking.Phone))
	}
	b.sendText(chatID, out.String())
}

// handleExportWeek выгружает записи недели в Excel и отправляет файл.
func (b *Bot) handleExportWeek(ctx context.Context, chatID int64) {
	from := time.Now().Format("2006-01-02")
	to := time.Now().AddDate(0, 0, 7).Format("2006-01-02")

	bookings, err := b.store.BookingsByDateRange(ctx, from, to)
	if err != nil {
		log.Printf("Error getting bookings for export: %v", err)
		b.sendText(chatID, "⚠️ Не вдалося отримати записи")
		return
	}

	filePath, err := buildExportFile(b.exportPath, from, to, bookings)
	if err != nil {
		log.Printf("Error exporting to Excel: %v", err)
		b.sendText(chatID, "⚠️ Не вдалося створити файл експорту")
		return
	}

	file, err := os.Open(filePath)
	if err != nil {
		log.Printf("Error opening export file: %v", err)
		b.sendText(chatID, "⚠️ Не вдалося відкрити файл експорту")
		return
	}
	defer file.Close()

	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileReader{
		Name:   filepath.Base(filePath),
		Reader: file,
	})
	doc.Caption = fmt.Sprintf("📊 Записи з %s по %s", from, to)

	if _, err := b.api.Send(doc); err != nil {
		log.Printf("Error sending export document: %v", err)
		b.sendText(chatID, "⚠️ Не вдалося надіслати файл")
	}
}

// buildExportFile создает Excel файл со списком записей за период.
func buildExportFile(dir, from, to string, bookings []models.Booking) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}

	f := excelize.NewFile()

	index, err := f.NewSheet(exportSheet)
	if err != nil {
		return "", fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"ID", "Дата", "Час", "Послуга", "Імʼя", "Телефон", "ID клієнта", "Створено"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		lastCell, _ := excelize.CoordinatesToCellName(len(headers), 1)
		f.SetCellStyle(exportSheet, "A1", lastCell, headerStyle)
	}

	for i, booking := range bookings {
		row := i + 2
		f.SetCellValue(exportSheet, fmt.Sprintf("A%d", row), booking.ID)
		f.SetCellValue(exportSheet, fmt.Sprintf("B%d", row), booking.Date)
		f.SetCellValue(exportSheet, fmt.Sprintf("C%d", row), booking.Time)
		f.SetCellValue(exportSheet, fmt.Sprintf("D%d", row), booking.Service)
		f.SetCellValue(exportSheet, fmt.Sprintf("E%d", row), booking.Name)
		f.SetCellValue(exportSheet, fmt.Sprintf("F%d", row), booking.Phone)
		f.SetCellValue(exportSheet, fmt.Sprintf("G%d", row), booking.UserID)
		f.SetCellValue(exportSheet, fmt.Sprintf("H%d", row), booking.CreatedAt.Format("02.01.2006 15:04"))
	}

	f.SetColWidth(exportSheet, "A", "A", 8)
	f.SetColWidth(exportSheet, "B", "H", 18)

	f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("export_%s_to_%s.xlsx", from, to)
	filePath := filepath.Join(dir, fileName)

	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("save export file: %w", err)
	}

	return filePath, nil
}
