package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"zapysnyk/internal/models"
)

func TestService_WithMockAPI(t *testing.T) {
	mux := http.NewServeMux()
	server := httptest.NewServer(mux)
	defer server.Close()

	ctx := context.Background()
	srv, _ := gsheets.NewService(ctx, option.WithEndpoint(server.URL), option.WithoutAuthentication())
	s := &Service{
		service:       srv,
		spreadsheetID: "bookings_tid",
	}

	t.Run("TestConnection", func(t *testing.T) {
		mux.HandleFunc("/v4/spreadsheets/bookings_tid/values/Bookings!A1", func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(gsheets.ValueRange{Values: [][]interface{}{{"ID"}}})
		})
		if err := s.TestConnection(ctx); err != nil {
			t.Errorf("TestConnection failed: %v", err)
		}
	})

	t.Run("AppendBooking", func(t *testing.T) {
		var gotRange string
		mux.HandleFunc("/v4/spreadsheets/bookings_tid/values/Bookings!A:A:append", func(w http.ResponseWriter, r *http.Request) {
			var body gsheets.ValueRange
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Errorf("decode append body: %v", err)
			}
			if len(body.Values) != 1 || len(body.Values[0]) != 8 {
				t.Errorf("Expected one row of 8 columns, got %v", body.Values)
			}
			gotRange = r.URL.Query().Get("valueInputOption")
			json.NewEncoder(w).Encode(gsheets.AppendValuesResponse{
				Updates: &gsheets.UpdateValuesResponse{UpdatedRange: "Bookings!A2:H2"},
			})
		})

		booking := &models.Booking{
			ID:        789,
			UserID:    42,
			Service:   "Стрижка",
			Name:      "Olena",
			Phone:     "+380991234567",
			Date:      "2025-03-11",
			Time:      "10:00",
			CreatedAt: time.Now(),
		}
		if err := s.AppendBooking(ctx, booking); err != nil {
			t.Errorf("AppendBooking failed: %v", err)
		}
		if gotRange != "USER_ENTERED" {
			t.Errorf("Expected USER_ENTERED input option, got %q", gotRange)
		}
	})

	t.Run("AppendBookingError", func(t *testing.T) {
		mux.HandleFunc("/v4/spreadsheets/broken_tid/values/Bookings!A:A:append", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		broken := &Service{service: srv, spreadsheetID: "broken_tid"}
		if err := broken.AppendBooking(ctx, &models.Booking{ID: 1}); err == nil {
			t.Error("Expected error from failing API")
		}
	})
}
