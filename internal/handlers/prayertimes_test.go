package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
	"github.com/Ahmedshelfun/KuopioMosque/internal/store/sqlstore"
)

func newTestStore(t *testing.T) *sqlstore.SQLStore {
	t.Helper()
	s, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func str(s string) *string { return &s }

func TestGetPrayerTimesByDate(t *testing.T) {
	s := newTestStore(t)
	s.CreatePrayerTime(models.InsertPrayerTime{
		Date:          "2023-07-28",
		FajrBegins:    "03:15",
		FajrIqamah:    str("03:45"),
		Sunrise:       "04:30",
		DhuhrBegins:   "13:15",
		AsrBegins:     "17:45",
		MaghribBegins: "22:10",
		IshaBegins:    "23:45",
	})

	handler := &PrayerTimesHandler{Store: s}

	req, _ := http.NewRequest("GET", "/api/prayer-times/2023-07-28", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2023-07-28"})

	rr := httptest.NewRecorder()
	handler.GetByDate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp struct {
		Date    string `json:"date"`
		Prayers []struct {
			Name   string  `json:"name"`
			Begins string  `json:"begins"`
			Iqamah *string `json:"iqamah"`
		} `json:"prayers"`
		NextPrayer struct {
			Name      string `json:"name"`
			Countdown string `json:"countdown"`
		} `json:"nextPrayer"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if resp.Date != "2023-07-28" {
		t.Errorf("Expected date 2023-07-28, got %q", resp.Date)
	}
	if len(resp.Prayers) != 6 {
		t.Fatalf("Expected 6 prayers, got %d", len(resp.Prayers))
	}
	if resp.Prayers[0].Name != "Fajr" || resp.Prayers[0].Begins != "03:15" {
		t.Errorf("Wrong first prayer: %+v", resp.Prayers[0])
	}
	if resp.Prayers[1].Name != "Sunrise" || resp.Prayers[1].Iqamah != nil {
		t.Errorf("Sunrise should have no iqamah: %+v", resp.Prayers[1])
	}
	if resp.NextPrayer.Name != "Fajr" {
		t.Errorf("Expected default next prayer Fajr, got %q", resp.NextPrayer.Name)
	}
}

func TestGetPrayerTimesFallbackSchedule(t *testing.T) {
	handler := &PrayerTimesHandler{Store: newTestStore(t)}

	req, _ := http.NewRequest("GET", "/api/prayer-times/2099-01-01", nil)
	req = mux.SetURLVars(req, map[string]string{"date": "2099-01-01"})

	rr := httptest.NewRecorder()
	handler.GetByDate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}

	var resp struct {
		Prayers []struct {
			Name   string `json:"name"`
			Begins string `json:"begins"`
		} `json:"prayers"`
	}
	json.NewDecoder(rr.Body).Decode(&resp)

	if len(resp.Prayers) != 6 || resp.Prayers[0].Begins != "03:06" {
		t.Errorf("Expected hardcoded fallback schedule, got %+v", resp.Prayers)
	}
}

func TestGetPrayerTimesInvalidDate(t *testing.T) {
	handler := &PrayerTimesHandler{Store: newTestStore(t)}

	for _, date := range []string{"2023-7-28", "28-07-2023", "tomorrow", "2023-07-28T00:00"} {
		req, _ := http.NewRequest("GET", "/api/prayer-times/"+date, nil)
		req = mux.SetURLVars(req, map[string]string{"date": date})

		rr := httptest.NewRecorder()
		handler.GetByDate(rr, req)

		if rr.Code != http.StatusBadRequest {
			t.Errorf("date %q: got status %v, want %v", date, rr.Code, http.StatusBadRequest)
		}

		var resp map[string]string
		json.NewDecoder(rr.Body).Decode(&resp)
		if resp["message"] != "Invalid date format. Please use YYYY-MM-DD" {
			t.Errorf("date %q: wrong message %q", date, resp["message"])
		}
	}
}

func TestGetTodayUsesFallbackWhenEmpty(t *testing.T) {
	handler := &PrayerTimesHandler{Store: newTestStore(t)}

	req, _ := http.NewRequest("GET", "/api/prayer-times", nil)
	rr := httptest.NewRecorder()
	handler.GetToday(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusOK)
	}
}
