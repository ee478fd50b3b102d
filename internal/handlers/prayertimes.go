package handlers

import (
	"log"
	"net/http"
	"regexp"
	"time"

	"github.com/gorilla/mux"

	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
)

type PrayerTimesHandler struct {
	Store store.Store
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type prayerEntry struct {
	Name   string  `json:"name"`
	Begins string  `json:"begins"`
	Iqamah *string `json:"iqamah"`
}

type nextPrayer struct {
	Name string `json:"name"`
	// The countdown is a fixed stub; the client does not compute a real one.
	Countdown string `json:"countdown"`
}

type prayerTimesResponse struct {
	Date       string        `json:"date"`
	Prayers    []prayerEntry `json:"prayers"`
	NextPrayer nextPrayer    `json:"nextPrayer"`
}

const countdownStub = "02:35:10"

// GetToday serves GET /api/prayer-times.
func (h *PrayerTimesHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	today := time.Now().Format("2006-01-02")
	h.respond(w, today)
}

// GetByDate serves GET /api/prayer-times/{date}.
func (h *PrayerTimesHandler) GetByDate(w http.ResponseWriter, r *http.Request) {
	date := mux.Vars(r)["date"]
	if !dateRe.MatchString(date) {
		writeError(w, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD")
		return
	}
	h.respond(w, date)
}

func (h *PrayerTimesHandler) respond(w http.ResponseWriter, date string) {
	pt, err := h.Store.GetPrayerTimesByDate(date)
	if err != nil {
		log.Printf("Error fetching prayer times: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch prayer times")
		return
	}

	if pt == nil {
		writeJSON(w, http.StatusOK, defaultSchedule(date))
		return
	}

	name := "Fajr"
	if pt.NextPrayerName != nil && *pt.NextPrayerName != "" {
		name = *pt.NextPrayerName
	}
	writeJSON(w, http.StatusOK, prayerTimesResponse{
		Date: date,
		Prayers: []prayerEntry{
			{Name: "Fajr", Begins: pt.FajrBegins, Iqamah: pt.FajrIqamah},
			{Name: "Sunrise", Begins: pt.Sunrise, Iqamah: nil},
			{Name: "Dhuhr", Begins: pt.DhuhrBegins, Iqamah: pt.DhuhrIqamah},
			{Name: "Asr", Begins: pt.AsrBegins, Iqamah: pt.AsrIqamah},
			{Name: "Maghrib", Begins: pt.MaghribBegins, Iqamah: pt.MaghribIqamah},
			{Name: "Isha", Begins: pt.IshaBegins, Iqamah: pt.IshaIqamah},
		},
		NextPrayer: nextPrayer{Name: name, Countdown: countdownStub},
	})
}

// defaultSchedule is the hardcoded fallback served when no record exists for
// the requested date (Organisations Islamiques de France method, 12.0
// degrees for Fajr and Isha).
func defaultSchedule(date string) prayerTimesResponse {
	iq := func(s string) *string { return &s }
	return prayerTimesResponse{
		Date: date,
		Prayers: []prayerEntry{
			{Name: "Fajr", Begins: "03:06", Iqamah: iq("03:36")},
			{Name: "Sunrise", Begins: "05:38", Iqamah: nil},
			{Name: "Dhuhr", Begins: "12:51", Iqamah: iq("13:15")},
			{Name: "Asr", Begins: "16:55", Iqamah: iq("17:15")},
			{Name: "Maghrib", Begins: "20:05", Iqamah: iq("20:15")},
			{Name: "Isha", Begins: "22:37", Iqamah: iq("22:45")},
		},
		NextPrayer: nextPrayer{Name: "Fajr", Countdown: countdownStub},
	}
}
