package sqlstore

import (
	"testing"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

func samplePrayerTime(date string) models.InsertPrayerTime {
	return models.InsertPrayerTime{
		Date:           date,
		FajrBegins:     "03:15",
		FajrIqamah:     str("03:45"),
		Sunrise:        "04:30",
		DhuhrBegins:    "13:15",
		DhuhrIqamah:    str("13:30"),
		AsrBegins:      "17:45",
		AsrIqamah:      str("18:00"),
		MaghribBegins:  "22:10",
		MaghribIqamah:  str("22:20"),
		IshaBegins:     "23:45",
		IshaIqamah:     str("00:00"),
		NextPrayerName: str("Fajr"),
	}
}

func TestCreatePrayerTime(t *testing.T) {
	s := newTestStore(t)

	created, err := s.CreatePrayerTime(samplePrayerTime("2023-07-28"))
	if err != nil {
		t.Fatalf("CreatePrayerTime failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("Expected non-zero id")
	}
	if created.Date != "2023-07-28" || created.FajrBegins != "03:15" {
		t.Errorf("Input fields mutated: %+v", created)
	}
}

func TestGetPrayerTimesByDate(t *testing.T) {
	s := newTestStore(t)

	created, _ := s.CreatePrayerTime(samplePrayerTime("2023-07-28"))

	got, err := s.GetPrayerTimesByDate("2023-07-28")
	if err != nil {
		t.Fatalf("GetPrayerTimesByDate failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected prayer times, got nil")
	}
	if got.ID != created.ID || got.Date != created.Date {
		t.Errorf("Wrong record: %+v", got)
	}
	if got.FajrIqamah == nil || *got.FajrIqamah != "03:45" {
		t.Errorf("Expected fajr iqamah 03:45, got %v", got.FajrIqamah)
	}
	if got.NextPrayerName == nil || *got.NextPrayerName != "Fajr" {
		t.Errorf("Expected next prayer Fajr, got %v", got.NextPrayerName)
	}

	absent, err := s.GetPrayerTimesByDate("2099-01-01")
	if err != nil || absent != nil {
		t.Errorf("Expected (nil, nil) for absent date, got (%+v, %v)", absent, err)
	}
}

func TestCreatePrayerTimeRejectsDuplicateDate(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.CreatePrayerTime(samplePrayerTime("2023-07-28")); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if _, err := s.CreatePrayerTime(samplePrayerTime("2023-07-28")); err == nil {
		t.Error("Expected error for duplicate date, got nil")
	}
}

func TestNullableIqamahFields(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreatePrayerTime(models.InsertPrayerTime{
		Date:          "2023-12-01",
		FajrBegins:    "06:30",
		Sunrise:       "09:45",
		DhuhrBegins:   "12:10",
		AsrBegins:     "13:30",
		MaghribBegins: "14:45",
		IshaBegins:    "17:00",
	})
	if err != nil {
		t.Fatalf("CreatePrayerTime failed: %v", err)
	}

	got, _ := s.GetPrayerTimesByDate("2023-12-01")
	if got.FajrIqamah != nil || got.IshaIqamah != nil || got.NextPrayerName != nil {
		t.Errorf("Expected nil optional fields, got %+v", got)
	}
}
