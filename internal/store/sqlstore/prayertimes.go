package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

const prayerTimeColumns = "id, date, fajr_begins, fajr_iqamah, sunrise, dhuhr_begins, dhuhr_iqamah, asr_begins, asr_iqamah, maghrib_begins, maghrib_iqamah, isha_begins, isha_iqamah, next_prayer_name"

func (s *SQLStore) GetPrayerTimesByDate(date string) (*models.PrayerTime, error) {
	var pt models.PrayerTime
	query := s.rebind("SELECT " + prayerTimeColumns + " FROM prayer_times WHERE date = ?")

	err := s.db.QueryRow(query, date).Scan(
		&pt.ID, &pt.Date,
		&pt.FajrBegins, &pt.FajrIqamah,
		&pt.Sunrise,
		&pt.DhuhrBegins, &pt.DhuhrIqamah,
		&pt.AsrBegins, &pt.AsrIqamah,
		&pt.MaghribBegins, &pt.MaghribIqamah,
		&pt.IshaBegins, &pt.IshaIqamah,
		&pt.NextPrayerName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pt, nil
}

// CreatePrayerTime inserts one day's schedule. The UNIQUE constraint on
// date makes a duplicate-date insert fail.
func (s *SQLStore) CreatePrayerTime(input models.InsertPrayerTime) (*models.PrayerTime, error) {
	pt := models.PrayerTime{
		Date:           input.Date,
		FajrBegins:     input.FajrBegins,
		FajrIqamah:     input.FajrIqamah,
		Sunrise:        input.Sunrise,
		DhuhrBegins:    input.DhuhrBegins,
		DhuhrIqamah:    input.DhuhrIqamah,
		AsrBegins:      input.AsrBegins,
		AsrIqamah:      input.AsrIqamah,
		MaghribBegins:  input.MaghribBegins,
		MaghribIqamah:  input.MaghribIqamah,
		IshaBegins:     input.IshaBegins,
		IshaIqamah:     input.IshaIqamah,
		NextPrayerName: input.NextPrayerName,
	}
	query := s.rebind(`INSERT INTO prayer_times
		(date, fajr_begins, fajr_iqamah, sunrise, dhuhr_begins, dhuhr_iqamah, asr_begins, asr_iqamah, maghrib_begins, maghrib_iqamah, isha_begins, isha_iqamah, next_prayer_name)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	err := s.db.QueryRow(query,
		input.Date,
		input.FajrBegins, input.FajrIqamah,
		input.Sunrise,
		input.DhuhrBegins, input.DhuhrIqamah,
		input.AsrBegins, input.AsrIqamah,
		input.MaghribBegins, input.MaghribIqamah,
		input.IshaBegins, input.IshaIqamah,
		input.NextPrayerName,
	).Scan(&pt.ID)
	if err != nil {
		return nil, err
	}
	return &pt, nil
}
