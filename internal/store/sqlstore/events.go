package sqlstore

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

const eventColumns = "id, title, description, date, time_range, location, type, is_featured, image_url, created_at"

func (s *SQLStore) GetEvents() ([]models.Event, error) {
	query := s.rebind("SELECT " + eventColumns + " FROM events WHERE is_featured = ? ORDER BY id DESC")
	rows, err := s.db.Query(query, false)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.Event, 0)
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.TimeRange, &e.Location, &e.Type, &e.IsFeatured, &e.ImageURL, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *SQLStore) GetEvent(id int) (*models.Event, error) {
	var e models.Event
	query := s.rebind("SELECT " + eventColumns + " FROM events WHERE id = ?")

	err := s.db.QueryRow(query, id).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.TimeRange, &e.Location, &e.Type, &e.IsFeatured, &e.ImageURL, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLStore) GetFeaturedEvent() (*models.Event, error) {
	var e models.Event
	// Nothing enforces a single featured event; the lowest id wins.
	query := s.rebind("SELECT " + eventColumns + " FROM events WHERE is_featured = ? ORDER BY id ASC LIMIT 1")

	err := s.db.QueryRow(query, true).Scan(&e.ID, &e.Title, &e.Description, &e.Date, &e.TimeRange, &e.Location, &e.Type, &e.IsFeatured, &e.ImageURL, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *SQLStore) CreateEvent(input models.InsertEvent) (*models.Event, error) {
	event := models.Event{
		Title:       input.Title,
		Description: input.Description,
		Date:        input.Date,
		TimeRange:   input.TimeRange,
		Location:    input.Location,
		Type:        input.Type,
		IsFeatured:  input.IsFeatured,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now(),
	}
	query := s.rebind(`INSERT INTO events
		(title, description, date, time_range, location, type, is_featured, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	err := s.db.QueryRow(query,
		input.Title, input.Description, input.Date, input.TimeRange,
		input.Location, input.Type, input.IsFeatured, input.ImageURL,
		event.CreatedAt,
	).Scan(&event.ID)
	if err != nil {
		return nil, err
	}
	return &event, nil
}
