package sqlstore

import (
	"database/sql"
	"errors"
	"time"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

const newsColumns = "id, title, content, date, image_url, author, created_at"

func (s *SQLStore) GetNews() ([]models.News, error) {
	rows, err := s.db.Query("SELECT " + newsColumns + " FROM news ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	news := make([]models.News, 0)
	for rows.Next() {
		var n models.News
		if err := rows.Scan(&n.ID, &n.Title, &n.Content, &n.Date, &n.ImageURL, &n.Author, &n.CreatedAt); err != nil {
			return nil, err
		}
		news = append(news, n)
	}
	return news, rows.Err()
}

func (s *SQLStore) GetNewsItem(id int) (*models.News, error) {
	var n models.News
	query := s.rebind("SELECT " + newsColumns + " FROM news WHERE id = ?")

	err := s.db.QueryRow(query, id).Scan(&n.ID, &n.Title, &n.Content, &n.Date, &n.ImageURL, &n.Author, &n.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *SQLStore) CreateNewsItem(input models.InsertNews) (*models.News, error) {
	item := models.News{
		Title:     input.Title,
		Content:   input.Content,
		Date:      input.Date,
		ImageURL:  input.ImageURL,
		Author:    input.Author,
		CreatedAt: time.Now(),
	}
	query := s.rebind("INSERT INTO news (title, content, date, image_url, author, created_at) VALUES (?, ?, ?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, input.Title, input.Content, input.Date, input.ImageURL, input.Author, item.CreatedAt).Scan(&item.ID)
	if err != nil {
		return nil, err
	}
	return &item, nil
}
