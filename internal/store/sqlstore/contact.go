package sqlstore

import (
	"time"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

func (s *SQLStore) CreateContactMessage(input models.InsertContactMessage) (*models.ContactMessage, error) {
	msg := models.ContactMessage{
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	query := s.rebind("INSERT INTO contact_messages (name, email, subject, message, created_at) VALUES (?, ?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, input.Name, input.Email, input.Subject, input.Message, msg.CreatedAt).Scan(&msg.ID)
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
