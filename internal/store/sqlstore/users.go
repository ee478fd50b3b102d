package sqlstore

import (
	"database/sql"
	"errors"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

func (s *SQLStore) GetUser(id int) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, username, password, name, email, role FROM users WHERE id = ?")

	err := s.db.QueryRow(query, id).Scan(&user.ID, &user.Username, &user.Password, &user.Name, &user.Email, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	query := s.rebind("SELECT id, username, password, name, email, role FROM users WHERE username = ?")

	err := s.db.QueryRow(query, username).Scan(&user.ID, &user.Username, &user.Password, &user.Name, &user.Email, &user.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) CreateUser(input models.InsertUser) (*models.User, error) {
	user := models.User{
		Username: input.Username,
		Password: input.Password,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
	}
	query := s.rebind("INSERT INTO users (username, password, name, email, role) VALUES (?, ?, ?, ?, ?) RETURNING id")
	err := s.db.QueryRow(query, input.Username, input.Password, input.Name, input.Email, input.Role).Scan(&user.ID)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
