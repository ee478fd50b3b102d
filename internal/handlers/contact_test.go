package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
)

func postContact(t *testing.T, handler *ContactHandler, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	b, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBuffer(b))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)
	return rr
}

func TestCreateContactMessageHandler(t *testing.T) {
	handler := &ContactHandler{Store: newTestStore(t)}

	rr := postContact(t, handler, models.InsertContactMessage{
		Name:    "Fatima",
		Email:   "fatima@example.com",
		Subject: "Volunteering",
		Message: "I would like to help at the next event.",
	})

	if rr.Code != http.StatusCreated {
		t.Fatalf("got status %v, want %v: %s", rr.Code, http.StatusCreated, rr.Body.String())
	}

	var created models.ContactMessage
	json.NewDecoder(rr.Body).Decode(&created)
	if created.ID == 0 {
		t.Error("Expected assigned id")
	}
	if created.Name != "Fatima" || created.Message != "I would like to help at the next event." {
		t.Errorf("Input fields mutated: %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Error("CreatedAt not assigned")
	}
}

func TestCreateContactMessageValidation(t *testing.T) {
	handler := &ContactHandler{Store: newTestStore(t)}

	tests := []struct {
		name    string
		input   models.InsertContactMessage
		message string
	}{
		{
			name:    "empty message",
			input:   models.InsertContactMessage{Name: "A", Email: "a@b.c", Subject: "S"},
			message: "Message is required",
		},
		{
			name:    "empty name",
			input:   models.InsertContactMessage{Email: "a@b.c", Subject: "S", Message: "M"},
			message: "Name is required",
		},
		{
			name:    "empty email",
			input:   models.InsertContactMessage{Name: "A", Subject: "S", Message: "M"},
			message: "Email is required",
		},
		{
			name:    "bad email",
			input:   models.InsertContactMessage{Name: "A", Email: "not-an-email", Subject: "S", Message: "M"},
			message: "Email is invalid",
		},
		{
			name:    "empty subject",
			input:   models.InsertContactMessage{Name: "A", Email: "a@b.c", Message: "M"},
			message: "Subject is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := postContact(t, handler, tt.input)
			if rr.Code != http.StatusBadRequest {
				t.Errorf("got status %v, want %v", rr.Code, http.StatusBadRequest)
			}
			var resp map[string]string
			json.NewDecoder(rr.Body).Decode(&resp)
			if resp["message"] != tt.message {
				t.Errorf("got message %q, want %q", resp["message"], tt.message)
			}
		})
	}
}

func TestCreateContactMessageBadBody(t *testing.T) {
	handler := &ContactHandler{Store: newTestStore(t)}

	req, _ := http.NewRequest("POST", "/api/contact", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	handler.Create(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("got status %v, want %v", rr.Code, http.StatusBadRequest)
	}
}
