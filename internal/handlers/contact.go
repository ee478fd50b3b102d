package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
)

type ContactHandler struct {
	Store store.Store
}

// Create serves POST /api/contact. The payload is validated before it
// reaches storage; a failing field yields a 400 with a readable message.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input models.InsertContactMessage
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validateContactMessage(input); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	created, err := h.Store.CreateContactMessage(input)
	if err != nil {
		log.Printf("Error submitting contact form: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func validateContactMessage(input models.InsertContactMessage) string {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return "Name is required"
	case strings.TrimSpace(input.Email) == "":
		return "Email is required"
	case !strings.Contains(input.Email, "@"):
		return "Email is invalid"
	case strings.TrimSpace(input.Subject) == "":
		return "Subject is required"
	case strings.TrimSpace(input.Message) == "":
		return "Message is required"
	}
	return ""
}
