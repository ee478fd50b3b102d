package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
)

type EventsHandler struct {
	Store store.Store
}

// List serves GET /api/events: all non-featured events, newest first.
func (h *EventsHandler) List(w http.ResponseWriter, r *http.Request) {
	events, err := h.Store.GetEvents()
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	writeJSON(w, http.StatusOK, events)
}

// GetFeatured serves GET /api/events/featured.
func (h *EventsHandler) GetFeatured(w http.ResponseWriter, r *http.Request) {
	event, err := h.Store.GetFeaturedEvent()
	if err != nil {
		log.Printf("Error fetching featured event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch featured event")
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, "No featured event found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}

// GetByID serves GET /api/events/{id}.
func (h *EventsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event ID")
		return
	}

	event, err := h.Store.GetEvent(id)
	if err != nil {
		log.Printf("Error fetching event: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	if event == nil {
		writeError(w, http.StatusNotFound, "Event not found")
		return
	}
	writeJSON(w, http.StatusOK, event)
}
