package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
)

type NewsHandler struct {
	Store store.Store
}

// List serves GET /api/news, newest first.
func (h *NewsHandler) List(w http.ResponseWriter, r *http.Request) {
	news, err := h.Store.GetNews()
	if err != nil {
		log.Printf("Error fetching news: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch news")
		return
	}
	writeJSON(w, http.StatusOK, news)
}

// GetByID serves GET /api/news/{id}.
func (h *NewsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid news ID")
		return
	}

	item, err := h.Store.GetNewsItem(id)
	if err != nil {
		log.Printf("Error fetching news item: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to fetch news item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "News item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}
