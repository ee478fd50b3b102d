package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/Ahmedshelfun/KuopioMosque/internal/config"
	"github.com/Ahmedshelfun/KuopioMosque/internal/handlers"
	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
	"github.com/Ahmedshelfun/KuopioMosque/internal/store/memstore"
	"github.com/Ahmedshelfun/KuopioMosque/internal/store/sqlstore"
)

var addr = flag.String("addr", "", "http service address (overrides PORT)")

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	s, err := newStore(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Handlers only see the Store interface; the backend is decided above.
	prayerTimesHandler := &handlers.PrayerTimesHandler{Store: s}
	eventsHandler := &handlers.EventsHandler{Store: s}
	newsHandler := &handlers.NewsHandler{Store: s}
	contactHandler := &handlers.ContactHandler{Store: s}

	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	// API Endpoints. /featured must be registered before /{id}.
	r.HandleFunc("/api/prayer-times", prayerTimesHandler.GetToday).Methods("GET")
	r.HandleFunc("/api/prayer-times/{date}", prayerTimesHandler.GetByDate).Methods("GET")
	r.HandleFunc("/api/events", eventsHandler.List).Methods("GET")
	r.HandleFunc("/api/events/featured", eventsHandler.GetFeatured).Methods("GET")
	r.HandleFunc("/api/events/{id}", eventsHandler.GetByID).Methods("GET")
	r.HandleFunc("/api/news", newsHandler.List).Methods("GET")
	r.HandleFunc("/api/news/{id}", newsHandler.GetByID).Methods("GET")
	r.HandleFunc("/api/contact", contactHandler.Create).Methods("POST")

	listen := *addr
	if listen == "" {
		listen = fmt.Sprintf(":%d", cfg.Port)
	}
	log.Println("Starting server on", listen, "with", cfg.Backend, "storage")
	log.Fatal(http.ListenAndServe(listen, r))
}

func newStore(cfg config.Config) (store.Store, error) {
	switch cfg.Backend {
	case "memory":
		// The in-memory store always seeds itself.
		return memstore.New(), nil
	case "sqlite3":
		return newSQLStore("sqlite3", cfg.SQLitePath, cfg.SeedData)
	case "postgres":
		return newSQLStore("postgres", cfg.DatabaseURL, cfg.SeedData)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func newSQLStore(driver, dsn string, seed bool) (store.Store, error) {
	s, err := sqlstore.New(driver, dsn)
	if err != nil {
		return nil, err
	}
	if seed {
		if err := store.Seed(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %v", r.Method, r.URL.Path, time.Since(start))
	})
}
