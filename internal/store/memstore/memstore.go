// Package memstore is the map-backed reference implementation of the storage
// contract, used for development and testing without an external database.
package memstore

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/Ahmedshelfun/KuopioMosque/internal/models"
	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
)

type MemStore struct {
	mu sync.RWMutex

	users           map[int]models.User
	prayerTimes     map[string]models.PrayerTime // keyed by YYYY-MM-DD date
	events          map[int]models.Event
	newsItems       map[int]models.News
	contactMessages map[int]models.ContactMessage

	nextUserID       int
	nextPrayerTimeID int
	nextEventID      int
	nextNewsID       int
	nextContactID    int
}

var _ store.Store = (*MemStore)(nil)

// New returns a store pre-populated with fixture data.
func New() *MemStore {
	m := NewEmpty()
	if err := store.Seed(m); err != nil {
		// Seeding an empty in-memory store cannot hit a backend fault.
		panic(err)
	}
	return m
}

// NewEmpty returns a store with no records, for callers that provide their
// own data.
func NewEmpty() *MemStore {
	return &MemStore{
		users:            make(map[int]models.User),
		prayerTimes:      make(map[string]models.PrayerTime),
		events:           make(map[int]models.Event),
		newsItems:        make(map[int]models.News),
		contactMessages:  make(map[int]models.ContactMessage),
		nextUserID:       1,
		nextPrayerTimeID: 1,
		nextEventID:      1,
		nextNewsID:       1,
		nextContactID:    1,
	}
}

// User methods

func (m *MemStore) GetUser(id int) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (m *MemStore) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			return &user, nil
		}
	}
	return nil, nil
}

func (m *MemStore) CreateUser(input models.InsertUser) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user := models.User{
		ID:       m.nextUserID,
		Username: input.Username,
		Password: input.Password,
		Name:     input.Name,
		Email:    input.Email,
		Role:     input.Role,
	}
	m.nextUserID++
	m.users[user.ID] = user
	return &user, nil
}

// Prayer time methods

func (m *MemStore) GetPrayerTimesByDate(date string) (*models.PrayerTime, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if pt, ok := m.prayerTimes[date]; ok {
		return &pt, nil
	}
	return nil, nil
}

func (m *MemStore) CreatePrayerTime(input models.InsertPrayerTime) (*models.PrayerTime, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.prayerTimes[input.Date]; ok {
		return nil, fmt.Errorf("prayer times for %s already exist", input.Date)
	}
	pt := models.PrayerTime{
		ID:             m.nextPrayerTimeID,
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
	m.nextPrayerTimeID++
	m.prayerTimes[pt.Date] = pt
	return &pt, nil
}

// Event methods

func (m *MemStore) GetEvents() ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	events := make([]models.Event, 0, len(m.events))
	for _, event := range m.events {
		if !event.IsFeatured {
			events = append(events, event)
		}
	}
	sort.Slice(events, func(i, j int) bool { return events[i].ID > events[j].ID })
	return events, nil
}

func (m *MemStore) GetEvent(id int) (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if event, ok := m.events[id]; ok {
		return &event, nil
	}
	return nil, nil
}

func (m *MemStore) GetFeaturedEvent() (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Lowest id wins so both backends agree when several events are flagged.
	ids := make([]int, 0, len(m.events))
	for id := range m.events {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if event := m.events[id]; event.IsFeatured {
			return &event, nil
		}
	}
	return nil, nil
}

func (m *MemStore) CreateEvent(input models.InsertEvent) (*models.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	event := models.Event{
		ID:          m.nextEventID,
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
	m.nextEventID++
	m.events[event.ID] = event
	return &event, nil
}

// News methods

func (m *MemStore) GetNews() ([]models.News, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	news := make([]models.News, 0, len(m.newsItems))
	for _, item := range m.newsItems {
		news = append(news, item)
	}
	sort.Slice(news, func(i, j int) bool { return news[i].ID > news[j].ID })
	return news, nil
}

func (m *MemStore) GetNewsItem(id int) (*models.News, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if item, ok := m.newsItems[id]; ok {
		return &item, nil
	}
	return nil, nil
}

func (m *MemStore) CreateNewsItem(input models.InsertNews) (*models.News, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item := models.News{
		ID:        m.nextNewsID,
		Title:     input.Title,
		Content:   input.Content,
		Date:      input.Date,
		ImageURL:  input.ImageURL,
		Author:    input.Author,
		CreatedAt: time.Now(),
	}
	m.nextNewsID++
	m.newsItems[item.ID] = item
	return &item, nil
}

// Contact methods

func (m *MemStore) CreateContactMessage(input models.InsertContactMessage) (*models.ContactMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg := models.ContactMessage{
		ID:        m.nextContactID,
		Name:      input.Name,
		Email:     input.Email,
		Subject:   input.Subject,
		Message:   input.Message,
		CreatedAt: time.Now(),
	}
	m.nextContactID++
	m.contactMessages[msg.ID] = msg
	return &msg, nil
}
