package store

import "github.com/Ahmedshelfun/KuopioMosque/internal/models"

// Store is the persistence contract shared by the in-memory and relational
// implementations. Route handlers only ever see this interface, so the
// backing technology can be swapped at startup without touching callers.
//
// Reads report absence as (nil, nil); a non-nil error always means a backend
// fault. Every Create method either returns a fully formed record with its
// id (and creation timestamp where the entity has one) populated, or an
// error — never a partial record.
type Store interface {
	// User operations
	GetUser(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user models.InsertUser) (*models.User, error)

	// Prayer time operations. The date string (YYYY-MM-DD) is the lookup
	// key; CreatePrayerTime rejects a second record for the same date.
	GetPrayerTimesByDate(date string) (*models.PrayerTime, error)
	CreatePrayerTime(pt models.InsertPrayerTime) (*models.PrayerTime, error)

	// Event operations. GetEvents excludes featured events and orders by
	// descending id; GetFeaturedEvent returns the lowest-id featured event.
	GetEvents() ([]models.Event, error)
	GetEvent(id int) (*models.Event, error)
	GetFeaturedEvent() (*models.Event, error)
	CreateEvent(event models.InsertEvent) (*models.Event, error)

	// News operations, ordered by descending id.
	GetNews() ([]models.News, error)
	GetNewsItem(id int) (*models.News, error)
	CreateNewsItem(item models.InsertNews) (*models.News, error)

	// Contact operations. Write-only: no read method exists.
	CreateContactMessage(msg models.InsertContactMessage) (*models.ContactMessage, error)
}
