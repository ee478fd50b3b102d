package models

import "time"

// User is the admin-panel account record. Passwords are stored opaquely;
// there is no authentication layer in front of this entity yet.
type User struct {
	ID       int     `json:"id"`
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

type InsertUser struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// PrayerTime holds one day's schedule. Times are HH:MM strings as published
// by the mosque, not computed. Sunrise has no iqamah.
type PrayerTime struct {
	ID             int     `json:"id"`
	Date           string  `json:"date"` // YYYY-MM-DD
	FajrBegins     string  `json:"fajr_begins"`
	FajrIqamah     *string `json:"fajr_iqamah"`
	Sunrise        string  `json:"sunrise"`
	DhuhrBegins    string  `json:"dhuhr_begins"`
	DhuhrIqamah    *string `json:"dhuhr_iqamah"`
	AsrBegins      string  `json:"asr_begins"`
	AsrIqamah      *string `json:"asr_iqamah"`
	MaghribBegins  string  `json:"maghrib_begins"`
	MaghribIqamah  *string `json:"maghrib_iqamah"`
	IshaBegins     string  `json:"isha_begins"`
	IshaIqamah     *string `json:"isha_iqamah"`
	NextPrayerName *string `json:"next_prayer_name"`
}

type InsertPrayerTime struct {
	Date           string  `json:"date"`
	FajrBegins     string  `json:"fajr_begins"`
	FajrIqamah     *string `json:"fajr_iqamah"`
	Sunrise        string  `json:"sunrise"`
	DhuhrBegins    string  `json:"dhuhr_begins"`
	DhuhrIqamah    *string `json:"dhuhr_iqamah"`
	AsrBegins      string  `json:"asr_begins"`
	AsrIqamah      *string `json:"asr_iqamah"`
	MaghribBegins  string  `json:"maghrib_begins"`
	MaghribIqamah  *string `json:"maghrib_iqamah"`
	IshaBegins     string  `json:"isha_begins"`
	IshaIqamah     *string `json:"isha_iqamah"`
	NextPrayerName *string `json:"next_prayer_name"`
}

// Event types: Featured, Weekly, Bi-weekly, Monthly, Special.
type Event struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"` // human-readable, e.g. "July 28, 2023" or "Every Wednesday"
	TimeRange   string    `json:"time_range"`
	Location    *string   `json:"location"`
	Type        string    `json:"type"`
	IsFeatured  bool      `json:"is_featured"`
	ImageURL    *string   `json:"image_url"`
	CreatedAt   time.Time `json:"created_at"`
}

type InsertEvent struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	TimeRange   string  `json:"time_range"`
	Location    *string `json:"location"`
	Type        string  `json:"type"`
	IsFeatured  bool    `json:"is_featured"`
	ImageURL    *string `json:"image_url"`
}

type News struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Date      string    `json:"date"`
	ImageURL  string    `json:"image_url"`
	Author    *string   `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

type InsertNews struct {
	Title    string  `json:"title"`
	Content  string  `json:"content"`
	Date     string  `json:"date"`
	ImageURL string  `json:"image_url"`
	Author   *string `json:"author"`
}

// ContactMessage is write-only: the API accepts submissions but exposes no
// read endpoint. Messages are reviewed directly in the database.
type ContactMessage struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type InsertContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}
