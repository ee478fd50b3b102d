// Package sqlstore implements the storage contract on top of database/sql,
// for either SQLite (development) or Postgres (production).
package sqlstore

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"           // Postgres driver
	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/Ahmedshelfun/KuopioMosque/internal/store"
)

type SQLStore struct {
	db         *sql.DB
	driverName string
}

var _ store.Store = (*SQLStore)(nil)

func New(driverName, dataSourceName string) (*SQLStore, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLStore{db: db, driverName: driverName}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) createTables() error {
	// Simplified for brevity, ideally use migrations
	query := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		name TEXT,
		email TEXT,
		role TEXT
	);

	CREATE TABLE IF NOT EXISTS prayer_times (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT UNIQUE NOT NULL,
		fajr_begins TEXT NOT NULL,
		fajr_iqamah TEXT,
		sunrise TEXT NOT NULL,
		dhuhr_begins TEXT NOT NULL,
		dhuhr_iqamah TEXT,
		asr_begins TEXT NOT NULL,
		asr_iqamah TEXT,
		maghrib_begins TEXT NOT NULL,
		maghrib_iqamah TEXT,
		isha_begins TEXT NOT NULL,
		isha_iqamah TEXT,
		next_prayer_name TEXT
	);

	CREATE TABLE IF NOT EXISTS events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		date TEXT NOT NULL,
		time_range TEXT NOT NULL,
		location TEXT,
		type TEXT NOT NULL,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		image_url TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS news (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		date TEXT NOT NULL,
		image_url TEXT NOT NULL,
		author TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contact_messages (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		subject TEXT NOT NULL,
		message TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);
	` + commerceTables

	if s.driverName == "postgres" {
		// Adjust for Postgres syntax
		query = strings.ReplaceAll(query, "INTEGER PRIMARY KEY AUTOINCREMENT", "SERIAL PRIMARY KEY")
		query = strings.ReplaceAll(query, "DATETIME", "TIMESTAMP")
	}

	_, err := s.db.Exec(query)
	return err
}

// Commerce extension for the planned halal shop. No route or contract
// method touches these tables yet; they exist so the production schema
// matches the persisted-state layout.
const commerceTables = `
	CREATE TABLE IF NOT EXISTS categories (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		name_ar TEXT NOT NULL,
		description TEXT,
		description_ar TEXT,
		image_url TEXT,
		parent_id INTEGER,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS brands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		name_ar TEXT,
		description TEXT,
		description_ar TEXT,
		logo_url TEXT NOT NULL,
		website_url TEXT,
		country TEXT,
		country_ar TEXT,
		featured BOOLEAN NOT NULL DEFAULT FALSE,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		name_ar TEXT NOT NULL,
		description TEXT NOT NULL,
		description_ar TEXT NOT NULL,
		price DECIMAL(10,2) NOT NULL,
		old_price DECIMAL(10,2),
		image_url TEXT NOT NULL,
		category_id INTEGER NOT NULL,
		brand_id INTEGER NOT NULL,
		stock INTEGER NOT NULL DEFAULT 0,
		weight TEXT NOT NULL,
		is_new BOOLEAN NOT NULL DEFAULT FALSE,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		tags TEXT NOT NULL DEFAULT '[]',
		nutrition_facts TEXT DEFAULT '{}',
		ingredients TEXT,
		ingredients_ar TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL,
		user_id INTEGER NOT NULL,
		rating INTEGER NOT NULL,
		title TEXT,
		comment TEXT,
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		total_amount DECIMAL(10,2) NOT NULL,
		shipping_address TEXT NOT NULL,
		payment_method VARCHAR(50) NOT NULL,
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id INTEGER NOT NULL,
		product_id INTEGER NOT NULL,
		quantity INTEGER NOT NULL,
		price DECIMAL(10,2) NOT NULL
	);
`

// Helper to handle placeholders
func (s *SQLStore) rebind(query string) string {
	if s.driverName == "postgres" {
		// Replace ? with $1, $2, etc.
		n := strings.Count(query, "?")
		for i := 1; i <= n; i++ {
			query = strings.Replace(query, "?", fmt.Sprintf("$%d", i), 1)
		}
	}
	return query
}
