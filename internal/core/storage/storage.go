package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store manages the SQLite database shared by the feature repositories.
type Store struct {
	db   *sql.DB
	path string
}

// Open creates or opens the console database at the given path and ensures
// the schema exists. Use ":memory:" for an ephemeral database in tests.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers; a single connection avoids database-locked
	// errors under concurrent request handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode = WAL; PRAGMA busy_timeout = 5000; PRAGMA foreign_keys = ON;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}

	store := &Store{db: db, path: path}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// DB returns the underlying database handle for the feature repositories.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping() error {
	return s.db.Ping()
}

// initSchema creates the database schema.
func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT UNIQUE NOT NULL,
		status INTEGER NOT NULL,
		customer_name TEXT,
		product_name TEXT,
		quantity INTEGER,
		order_date TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS tracking_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		order_id TEXT NOT NULL,
		status INTEGER NOT NULL,
		location TEXT NOT NULL,
		timestamp TEXT NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders(order_id)
	);
	CREATE INDEX IF NOT EXISTS idx_tracking_events_order ON tracking_events(order_id);

	CREATE TABLE IF NOT EXISTS certifications (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		code TEXT UNIQUE NOT NULL,
		issue_date TEXT NOT NULL,
		expiry_date TEXT NOT NULL,
		status TEXT NOT NULL,
		product_name TEXT,
		batch_number TEXT,
		manufacturer TEXT
	);

	CREATE TABLE IF NOT EXISTS inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		category TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS sales_demand (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		month TEXT NOT NULL,
		product_name TEXT NOT NULL,
		units INTEGER NOT NULL,
		UNIQUE (month, product_name)
	);

	CREATE TABLE IF NOT EXISTS training_bookings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		date TEXT NOT NULL,
		time TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS feedback (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		rating INTEGER NOT NULL,
		message TEXT NOT NULL,
		created_at TEXT NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}
	return nil
}
