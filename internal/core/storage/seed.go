package storage

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Seed inserts the demo fixtures used by the console: a handful of orders
// with their tracking history, certification records, inventory items,
// sales demand figures and a demo operator account. Existing rows are
// left untouched, so seeding is safe to run on every startup.
func (s *Store) Seed() error {
	seedOrders := []struct {
		orderID      string
		status       int
		customerName string
		productName  string
		quantity     int
		orderDate    string
	}{
		{"ORD001", 3, "John Doe", "Paracetamol 500mg", 100, "2024-11-10"},
		{"ORD002", 2, "Jane Smith", "Amoxicillin 250mg", 50, "2024-11-15"},
		{"ORD003", 1, "Bob Johnson", "Ibuprofen 200mg", 200, "2024-11-16"},
		{"ORD004", 0, "Alice Williams", "Aspirin 100mg", 150, "2024-11-18"},
		{"TRACK001", 1, "Test Customer", "Vitamin C 1000mg", 75, "2024-11-17"},
	}

	for _, o := range seedOrders {
		if _, err := s.db.Exec(
			`INSERT OR IGNORE INTO orders (order_id, status, customer_name, product_name, quantity, order_date)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			o.orderID, o.status, o.customerName, o.productName, o.quantity, o.orderDate,
		); err != nil {
			return fmt.Errorf("failed to seed order %s: %w", o.orderID, err)
		}
	}

	seedEvents := []struct {
		orderID   string
		status    int
		location  string
		timestamp string
	}{
		{"ORD001", 0, "Warehouse A", "2024-11-10 09:00"},
		{"ORD001", 1, "Distribution Center", "2024-11-11 14:30"},
		{"ORD001", 2, "Local Hub", "2024-11-12 08:15"},
		{"ORD001", 3, "Customer Address", "2024-11-12 16:45"},

		{"ORD002", 0, "Warehouse B", "2024-11-15 10:00"},
		{"ORD002", 1, "Distribution Center", "2024-11-16 15:20"},
		{"ORD002", 2, "Local Hub", "2024-11-18 07:30"},

		{"ORD003", 0, "Warehouse A", "2024-11-16 11:00"},
		{"ORD003", 1, "Distribution Center", "2024-11-17 16:45"},

		{"ORD004", 0, "Warehouse C", "2024-11-18 09:30"},

		{"TRACK001", 0, "Warehouse B", "2024-11-17 08:00"},
		{"TRACK001", 1, "Distribution Center", "2024-11-18 10:15"},
	}

	var eventCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tracking_events`).Scan(&eventCount); err != nil {
		return fmt.Errorf("failed to count tracking events: %w", err)
	}
	if eventCount == 0 {
		for _, e := range seedEvents {
			if _, err := s.db.Exec(
				`INSERT INTO tracking_events (order_id, status, location, timestamp) VALUES (?, ?, ?, ?)`,
				e.orderID, e.status, e.location, e.timestamp,
			); err != nil {
				return fmt.Errorf("failed to seed tracking event for %s: %w", e.orderID, err)
			}
		}
	}

	seedCertifications := []struct {
		code         string
		issueDate    string
		expiryDate   string
		status       string
		productName  string
		batchNumber  string
		manufacturer string
	}{
		{"CERT001", "2025-01-15", "2026-01-15", "Valid", "Paracetamol 500mg", "BATCH2025001", "PharmaCorp Inc."},
		{"CERT002", "2025-02-20", "2026-02-20", "Valid", "Amoxicillin 250mg", "BATCH2025002", "MediLife Ltd."},
		{"CERT003", "2024-03-10", "2025-03-10", "Expired", "Ibuprofen 200mg", "BATCH2024003", "HealthCare Solutions"},
		{"QR12345", "2025-06-01", "2026-06-01", "Valid", "Aspirin 100mg", "BATCH2025004", "Global Pharma"},
		{"SCAN001", "2025-07-15", "2026-07-15", "Valid", "Vitamin C 1000mg", "BATCH2025005", "NutriMed Inc."},
	}

	for _, c := range seedCertifications {
		if _, err := s.db.Exec(
			`INSERT OR IGNORE INTO certifications (code, issue_date, expiry_date, status, product_name, batch_number, manufacturer)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			c.code, c.issueDate, c.expiryDate, c.status, c.productName, c.batchNumber, c.manufacturer,
		); err != nil {
			return fmt.Errorf("failed to seed certification %s: %w", c.code, err)
		}
	}

	var inventoryCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM inventory`).Scan(&inventoryCount); err != nil {
		return fmt.Errorf("failed to count inventory: %w", err)
	}
	if inventoryCount == 0 {
		seedItems := []struct {
			name     string
			quantity int
			category string
		}{
			{"Paracetamol 500mg", 500, "Medication"},
			{"Amoxicillin 250mg", 300, "Medication"},
			{"Ibuprofen 200mg", 450, "Medication"},
			{"Surgical Masks", 1000, "Supplies"},
			{"Vitamin C 1000mg", 400, "Supplements"},
		}
		for _, item := range seedItems {
			if _, err := s.db.Exec(
				`INSERT INTO inventory (item_name, quantity, category) VALUES (?, ?, ?)`,
				item.name, item.quantity, item.category,
			); err != nil {
				return fmt.Errorf("failed to seed inventory item %s: %w", item.name, err)
			}
		}
	}

	months := []string{"2024-06", "2024-07", "2024-08", "2024-09", "2024-10", "2024-11"}
	seedDemand := map[string][]int{
		"Paracetamol 500mg": {120, 135, 150, 160, 180, 210},
		"Amoxicillin 250mg": {80, 75, 90, 95, 110, 120},
		"Ibuprofen 200mg":   {60, 70, 65, 85, 90, 100},
	}
	for product, units := range seedDemand {
		for i, month := range months {
			if _, err := s.db.Exec(
				`INSERT OR IGNORE INTO sales_demand (month, product_name, units) VALUES (?, ?, ?)`,
				month, product, units[i],
			); err != nil {
				return fmt.Errorf("failed to seed sales demand for %s: %w", product, err)
			}
		}
	}

	var userCount int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM users`).Scan(&userCount); err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		if _, err := s.db.Exec(
			`INSERT INTO users (email, password_hash, created_at) VALUES (?, ?, ?)`,
			"admin@meditrack.local", string(hash), time.Now().UTC().Format(time.RFC3339),
		); err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}
	}

	return nil
}
