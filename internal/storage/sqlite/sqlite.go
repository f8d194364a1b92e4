// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/vritti-hub/slicingpie/internal/models"
	"github.com/vritti-hub/slicingpie/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path.
// It creates the parent directories, runs migrations, seeds the four
// fixed categories, and seeds a starter founder when the founders table
// is empty (the system must always hold at least one founder).
func New(dbPath string) (*SQLiteStore, error) {
	// Create parent directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Open database with pure Go driver
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Run migrations
	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	// Seed fixed configuration
	if err := seedDefaults(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to seed defaults: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// defaultCommission is the seeded revenue commission percentage.
const defaultCommission = 10.0

// defaultCategories is the fixed category set with its default
// configuration. Only revenue carries a commission.
func defaultCategories() []models.Category {
	commission := defaultCommission
	return []models.Category{
		{ID: models.CategoryCash, Name: "Cash Invested", Multiplier: 4, InputType: models.InputCurrency, Color: "blue", Emoji: "💙"},
		{ID: models.CategoryTime, Name: "Time Contributed", Multiplier: 2, InputType: models.InputHours, Color: "orange", Emoji: "🧡"},
		{ID: models.CategoryRevenue, Name: "Revenue Brought In", Multiplier: 8, InputType: models.InputCurrency, CommissionPercent: &commission, Color: "red", Emoji: "❤️"},
		{ID: models.CategoryExpenses, Name: "Expenses Paid", Multiplier: 4, InputType: models.InputCurrency, Color: "pink", Emoji: "💗"},
	}
}

// seedDefaults inserts the fixed category set (idempotent) and a starter
// founder when none exists yet.
func seedDefaults(db *sql.DB) error {
	for _, c := range defaultCategories() {
		var commission interface{}
		if c.CommissionPercent != nil {
			commission = *c.CommissionPercent
		}
		_, err := db.Exec(
			`INSERT OR IGNORE INTO categories (id, name, multiplier, input_type, is_auto_calculated, commission_percent, color, emoji)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			string(c.ID), c.Name, c.Multiplier, string(c.InputType), boolToInt(c.IsAutoCalculated), commission, c.Color, c.Emoji,
		)
		if err != nil {
			return fmt.Errorf("failed to seed category %s: %w", c.ID, err)
		}
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM founders").Scan(&count); err != nil {
		return fmt.Errorf("failed to count founders: %w", err)
	}
	if count == 0 {
		_, err := db.Exec(
			"INSERT INTO founders (id, name, market_salary, paid_salary, created_at) VALUES (?, ?, ?, ?, ?)",
			uuid.New().String(), "Founder 1", 100000.0, 0.0, time.Now().Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to seed starter founder: %w", err)
		}
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
