// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/vritti-hub/slicingpie/internal/models"
)

// ErrNotFound is returned when an operation references an id absent from
// the store. Implementations wrap it with detail; callers match with
// errors.Is.
var ErrNotFound = errors.New("not found")

// Store defines the interface for ledger storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
//
// The store is a plain CRUD datastore with last-write-wins semantics;
// it performs no retries and no conflict detection.
type Store interface {
	// ListFounders returns all founders, oldest first.
	ListFounders(ctx context.Context) ([]models.Founder, error)

	// GetFounder retrieves a founder by ID.
	GetFounder(ctx context.Context, id string) (*models.Founder, error)

	// CreateFounder persists a new founder. ID and CreatedAt are
	// populated by the store when unset.
	CreateFounder(ctx context.Context, founder *models.Founder) error

	// UpdateFounder rewrites an existing founder row.
	UpdateFounder(ctx context.Context, founder *models.Founder) error

	// DeleteFounder removes a founder and cascades to every ledger
	// entry referencing it.
	DeleteFounder(ctx context.Context, id string) error

	// CountFounders returns the number of founders.
	CountFounders(ctx context.Context) (int, error)

	// ListCategories returns the four fixed categories.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategory retrieves a category by ID.
	GetCategory(ctx context.Context, id models.CategoryID) (*models.Category, error)

	// UpdateCategory rewrites an existing category row. Categories are
	// never created or deleted through the store interface; the fixed
	// set is seeded at setup.
	UpdateCategory(ctx context.Context, category *models.Category) error

	// ListEntries returns all ledger entries newest-first. Ordering
	// among equal timestamps is insertion order.
	ListEntries(ctx context.Context) ([]models.LedgerEntry, error)

	// CreateEntry persists a new ledger entry, snapshots included.
	// ID and CreatedAt are populated by the store when unset.
	CreateEntry(ctx context.Context, entry *models.LedgerEntry) error

	// DeleteEntry removes a single ledger entry.
	DeleteEntry(ctx context.Context, id string) error

	// CountEntries returns the number of ledger entries.
	CountEntries(ctx context.Context) (int, error)

	// CreateUser inserts a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when
	// no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when no
	// such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CountUsers returns the number of registered users.
	CountUsers(ctx context.Context) (int, error)

	// Close releases any resources held by the store.
	Close() error
}
