package sqlite

import "database/sql"

// migrations contains the SQL statements to set up the database schema.
// These run on startup to ensure tables exist.
// IMPORTANT: founders and categories must be created BEFORE entries due to
// foreign key constraints.
const schema = `
CREATE TABLE IF NOT EXISTS founders (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    market_salary REAL NOT NULL,
    paid_salary REAL NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS categories (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    multiplier REAL NOT NULL,
    input_type TEXT NOT NULL,
    is_auto_calculated INTEGER NOT NULL DEFAULT 0,
    commission_percent REAL,
    color TEXT NOT NULL DEFAULT '',
    emoji TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS entries (
    id TEXT PRIMARY KEY,
    founder_id TEXT NOT NULL,
    category_id TEXT NOT NULL,
    amount REAL NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at INTEGER NOT NULL,
    snap_market_salary REAL NOT NULL,
    snap_paid_salary REAL NOT NULL,
    snap_multiplier REAL NOT NULL,
    snap_commission_percent REAL,
    FOREIGN KEY (founder_id) REFERENCES founders(id) ON DELETE CASCADE,
    FOREIGN KEY (category_id) REFERENCES categories(id)
);

CREATE TABLE IF NOT EXISTS users (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    display_name TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    role TEXT NOT NULL,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_founder_id ON entries(founder_id);
CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
`

// runMigrations executes the schema setup.
func runMigrations(db *sql.DB) error {
	_, err := db.Exec(schema)
	return err
}
