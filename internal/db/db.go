package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS days (
    id          INTEGER PRIMARY KEY,
    date        TEXT NOT NULL,
    area        TEXT,
    title       TEXT NOT NULL,
    description TEXT,
    total_cost  REAL NOT NULL CHECK(total_cost >= 0),
    group_cost  INTEGER NOT NULL CHECK(group_cost IN (0,1)),
    exported_at TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);

CREATE TABLE IF NOT EXISTS activities (
    id                INTEGER PRIMARY KEY,
    day_id            INTEGER NOT NULL REFERENCES days(id),
    position          INTEGER NOT NULL,
    time              TEXT,
    description       TEXT NOT NULL,
    category          TEXT,
    cost              REAL NOT NULL CHECK(cost >= 0),
    group_cost        INTEGER NOT NULL CHECK(group_cost IN (0,1)),
    location          TEXT,
    previous_location TEXT,
    details           TEXT,
    note              TEXT
);

CREATE TABLE IF NOT EXISTS accommodations (
    day_id    INTEGER PRIMARY KEY REFERENCES days(id),
    name      TEXT NOT NULL,
    type      TEXT,
    rating    REAL CHECK(rating BETWEEN 0 AND 5),
    price     REAL CHECK(price >= 0),
    features  TEXT,
    location  TEXT,
    check_in  TEXT,
    check_out TEXT,
    nights    INTEGER
);

CREATE TABLE IF NOT EXISTS highlights (
    day_id   INTEGER NOT NULL REFERENCES days(id),
    position INTEGER NOT NULL,
    tag      TEXT NOT NULL,
    PRIMARY KEY (day_id, position)
);

CREATE INDEX IF NOT EXISTS idx_activities_day_id ON activities(day_id, position);
`

// Open opens or creates the SQLite database and initializes the schema.
func Open(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return db, nil
}
