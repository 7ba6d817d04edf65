package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Timestamps are stored as Unix
// milliseconds so that expiry comparisons run inside the storage engine.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id       TEXT PRIMARY KEY,
    username TEXT NOT NULL,
    email    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sellers (
    id   TEXT PRIMARY KEY,
    name TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS auctions (
    id           TEXT PRIMARY KEY,
    title        TEXT NOT NULL,
    description  TEXT NOT NULL,
    category     TEXT NOT NULL CHECK (category IN
        ('Electronics', 'Fashion', 'Home', 'Art', 'Vehicles', 'Collectibles', 'Other')),
    image_urls   TEXT NOT NULL,
    starting_bid INTEGER NOT NULL CHECK (starting_bid > 0),
    current_bid  INTEGER NOT NULL CHECK (current_bid >= starting_bid),
    end_time     INTEGER NOT NULL,
    seller_id    TEXT NOT NULL REFERENCES sellers(id),
    winner_id    TEXT REFERENCES users(id),
    status       TEXT NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'closed')),
    created_at   INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_auctions_status_end_time
    ON auctions(status, end_time);

CREATE TABLE IF NOT EXISTS bids (
    id          TEXT PRIMARY KEY,
    auction_id  TEXT NOT NULL REFERENCES auctions(id),
    bidder_id   TEXT NOT NULL REFERENCES users(id),
    bidder_name TEXT NOT NULL,
    amount      INTEGER NOT NULL CHECK (amount > 0),
    created_at  INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_bids_auction_created
    ON bids(auction_id, created_at DESC);

CREATE TABLE IF NOT EXISTS notifications (
    id         TEXT PRIMARY KEY,
    user_id    TEXT NOT NULL REFERENCES users(id),
    auction_id TEXT NOT NULL REFERENCES auctions(id),
    type       TEXT NOT NULL,
    message    TEXT NOT NULL,
    read       INTEGER NOT NULL DEFAULT 0,
    created_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notifications_user_created
    ON notifications(user_id, created_at DESC);

CREATE TABLE IF NOT EXISTS reviews (
    id            TEXT PRIMARY KEY,
    seller_id     TEXT NOT NULL REFERENCES sellers(id),
    reviewer_id   TEXT NOT NULL REFERENCES users(id),
    reviewer_name TEXT NOT NULL,
    rating        INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    comment       TEXT NOT NULL,
    created_at    INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_reviews_seller_created
    ON reviews(seller_id, created_at DESC);
`

// migrations is a list of SQL statements applied in order after schema
// creation. Each migration must be idempotent. Append new migrations at the end.
var migrations = []string{}

// EnsureSchema creates the schema and runs pending migrations.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	for i, m := range migrations {
		if _, err := db.Exec(m); err != nil {
			return fmt.Errorf("running migration %d: %w", i+1, err)
		}
	}

	return nil
}
