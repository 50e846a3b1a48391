package db

// SchemaSQL is the complete schema. The ledger persists one JSON snapshot
// under a fixed key, so the whole database is a single key-value table.
// Tests load this same constant so test and production schemas cannot drift.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS snapshots (
	key TEXT PRIMARY KEY,
	body BLOB NOT NULL,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);
`
