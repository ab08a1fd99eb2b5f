package store

// The client keeps exactly one session row. The fixed id=1 primary key turns
// every save into an upsert and every load into a point lookup.
const (
	createSessionTable = `CREATE TABLE IF NOT EXISTS session (
		id         INTEGER PRIMARY KEY CHECK (id = 1),
		payload    TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	);`

	upsertSession = `INSERT INTO session (id, payload, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (id) DO UPDATE SET payload = excluded.payload, updated_at = CURRENT_TIMESTAMP;`

	selectSession = `SELECT payload FROM session WHERE id = 1;`

	deleteSession = `DELETE FROM session WHERE id = 1;`
)
