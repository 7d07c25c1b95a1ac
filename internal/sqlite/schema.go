package sqlite

// Schema DDL. One row per named blob.
const (
	createBlobs = `CREATE TABLE IF NOT EXISTS blobs (
    name TEXT PRIMARY KEY,
    payload BLOB,
    updated_at TEXT NOT NULL
);`

	selectBlob = `SELECT payload FROM blobs WHERE name = ?`

	upsertBlob = `INSERT INTO blobs (name, payload, updated_at) VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
)

// schemaStatements lists the DDL executed on Open, in order.
var schemaStatements = []string{
	createBlobs,
}
