package store

const (
	selectCredential = `SELECT token FROM credentials WHERE slot = 1;`

	upsertCredential = `INSERT INTO credentials (slot, token, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (slot) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at;`

	deleteCredential = `DELETE FROM credentials WHERE slot = 1;`
)
