package sqlite

// Schema DDL for the history store.
const createHistory = `CREATE TABLE IF NOT EXISTS history (
    record_id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    content_type TEXT NOT NULL,
    format TEXT NOT NULL,
    template_id TEXT,
    payload TEXT NOT NULL,
    fields TEXT NOT NULL,
    render_options TEXT,
    created_at TEXT NOT NULL
);`

// Index DDL for common queries: payload equality drives duplicate
// detection, the others back the list filters.
const (
	idxHistoryPayload     = `CREATE INDEX IF NOT EXISTS idx_history_payload ON history(payload);`
	idxHistoryContentType = `CREATE INDEX IF NOT EXISTS idx_history_content_type ON history(content_type);`
	idxHistoryCreatedAt   = `CREATE INDEX IF NOT EXISTS idx_history_created_at ON history(created_at);`
)

// schemaDDL lists all schema statements in execution order.
var schemaDDL = []string{
	createHistory,
	idxHistoryPayload,
	idxHistoryContentType,
	idxHistoryCreatedAt,
}
