// History table operations: hydration between SQLite rows and
// *types.Record, with structured fields stored as a JSON object column.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/glyphworks/barcodec/pkg/barcode"
	"github.com/glyphworks/barcodec/pkg/types"
)

// recordColumns is the column list shared by all history SELECTs.
const recordColumns = "record_id, source, content_type, format, template_id, payload, fields, render_options, created_at"

// Save persists a record. When RecordID is empty a new UUID v7 is
// generated and CreatedAt is stamped. Saving a record whose ID already
// exists updates that row in place, keeping its original created_at.
// Returns the actual ID used.
func (b *Backend) Save(record *types.Record) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return "", err
	}
	if record == nil {
		return "", types.ErrInvalidRecord
	}
	if record.Payload == "" {
		return "", fmt.Errorf("empty payload: %w", types.ErrInvalidRecord)
	}
	if !types.IsValidSource(record.Source) {
		return "", fmt.Errorf("source %q: %w", record.Source, types.ErrInvalidRecord)
	}

	if record.RecordID == "" {
		record.RecordID = generateUUID()
		record.CreatedAt = time.Now().UTC()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	fieldsJSON, err := json.Marshal(fieldsOrEmpty(record.Fields))
	if err != nil {
		return "", fmt.Errorf("marshal fields: %w", err)
	}

	// Options are opaque to the store; NULL when the record has none.
	var optionsJSON sql.NullString
	if record.Options != nil {
		data, err := json.Marshal(record.Options)
		if err != nil {
			return "", fmt.Errorf("marshal render options: %w", err)
		}
		optionsJSON = sql.NullString{String: string(data), Valid: true}
	}

	_, err = db.Exec(
		`INSERT INTO history (`+recordColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(record_id) DO UPDATE SET
		   source = excluded.source,
		   content_type = excluded.content_type,
		   format = excluded.format,
		   template_id = excluded.template_id,
		   payload = excluded.payload,
		   fields = excluded.fields,
		   render_options = excluded.render_options`,
		record.RecordID, record.Source, record.ContentType, record.Format,
		record.TemplateID, record.Payload, string(fieldsJSON), optionsJSON,
		record.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("persist record: %w", err)
	}
	return record.RecordID, nil
}

// Get retrieves a record by ID.
// Returns ErrNotFound if no record exists with that ID.
func (b *Backend) Get(id string) (*types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}
	if id == "" {
		return nil, types.ErrInvalidID
	}

	row := db.QueryRow("SELECT "+recordColumns+" FROM history WHERE record_id = ?", id)
	record, err := hydrateRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get record %s: %w", id, err)
	}
	return record, nil
}

// List returns records matching the filter, newest first.
func (b *Backend) List(filter types.Filter) ([]*types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	query := "SELECT " + recordColumns + " FROM history"
	var conds []string
	var args []any
	if filter.ContentType != "" {
		conds = append(conds, "content_type = ?")
		args = append(args, filter.ContentType)
	}
	if filter.Source != "" {
		conds = append(conds, "source = ?")
		args = append(args, filter.Source)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC, record_id DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	defer rows.Close()

	var records []*types.Record
	for rows.Next() {
		record, err := hydrateRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("hydrate record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// Delete removes the record with the given ID.
// Returns ErrNotFound if no record exists with that ID.
func (b *Backend) Delete(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return err
	}
	if id == "" {
		return types.ErrInvalidID
	}

	res, err := db.Exec("DELETE FROM history WHERE record_id = ?", id)
	if err != nil {
		return fmt.Errorf("delete record %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// Clear removes every record and returns the number removed.
func (b *Backend) Clear() (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.conn()
	if err != nil {
		return 0, err
	}

	res, err := db.Exec("DELETE FROM history")
	if err != nil {
		return 0, fmt.Errorf("clear history: %w", err)
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// FindByPayload returns the most recent record with a byte-identical
// payload. Returns ErrNotFound when none matches.
func (b *Backend) FindByPayload(payload string) (*types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.conn()
	if err != nil {
		return nil, err
	}

	row := db.QueryRow(
		"SELECT "+recordColumns+" FROM history WHERE payload = ? ORDER BY created_at DESC, record_id DESC LIMIT 1",
		payload,
	)
	record, err := hydrateRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("find by payload: %w", err)
	}
	return record, nil
}

// scanner covers *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// hydrateRecord scans one history row into a *types.Record. Unknown
// content type tokens written by other versions fall back to "unknown"
// rather than failing the load.
func hydrateRecord(row scanner) (*types.Record, error) {
	var (
		record      types.Record
		templateID  sql.NullString
		fieldsJSON  string
		optionsJSON sql.NullString
		createdAt   string
	)
	err := row.Scan(
		&record.RecordID, &record.Source, &record.ContentType, &record.Format,
		&templateID, &record.Payload, &fieldsJSON, &optionsJSON, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.TemplateID = templateID.String
	record.ContentType = string(barcode.ParseContentType(record.ContentType))

	if fieldsJSON != "" {
		if err := json.Unmarshal([]byte(fieldsJSON), &record.Fields); err != nil {
			// Keep the record; fields are display-only extras.
			record.Fields = nil
		}
	}
	if optionsJSON.Valid {
		var opts types.RenderOptions
		if err := json.Unmarshal([]byte(optionsJSON.String), &opts); err == nil {
			record.Options = &opts
		}
	}
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		record.CreatedAt = t
	}
	return &record, nil
}

// fieldsOrEmpty normalizes a nil field map to an empty JSON object so
// the column stays non-null.
func fieldsOrEmpty(fields map[string]string) map[string]string {
	if fields == nil {
		return map[string]string{}
	}
	return fields
}
