package repository

import (
	"context"
	"database/sql"
)

// MySQLIndexStore is the IndexStore backed by the schedule_index table.
// Each successful generation appends one row; the single-statement INSERT
// replaces the read-modify-write of the old flat index file.
type MySQLIndexStore struct {
	db *sql.DB
}

func NewMySQLIndexStore(db *sql.DB) *MySQLIndexStore {
	return &MySQLIndexStore{db: db}
}

// Append records that documentID belongs to userID.
func (r *MySQLIndexStore) Append(ctx context.Context, documentID, userID string) error {
	query := `INSERT INTO schedule_index (document_id, user_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, documentID, userID)
	return err
}

// ListByUser returns the document identifiers owned by userID, oldest first.
func (r *MySQLIndexStore) ListByUser(ctx context.Context, userID string) ([]string, error) {
	query := `SELECT document_id FROM schedule_index WHERE user_id = ? ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Remove deletes the index entry for documentID. Removing an entry that is
// already gone is not an error.
func (r *MySQLIndexStore) Remove(ctx context.Context, documentID string) error {
	query := `DELETE FROM schedule_index WHERE document_id = ?`
	_, err := r.db.ExecContext(ctx, query, documentID)
	return err
}
