package store

import (
	"database/sql"
	"fmt"

	"github.com/worklens/worklens/internal/session"
)

// InsertSession stores one session, replacing any existing row with the same
// id so re-imports stay idempotent.
func (db *DB) InsertSession(s session.WorkSession) error {
	_, err := db.conn.Exec(
		`INSERT OR REPLACE INTO sessions
		(id, date, start_time, end_time, duration_hours, category, earned)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Date, s.Start, s.End, s.DurationHours, s.Category, s.Earned,
	)
	return err
}

// InsertSessions stores a batch inside one transaction.
func (db *DB) InsertSessions(sessions []session.WorkSession) error {
	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}

	stmt, err := tx.Prepare(
		`INSERT OR REPLACE INTO sessions
		(id, date, start_time, end_time, duration_hours, category, earned)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, s := range sessions {
		if _, err := stmt.Exec(s.ID, s.Date, s.Start, s.End, s.DurationHours, s.Category, s.Earned); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("inserting session %s: %w", s.ID, err)
		}
	}
	return tx.Commit()
}

// ListSessions returns every stored session ordered by date, then start time.
func (db *DB) ListSessions() ([]session.WorkSession, error) {
	rows, err := db.conn.Query(
		`SELECT id, date, start_time, end_time, duration_hours, category, earned
		FROM sessions ORDER BY date, start_time`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// ListSessionsByDateRange returns the sessions with date in [from, to]
// inclusive, ordered by date, then start time. Dates are YYYY-MM-DD strings.
func (db *DB) ListSessionsByDateRange(from, to string) ([]session.WorkSession, error) {
	rows, err := db.conn.Query(
		`SELECT id, date, start_time, end_time, duration_hours, category, earned
		FROM sessions WHERE date >= ? AND date <= ? ORDER BY date, start_time`,
		from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSessions(rows)
}

// DeleteSession removes a session by id. Deleting a missing id is not an
// error; the boolean reports whether a row was removed.
func (db *DB) DeleteSession(id string) (bool, error) {
	res, err := db.conn.Exec("DELETE FROM sessions WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// CountSessions returns the number of stored sessions.
func (db *DB) CountSessions() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM sessions").Scan(&n)
	return n, err
}

func scanSessions(rows *sql.Rows) ([]session.WorkSession, error) {
	var out []session.WorkSession
	for rows.Next() {
		var s session.WorkSession
		if err := rows.Scan(&s.ID, &s.Date, &s.Start, &s.End, &s.DurationHours, &s.Category, &s.Earned); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
