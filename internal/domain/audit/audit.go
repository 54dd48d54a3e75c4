package audit

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Action string

const (
	ActionAdded   Action = "Added"
	ActionUpdated Action = "Updated"
)

// TimestampLayout is the timestamp format of a line in the action log file.
const TimestampLayout = "2006-01-02 15:04:05.000000"

type Entry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
}

func (e Entry) Line() string {
	return fmt.Sprintf("%s - %s - %s\n", e.Timestamp.Format(TimestampLayout), e.Action, e.Details)
}

// Recorder receives one entry per successful add or update.
type Recorder interface {
	Record(ctx context.Context, entry Entry) error
}

// Lister reads back recent entries, newest first.
type Lister interface {
	List(ctx context.Context, limit int) ([]Entry, error)
}

// FileLog appends entries to a text file, opening it for each write so the
// file can be rotated between operations.
type FileLog struct {
	Path string
}

func NewFileLog(path string) *FileLog {
	return &FileLog{Path: path}
}

func (l *FileLog) Record(_ context.Context, entry Entry) error {
	f, err := os.OpenFile(l.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(entry.Line()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// List returns up to limit entries, most recent first. Lines that do not
// parse are skipped.
func (l *FileLog) List(_ context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	f, err := os.Open(l.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var all []Entry
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if entry, ok := parseLine(scanner.Text()); ok {
			all = append(all, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	out := make([]Entry, 0, min(limit, len(all)))
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func parseLine(line string) (Entry, bool) {
	parts := strings.SplitN(line, " - ", 3)
	if len(parts) != 3 {
		return Entry{}, false
	}
	ts, err := time.ParseInLocation(TimestampLayout, parts[0], time.Local)
	if err != nil {
		return Entry{}, false
	}
	return Entry{Timestamp: ts, Action: Action(parts[1]), Details: parts[2]}, true
}

type PGLog struct {
	DB *pgxpool.Pool
}

func NewPGLog(db *pgxpool.Pool) *PGLog {
	return &PGLog{DB: db}
}

func (l *PGLog) Record(ctx context.Context, entry Entry) error {
	_, err := l.DB.Exec(ctx, `
    INSERT INTO employee_actions (id, action, details, created_at)
    VALUES ($1,$2,$3,$4)
  `, entry.ID, string(entry.Action), entry.Details, entry.Timestamp)
	return err
}

func (l *PGLog) List(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := l.DB.Query(ctx, `
    SELECT id::text, action, details, created_at
    FROM employee_actions
    ORDER BY created_at DESC
    LIMIT $1
  `, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var entry Entry
		var action string
		if err := rows.Scan(&entry.ID, &action, &entry.Details, &entry.Timestamp); err != nil {
			return nil, err
		}
		entry.Action = Action(action)
		out = append(out, entry)
	}
	return out, rows.Err()
}

// Multi fans an entry out to every recorder, even when an earlier one fails.
type Multi []Recorder

func (m Multi) Record(ctx context.Context, entry Entry) error {
	var errs []error
	for _, r := range m {
		if err := r.Record(ctx, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
