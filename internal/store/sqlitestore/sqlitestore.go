package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-sqlite3"

	"github.com/idilsaglam/todo/internal/model"
)

// SQLite-backed storage. Single file next to where the tool is started.
// Each call opens and closes its own connection; fine for a local single-user CLI.

const dataFileName = "todo_list.db3"

var ErrNoPath = errors.New("store path is empty")

// DefaultPath is the database file in the current working directory.
func DefaultPath() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getwd: %w", err)
	}
	return filepath.Join(wd, dataFileName), nil
}

type Store struct {
	path   string
	logger *log.Logger
}

// New returns a Store for the database file at path. A nil logger discards output.
func New(path string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{path: path, logger: logger}
}

func (s *Store) Path() string { return s.path }

func (s *Store) open(ctx context.Context) (*sql.DB, error) {
	if s.path == "" {
		return nil, ErrNoPath
	}
	db, err := sql.Open("sqlite3", s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	return db, nil
}

// Init creates the database file and the todolist table if missing.
// Existing rows are left untouched.
func (s *Store) Init(ctx context.Context) error {
	if s.path != "" {
		if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
			return fmt.Errorf("mkdir: %w", err)
		}
	}
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS todolist (
			name  TEXT NOT NULL PRIMARY KEY,
			state TEXT NOT NULL
		)`)
	if err != nil {
		return fmt.Errorf("create table: %w", err)
	}
	s.logger.Debug("store ready", "path", s.path)
	return nil
}

// AddTask inserts a row. A task with the same text already stored is a
// constraint violation, see IsConstraint.
func (s *Store) AddTask(ctx context.Context, t model.Task) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx,
		`INSERT INTO todolist (name, state) VALUES (?, ?)`,
		t.Text(), t.Status().String()); err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	s.logger.Debug("task inserted", "name", t.Text(), "state", t.Status())
	return nil
}

// SetDone updates the state of the row named like t. No matching row is not an error.
func (s *Store) SetDone(ctx context.Context, t model.Task, st model.Status) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	res, err := db.ExecContext(ctx,
		`UPDATE todolist SET state = ? WHERE name = ?`,
		st.String(), t.Text())
	if err != nil {
		return fmt.Errorf("update state: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil {
		s.logger.Debug("state updated", "name", t.Text(), "state", st, "rows", n)
	}
	return nil
}

// Load reads every row in store order.
func (s *Store) Load(ctx context.Context) ([]model.Task, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT name, state FROM todolist`)
	if err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		var name, state string
		if err := rows.Scan(&name, &state); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		st, known := model.ParseStatus(state)
		if !known {
			s.logger.Warn("unknown state, reading as done", "name", name, "state", state)
		}
		tasks = append(tasks, model.NewTask(name, st))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("select tasks: %w", err)
	}
	s.logger.Debug("tasks loaded", "count", len(tasks))
	return tasks, nil
}

// Clear deletes every row.
func (s *Store) Clear(ctx context.Context) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, `DELETE FROM todolist`); err != nil {
		return fmt.Errorf("delete tasks: %w", err)
	}
	return nil
}

// IsConstraint reports whether err comes from a violated table constraint,
// such as inserting a task whose text is already stored.
func IsConstraint(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.Code == sqlite3.ErrConstraint
	}
	return false
}
