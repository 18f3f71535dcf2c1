// Package statestore persists the application state (library root, the
// pending candidate, and the recency log) in a local SQLite database.
package statestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver.

	"github.com/papapumpkin/magnetar/internal/history"
)

// schema contains the DDL executed on first open. Using IF NOT EXISTS
// makes it safe to run on every startup.
const schema = `
CREATE TABLE IF NOT EXISTS app_state (
    id             INTEGER PRIMARY KEY CHECK (id = 1),
    root_path      TEXT NOT NULL DEFAULT '',
    curr_project   INTEGER,
    curr_todo      INTEGER,
    curr_todo_name TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS project_history (
    pos        INTEGER PRIMARY KEY,
    project_id INTEGER NOT NULL
);
`

// Store persists application state in a SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at dbPath, enables WAL mode and a
// busy timeout, and creates the schema if missing.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("statestore: open database: %w", err)
	}

	// One connection: SQLite has a single writer and the state is tiny;
	// a pool only invites SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("statestore: enable WAL mode: %w", err)
	}
	if _, err := db.ExecContext(ctx, "PRAGMA busy_timeout=5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("statestore: set busy timeout: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("statestore: create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Load reads the persisted state. A fresh database yields the zero state.
func (s *Store) Load(ctx context.Context) (*history.State, error) {
	state := &history.State{}

	var currProject, currTodo sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT root_path, curr_project, curr_todo, curr_todo_name FROM app_state WHERE id = 1").
		Scan(&state.RootPath, &currProject, &currTodo, &state.CurrTodoName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("statestore: load state: %w", err)
	}
	if currProject.Valid {
		v := int(currProject.Int64)
		state.CurrProject = &v
	}
	if currTodo.Valid {
		v := int(currTodo.Int64)
		state.CurrTodo = &v
	}

	rows, err := s.db.QueryContext(ctx, "SELECT project_id FROM project_history ORDER BY pos")
	if err != nil {
		return nil, fmt.Errorf("statestore: load history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("statestore: scan history entry: %w", err)
		}
		state.ProjectsHistory = append(state.ProjectsHistory, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("statestore: iterate history: %w", err)
	}

	return state, nil
}

// Save writes the whole state in one transaction, replacing the previous
// recency log.
func (s *Store) Save(ctx context.Context, state *history.State) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("statestore: begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	var currProject, currTodo sql.NullInt64
	if state.CurrProject != nil {
		currProject = sql.NullInt64{Int64: int64(*state.CurrProject), Valid: true}
	}
	if state.CurrTodo != nil {
		currTodo = sql.NullInt64{Int64: int64(*state.CurrTodo), Valid: true}
	}

	const upsert = `
		INSERT INTO app_state (id, root_path, curr_project, curr_todo, curr_todo_name)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			root_path      = excluded.root_path,
			curr_project   = excluded.curr_project,
			curr_todo      = excluded.curr_todo,
			curr_todo_name = excluded.curr_todo_name`
	if _, err := tx.ExecContext(ctx, upsert, state.RootPath, currProject, currTodo, state.CurrTodoName); err != nil {
		return fmt.Errorf("statestore: save state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM project_history"); err != nil {
		return fmt.Errorf("statestore: clear history: %w", err)
	}
	for i, id := range state.ProjectsHistory {
		if _, err := tx.ExecContext(ctx, "INSERT INTO project_history (pos, project_id) VALUES (?, ?)", i, id); err != nil {
			return fmt.Errorf("statestore: save history entry: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("statestore: commit: %w", err)
	}
	return nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
