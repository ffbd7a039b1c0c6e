// Package driver defines the engine capability set the client core is
// parameterized over, and provides adapters for PostgreSQL (pooled),
// SQLite (embedded) and MySQL backends on top of database/sql.
package driver

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"github.com/satishbabariya/dbkit/sqlgen"
)

// ErrNotConnected is returned when a statement runs against a driver
// whose handle has not been established with Connect.
var ErrNotConnected = errors.New("driver: not connected")

// Policy declares a driver's connection lifecycle: whether the handle
// persists across operations or is torn down after every one.
type Policy int

const (
	// PolicyPersistent keeps the handle open until an explicit Close.
	// Pooled backends use this.
	PolicyPersistent Policy = iota
	// PolicyScopePerCall closes the handle after every logical
	// operation; the next operation reconnects lazily. Embedded
	// backends use this.
	PolicyScopePerCall
)

// Driver is the capability set a backend exposes to the client core:
// lifecycle, placeholder convention, and three execution primitives.
// Adapters own their handle exclusively; it is never exposed.
type Driver interface {
	// Dialect reports the placeholder convention for compiled SQL.
	Dialect() sqlgen.Dialect

	// Policy reports the connection lifecycle contract.
	Policy() Policy

	// Connect establishes the underlying handle if absent. It is
	// idempotent and a no-op while connected.
	Connect(ctx context.Context) error

	// Close releases the handle and resets to the unconnected state.
	// It is idempotent.
	Close() error

	// Execute runs one parameterized statement and returns the number
	// of affected rows.
	Execute(ctx context.Context, query string, args []any) (int64, error)

	// ExecuteMany runs one parameterized statement once per bound-value
	// tuple, within a single transaction.
	ExecuteMany(ctx context.Context, query string, argTuples [][]any) error

	// Fetch runs one parameterized query and returns its rows.
	Fetch(ctx context.Context, query string, args []any) (*sql.Rows, error)
}

// conn owns the lazily established *sql.DB shared by the adapters. The
// handle pointer is the whole connection state machine: nil means
// unconnected, non-nil means connected.
type conn struct {
	mu         sync.Mutex
	db         *sql.DB
	driverName string
	dsn        string
	configure  func(*sql.DB)
}

func (c *conn) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db != nil {
		return nil
	}
	db, err := sql.Open(c.driverName, c.dsn)
	if err != nil {
		return err
	}
	if c.configure != nil {
		c.configure(db)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return err
	}
	c.db = db
	return nil
}

func (c *conn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil
	}
	err := c.db.Close()
	c.db = nil
	return err
}

func (c *conn) handle() (*sql.DB, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.db == nil {
		return nil, ErrNotConnected
	}
	return c.db, nil
}

func (c *conn) Execute(ctx context.Context, query string, args []any) (int64, error) {
	db, err := c.handle()
	if err != nil {
		return 0, err
	}
	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (c *conn) ExecuteMany(ctx context.Context, query string, argTuples [][]any) error {
	db, err := c.handle()
	if err != nil {
		return err
	}
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		tx.Rollback()
		return err
	}
	for _, args := range argTuples {
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			stmt.Close()
			tx.Rollback()
			return err
		}
	}
	stmt.Close()
	return tx.Commit()
}

func (c *conn) Fetch(ctx context.Context, query string, args []any) (*sql.Rows, error) {
	db, err := c.handle()
	if err != nil {
		return nil, err
	}
	return db.QueryContext(ctx, query, args...)
}
