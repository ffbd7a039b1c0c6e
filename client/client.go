// Package client exposes the uniform CRUD contract over the
// interchangeable storage engines. Operations accept plain Record and
// Condition mappings, compile them to parameterized SQL via sqlgen, and
// run them through the configured driver with batching and
// connection-lifecycle management.
package client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/satishbabariya/dbkit/batch"
	"github.com/satishbabariya/dbkit/driver"
	"github.com/satishbabariya/dbkit/sqlgen"
)

// Defaults for the batching and row-cap parameters. Zero and negative
// values are invalid input, so callers without a preference pass these.
const (
	DefaultBatchSize = 1000
	DefaultLimit     = 1000
)

// Client drives CRUD operations against one backend driver.
type Client struct {
	drv driver.Driver
	log *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for operation diagnostics. The
// default is slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New returns a Client over the given driver.
func New(drv driver.Driver, opts ...Option) *Client {
	c := &Client{drv: drv, log: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open returns a Client for a named provider and connection string.
// Supported providers are "postgres" (also "postgresql"), "sqlite"
// (also "sqlite3") and "mysql".
func Open(provider, dsn string, opts ...Option) (*Client, error) {
	var drv driver.Driver
	switch provider {
	case "postgresql", "postgres":
		drv = driver.NewPostgres(dsn)
	case "sqlite", "sqlite3":
		drv = driver.NewSQLite(dsn)
	case "mysql":
		drv = driver.NewMySQL(dsn)
	default:
		return nil, opError("open", "", ErrInvalidArgument,
			fmt.Errorf("unsupported provider: %s", provider))
	}
	return New(drv, opts...), nil
}

// Connect eagerly establishes the backend handle. Operations connect
// lazily on their own, so calling Connect is optional.
func (c *Client) Connect(ctx context.Context) error {
	if err := c.drv.Connect(ctx); err != nil {
		c.log.Error("connection failed", "error", err)
		return opError("connect", "", ErrConnection, err)
	}
	return nil
}

// Close releases the backend handle. It is idempotent.
func (c *Client) Close() error {
	return c.drv.Close()
}

// withConn runs fn with the backend handle established, applying the
// driver's lifecycle policy on every exit path: scope-per-call drivers
// are closed when fn returns, persistent ones stay open.
func (c *Client) withConn(ctx context.Context, op, table string, fn func(context.Context) error) error {
	if err := c.drv.Connect(ctx); err != nil {
		c.log.Error("connection failed", "op", op, "table", table, "error", err)
		return opError(op, table, ErrConnection, err)
	}
	if c.drv.Policy() == driver.PolicyScopePerCall {
		defer c.drv.Close()
	}
	return fn(ctx)
}

// CreateTable issues CREATE TABLE IF NOT EXISTS for the described
// table. It is idempotent: it succeeds whether the table pre-existed
// or was just created.
func (c *Client) CreateTable(ctx context.Context, spec sqlgen.TableSpec) error {
	if spec.Name == "" {
		c.log.Error("create table failed", "error", "empty table name")
		return opError("create table", "", ErrInvalidArgument, errors.New("empty table name"))
	}
	return c.withConn(ctx, "create table", spec.Name, func(ctx context.Context) error {
		query := sqlgen.BuildCreateTable(spec)
		if _, err := c.drv.Execute(ctx, query, nil); err != nil {
			c.log.Error("create table failed", "table", spec.Name, "error", err)
			return opError("create table", spec.Name, ErrStatement, err)
		}
		c.log.Info("table created or already exists", "table", spec.Name)
		return nil
	})
}

// InsertBulk inserts records in chunks of batchSize using one
// multi-row execution per chunk. The column list derives from the
// first record; missing columns in later records insert NULL. Empty
// input is a no-op.
func (c *Client) InsertBulk(ctx context.Context, table string, records []sqlgen.Record, batchSize int) error {
	if err := validateBatch("insert", table, batchSize); err != nil {
		c.log.Error("insert failed", "table", table, "error", err)
		return err
	}
	return c.withConn(ctx, "insert", table, func(ctx context.Context) error {
		var columns []string
		if len(records) > 0 {
			columns = records[0].Columns()
		}
		query := sqlgen.BuildInsert(c.drv.Dialect(), table, columns)

		for _, chunk := range batch.Chunks(records, batchSize) {
			tuples := make([][]any, len(chunk))
			for i, record := range chunk {
				tuple := make([]any, len(columns))
				for j, col := range columns {
					tuple[j] = record[col]
				}
				tuples[i] = tuple
			}
			if err := c.drv.ExecuteMany(ctx, query, tuples); err != nil {
				c.log.Error("insert failed", "table", table, "error", err)
				return opError("insert", table, ErrStatement, err)
			}
		}
		c.log.Info("records inserted", "table", table, "count", len(records))
		return nil
	})
}

// UpdateBulk executes one UPDATE per UpdateSpec, issued in chunks of
// batchSize. Per-record statement failures are logged and skipped so
// one bad record does not abort the rest of the batch; they are not
// surfaced to the caller.
func (c *Client) UpdateBulk(ctx context.Context, table string, updates []sqlgen.UpdateSpec, batchSize int) error {
	if err := validateBatch("update", table, batchSize); err != nil {
		c.log.Error("update failed", "table", table, "error", err)
		return err
	}
	return c.withConn(ctx, "update", table, func(ctx context.Context) error {
		d := c.drv.Dialect()
		for _, chunk := range batch.Chunks(updates, batchSize) {
			for _, u := range chunk {
				query := sqlgen.BuildUpdate(d, table, u.Update, u.Where)
				if _, err := c.drv.Execute(ctx, query.SQL, query.Args); err != nil {
					c.log.Error("update failed, record skipped", "table", table, "error", err)
				}
			}
		}
		return nil
	})
}

// Select returns the rows matching the ConditionSet as Records keyed by
// the requested columns (all columns when the list is empty). A
// positive limit caps the row count; it applies only when a predicate
// was emitted. Row order from the engine is preserved.
func (c *Client) Select(ctx context.Context, table string, columns []string, conditions sqlgen.ConditionSet, limit int) ([]sqlgen.Record, error) {
	var records []sqlgen.Record
	err := c.withConn(ctx, "select", table, func(ctx context.Context) error {
		query := sqlgen.BuildSelect(c.drv.Dialect(), table, columns, conditions, limit)
		rows, err := c.drv.Fetch(ctx, query.SQL, query.Args)
		if err != nil {
			c.log.Error("select failed", "table", table, "error", err)
			return opError("select", table, ErrStatement, err)
		}
		defer rows.Close()

		records, err = mapRows(rows)
		if err != nil {
			c.log.Error("select failed", "table", table, "error", err)
			return opError("select", table, ErrStatement, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// Delete removes the rows matching the condition, a flat AND
// conjunction. An empty condition removes all rows.
func (c *Client) Delete(ctx context.Context, table string, cond sqlgen.Condition) error {
	return c.withConn(ctx, "delete", table, func(ctx context.Context) error {
		query := sqlgen.BuildDelete(c.drv.Dialect(), table, cond)
		affected, err := c.drv.Execute(ctx, query.SQL, query.Args)
		if err != nil {
			c.log.Error("delete failed", "table", table, "error", err)
			return opError("delete", table, ErrStatement, err)
		}
		c.log.Info("records deleted", "table", table, "count", affected)
		return nil
	})
}

// DeleteAll removes every row from the table.
func (c *Client) DeleteAll(ctx context.Context, table string) error {
	return c.Delete(ctx, table, nil)
}

// Count returns the number of rows matching the condition. Non-null
// condition columns are AND-joined; a null-valued column appends a
// loose "OR column IS NULL" branch to the predicate. An empty or nil
// condition counts all rows. Count fails fast with ErrInvalidArgument
// when the table name is empty.
func (c *Client) Count(ctx context.Context, table string, cond sqlgen.Condition) (int64, error) {
	if table == "" {
		c.log.Error("count failed", "error", "empty table name")
		return 0, opError("count", "", ErrInvalidArgument, errors.New("empty table name"))
	}
	var count int64
	err := c.withConn(ctx, "count", table, func(ctx context.Context) error {
		query := sqlgen.BuildCount(c.drv.Dialect(), table, cond)
		rows, err := c.drv.Fetch(ctx, query.SQL, query.Args)
		if err != nil {
			c.log.Error("count failed", "table", table, "error", err)
			return opError("count", table, ErrStatement, err)
		}
		defer rows.Close()

		if !rows.Next() {
			err := rows.Err()
			if err == nil {
				err = errors.New("count returned no rows")
			}
			c.log.Error("count failed", "table", table, "error", err)
			return opError("count", table, ErrStatement, err)
		}
		if err := rows.Scan(&count); err != nil {
			c.log.Error("count failed", "table", table, "error", err)
			return opError("count", table, ErrStatement, err)
		}
		c.log.Info("records counted", "table", table, "count", count)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func validateBatch(op, table string, batchSize int) error {
	if batchSize < 1 {
		return opError(op, table, ErrInvalidArgument,
			fmt.Errorf("batch size must be at least 1, got %d", batchSize))
	}
	return nil
}
