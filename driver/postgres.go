package driver

import (
	_ "github.com/lib/pq" // PostgreSQL driver

	"github.com/satishbabariya/dbkit/sqlgen"
)

// Postgres is the pooled PostgreSQL adapter. database/sql provides the
// connection pool; the handle stays open across operations and
// concurrent calls each draw their own pooled connection.
type Postgres struct {
	conn
}

// NewPostgres returns an unconnected PostgreSQL adapter for the given
// connection string. The pool is established lazily on first use.
func NewPostgres(dsn string) *Postgres {
	return &Postgres{conn{driverName: "postgres", dsn: dsn}}
}

// Dialect reports the sequential numbered placeholder style.
func (*Postgres) Dialect() sqlgen.Dialect { return sqlgen.Numbered }

// Policy reports the persistent-pool lifecycle: the pool is never
// auto-closed between operations.
func (*Postgres) Policy() Policy { return PolicyPersistent }
