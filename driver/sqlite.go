package driver

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"github.com/satishbabariya/dbkit/sqlgen"
)

// SQLite is the embedded single-connection adapter. The handle is
// capped at one open connection and torn down after every operation;
// concurrent use requires external synchronization.
type SQLite struct {
	conn
}

// NewSQLite returns an unconnected SQLite adapter for the given
// database file. The connection is established lazily on first use.
func NewSQLite(path string) *SQLite {
	return &SQLite{conn{
		driverName: "sqlite3",
		dsn:        path,
		configure: func(db *sql.DB) {
			db.SetMaxOpenConns(1)
		},
	}}
}

// Dialect reports the positional unnumbered placeholder style.
func (*SQLite) Dialect() sqlgen.Dialect { return sqlgen.Positional }

// Policy reports the scope-per-call lifecycle: the connection is closed
// after every operation and reopened on the next.
func (*SQLite) Policy() Policy { return PolicyScopePerCall }
