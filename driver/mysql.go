package driver

import (
	_ "github.com/go-sql-driver/mysql" // MySQL driver

	"github.com/satishbabariya/dbkit/sqlgen"
)

// MySQL is the pooled MySQL adapter. It shares the positional
// placeholder style with SQLite and the persistent-pool lifecycle with
// Postgres.
type MySQL struct {
	conn
}

// NewMySQL returns an unconnected MySQL adapter for the given
// connection string.
func NewMySQL(dsn string) *MySQL {
	return &MySQL{conn{driverName: "mysql", dsn: dsn}}
}

// Dialect reports the positional unnumbered placeholder style.
func (*MySQL) Dialect() sqlgen.Dialect { return sqlgen.Positional }

// Policy reports the persistent-pool lifecycle.
func (*MySQL) Policy() Policy { return PolicyPersistent }
