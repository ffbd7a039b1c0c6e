package client

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/satishbabariya/dbkit/driver"
	"github.com/satishbabariya/dbkit/sqlgen"
)

func usersSpec() sqlgen.TableSpec {
	return sqlgen.TableSpec{
		Name:       "users",
		PrimaryKey: &sqlgen.PrimaryKey{Name: "id", Type: "INTEGER", Constraint: "PRIMARY KEY"},
		Fields: []sqlgen.Field{
			{Name: "name", Type: "TEXT"},
			{Name: "age", Type: "INTEGER"},
		},
	}
}

// newTestClient returns a client over a fresh embedded database with
// the users table created.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	drv := driver.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	c := New(drv, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	t.Cleanup(func() { c.Close() })

	require.NoError(t, c.CreateTable(context.Background(), usersSpec()))
	return c
}

func seedUsers(t *testing.T, c *Client) {
	t.Helper()
	records := []sqlgen.Record{
		{"id": 1, "name": "John", "age": 25},
		{"id": 2, "name": "Jane", "age": 30},
	}
	require.NoError(t, c.InsertBulk(context.Background(), "users", records, DefaultBatchSize))
}

func TestCreateTableIdempotent(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	// Second create must also succeed, with no duplicate-table error.
	require.NoError(t, c.CreateTable(ctx, usersSpec()))
}

func TestInsertSelectDeleteCount(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	records, err := c.Select(ctx, "users", []string{"name"}, sqlgen.ConditionSet{{"id": 1}}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, sqlgen.Record{"name": "John"}, records[0])

	count, err := c.Count(ctx, "users", nil)
	require.NoError(t, err)
	require.EqualValues(t, 2, count)

	require.NoError(t, c.Delete(ctx, "users", sqlgen.Condition{"id": 1}))

	count, err = c.Count(ctx, "users", nil)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestInsertRoundTripAllColumns(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	records, err := c.Select(ctx, "users", nil, sqlgen.ConditionSet{{"id": 2}}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.EqualValues(t, 2, records[0]["id"])
	require.Equal(t, "Jane", records[0]["name"])
	require.EqualValues(t, 30, records[0]["age"])
}

func TestInsertBatchesSmallerThanInput(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	records := make([]sqlgen.Record, 5)
	for i := range records {
		records[i] = sqlgen.Record{"id": i + 1, "name": "user", "age": 20 + i}
	}
	require.NoError(t, c.InsertBulk(ctx, "users", records, 2))

	count, err := c.Count(ctx, "users", nil)
	require.NoError(t, err)
	require.EqualValues(t, 5, count)
}

func TestInsertEmptyInput(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	require.NoError(t, c.InsertBulk(ctx, "users", nil, DefaultBatchSize))

	count, err := c.Count(ctx, "users", nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestInsertNullValue(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	records := []sqlgen.Record{{"id": 1, "name": nil, "age": 40}}
	require.NoError(t, c.InsertBulk(ctx, "users", records, DefaultBatchSize))

	found, err := c.Select(ctx, "users", []string{"id"}, sqlgen.ConditionSet{{"name": nil}}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, found, 1)
	require.EqualValues(t, 1, found[0]["id"])
}

func TestSelectOrConditions(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	records, err := c.Select(ctx, "users", []string{"id"}, sqlgen.ConditionSet{
		{"name": "John"},
		{"age": 30},
	}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, records, 2)
}

func TestSelectLimitCapsRows(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	records := make([]sqlgen.Record, 4)
	for i := range records {
		records[i] = sqlgen.Record{"id": i + 1, "name": "same", "age": 50}
	}
	require.NoError(t, c.InsertBulk(ctx, "users", records, DefaultBatchSize))

	found, err := c.Select(ctx, "users", nil, sqlgen.ConditionSet{{"age": 50}}, 2)
	require.NoError(t, err)
	require.Len(t, found, 2)
}

func TestSelectUnknownTable(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	_, err := c.Select(ctx, "missing", nil, nil, DefaultLimit)
	require.ErrorIs(t, err, ErrStatement)
}

func TestUpdateBulk(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	updates := []sqlgen.UpdateSpec{
		{Where: sqlgen.Condition{"id": 1}, Update: sqlgen.Record{"name": "Johnny", "age": 26}},
		{Where: sqlgen.Condition{"id": 2}, Update: sqlgen.Record{"age": 31}},
	}
	require.NoError(t, c.UpdateBulk(ctx, "users", updates, DefaultBatchSize))

	records, err := c.Select(ctx, "users", nil, sqlgen.ConditionSet{{"id": 1}}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Johnny", records[0]["name"])
	require.EqualValues(t, 26, records[0]["age"])

	records, err = c.Select(ctx, "users", []string{"age"}, sqlgen.ConditionSet{{"id": 2}}, DefaultLimit)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.EqualValues(t, 31, records[0]["age"])
}

func TestUpdateBulkNoMatchAffectsNothing(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	updates := []sqlgen.UpdateSpec{
		{Where: sqlgen.Condition{"id": 999}, Update: sqlgen.Record{"name": "nobody"}},
	}
	require.NoError(t, c.UpdateBulk(ctx, "users", updates, DefaultBatchSize))

	count, err := c.Count(ctx, "users", sqlgen.Condition{"name": "nobody"})
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestUpdateBulkSkipsFailedRecords(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	// The first update references an unknown column and must be
	// skipped without aborting the second.
	updates := []sqlgen.UpdateSpec{
		{Where: sqlgen.Condition{"id": 1}, Update: sqlgen.Record{"bogus": "x"}},
		{Where: sqlgen.Condition{"id": 2}, Update: sqlgen.Record{"name": "Janet"}},
	}
	require.NoError(t, c.UpdateBulk(ctx, "users", updates, DefaultBatchSize))

	count, err := c.Count(ctx, "users", sqlgen.Condition{"name": "Janet"})
	require.NoError(t, err)
	require.EqualValues(t, 1, count)
}

func TestDeleteEmptyConditionRemovesAll(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	require.NoError(t, c.Delete(ctx, "users", nil))

	count, err := c.Count(ctx, "users", nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

func TestDeleteAll(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)
	seedUsers(t, c)

	require.NoError(t, c.DeleteAll(ctx, "users"))

	count, err := c.Count(ctx, "users", nil)
	require.NoError(t, err)
	require.EqualValues(t, 0, count)
}

// TestCountLooseNullOr pins the count predicate's loose OR: the null
// branch is not parenthesized with the AND block, so rows failing the
// equality test still count when the null column matches.
func TestCountLooseNullOr(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	records := []sqlgen.Record{
		{"id": 1, "name": "John", "age": 25},
		{"id": 2, "name": nil, "age": 30},
		{"id": 3, "name": "Jane", "age": 30},
	}
	require.NoError(t, c.InsertBulk(ctx, "users", records, DefaultBatchSize))

	// age = 25 matches id 1; OR name IS NULL additionally matches id 2
	// even though its age is 30. The parenthesized AND-reading would
	// return 0.
	count, err := c.Count(ctx, "users", sqlgen.Condition{"age": 25, "name": nil})
	require.NoError(t, err)
	require.EqualValues(t, 2, count)
}

func TestCountEmptyTableName(t *testing.T) {
	c := newTestClient(t)

	_, err := c.Count(context.Background(), "", nil)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestInvalidBatchSize(t *testing.T) {
	ctx := context.Background()
	c := newTestClient(t)

	err := c.InsertBulk(ctx, "users", []sqlgen.Record{{"id": 1}}, 0)
	require.ErrorIs(t, err, ErrInvalidArgument)

	err = c.UpdateBulk(ctx, "users", []sqlgen.UpdateSpec{{}}, -1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestOpenUnsupportedProvider(t *testing.T) {
	_, err := Open("oracle", "dsn")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestConnectFailure(t *testing.T) {
	// Parent directory does not exist, so the embedded engine cannot
	// create the database file.
	drv := driver.NewSQLite(filepath.Join(t.TempDir(), "missing", "test.db"))
	c := New(drv, WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	_, err := c.Count(context.Background(), "users", nil)
	require.ErrorIs(t, err, ErrConnection)
}
