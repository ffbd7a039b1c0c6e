package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/dbkit/client"
	"github.com/satishbabariya/dbkit/internal/config"
	"github.com/satishbabariya/dbkit/sqlgen"
)

// openClient builds a client from the environment configuration and
// reports which provider was selected.
func openClient() (*client.Client, string, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", err
	}
	c, err := client.Open(cfg.Provider, cfg.DSN())
	if err != nil {
		return nil, "", err
	}
	return c, cfg.Provider, nil
}

// parseCondition turns repeated column=value flags into one Condition.
// The literal value "null" compiles to an IS NULL test. Returns nil for
// no flags.
func parseCondition(pairs []string) (sqlgen.Condition, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	cond := make(sqlgen.Condition, len(pairs))
	for _, pair := range pairs {
		col, value, ok := strings.Cut(pair, "=")
		if !ok || col == "" {
			return nil, fmt.Errorf("invalid --where %q, expected column=value", pair)
		}
		if value == "null" {
			cond[col] = nil
		} else {
			cond[col] = value
		}
	}
	return cond, nil
}

// conditionSet wraps a single condition for the select surface; a nil
// condition yields the empty set, matching all rows.
func conditionSet(cond sqlgen.Condition) sqlgen.ConditionSet {
	if cond == nil {
		return nil
	}
	return sqlgen.ConditionSet{cond}
}

func printRecords(cmd *cobra.Command, records []sqlgen.Record) {
	for _, record := range records {
		var parts []string
		for _, col := range record.Columns() {
			parts = append(parts, fmt.Sprintf("%s=%v", col, record[col]))
		}
		cmd.Println(strings.Join(parts, "\t"))
	}
}
