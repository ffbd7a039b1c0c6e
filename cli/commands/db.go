package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/dbkit/client"
)

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check connectivity to the configured backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			c, provider, err := openClient()
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}
			defer c.Close()

			if err := c.Connect(ctx); err != nil {
				color.Red("✗ %v", err)
				return err
			}
			color.Green("✓ connected (%s)", provider)
			return nil
		},
	}
}

// NewCountCommand creates the count command.
func NewCountCommand() *cobra.Command {
	var where []string

	cmd := &cobra.Command{
		Use:   "count <table>",
		Short: "Count rows in a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			c, _, err := openClient()
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}
			defer c.Close()

			cond, err := parseCondition(where)
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}

			count, err := c.Count(ctx, args[0], cond)
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}
			fmt.Println(count)
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&where, "where", nil, "filter as column=value (repeatable, value \"null\" matches NULL)")
	return cmd
}

// NewSelectCommand creates the select command.
func NewSelectCommand() *cobra.Command {
	var columns []string
	var where []string
	var limit int

	cmd := &cobra.Command{
		Use:   "select <table>",
		Short: "Select rows from a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			c, _, err := openClient()
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}
			defer c.Close()

			cond, err := parseCondition(where)
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}
			records, err := c.Select(ctx, args[0], columns, conditionSet(cond), limit)
			if err != nil {
				color.Red("✗ %v", err)
				return err
			}

			printRecords(cmd, records)
			color.Green("✓ %d row(s)", len(records))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "columns to select (default all)")
	cmd.Flags().StringArrayVar(&where, "where", nil, "filter as column=value (repeatable, value \"null\" matches NULL)")
	cmd.Flags().IntVar(&limit, "limit", client.DefaultLimit, "maximum rows to return")
	return cmd
}
