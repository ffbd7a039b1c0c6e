package main

import (
	"log/slog"
	"os"

	"github.com/satishbabariya/dbkit/cli/commands"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
