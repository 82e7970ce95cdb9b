// Command gradebook manages the semester and overall GPA histories from
// the terminal, against the same store the server uses.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/gradebook/internal/config"
	"github.com/mmynk/gradebook/internal/gradebook"
	"github.com/mmynk/gradebook/pkg/logging"
)

func main() {
	os.Exit(realMain(os.Args))
}

func realMain(args []string) int {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	// Book logs each mutation at INFO; keep the terminal quiet unless asked.
	level := logging.ParseLevel(cfg.Log.Level)
	if level > slog.LevelDebug {
		level = slog.LevelWarn
	}
	logging.SetupWithLevel(level)

	cli := &commandLine{out: os.Stdout}

	if len(args) > 1 && needsStore(args[1]) {
		ctx := context.Background()
		store, err := cfg.OpenStore(ctx)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		defer store.Close()
		cli.book = gradebook.New(store)
	}

	if err := cli.run(context.Background(), args); err != nil {
		if errors.Is(err, errHelp) {
			return 2
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		return 1
	}
	return 0
}

func needsStore(command string) bool {
	switch command {
	case "semester", "overall", "export":
		return true
	}
	return false
}
