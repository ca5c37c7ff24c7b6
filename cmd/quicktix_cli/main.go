// QuickTix interactive shell. Reads one command per line, runs it
// through the interpreter, prints the answer. A line ending in '?' asks
// the suggester for a completion instead of executing.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/quicktix/quicktix/internal/interpreter"
	"github.com/quicktix/quicktix/internal/storage/factory"
	"github.com/quicktix/quicktix/internal/suggest"
)

const prompt = "QuickTix> "

func main() {
	slog.SetLogLoggerLevel(slog.LevelWarn)

	appSettings := NewAppConfig()
	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	repo, err := factory.NewRepository(ctx, cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create repository", "error", err)
		os.Exit(1)
	}

	suggester, err := suggest.NewFromConfig(&cfg.SuggestConfig)
	if err != nil {
		slog.Error("Failed to create suggester", "error", err)
		os.Exit(1)
	}

	interp := interpreter.New(repo)

	fmt.Println("🎫 Welcome to QuickTix CLI!")
	fmt.Println("ℹ️ Type 'help' for available commands, or end a line with '?' for a suggestion.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "exit") {
			fmt.Println("👋 Goodbye!")
			return
		}

		if partial, ok := strings.CutSuffix(line, "?"); ok {
			suggestion, err := suggester.Suggest(ctx, strings.TrimSpace(partial))
			if err != nil || suggestion == "" {
				fmt.Println("No suggestion available.")
				continue
			}
			fmt.Printf("💡 %s\n", suggestion)
			continue
		}

		fmt.Println(interp.Run(ctx, line))
	}

	if err := scanner.Err(); err != nil {
		slog.Error("Input error", "error", err)
		os.Exit(1)
	}
}
