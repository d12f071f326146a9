// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/breedmatch"
	"github.com/poiesic/breedmatch/core"
	"github.com/poiesic/breedmatch/ingest"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "breedmatch",
		Usage: "Trait-based dog breed matching over a local catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "seed",
				Usage:     "Load a breed dataset into the catalog",
				ArgsUsage: "[dataset file]",
				Action:    seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
				},
			},
			{
				Name:      "match",
				Usage:     "Rank catalog breeds against a preference file",
				ArgsUsage: "<preferences file>",
				Action:    matchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "min-matches",
						Usage: "Relax constraints until at least this many breeds survive",
						Value: 5,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of ranked breeds to print (0 for all)",
						Value: 5,
					},
				},
			},
			{
				Name:   "traits",
				Usage:  "List the trait keys the matcher accepts",
				Action: traitsCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	var (
		records []ingest.BreedRecord
		err     error
	)
	if c.Args().Present() {
		records, err = ingest.ParseDatasetFile(c.Args().First())
		if err != nil {
			return fmt.Errorf("failed to parse dataset: %w", err)
		}
	} else {
		records = sampleCatalog
		fmt.Fprintln(os.Stderr, "No dataset file given, seeding the sample catalog")
	}

	db, err := breedmatch.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	report, err := db.LoadDataset(ctx, records)
	if err != nil {
		return fmt.Errorf("failed to load dataset: %w", err)
	}

	fmt.Printf("Added %d breeds, skipped %d duplicates\n", report.Added, report.Skipped)
	if len(report.UnknownTraits) > 0 {
		fmt.Printf("Dropped unknown traits: %s\n", strings.Join(report.UnknownTraits, ", "))
	}
	return nil
}

func matchCommand(c *cli.Context) error {
	ctx := context.Background()

	if !c.Args().Present() {
		return fmt.Errorf("preferences file is required")
	}
	preferences, err := core.ParsePreferencesFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("failed to parse preferences: %w", err)
	}

	db, err := breedmatch.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	result, err := db.FindMatches(ctx, preferences, c.Int("min-matches"))
	if err != nil {
		return fmt.Errorf("matching failed: %w", err)
	}

	if len(result.DroppedTraits) > 0 {
		fmt.Printf("Relaxed preferences: %s\n", strings.Join(result.DroppedTraits, ", "))
	}
	fmt.Printf("Filtered on: %s\n", strings.Join(result.UsedTraits, ", "))
	fmt.Printf("Found %d candidates\n", len(result.Ranked))

	top := c.Int("top")
	if top <= 0 || top > len(result.Ranked) {
		top = len(result.Ranked)
	}
	for i, candidate := range result.Ranked[:top] {
		fmt.Printf("%d: %s (score %d, matched %s)\n",
			i+1, candidate.Breed, candidate.Score,
			strings.Join(candidate.MatchedTraits, ", "))
	}
	return nil
}

func traitsCommand(c *cli.Context) error {
	db, err := breedmatch.NewDatabase("", breedmatch.WithInMemory())
	if err != nil {
		return err
	}
	defer db.Close()

	for _, trait := range db.KnownTraits() {
		fmt.Println(trait)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
