// Command travelctl runs searches and checks datasets without starting the web server.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/urfave/cli/v2"

	"travelrec/internal/config"
	"travelrec/internal/dataset"
	"travelrec/internal/models"
	"travelrec/internal/render"
	"travelrec/internal/search"
)

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp(out io.Writer) *cli.App {
	datasetFlag := &cli.StringFlag{
		Name:    "dataset",
		Aliases: []string{"d"},
		Usage:   "Path or http(s) URL of the recommendations JSON",
		EnvVars: []string{"DATASET_URL"},
		Value:   "./data/travel_recommendation_api.json",
	}

	return &cli.App{
		Name:   "travelctl",
		Usage:  "Query and validate travel recommendation datasets",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "warn",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "HTTP timeout for remote datasets (0 waits indefinitely)",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:      "search",
				Usage:     "Resolve a keyword and print the matching destinations",
				ArgsUsage: "<query>",
				Action:    searchCommand,
				Flags: []cli.Flag{
					datasetFlag,
					&cli.TimestampFlag{
						Name:   "at",
						Usage:  "Instant used for the local time line (RFC 3339, default now)",
						Layout: time.RFC3339,
					},
				},
			},
			{
				Name:   "validate",
				Usage:  "Load a dataset and print per-category counts",
				Action: validateCommand,
				Flags:  []cli.Flag{datasetFlag},
			},
		},
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level: %s", c.String("log-level"))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
	return nil
}

func loadStore(c *cli.Context) (*dataset.Store, *models.Dataset, error) {
	cfg := &config.Config{DatasetTimeout: c.Duration("timeout")}
	source := dataset.NewSource(c.String("dataset"), dataset.NewHTTPClient(c.Context, cfg))
	store := dataset.NewStore(source)

	ds, err := store.Load(c.Context)
	if err != nil {
		return nil, nil, err
	}
	return store, ds, nil
}

func searchCommand(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("a search query is required")
	}

	store, _, err := loadStore(c)
	if err != nil {
		return err
	}

	now := time.Now()
	if at := c.Timestamp("at"); at != nil {
		now = *at
	}

	res := search.NewPipeline(store).Resolve(strings.Join(c.Args().Slice(), " "))
	view := render.Build(res, now)

	out := c.App.Writer
	if view.Message != "" {
		fmt.Fprintln(out, view.Message)
		return nil
	}
	for i, card := range view.Cards {
		fmt.Fprintf(out, "%d. %s\n", i+1, card.Name)
		if card.Description != "" {
			fmt.Fprintf(out, "   %s\n", card.Description)
		}
		fmt.Fprintf(out, "   %s\n", card.ImageURL)
	}
	if view.LocalTime != "" {
		fmt.Fprintln(out, view.LocalTime)
	}
	return nil
}

func validateCommand(c *cli.Context) error {
	_, ds, err := loadStore(c)
	if err != nil {
		return fmt.Errorf("dataset invalid: %w", err)
	}

	out := c.App.Writer
	counts := ds.Counts()
	for _, category := range models.Categories {
		fmt.Fprintf(out, "%-10s %d\n", category, counts[category])
	}
	fmt.Fprintf(out, "%-10s %d\n", "total", ds.Total())
	return nil
}
