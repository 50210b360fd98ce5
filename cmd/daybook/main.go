// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command daybook writes a foldable weekly planner as an A4 landscape PDF.
//
// Defaults come from the environment (see config.Load); flags override them.
// When DATABASE_URL is set the history schema is migrated and the run is
// recorded in the render history.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/taibuivan/daybook/internal/daybook"
	"github.com/taibuivan/daybook/internal/platform/apperr"
	"github.com/taibuivan/daybook/internal/platform/config"
	"github.com/taibuivan/daybook/internal/platform/constants"
	"github.com/taibuivan/daybook/internal/platform/migration"
	pgstore "github.com/taibuivan/daybook/internal/platform/postgres"
	"github.com/taibuivan/daybook/pkg/slice"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	flags := flag.NewFlagSet("daybook", flag.ContinueOnError)
	flags.SetOutput(stderr)

	start := flags.String("start", cfg.StartDate, "Reference date (dd.mm.yyyy); week 1 is the week containing it")
	weeks := flags.Int("weeks", cfg.Weeks, "Number of weeks to lay out (odd values are rounded up)")
	output := flags.String("out", cfg.OutputPath, "Output PDF path")
	title := flags.String("title", cfg.Title, "Document title")
	order := flags.Bool("order", false, "Print the duplex booklet page order instead of rendering")
	verbose := flags.Bool("v", false, "Verbose logging")

	flags.Usage = func() {
		fmt.Fprintf(stderr, `Daybook - foldable weekly planner generator

Usage:
  daybook [options]

Options:
`)
		flags.PrintDefaults()
		fmt.Fprintf(stderr, `
Examples:
  daybook -start 10.02.2025 -weeks 52 -out planner.pdf
  daybook -weeks 52 -order

Environment:
  DAYBOOK_START_DATE, DAYBOOK_WEEKS, DAYBOOK_OUTPUT, DAYBOOK_TITLE set the defaults.
  DAYBOOK_LAYOUT_* override single layout sizes (e.g. DAYBOOK_LAYOUT_GRID_SPACING=15).
  DATABASE_URL records each run in the render history.
`)
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if *verbose || cfg.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", constants.AppName))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	var runs daybook.RunRepository
	if cfg.HistoryEnabled() && !*order {
		repository, closeHistory, err := openHistory(ctx, cfg, log)
		if err != nil {
			// History is optional; the document is still written.
			log.WarnContext(ctx, "history_unavailable", slog.String("error", err.Error()))
		} else {
			defer closeHistory()
			runs = repository
		}
	}

	service := daybook.NewService(daybook.Settings{
		Layout:   cfg.Layout,
		Defaults: daybook.Request{StartDate: cfg.StartDate, Weeks: cfg.Weeks, Title: cfg.Title},
	}, runs, nil, nil, log)

	if *order {
		booklet, err := service.BookletOrderForWeeks(*weeks)
		if err != nil {
			return fail(stderr, err)
		}
		printOrder(stdout, booklet)
		return 0
	}

	document, err := service.WriteFile(ctx, daybook.Request{
		StartDate: *start,
		Weeks:     *weeks,
		Title:     *title,
		Source:    daybook.SourceCLI,
	}, *output)
	if err != nil {
		return fail(stderr, err)
	}

	fmt.Fprintf(stdout, "Wrote %s (%d pages, %d bytes)\n", *output, document.Pages, len(document.Bytes))
	return 0
}

// openHistory migrates the history schema and connects a single-connection pool.
func openHistory(ctx context.Context, cfg *config.Config, log *slog.Logger) (daybook.RunRepository, func(), error) {
	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, log); err != nil {
		return nil, nil, err
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, pgstore.CommandConns, log)
	if err != nil {
		return nil, nil, err
	}
	return daybook.NewPostgresRepository(pool), pool.Close, nil
}

func printOrder(stdout io.Writer, order *daybook.BookletOrder) {
	pages := slice.Map(order.Order, strconv.Itoa)
	fmt.Fprintf(stdout, "Print order (%d pages): %s\n", order.Pages, strings.Join(pages, ","))
	for _, sheet := range order.Sheets {
		fmt.Fprintf(stdout, "Sheet %d: front %d,%d  back %d,%d\n",
			sheet.Number, sheet.Front[0], sheet.Front[1], sheet.Back[0], sheet.Back[1])
	}
}

// fail prints err with its code and returns the exit code for it.
func fail(stderr io.Writer, err error) int {
	if ae := apperr.As(err); ae != nil {
		fmt.Fprintf(stderr, "Error [%s]: %s\n", ae.Code, ae.Message)
		if ae.Cause != nil {
			fmt.Fprintf(stderr, "  cause: %v\n", ae.Cause)
		}
		return 1
	}

	fmt.Fprintf(stderr, "Error: %v\n", err)
	return 1
}
