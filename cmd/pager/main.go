// Command pager pages a listing in the terminal: arrow keys navigate,
// 0 jumps home, g opens a jump-to-page prompt, q closes the session.
//
// Usage:
//
//	pager < listing.txt
//	pager -input listing.txt
//	pager -json listing.json
//	pager -glob '**/*.md' -dir ./docs
//
// Flags:
//
//	-input string            Path to a text listing, one entry per line (default: stdin)
//	-json string             Path to a JSON listing
//	-glob string             Glob pattern to list files with
//	-dir string              Directory -glob matches against (default: .)
//	-page-size int           Entries per page (default: PAGER_PAGE_SIZE or 10)
//	-idle-timeout duration   Session lifetime (default: PAGER_IDLE_TIMEOUT or 3m)
//	-jump-timeout duration   Jump prompt lifetime (default: PAGER_JUMP_TIMEOUT or 30s)
//	-width int               Render width in cells (default: PAGER_WIDTH or 80)
//	-owner string            Owner actor ID (default: PAGER_OWNER or "local")
//	-log string              Path to a debug log file (default: logging off)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fwojciec/pager"
	bt "github.com/fwojciec/pager/bubbletea"
	"github.com/fwojciec/pager/controller"
	"github.com/fwojciec/pager/listing"
	"github.com/fwojciec/pager/markdown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "pager: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse flags. Zero values defer to the environment.
	var (
		inputPath = flag.String("input", "", "Path to a text listing, one entry per line (default: stdin)")
		jsonPath  = flag.String("json", "", "Path to a JSON listing")
		globPat   = flag.String("glob", "", "Glob pattern to list files with")
		globDir   = flag.String("dir", ".", "Directory -glob matches against")
		pageSize  = flag.Int("page-size", 0, "Entries per page")
		idle      = flag.Duration("idle-timeout", 0, "Session lifetime")
		jump      = flag.Duration("jump-timeout", 0, "Jump prompt lifetime")
		width     = flag.Int("width", 0, "Render width in cells")
		owner     = flag.String("owner", "", "Owner actor ID")
		logPath   = flag.String("log", "", "Path to a debug log file")
	)
	flag.Parse()

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, ctrlCfg, err := resolveConfig(*pageSize, *idle, *jump, *width, *owner)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(*logPath)
	if err != nil {
		return err
	}
	defer closeLog()

	entries, err := loadEntries(*inputPath, *jsonPath, *globPat, *globDir)
	if err != nil {
		return err
	}

	theme := pager.DefaultTheme()
	surface := bt.NewSurface()
	ctrl, err := controller.New(markdown.New(cfg.Width, theme), surface, surface, ctrlCfg, logger)
	if err != nil {
		return err
	}

	// Session function closure for the TUI.
	session := func() error {
		h, err := ctrl.Start(ctx, pager.NewSnapshot(entries), cfg.Owner, surface)
		if err != nil {
			return err
		}
		<-h.Done()
		return h.Err()
	}

	if err := bt.Run(ctx, bt.New(surface, session, cfg.Owner, theme)); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// loadEntries builds the listing from exactly one source. With no
// source flag the listing is read from stdin.
func loadEntries(inputPath, jsonPath, globPat, globDir string) ([]string, error) {
	sources := 0
	for _, s := range []string{inputPath, jsonPath, globPat} {
		if s != "" {
			sources++
		}
	}
	if sources > 1 {
		return nil, fmt.Errorf("use at most one of -input, -json, -glob")
	}

	switch {
	case jsonPath != "":
		return listing.JSONFile(jsonPath)
	case globPat != "":
		return listing.Glob(globDir, globPat)
	case inputPath != "":
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("open listing: %w", err)
		}
		defer f.Close()
		return listing.Lines(f)
	default:
		return listing.Lines(os.Stdin)
	}
}

// openLogger opens the debug log. Without a path logging is off — the
// terminal belongs to the TUI.
func openLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}
