package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Litorud/wsize/internal/bounds"
	"github.com/Litorud/wsize/internal/config"
	"github.com/Litorud/wsize/internal/listing"
	"github.com/Litorud/wsize/internal/sizer"
)

func printMoveUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsize move [-r] [-a] [-first] [-dry-run] <title> [x [y [width [height]]]]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Numbers may be negative. Values after the fourth are ignored.")
}

// parseMoveArgs turns the move command line into a sizer request. Flag
// defaults come from cfg.
func parseMoveArgs(args []string, cfg *config.Config, stderr io.Writer) (sizer.Request, error) {
	fs := flag.NewFlagSet("move", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printMoveUsage(stderr) }
	regex := fs.Bool("r", cfg.Regex, "Interpret title as a regular expression")
	adjust := fs.Bool("a", cfg.Adjust, "Keep the window on screen and off the taskbar")
	first := fs.Bool("first", cfg.FirstMatchOnly, "Only move the first matching window")
	dryRun := fs.Bool("dry-run", false, "Print the resolved bounds without moving")
	if err := fs.Parse(args); err != nil {
		return sizer.Request{}, err
	}

	if fs.NArg() < 1 {
		return sizer.Request{}, fmt.Errorf("move requires <title>")
	}

	target, err := bounds.ParseTarget(fs.Args()[1:])
	if err != nil {
		return sizer.Request{}, err
	}

	return sizer.Request{
		Title:  fs.Arg(0),
		Regex:  *regex,
		Target: target,
		Adjust: *adjust,
		First:  *first,
		DryRun: *dryRun,
	}, nil
}

func runMove(args []string) int {
	cfg, ok := loadConfig()
	if !ok {
		return 1
	}

	req, err := parseMoveArgs(args, cfg, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if _, err := sizer.NewMatcher(req.Title, req.Regex); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger := newLogger(os.Stderr, cfg.LogLevel)

	backend, closeFn, err := openBackend(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeFn()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := sizer.New(backend, logger).Apply(ctx, req)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if req.DryRun {
		writeResults(os.Stdout, results, listWidth(cfg))
	}
	return 0
}

// writeResults prints the bounds each matched window would be given.
func writeResults(w io.Writer, results []sizer.Result, width int) {
	b := listing.NewBuilder()
	for _, r := range results {
		b.Add(r.Window.Title, float64(r.To.X), float64(r.To.Y), float64(r.To.Width), float64(r.To.Height))
	}
	for _, line := range b.Build(width) {
		fmt.Fprintln(w, line)
	}
}
