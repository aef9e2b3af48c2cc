package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/Litorud/wsize/internal/config"
	"github.com/Litorud/wsize/internal/listing"
	"github.com/Litorud/wsize/internal/platform"
	"github.com/Litorud/wsize/internal/sizer"
)

const defaultListWidth = 80

var terminalWidthFn = func() (int, error) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	return width, err
}

func runList(args []string) int {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wsize list")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List the primary screen, virtual screen, work area and every window.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, ok := loadConfig()
	if !ok {
		return 1
	}
	logger := newLogger(os.Stderr, cfg.LogLevel)

	backend, closeFn, err := openBackend(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer closeFn()

	snap, err := sizer.New(backend, logger).Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	writeList(os.Stdout, snap, listWidth(cfg))
	return 0
}

// listWidth is the terminal width, else list.width, else 80.
func listWidth(cfg *config.Config) int {
	if width, err := terminalWidthFn(); err == nil && width > 0 {
		return width
	}
	if cfg != nil && cfg.List.Width > 0 {
		return cfg.List.Width
	}
	return defaultListWidth
}

func writeList(w io.Writer, snap sizer.Snapshot, width int) {
	b := listing.NewBuilder()
	addRect := func(title string, r platform.Rect) {
		b.Add(title, float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
	}

	addRect("(PrimaryScreen)", snap.Screens.Primary)
	addRect("(VirtualScreen)", snap.Screens.Virtual)
	addRect("(WorkArea)", snap.Screens.WorkArea)
	for _, win := range snap.Windows {
		addRect(win.Title, win.Bounds)
	}

	for _, line := range b.Build(width) {
		fmt.Fprintln(w, line)
	}
}
