package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"

	"github.com/Litorud/wsize/internal/config"
	"github.com/Litorud/wsize/internal/platform"
	"github.com/Litorud/wsize/internal/session"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printMainUsage(os.Stdout)
		fmt.Fprintln(os.Stdout, "")
		return runList(nil)
	}

	switch args[0] {
	case "move":
		return runMove(args[1:])
	case "list", "-l", "--list":
		return runList(args[1:])
	case "config":
		return runConfig(args[1:])
	case "mcp":
		return runMCP(args[1:])
	case "help", "-h", "--help", "-?":
		printMainUsage(os.Stdout)
		return 0
	default:
		return runMove(args)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wsize [move] [-r] [-a] [-first] [-dry-run] <title> [x [y [width [height]]]]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Moves and resizes every window whose title contains <title>.")
	fmt.Fprintln(w, "x, y, width and height describe the visible frame in 96-DPI units;")
	fmt.Fprintln(w, "omitted trailing values keep the window's current ones.")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Options (must precede the title):")
	fmt.Fprintln(w, "  -r          Interpret title as a regular expression")
	fmt.Fprintln(w, "  -a          Keep the window on screen and off the taskbar")
	fmt.Fprintln(w, "  -first      Only move the first matching window")
	fmt.Fprintln(w, "  -dry-run    Print the resolved bounds without moving")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  list                List screens and windows with their bounds")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config explain      Explain where a config value comes from")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "  help                Show this help")
}

// loadConfig loads the effective configuration, reporting errors on stderr.
func loadConfig() (*config.Config, bool) {
	res, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, false
	}
	return res.Config, true
}

// newLogger returns a stderr logger at the configured level.
func newLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := charmlog.ParseLevel(level)
	if err != nil {
		lvl = charmlog.WarnLevel
	}
	logger := charmlog.NewWithOptions(w, charmlog.Options{
		Level:  lvl,
		Prefix: "wsize",
	})
	return slog.New(logger)
}

// openBackend connects to the window system described by cfg.
func openBackend(cfg *config.Config) (platform.Backend, func(), error) {
	env, err := session.Export(cfg.Display, cfg.XAuthority)
	if err != nil {
		return nil, func() {}, err
	}
	return platform.Open(platform.Options{
		Display:    env.Display,
		MonitorDPI: cfg.DPI.Monitor,
		WindowDPI:  cfg.DPI.Window,
	})
}
