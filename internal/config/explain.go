package config

import (
	"fmt"
	"strings"
)

// Paths lists every key Explain accepts.
var Paths = []string{
	"display",
	"xauthority",
	"log_level",
	"adjust",
	"regex",
	"first_match_only",
	"dpi.monitor",
	"dpi.window",
	"list.width",
}

// Explain returns the effective value at the given YAML-like path and its source.
func Explain(res *LoadResult, path string) (any, Source, error) {
	if res == nil || res.Config == nil {
		return nil, Source{}, fmt.Errorf("no config loaded")
	}
	if path == "" {
		return nil, Source{}, fmt.Errorf("path is empty")
	}

	value, err := lookupValue(res.Config, path)
	if err != nil {
		return nil, Source{}, err
	}

	if src, ok := res.Sources[path]; ok {
		return value, src, nil
	}
	return value, Source{Kind: SourceDefault, Name: "defaults"}, nil
}

// String renders a source for humans.
func (s Source) String() string {
	switch s.Kind {
	case SourceFile:
		return fmt.Sprintf("%s:%d:%d", s.File, s.Line, s.Column)
	case SourceEnv:
		return "env " + s.Name
	default:
		return string(SourceDefault)
	}
}

func lookupValue(cfg *Config, path string) (any, error) {
	switch strings.TrimSpace(path) {
	case "display":
		return cfg.Display, nil
	case "xauthority":
		return cfg.XAuthority, nil
	case "log_level":
		return cfg.LogLevel, nil
	case "adjust":
		return cfg.Adjust, nil
	case "regex":
		return cfg.Regex, nil
	case "first_match_only":
		return cfg.FirstMatchOnly, nil
	case "dpi":
		return cfg.DPI, nil
	case "dpi.monitor":
		return cfg.DPI.Monitor, nil
	case "dpi.window":
		return cfg.DPI.Window, nil
	case "list":
		return cfg.List, nil
	case "list.width":
		return cfg.List.Width, nil
	default:
		return nil, fmt.Errorf("unknown path: %s", path)
	}
}
