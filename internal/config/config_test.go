package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.LogLevel != LogLevelWarn {
		t.Fatalf("expected default log_level %q, got %q", LogLevelWarn, cfg.LogLevel)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	res, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("expected no file, got %q", res.File)
	}
	if res.Config.Adjust || res.Config.DPI.Monitor != 0 {
		t.Fatalf("expected defaults, got %+v", res.Config)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "# empty")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.LogLevel != LogLevelWarn {
		t.Fatalf("expected log_level %q, got %q", LogLevelWarn, res.Config.LogLevel)
	}
}

func TestLoadFromPath_AllKeys(t *testing.T) {
	path := writeConfig(t,
		"display: \":1\"",
		"xauthority: \"/tmp/test-xauth\"",
		"log_level: DEBUG",
		"adjust: true",
		"regex: true",
		"first_match_only: true",
		"dpi:",
		"  monitor: 144",
		"  window: 96",
		"list:",
		"  width: 120",
	)

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg := res.Config
	if cfg.Display != ":1" || cfg.XAuthority != "/tmp/test-xauth" {
		t.Fatalf("unexpected display/xauthority: %q %q", cfg.Display, cfg.XAuthority)
	}
	if cfg.LogLevel != LogLevelDebug {
		t.Fatalf("expected log_level normalised to debug, got %q", cfg.LogLevel)
	}
	if !cfg.Adjust || !cfg.Regex || !cfg.FirstMatchOnly {
		t.Fatalf("expected move defaults enabled, got %+v", cfg)
	}
	if cfg.DPI.Monitor != 144 || cfg.DPI.Window != 96 {
		t.Fatalf("unexpected dpi: %+v", cfg.DPI)
	}
	if cfg.List.Width != 120 {
		t.Fatalf("expected list.width 120, got %d", cfg.List.Width)
	}

	val, src, err := Explain(res, "dpi.monitor")
	if err != nil {
		t.Fatalf("explain dpi.monitor: %v", err)
	}
	if val.(int) != 144 {
		t.Fatalf("explain value = %v, want 144", val)
	}
	if src.Kind != SourceFile || src.Line != 8 {
		t.Fatalf("expected file source on line 8, got %+v", src)
	}

	_, src, err = Explain(res, "xauthority")
	if err != nil {
		t.Fatalf("explain xauthority: %v", err)
	}
	if src.Line != 2 || src.Column != 13 {
		t.Fatalf("expected xauthority at 2:13, got %+v", src)
	}
}

func TestLoadFromPath_UnknownKeyRejected(t *testing.T) {
	path := writeConfig(t, "hotkey: Mod4-t")

	_, err := LoadFromPath(path)
	if err == nil {
		t.Fatal("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "hotkey") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestLoadFromPath_ValidationErrorCarriesPosition(t *testing.T) {
	path := writeConfig(t,
		"adjust: true",
		"log_level: verbose",
	)

	_, err := LoadFromPath(path)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %T: %v", err, err)
	}
	if verr.Path != "log_level" {
		t.Fatalf("expected path log_level, got %q", verr.Path)
	}
	if !strings.Contains(err.Error(), ":2:12: log_level:") {
		t.Fatalf("expected file:line:col in error, got %q", err.Error())
	}
}

func TestLoadFromPath_NegativeValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		yaml []string
		path string
	}{
		{name: "monitor dpi", yaml: []string{"dpi:", "  monitor: -1"}, path: "dpi.monitor"},
		{name: "window dpi", yaml: []string{"dpi:", "  window: -96"}, path: "dpi.window"},
		{name: "list width", yaml: []string{"list:", "  width: -5"}, path: "list.width"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromPath(writeConfig(t, tt.yaml...))
			var verr *ValidationError
			if !errors.As(err, &verr) || verr.Path != tt.path {
				t.Fatalf("expected ValidationError at %s, got %v", tt.path, err)
			}
		})
	}
}

func TestLoadFromPath_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t,
		"log_level: error",
		"display: \":3\"",
		"dpi:",
		"  window: 96",
	)
	t.Setenv("WSIZE_LOG_LEVEL", "info")
	t.Setenv("WSIZE_DPI", "192")
	t.Setenv("WSIZE_DISPLAY", ":9")

	res, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.LogLevel != LogLevelInfo {
		t.Fatalf("expected env log level, got %q", res.Config.LogLevel)
	}
	if res.Config.DPI.Monitor != 192 || res.Config.DPI.Window != 96 {
		t.Fatalf("expected env monitor dpi and file window dpi, got %+v", res.Config.DPI)
	}
	if res.Config.Display != ":9" {
		t.Fatalf("expected env display, got %q", res.Config.Display)
	}

	_, src, err := Explain(res, "log_level")
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if src.Kind != SourceEnv || src.Name != "WSIZE_LOG_LEVEL" {
		t.Fatalf("expected env source, got %+v", src)
	}
}

func TestLoadFromPath_InvalidEnvLogLevelNamesVariable(t *testing.T) {
	t.Setenv("WSIZE_LOG_LEVEL", "loud")

	_, err := LoadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "WSIZE_LOG_LEVEL") {
		t.Fatalf("expected error naming WSIZE_LOG_LEVEL, got %v", err)
	}
}

func TestReadEnv_RejectsNonNumericDPI(t *testing.T) {
	t.Setenv("WSIZE_DPI", "high")
	if _, err := ReadEnv(); err == nil {
		t.Fatal("expected error for non-numeric WSIZE_DPI")
	}
}

func TestLoad_UsesConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "adjust: true")
	t.Setenv("WSIZE_CONFIG", path)

	res, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !res.Config.Adjust {
		t.Fatalf("expected adjust from %s", path)
	}
	if res.File == "" {
		t.Fatal("expected loaded file to be reported")
	}
}

func TestRawMerge_NestedFields(t *testing.T) {
	monitor, window := 120, 96
	base := RawConfig{DPI: &RawDPI{Monitor: &monitor}}
	merged := base.merge(RawConfig{DPI: &RawDPI{Window: &window}})

	cfg, err := BuildEffectiveConfig(merged)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if cfg.DPI.Monitor != 120 || cfg.DPI.Window != 96 {
		t.Fatalf("expected both dpi fields kept, got %+v", cfg.DPI)
	}
}

func TestExplain_UnknownPath(t *testing.T) {
	res := &LoadResult{Config: DefaultConfig()}
	if _, _, err := Explain(res, "hotkey"); err == nil {
		t.Fatal("expected unknown path error")
	}
	for _, p := range Paths {
		if _, _, err := Explain(res, p); err != nil {
			t.Fatalf("Explain(%q): %v", p, err)
		}
	}
}
