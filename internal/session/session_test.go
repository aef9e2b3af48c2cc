package session

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestResolve_UsesExistingEnv(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return ":99", "/tmp/should-not-be-used" },
		func(string) string { return ":88" },
	)
	defer restore()

	env := []string{
		"HOME=" + t.TempDir(),
		"DISPLAY=:7",
		"XAUTHORITY=/tmp/xauth-existing",
	}

	got, err := Resolve(env, ":1", "/tmp/cfg")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":7" {
		t.Fatalf("Display = %q, want %q", got.Display, ":7")
	}
	if got.XAuthority != "/tmp/xauth-existing" {
		t.Fatalf("XAuthority = %q, want %q", got.XAuthority, "/tmp/xauth-existing")
	}
}

func TestResolve_UsesConfigAndFallsBackToHomeXAuthority(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return "" },
	)
	defer restore()

	home := t.TempDir()
	xauth := filepath.Join(home, ".Xauthority")
	if err := os.WriteFile(xauth, []byte("cookie"), 0600); err != nil {
		t.Fatalf("write xauthority: %v", err)
	}

	got, err := Resolve([]string{"HOME=" + home}, ":1", "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":1" {
		t.Fatalf("Display = %q, want %q", got.Display, ":1")
	}
	if got.XAuthority != xauth {
		t.Fatalf("XAuthority = %q, want %q", got.XAuthority, xauth)
	}
}

func TestResolve_UsesXdgHomeWhenHomeUnset(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return ":0" },
	)
	defer restore()

	home := t.TempDir()
	xauth := filepath.Join(home, ".Xauthority")
	if err := os.WriteFile(xauth, []byte("cookie"), 0600); err != nil {
		t.Fatalf("write xauthority: %v", err)
	}
	origHome := homeDirFn
	homeDirFn = func() string { return home }
	defer func() { homeDirFn = origHome }()

	got, err := Resolve(nil, "", "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":0" || got.XAuthority != xauth {
		t.Fatalf("Resolve = %+v, want display :0 and %q", got, xauth)
	}
}

func TestResolve_UsesDetectedValues(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return ":5", "/tmp/xauth-detected" },
		func(string) string { return "" },
	)
	defer restore()

	got, err := Resolve([]string{"HOME=" + t.TempDir()}, "", "")
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if got.Display != ":5" {
		t.Fatalf("Display = %q, want %q", got.Display, ":5")
	}
	if got.XAuthority != "/tmp/xauth-detected" {
		t.Fatalf("XAuthority = %q, want %q", got.XAuthority, "/tmp/xauth-detected")
	}
}

func TestResolve_ReturnsErrNoDisplay(t *testing.T) {
	restore := stubDetectFns(
		func() (string, string) { return "", "" },
		func(string) string { return "" },
	)
	defer restore()

	_, err := Resolve([]string{"HOME=" + t.TempDir()}, "", "")
	if !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("Resolve error = %v, want ErrNoDisplay", err)
	}
}

func TestDetectDisplayFromSockets(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"X0", "X2", "not-a-display"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte{}, 0600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	if got := detectDisplayFromSockets(dir); got != ":2" {
		t.Fatalf("detectDisplayFromSockets = %q, want %q", got, ":2")
	}
}

func TestParseLoginctlSessions(t *testing.T) {
	out := strings.Join([]string{
		"1 1000 george seat0",
		"2 1001 alice seat0",
		"3 1000 george seat1",
		"",
	}, "\n")
	got := parseLoginctlSessions(out, "1000")
	if len(got) != 2 || got[0] != "1" || got[1] != "3" {
		t.Fatalf("parseLoginctlSessions = %v, want [1 3]", got)
	}
}

func TestDetectSessionX11Env_ReadsLeaderEnviron(t *testing.T) {
	origRun, origRead := runCommandOutputFn, readFileFn
	defer func() { runCommandOutputFn, readFileFn = origRun, origRead }()

	runCommandOutputFn = func(name string, args ...string) (string, error) {
		if len(args) > 0 && args[0] == "list-sessions" {
			return "4 " + strconv.Itoa(os.Getuid()) + " me seat0\n", nil
		}
		switch args[len(args)-2] {
		case "Display":
			return ":0\n", nil
		case "Leader":
			return "1234\n", nil
		}
		return "", errors.New("unexpected")
	}
	readFileFn = func(path string) ([]byte, error) {
		if path != filepath.Join("/proc", "1234", "environ") {
			t.Fatalf("unexpected path %q", path)
		}
		return []byte("DISPLAY=:1\x00XAUTHORITY=/run/user/1000/xauth\x00"), nil
	}

	display, xauth := detectSessionX11Env()
	if display != ":1" || xauth != "/run/user/1000/xauth" {
		t.Fatalf("detectSessionX11Env = (%q, %q)", display, xauth)
	}
}

func stubDetectFns(
	detectSession func() (string, string),
	detectSocket func(string) string,
) func() {
	origSession := detectSessionX11EnvFn
	origSocket := detectDisplayFromSocketFn
	detectSessionX11EnvFn = detectSession
	detectDisplayFromSocketFn = detectSocket
	return func() {
		detectSessionX11EnvFn = origSession
		detectDisplayFromSocketFn = origSocket
	}
}
