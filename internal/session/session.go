// Package session locates the X11 display and authority file for the
// current user when the process was started without GUI environment.
package session

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
)

// ErrNoDisplay is returned when no X display can be found.
var ErrNoDisplay = errors.New("no X display found; set display in config, export DISPLAY, or set WSIZE_DISPLAY")

var (
	runCommandOutputFn        = runCommandOutput
	readFileFn                = os.ReadFile
	readDirFn                 = os.ReadDir
	detectSessionX11EnvFn     = detectSessionX11Env
	detectDisplayFromSocketFn = detectDisplayFromSockets
	homeDirFn                 = func() string { return xdg.Home }
)

// X11Env is the pair of variables an X11 client needs.
type X11Env struct {
	Display    string
	XAuthority string
}

// Resolve fills in DISPLAY and XAUTHORITY. Values already present in env
// win, then the configured ones, then the user's login session, then the
// sockets in /tmp/.X11-unix and ~/.Xauthority.
func Resolve(env []string, display, xauthority string) (X11Env, error) {
	resolved := X11Env{
		Display:    strings.TrimSpace(envLookup(env, "DISPLAY")),
		XAuthority: strings.TrimSpace(envLookup(env, "XAUTHORITY")),
	}

	if resolved.Display == "" {
		resolved.Display = strings.TrimSpace(display)
	}
	if resolved.XAuthority == "" {
		resolved.XAuthority = strings.TrimSpace(xauthority)
	}

	if resolved.Display == "" || resolved.XAuthority == "" {
		detectedDisplay, detectedXAuthority := detectSessionX11EnvFn()
		if resolved.Display == "" {
			resolved.Display = strings.TrimSpace(detectedDisplay)
		}
		if resolved.XAuthority == "" {
			resolved.XAuthority = strings.TrimSpace(detectedXAuthority)
		}
	}

	if resolved.Display == "" {
		resolved.Display = detectDisplayFromSocketFn("/tmp/.X11-unix")
	}
	if resolved.Display == "" {
		return X11Env{}, ErrNoDisplay
	}

	if resolved.XAuthority == "" {
		home := strings.TrimSpace(envLookup(env, "HOME"))
		if home == "" {
			home = homeDirFn()
		}
		if home != "" {
			candidate := filepath.Join(home, ".Xauthority")
			if _, err := os.Stat(candidate); err == nil {
				resolved.XAuthority = candidate
			}
		}
	}

	return resolved, nil
}

// Export resolves the X11 environment of this process and sets XAUTHORITY
// so the X client library can authenticate. The display is returned for
// the caller to connect to.
func Export(display, xauthority string) (X11Env, error) {
	resolved, err := Resolve(os.Environ(), display, xauthority)
	if err != nil {
		return X11Env{}, err
	}
	if resolved.XAuthority != "" && os.Getenv("XAUTHORITY") != resolved.XAuthority {
		if err := os.Setenv("XAUTHORITY", resolved.XAuthority); err != nil {
			return X11Env{}, fmt.Errorf("failed to set XAUTHORITY: %w", err)
		}
	}
	return resolved, nil
}

func runCommandOutput(name string, args ...string) (string, error) {
	out, err := exec.Command(name, args...).Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func detectSessionX11Env() (display string, xauthority string) {
	uid := strconv.Itoa(os.Getuid())
	out, err := runCommandOutputFn("loginctl", "list-sessions", "--no-legend")
	if err != nil {
		return "", ""
	}
	for _, sessionID := range parseLoginctlSessions(out, uid) {
		d := strings.TrimSpace(loginctlShowSessionProp(sessionID, "Display"))
		if d == "" || strings.EqualFold(d, "n/a") {
			continue
		}

		xauth := ""
		leader := strings.TrimSpace(loginctlShowSessionProp(sessionID, "Leader"))
		if leader != "" && leader != "0" {
			if envMap, err := readProcEnviron(leader); err == nil {
				if ed := strings.TrimSpace(envMap["DISPLAY"]); ed != "" {
					d = ed
				}
				xauth = strings.TrimSpace(envMap["XAUTHORITY"])
			}
		}
		return d, xauth
	}
	return "", ""
}

func parseLoginctlSessions(output string, uid string) []string {
	var sessions []string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) < 2 {
			continue
		}
		if fields[1] == uid {
			sessions = append(sessions, fields[0])
		}
	}
	return sessions
}

func loginctlShowSessionProp(sessionID string, prop string) string {
	out, err := runCommandOutputFn("loginctl", "show-session", sessionID, "-p", prop, "--value")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}

func readProcEnviron(pid string) (map[string]string, error) {
	data, err := readFileFn(filepath.Join("/proc", pid, "environ"))
	if err != nil {
		return nil, err
	}

	env := make(map[string]string)
	for _, part := range strings.Split(string(data), "\x00") {
		key, value, ok := strings.Cut(part, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env, nil
}

func detectDisplayFromSockets(dir string) string {
	entries, err := readDirFn(dir)
	if err != nil {
		return ""
	}

	var displays []int
	for _, entry := range entries {
		name := entry.Name()
		if len(name) < 2 || name[0] != 'X' {
			continue
		}
		n, err := strconv.Atoi(name[1:])
		if err != nil {
			continue
		}
		displays = append(displays, n)
	}

	if len(displays) == 0 {
		return ""
	}
	sort.Ints(displays)
	return fmt.Sprintf(":%d", displays[len(displays)-1])
}

func envLookup(env []string, key string) string {
	prefix := key + "="
	for _, e := range env {
		if strings.HasPrefix(e, prefix) {
			return strings.TrimPrefix(e, prefix)
		}
	}
	return ""
}
