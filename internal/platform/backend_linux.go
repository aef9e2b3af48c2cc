//go:build linux

package platform

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"

	"github.com/Litorud/wsize/internal/x11"
)

// LinuxBackend wraps an X11 connection behind the platform Backend interface.
type LinuxBackend struct {
	conn *x11.Connection
	opts Options
}

var _ Backend = (*LinuxBackend)(nil)

// NewLinuxBackend creates a Linux platform backend from an existing X11 connection.
func NewLinuxBackend(conn *x11.Connection, opts Options) *LinuxBackend {
	return &LinuxBackend{conn: conn, opts: opts}
}

// Open connects to the X server named by opts.Display and returns the
// backend with a function that closes the connection.
func Open(opts Options) (Backend, func(), error) {
	conn, err := x11.NewConnection(opts.Display)
	if err != nil {
		return nil, func() {}, fmt.Errorf("failed to connect to X11: %w", err)
	}
	b := NewLinuxBackend(conn, opts)
	return b, b.Disconnect, nil
}

// Disconnect closes the underlying X11 connection.
func (b *LinuxBackend) Disconnect() {
	if b != nil && b.conn != nil {
		b.conn.Close()
	}
}

// Windows returns the titled, visible application windows on the current
// desktop in client-list order.
func (b *LinuxBackend) Windows() ([]Window, error) {
	conn, err := b.connection()
	if err != nil {
		return nil, err
	}

	clients, err := conn.ClientWindows()
	if err != nil {
		return nil, err
	}

	windows := make([]Window, 0, len(clients))
	for _, windowID := range clients {
		if !conn.IsNormalWindow(windowID) || conn.IsHidden(windowID) || !conn.OnCurrentDesktop(windowID) {
			continue
		}

		title := conn.GetWindowTitle(windowID)
		if title == "" {
			continue
		}

		geom, err := conn.GetWindowGeometry(windowID)
		if err != nil {
			continue
		}

		windows = append(windows, Window{
			ID:     WindowID(windowID),
			PID:    conn.GetWindowPID(windowID),
			AppID:  conn.GetWindowClass(windowID),
			Title:  title,
			Bounds: rectFromGeometry(geom),
		})
	}

	return windows, nil
}

// Geometry reads the raw and visible rects of a window together with the
// DPI values the engine scales by.
func (b *LinuxBackend) Geometry(windowID WindowID) (Geometry, error) {
	conn, err := b.connection()
	if err != nil {
		return Geometry{}, err
	}

	raw, err := conn.GetWindowGeometry(xproto.Window(windowID))
	if err != nil {
		return Geometry{}, err
	}
	visible := conn.GetVisibleGeometry(xproto.Window(windowID), raw)

	monitorDPI, windowDPI := b.dpi()
	return Geometry{
		Raw:         rectFromGeometry(raw),
		Visible:     rectFromGeometry(visible),
		MonitorDPIX: monitorDPI,
		MonitorDPIY: monitorDPI,
		WindowDPI:   windowDPI,
	}, nil
}

// Screens returns the primary monitor, the virtual screen and the primary
// monitor's work area.
func (b *LinuxBackend) Screens() (Screens, error) {
	conn, err := b.connection()
	if err != nil {
		return Screens{}, err
	}

	virtual, err := conn.GetVirtualScreen()
	if err != nil {
		return Screens{}, err
	}

	primary, err := conn.GetPrimaryMonitor()
	if err != nil {
		// Without RandR the root window is the only monitor.
		primary = x11.Monitor{X: virtual.X, Y: virtual.Y, Width: virtual.Width, Height: virtual.Height}
	}

	return Screens{
		Primary:  Rect{X: primary.X, Y: primary.Y, Width: primary.Width, Height: primary.Height},
		Virtual:  rectFromGeometry(virtual),
		WorkArea: rectFromGeometry(conn.GetWorkArea(primary)),
	}, nil
}

// MoveResize moves and resizes a window so its raw rect becomes bounds.
func (b *LinuxBackend) MoveResize(windowID WindowID, bounds Rect) error {
	conn, err := b.connection()
	if err != nil {
		return err
	}

	bounds = bounds.WithMinSize()
	return conn.MoveResizeWindow(
		xproto.Window(windowID),
		bounds.X,
		bounds.Y,
		bounds.Width,
		bounds.Height,
	)
}

// dpi returns the monitor and window DPI, honouring configured overrides.
// X11 renders every window at the server DPI, so the window DPI follows
// the monitor unless set.
func (b *LinuxBackend) dpi() (monitor, window int) {
	monitor = b.opts.MonitorDPI
	if monitor <= 0 {
		monitor = b.conn.GetEffectiveDPI()
	}
	window = b.opts.WindowDPI
	if window <= 0 {
		window = monitor
	}
	return monitor, window
}

func (b *LinuxBackend) connection() (*x11.Connection, error) {
	if b == nil || b.conn == nil {
		return nil, fmt.Errorf("x11 backend connection is nil")
	}
	return b.conn, nil
}

func rectFromGeometry(g x11.Geometry) Rect {
	return Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}
