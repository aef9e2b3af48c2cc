package platform

import "errors"

// ErrUnsupported is returned by Open on platforms without a backend.
var ErrUnsupported = errors.New("window management is not supported on this platform")

// WindowID is a platform-neutral window identifier.
type WindowID uint32

// Rect describes a rectangular region in screen coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// WithMinSize returns r with width and height raised to at least one
// pixel. Window systems reject empty sizes and wrap negative ones.
func (r Rect) WithMinSize() Rect {
	r.Width = max(r.Width, 1)
	r.Height = max(r.Height, 1)
	return r
}

// Window contains metadata and the raw rect of a top-level window.
type Window struct {
	ID     WindowID
	PID    int
	AppID  string
	Title  string
	Bounds Rect
}

// Geometry is what the bounds engine needs to know about one window.
// Raw is the rect MoveResize consumes; Visible is what the user sees.
type Geometry struct {
	Raw         Rect
	Visible     Rect
	MonitorDPIX int
	MonitorDPIY int
	WindowDPI   int
}

// Screens describes the display arrangement in physical pixels.
type Screens struct {
	Primary  Rect
	Virtual  Rect
	WorkArea Rect
}

// Options tunes a backend. Zero DPI values mean detect.
type Options struct {
	Display    string
	MonitorDPI int
	WindowDPI  int
}

// Backend abstracts window-system operations across platforms.
type Backend interface {
	Windows() ([]Window, error)
	Geometry(windowID WindowID) (Geometry, error)
	Screens() (Screens, error)
	MoveResize(windowID WindowID, bounds Rect) error
}
