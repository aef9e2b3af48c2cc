package x11

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/icccm"
	"github.com/BurntSushi/xgbutil/xprop"
	"github.com/BurntSushi/xgbutil/xwindow"
	mapset "github.com/deckarep/golang-set/v2"
)

var (
	rejectedWindowTypes = mapset.NewSet(
		"_NET_WM_WINDOW_TYPE_DESKTOP",
		"_NET_WM_WINDOW_TYPE_DOCK",
		"_NET_WM_WINDOW_TYPE_SPLASH",
		"_NET_WM_WINDOW_TYPE_NOTIFICATION",
	)
	hiddenStates = mapset.NewSet(
		"_NET_WM_STATE_HIDDEN",
	)
	maximizedStates = mapset.NewSet(
		"_NET_WM_STATE_MAXIMIZED_HORZ",
		"_NET_WM_STATE_MAXIMIZED_VERT",
	)
)

// Extents are per-side border sizes around a client window.
type Extents struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// Geometry is a window rectangle in root coordinates.
type Geometry struct {
	X      int
	Y      int
	Width  int
	Height int
}

// MoveResizeWindow moves and resizes a window so that its client area
// lands on the given geometry.
func (c *Connection) MoveResizeWindow(windowID xproto.Window, x, y, width, height int) error {
	// A maximized window ignores move requests on most window managers.
	// Windows without _NET_WM_STATE are moved anyway.
	_ = c.unmaximizeWindow(windowID)

	// Static gravity makes x/y address the client window rather than the
	// frame, which is the rect GetWindowGeometry reports.
	err := ewmh.MoveresizeWindowExtra(
		c.XUtil,
		windowID,
		x, y, width, height,
		xproto.GravityStatic, 2, true, true,
	)
	if err != nil {
		// Fallback to direct window manipulation
		xwindow.New(c.XUtil, windowID).MoveResize(x, y, width, height)
	}

	return nil
}

// unmaximizeWindow removes maximized state from a window
func (c *Connection) unmaximizeWindow(windowID xproto.Window) error {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return err
	}

	for _, state := range states {
		if maximizedStates.Contains(state) {
			if err := ewmh.WmStateReq(c.XUtil, windowID, ewmh.StateRemove, state); err != nil {
				return fmt.Errorf("failed to clear %s: %w", state, err)
			}
		}
	}

	return nil
}

// GetWindowGeometry returns the client window rect in root coordinates.
func (c *Connection) GetWindowGeometry(windowID xproto.Window) (Geometry, error) {
	geom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(windowID)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get geometry of window %d: %w", windowID, err)
	}

	translate, err := xproto.TranslateCoordinates(
		c.XUtil.Conn(),
		windowID,
		c.Root,
		0, 0,
	).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to translate coordinates of window %d: %w", windowID, err)
	}

	return Geometry{
		X:      int(translate.DstX),
		Y:      int(translate.DstY),
		Width:  int(geom.Width),
		Height: int(geom.Height),
	}, nil
}

// GetFrameExtents returns the window manager decoration sizes (if available)
func (c *Connection) GetFrameExtents(windowID xproto.Window) Extents {
	extents, err := ewmh.FrameExtentsGet(c.XUtil, windowID)
	if err != nil {
		return Extents{}
	}
	return Extents{
		Left:   int(extents.Left),
		Right:  int(extents.Right),
		Top:    int(extents.Top),
		Bottom: int(extents.Bottom),
	}
}

// GetGtkFrameExtents returns the invisible client-side shadow a CSD window
// draws inside its own client area (_GTK_FRAME_EXTENTS).
func (c *Connection) GetGtkFrameExtents(windowID xproto.Window) Extents {
	nums, err := xprop.PropValNums(xprop.GetProperty(c.XUtil, windowID, "_GTK_FRAME_EXTENTS"))
	if err != nil || len(nums) != 4 {
		return Extents{}
	}
	return Extents{
		Left:   int(nums[0]),
		Right:  int(nums[1]),
		Top:    int(nums[2]),
		Bottom: int(nums[3]),
	}
}

// GetVisibleGeometry returns the rect of the window as the user sees it:
// the client rect grown by the window manager frame and shrunk by any
// client-side shadow.
func (c *Connection) GetVisibleGeometry(windowID xproto.Window, client Geometry) Geometry {
	frame := c.GetFrameExtents(windowID)
	shadow := c.GetGtkFrameExtents(windowID)
	return visibleGeometry(client, frame, shadow)
}

func visibleGeometry(client Geometry, frame, shadow Extents) Geometry {
	left := frame.Left - shadow.Left
	right := frame.Right - shadow.Right
	top := frame.Top - shadow.Top
	bottom := frame.Bottom - shadow.Bottom
	return Geometry{
		X:      client.X - left,
		Y:      client.Y - top,
		Width:  client.Width + left + right,
		Height: client.Height + top + bottom,
	}
}

// IsNormalWindow checks if a window is a normal application window
func (c *Connection) IsNormalWindow(windowID xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
	if err != nil {
		// If we can't determine type, assume it's normal
		return true
	}

	for _, t := range types {
		if t == "_NET_WM_WINDOW_TYPE_NORMAL" {
			return true
		}
		if rejectedWindowTypes.Contains(t) {
			return false
		}
	}

	// If no specific type is set, assume it's normal
	return len(types) == 0
}

// IsHidden reports whether a window is minimized.
func (c *Connection) IsHidden(windowID xproto.Window) bool {
	states, err := ewmh.WmStateGet(c.XUtil, windowID)
	if err != nil {
		return false
	}
	for _, state := range states {
		if hiddenStates.Contains(state) {
			return true
		}
	}
	return false
}

// ClientWindows returns the EWMH client list in mapping order.
func (c *Connection) ClientWindows() ([]xproto.Window, error) {
	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, fmt.Errorf("failed to get client list: %w", err)
	}
	return clients, nil
}

// GetWindowTitle returns _NET_WM_NAME, falling back to WM_NAME.
func (c *Connection) GetWindowTitle(windowID xproto.Window) string {
	if title, err := ewmh.WmNameGet(c.XUtil, windowID); err == nil {
		if title = strings.TrimSpace(title); title != "" {
			return title
		}
	}
	if title, err := icccm.WmNameGet(c.XUtil, windowID); err == nil {
		return strings.TrimSpace(title)
	}
	return ""
}

// GetWindowClass returns the WM_CLASS class name.
func (c *Connection) GetWindowClass(windowID xproto.Window) string {
	wmClass, err := icccm.WmClassGet(c.XUtil, windowID)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(wmClass.Class)
}

// GetWindowPID returns _NET_WM_PID, or 0 when unset.
func (c *Connection) GetWindowPID(windowID xproto.Window) int {
	pid, err := ewmh.WmPidGet(c.XUtil, windowID)
	if err != nil {
		return 0
	}
	return int(pid)
}
