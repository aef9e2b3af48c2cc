package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitor represents a physical display
type Monitor struct {
	ID      int
	Name    string
	Output  randr.Output
	Primary bool
	X       int
	Y       int
	Width   int
	Height  int
}

func (m Monitor) contains(x, y int) bool {
	return x >= m.X && x < m.X+m.Width && y >= m.Y && y < m.Y+m.Height
}

// GetMonitors retrieves all active monitors using XRandR and flags the
// primary one.
func (c *Connection) GetMonitors() ([]Monitor, error) {
	if err := randr.Init(c.XUtil.Conn()); err != nil {
		return nil, fmt.Errorf("randr init failed: %w", err)
	}

	resources, err := randr.GetScreenResources(c.XUtil.Conn(), c.Root).Reply()
	if err != nil {
		return nil, fmt.Errorf("failed to get screen resources: %w", err)
	}

	var monitors []Monitor

	// Query each CRTC for active monitors
	for i, crtc := range resources.Crtcs {
		crtcInfo, err := randr.GetCrtcInfo(c.XUtil.Conn(), crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}

		// Skip disabled CRTCs
		if crtcInfo.Width == 0 || crtcInfo.Height == 0 || len(crtcInfo.Outputs) == 0 {
			continue
		}

		outputName := fmt.Sprintf("Monitor%d", i)
		outputInfo, err := randr.GetOutputInfo(c.XUtil.Conn(), crtcInfo.Outputs[0], resources.ConfigTimestamp).Reply()
		if err == nil {
			outputName = string(outputInfo.Name)
		}

		monitors = append(monitors, Monitor{
			ID:     i,
			Name:   outputName,
			Output: crtcInfo.Outputs[0],
			X:      int(crtcInfo.X),
			Y:      int(crtcInfo.Y),
			Width:  int(crtcInfo.Width),
			Height: int(crtcInfo.Height),
		})
	}

	if len(monitors) == 0 {
		return nil, fmt.Errorf("no monitors found")
	}

	var primaryOutput randr.Output
	if reply, err := randr.GetOutputPrimary(c.XUtil.Conn(), c.Root).Reply(); err == nil {
		primaryOutput = reply.Output
	}
	markPrimary(monitors, primaryOutput)

	return monitors, nil
}

// markPrimary flags the monitor driving the RandR primary output. Without
// one, the monitor at the root origin wins, then the first monitor.
func markPrimary(monitors []Monitor, primaryOutput randr.Output) {
	if len(monitors) == 0 {
		return
	}
	if primaryOutput != 0 {
		for i := range monitors {
			if monitors[i].Output == primaryOutput {
				monitors[i].Primary = true
				return
			}
		}
	}
	for i := range monitors {
		if monitors[i].contains(0, 0) {
			monitors[i].Primary = true
			return
		}
	}
	monitors[0].Primary = true
}

// GetPrimaryMonitor returns the primary monitor.
func (c *Connection) GetPrimaryMonitor() (Monitor, error) {
	monitors, err := c.GetMonitors()
	if err != nil {
		return Monitor{}, err
	}
	for _, m := range monitors {
		if m.Primary {
			return m, nil
		}
	}
	return monitors[0], nil
}

// GetVirtualScreen returns the root window bounds, which span every monitor.
func (c *Connection) GetVirtualScreen() (Geometry, error) {
	rootGeom, err := xproto.GetGeometry(c.XUtil.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return Geometry{}, fmt.Errorf("failed to get root geometry: %w", err)
	}
	return Geometry{
		X:      int(rootGeom.X),
		Y:      int(rootGeom.Y),
		Width:  int(rootGeom.Width),
		Height: int(rootGeom.Height),
	}, nil
}

// GetWorkArea returns the monitor rect minus the space reserved by docks
// and panels. Dock struts are preferred; _NET_WORKAREA for the current
// desktop is the fallback.
func (c *Connection) GetWorkArea(monitor Monitor) Geometry {
	area := monitor
	if applied := applyDockStruts(c, &area); !applied {
		applyWorkArea(c, &area)
	}
	return Geometry{X: area.X, Y: area.Y, Width: area.Width, Height: area.Height}
}

func applyWorkArea(c *Connection, monitor *Monitor) {
	workArea, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(workArea) == 0 {
		return
	}

	desktopIndex := 0
	if currentDesktop, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil {
		if int(currentDesktop) >= 0 && int(currentDesktop) < len(workArea) {
			desktopIndex = int(currentDesktop)
		}
	}

	wa := workArea[desktopIndex]
	isect := intersectionRect(
		monitor.X, monitor.Y, monitor.X+monitor.Width, monitor.Y+monitor.Height,
		int(wa.X), int(wa.Y), int(wa.X)+int(wa.Width), int(wa.Y)+int(wa.Height),
	)
	if isect.w > 0 && isect.h > 0 {
		monitor.X = isect.x
		monitor.Y = isect.y
		monitor.Width = isect.w
		monitor.Height = isect.h
	}
}

type dockStruts struct {
	left   int
	right  int
	top    int
	bottom int
}

func applyDockStruts(c *Connection, monitor *Monitor) bool {
	root, err := c.GetVirtualScreen()
	if err != nil {
		return false
	}

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return false
	}

	var struts dockStruts
	for _, windowID := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, windowID)
		if err != nil {
			continue
		}

		isDock := false
		for _, t := range types {
			if t == "_NET_WM_WINDOW_TYPE_DOCK" {
				isDock = true
				break
			}
		}
		if !isDock {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, windowID); err == nil {
			updateStrutsForMonitor(monitor, root.Width, root.Height, sp, &struts)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, windowID); err == nil {
			updateStrutsForMonitor(monitor, root.Width, root.Height, fullStrut(s, root.Width, root.Height), &struts)
		}
	}

	return struts.apply(monitor)
}

func fullStrut(s *ewmh.WmStrut, rootWidth, rootHeight int) *ewmh.WmStrutPartial {
	return &ewmh.WmStrutPartial{
		Left:         s.Left,
		Right:        s.Right,
		Top:          s.Top,
		Bottom:       s.Bottom,
		LeftStartY:   0,
		LeftEndY:     uint(rootHeight - 1),
		RightStartY:  0,
		RightEndY:    uint(rootHeight - 1),
		TopStartX:    0,
		TopEndX:      uint(rootWidth - 1),
		BottomStartX: 0,
		BottomEndX:   uint(rootWidth - 1),
	}
}

// apply shrinks the monitor by the accumulated struts. It reports false
// when no dock reserves space on the monitor.
func (s dockStruts) apply(monitor *Monitor) bool {
	if s.left == 0 && s.right == 0 && s.top == 0 && s.bottom == 0 {
		return false
	}

	monitor.X += s.left
	monitor.Y += s.top
	monitor.Width -= s.left + s.right
	monitor.Height -= s.top + s.bottom

	if monitor.Width < 1 {
		monitor.Width = 1
	}
	if monitor.Height < 1 {
		monitor.Height = 1
	}

	return true
}

func updateStrutsForMonitor(monitor *Monitor, rootWidth, rootHeight int, sp *ewmh.WmStrutPartial, acc *dockStruts) {
	monX1 := monitor.X
	monY1 := monitor.Y
	monX2 := monitor.X + monitor.Width
	monY2 := monitor.Y + monitor.Height

	// Top strut: y=[0,Top), x=[TopStartX,TopEndX]
	if sp.Top > 0 {
		isect := intersectionRect(monX1, monY1, monX2, monY2, int(sp.TopStartX), 0, int(sp.TopEndX)+1, int(sp.Top))
		acc.top = max(acc.top, isect.h)
	}

	// Bottom strut: y=[rootHeight-Bottom,rootHeight), x=[BottomStartX,BottomEndX]
	if sp.Bottom > 0 {
		isect := intersectionRect(monX1, monY1, monX2, monY2, int(sp.BottomStartX), rootHeight-int(sp.Bottom), int(sp.BottomEndX)+1, rootHeight)
		acc.bottom = max(acc.bottom, isect.h)
	}

	// Left strut: x=[0,Left), y=[LeftStartY,LeftEndY]
	if sp.Left > 0 {
		isect := intersectionRect(monX1, monY1, monX2, monY2, 0, int(sp.LeftStartY), int(sp.Left), int(sp.LeftEndY)+1)
		acc.left = max(acc.left, isect.w)
	}

	// Right strut: x=[rootWidth-Right,rootWidth), y=[RightStartY,RightEndY]
	if sp.Right > 0 {
		isect := intersectionRect(monX1, monY1, monX2, monY2, rootWidth-int(sp.Right), int(sp.RightStartY), rootWidth, int(sp.RightEndY)+1)
		acc.right = max(acc.right, isect.w)
	}
}

type intersection struct {
	x int
	y int
	w int
	h int
}

// intersectionRect returns the overlap of two edge-described rects; an
// empty overlap has zero width and height.
func intersectionRect(ax1, ay1, ax2, ay2, bx1, by1, bx2, by2 int) intersection {
	x1 := max(ax1, bx1)
	y1 := max(ay1, by1)
	x2 := min(ax2, bx2)
	y2 := min(ay2, by2)

	if x2 <= x1 || y2 <= y1 {
		return intersection{}
	}
	return intersection{x: x1, y: y1, w: x2 - x1, h: y2 - y1}
}
