package bounds

// DefaultDPI is the effective DPI of an unscaled (100%) display.
const DefaultDPI = 96

// Rect is an axis-aligned rectangle. Right < Left (or Bottom < Top) is a
// legal transient state during a resize and is handled arithmetically.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromXYWH builds a Rect from an origin and a size.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{Left: x, Top: y, Right: x + width, Bottom: y + height}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// DPI holds the effective DPI of the monitor hosting a window and the DPI
// the window itself renders at.
type DPI struct {
	MonitorX int
	MonitorY int
	Window   int
}

// UniformDPI returns a DPI where monitor and window agree.
func UniformDPI(dpi int) DPI {
	return DPI{MonitorX: dpi, MonitorY: dpi, Window: dpi}
}

func (d DPI) normalized() DPI {
	if d.MonitorX <= 0 {
		d.MonitorX = DefaultDPI
	}
	if d.MonitorY <= 0 {
		d.MonitorY = DefaultDPI
	}
	if d.Window <= 0 {
		d.Window = DefaultDPI
	}
	return d
}

// scale returns the monitorDpi/96 factors for each axis.
func (d DPI) scale() (sx, sy float64) {
	d = d.normalized()
	return float64(d.MonitorX) / DefaultDPI, float64(d.MonitorY) / DefaultDPI
}

// Insets are the invisible border thicknesses on each side of a window.
type Insets struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// Placement is the outer rectangle handed to the window placement call.
type Placement struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Ints truncates the placement toward zero, matching how pixel
// coordinates are passed to the window system.
func (p Placement) Ints() (x, y, width, height int) {
	return int(p.X), int(p.Y), int(p.Width), int(p.Height)
}

// Rect returns the placement as edges.
func (p Placement) Rect() Rect {
	return RectFromXYWH(p.X, p.Y, p.Width, p.Height)
}
