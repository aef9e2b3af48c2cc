package bounds

// Layout describes the display arrangement in 96-DPI logical units.
// Primary is the primary monitor, Virtual the bounding box of all
// monitors and WorkArea the primary monitor minus the taskbar.
type Layout struct {
	Primary  Rect
	Virtual  Rect
	WorkArea Rect
}

// Scale re-expresses the layout in the scaled space of a monitor, so it
// can be compared with a placement produced by ResolvePrimary.
func (l Layout) Scale(dpi DPI) Layout {
	sx, sy := dpi.scale()
	scale := func(r Rect) Rect {
		return Rect{Left: r.Left * sx, Top: r.Top * sy, Right: r.Right * sx, Bottom: r.Bottom * sy}
	}
	return Layout{
		Primary:  scale(l.Primary),
		Virtual:  scale(l.Virtual),
		WorkArea: scale(l.WorkArea),
	}
}

// TaskbarEdge is the primary monitor edge the taskbar is docked to.
type TaskbarEdge int

const (
	TaskbarNone TaskbarEdge = iota
	TaskbarBottom
	TaskbarTop
	TaskbarRight
	TaskbarLeft
)

func (e TaskbarEdge) String() string {
	switch e {
	case TaskbarBottom:
		return "bottom"
	case TaskbarTop:
		return "top"
	case TaskbarRight:
		return "right"
	case TaskbarLeft:
		return "left"
	default:
		return "none"
	}
}

// DetectTaskbar infers the taskbar edge from how the work area differs
// from the primary monitor. Only one edge is ever reported; the checks run
// bottom, top, right, left and the first match wins.
func DetectTaskbar(primary, workArea Rect) TaskbarEdge {
	switch {
	case primary.Top == workArea.Top && primary.Height() != workArea.Height():
		return TaskbarBottom
	case primary.Top != workArea.Top:
		return TaskbarTop
	case primary.Left == workArea.Left && primary.Width() != workArea.Width():
		return TaskbarRight
	case primary.Left != workArea.Left:
		return TaskbarLeft
	default:
		return TaskbarNone
	}
}

// Adjust keeps the visible frame of p inside the virtual screen and off the
// primary taskbar. The layout must already be scaled to p's space.
func Adjust(p Placement, in Insets, l Layout) Placement {
	p = containInVirtual(p, in, l.Virtual)
	return avoidTaskbar(p, in, l)
}

// containInVirtual shifts the visible frame back inside the virtual screen.
// Top and left are hard clamps applied after the bottom and right shifts,
// so a frame larger than the virtual screen keeps its top-left corner
// visible.
func containInVirtual(p Placement, in Insets, v Rect) Placement {
	if bottom := p.Y + p.Height - in.Bottom; bottom > v.Bottom {
		p.Y -= bottom - v.Bottom
	}
	if right := p.X + p.Width - in.Right; right > v.Right {
		p.X -= right - v.Right
	}
	if top := p.Y + in.Top; top < v.Top {
		p.Y = v.Top - in.Top
	}
	if left := p.X + in.Left; left < v.Left {
		p.X = v.Left - in.Left
	}
	return p
}

func avoidTaskbar(p Placement, in Insets, l Layout) Placement {
	primary, work, virtual := l.Primary, l.WorkArea, l.Virtual

	overlapsX := p.X+p.Width > primary.Left && p.X < primary.Right
	overlapsY := p.Y+p.Height > primary.Top && p.Y < primary.Bottom

	switch DetectTaskbar(primary, work) {
	case TaskbarBottom:
		// Only a frame ending inside the taskbar strip is pushed up; one
		// that runs past the whole screen is left alone. The shift never
		// lifts the visible top above the virtual screen.
		bottom := p.Y + p.Height - in.Bottom
		if bottom > work.Bottom && bottom <= primary.Bottom && overlapsX {
			p.Y -= min(bottom-work.Bottom, p.Y+in.Top-virtual.Top)
		}
	case TaskbarTop:
		// May push the frame past the bottom of the virtual screen.
		top := p.Y + in.Top
		if top >= primary.Top && top < work.Top && overlapsX {
			p.Y += work.Top - top
		}
	case TaskbarRight:
		right := p.X + p.Width - in.Right
		if right > work.Right && right <= primary.Right && overlapsY {
			p.X -= min(right-work.Right, p.X+in.Left-virtual.Left)
		}
	case TaskbarLeft:
		left := p.X + in.Left
		if left >= primary.Left && left < work.Left && overlapsY {
			p.X += work.Left - left
		}
	}

	return p
}
