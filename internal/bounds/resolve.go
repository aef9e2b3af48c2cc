package bounds

// ResolvePrimary converts a visible-frame target into the raw rectangle to
// request on the monitor the window currently occupies.
//
// Supplied components are offset by the insets and scaled by
// monitorDpi/96. Components that were not supplied reuse the raw rect
// verbatim. The size conversion only knows the current monitor's DPI; a
// target that lands on a monitor with a different DPI ends up off by the
// ratio of the two.
func ResolvePrimary(target Target, raw Rect, in Insets, dpi DPI) Placement {
	sx, sy := dpi.scale()

	p := Placement{
		X:      raw.Left,
		Y:      raw.Top,
		Width:  raw.Width(),
		Height: raw.Height(),
	}

	x := func(v float64) float64 { return (v - in.Left) * sx }
	y := func(v float64) float64 { return (v - in.Top) * sy }
	w := func(v float64) float64 { return (v + in.Left + in.Right) * sx }
	h := func(v float64) float64 { return (v + in.Top + in.Bottom) * sy }

	switch t := target.(type) {
	case X:
		p.X = x(t.X)
	case XY:
		p.X = x(t.X)
		p.Y = y(t.Y)
	case XYW:
		p.X = x(t.X)
		p.Y = y(t.Y)
		p.Width = w(t.W)
	case XYWH:
		p.X = x(t.X)
		p.Y = y(t.Y)
		p.Width = w(t.W)
		p.Height = h(t.H)
	}

	return p
}
