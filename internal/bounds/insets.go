package bounds

// ComputeInsets derives the invisible border on each side of a window.
//
// The visible rectangle is reported in physical monitor pixels while raw is
// in the window's own DPI context, so visible is rescaled by
// monitorDpi/windowDpi before the per-side differences are taken. Negative
// results (visible larger than raw) are returned as is.
func ComputeInsets(raw, visible Rect, dpi DPI) Insets {
	dpi = dpi.normalized()
	sx := float64(dpi.MonitorX) / float64(dpi.Window)
	sy := float64(dpi.MonitorY) / float64(dpi.Window)

	scaled := Rect{
		Left:   visible.Left * sx,
		Top:    visible.Top * sy,
		Right:  visible.Right * sx,
		Bottom: visible.Bottom * sy,
	}

	return Insets{
		Left:   scaled.Left - raw.Left,
		Top:    scaled.Top - raw.Top,
		Right:  raw.Right - scaled.Right,
		Bottom: raw.Bottom - scaled.Bottom,
	}
}
