package bounds

// Request is everything one resolution needs. Layout is nil when the
// adjustment stage is not wanted.
type Request struct {
	Target  Target
	Raw     Rect
	Visible Rect
	DPI     DPI
	Layout  *Layout
}

// Result carries the resolved placement and the intermediate values that
// produced it.
type Result struct {
	Placement Placement
	Primary   Placement
	Insets    Insets
	Taskbar   TaskbarEdge
	Adjusted  bool
}

// Resolve runs the engine: insets, primary resolution, then the optional
// adjustment against the DPI-scaled layout.
func Resolve(req Request) Result {
	in := ComputeInsets(req.Raw, req.Visible, req.DPI)
	primary := ResolvePrimary(req.Target, req.Raw, in, req.DPI)

	res := Result{
		Placement: primary,
		Primary:   primary,
		Insets:    in,
	}
	if req.Layout == nil {
		return res
	}

	layout := req.Layout.Scale(req.DPI)
	res.Placement = Adjust(primary, in, layout)
	res.Taskbar = DetectTaskbar(layout.Primary, layout.WorkArea)
	res.Adjusted = true
	return res
}
