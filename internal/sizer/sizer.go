// Package sizer finds windows by title and applies resolved bounds to them.
package sizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/Litorud/wsize/internal/bounds"
	"github.com/Litorud/wsize/internal/platform"
)

// ErrNoMatch is returned when no window title matches the request.
var ErrNoMatch = errors.New("no matching window")

// Request selects windows and the bounds to give them.
type Request struct {
	Title  string
	Regex  bool
	Target bounds.Target
	// Adjust keeps windows on screen and off the taskbar.
	Adjust bool
	// First stops after the first matching window.
	First bool
	// DryRun resolves without moving anything.
	DryRun bool
}

// Result describes what happened to one matched window.
type Result struct {
	Window     platform.Window
	From       platform.Rect
	To         platform.Rect
	Resolution bounds.Result
	// Moved is false for dry runs and for windows already in place.
	Moved bool
}

// Snapshot is the state shown by the list command.
type Snapshot struct {
	Screens platform.Screens
	Windows []platform.Window
}

// Sizer moves windows through a platform backend.
type Sizer struct {
	backend platform.Backend
	logger  *slog.Logger
}

// New returns a Sizer. A nil logger discards output.
func New(backend platform.Backend, logger *slog.Logger) *Sizer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Sizer{backend: backend, logger: logger}
}

// Apply resolves and applies the request to every matching window.
func (s *Sizer) Apply(ctx context.Context, req Request) ([]Result, error) {
	matcher, err := NewMatcher(req.Title, req.Regex)
	if err != nil {
		return nil, err
	}

	windows, err := s.backend.Windows()
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}

	var matched []platform.Window
	for _, w := range windows {
		if !matcher.Match(w.Title) {
			continue
		}
		matched = append(matched, w)
		if req.First {
			break
		}
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoMatch, req.Title)
	}

	var screens *platform.Screens
	if req.Adjust {
		sc, err := s.backend.Screens()
		if err != nil {
			return nil, fmt.Errorf("failed to read screen layout: %w", err)
		}
		screens = &sc
		s.logger.Debug("screen layout",
			"primary", sc.Primary,
			"virtual", sc.Virtual,
			"work_area", sc.WorkArea,
		)
	}

	results := make([]Result, 0, len(matched))
	for _, w := range matched {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		res, err := s.applyOne(w, req, screens)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

func (s *Sizer) applyOne(w platform.Window, req Request, screens *platform.Screens) (Result, error) {
	geom, err := s.backend.Geometry(w.ID)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read geometry of %q: %w", w.Title, err)
	}

	dpi := bounds.DPI{MonitorX: geom.MonitorDPIX, MonitorY: geom.MonitorDPIY, Window: geom.WindowDPI}
	engineReq := bounds.Request{
		Target:  req.Target,
		Raw:     engineRect(geom.Raw),
		Visible: engineRect(geom.Visible),
		DPI:     dpi,
	}
	if screens != nil {
		layout := logicalLayout(*screens, dpi)
		engineReq.Layout = &layout
	}

	resolution := bounds.Resolve(engineReq)
	x, y, width, height := physicalPlacement(resolution.Placement).Ints()
	to := platform.Rect{X: x, Y: y, Width: width, Height: height}

	res := Result{
		Window:     w,
		From:       geom.Raw,
		To:         to,
		Resolution: resolution,
	}

	logger := s.logger.With("window", w.ID, "title", w.Title)
	logger.Debug("resolved bounds",
		"raw", geom.Raw,
		"visible", geom.Visible,
		"insets", resolution.Insets,
		"taskbar", resolution.Taskbar.String(),
		"target", bounds.Values(req.Target),
	)

	switch {
	case req.DryRun:
		logger.Info("dry run", "from", geom.Raw, "to", to)
	case to == geom.Raw:
		logger.Info("already in place", "bounds", to)
	default:
		if err := s.backend.MoveResize(w.ID, to); err != nil {
			return res, fmt.Errorf("failed to move %q: %w", w.Title, err)
		}
		res.Moved = true
		logger.Info("moved window", "from", geom.Raw, "to", to)
	}

	return res, nil
}

// Snapshot returns the screen layout and the listable windows.
func (s *Sizer) Snapshot() (Snapshot, error) {
	screens, err := s.backend.Screens()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read screen layout: %w", err)
	}
	windows, err := s.backend.Windows()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to list windows: %w", err)
	}
	return Snapshot{Screens: screens, Windows: windows}, nil
}

func engineRect(r platform.Rect) bounds.Rect {
	return bounds.RectFromXYWH(float64(r.X), float64(r.Y), float64(r.Width), float64(r.Height))
}

// logicalLayout converts physical screen rects to the 96-DPI units the
// engine expects, using the monitor DPI of the window being resolved.
// At scales that are not exact in binary the round trip through
// Layout.Scale can be off by an ULP. Taskbar detection still holds since
// equal physical edges go through identical arithmetic and distinct ones
// are a whole pixel apart.
func logicalLayout(sc platform.Screens, dpi bounds.DPI) bounds.Layout {
	sx, sy := scaleOf(dpi.MonitorX), scaleOf(dpi.MonitorY)
	logical := func(r platform.Rect) bounds.Rect {
		return bounds.Rect{
			Left:   float64(r.X) / sx,
			Top:    float64(r.Y) / sy,
			Right:  float64(r.X+r.Width) / sx,
			Bottom: float64(r.Y+r.Height) / sy,
		}
	}
	return bounds.Layout{
		Primary:  logical(sc.Primary),
		Virtual:  logical(sc.Virtual),
		WorkArea: logical(sc.WorkArea),
	}
}

// roundTripTolerance bounds the float error left by dividing a physical
// coordinate by a monitor scale and multiplying it back.
const roundTripTolerance = 1e-6

// physicalPlacement snaps components that sit within float noise of an
// integer onto it, so truncation does not lose a pixel at scales such as
// 110 DPI where 31/s*s is 30.999999999999996. Real fractions are left for
// Ints to truncate.
func physicalPlacement(p bounds.Placement) bounds.Placement {
	snap := func(v float64) float64 {
		if r := math.Round(v); math.Abs(v-r) < roundTripTolerance {
			return r
		}
		return v
	}
	return bounds.Placement{X: snap(p.X), Y: snap(p.Y), Width: snap(p.Width), Height: snap(p.Height)}
}

func scaleOf(dpi int) float64 {
	if dpi <= 0 {
		return 1
	}
	return float64(dpi) / bounds.DefaultDPI
}
