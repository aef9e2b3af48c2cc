package mcp

import (
	"context"
	"fmt"
	"strings"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Litorud/wsize/internal/bounds"
	"github.com/Litorud/wsize/internal/platform"
	"github.com/Litorud/wsize/internal/sizer"
)

func (s *Server) withSizer(fn func(*sizer.Sizer) error) error {
	if s.open == nil {
		return fmt.Errorf("no window system available")
	}
	backend, closeFn, err := s.open()
	if err != nil {
		return err
	}
	defer closeFn()
	return fn(sizer.New(backend, s.logger))
}

func (s *Server) handleListWindows(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListWindowsInput) (*mcpsdk.CallToolResult, ListWindowsOutput, error) {
	var snap sizer.Snapshot
	err := s.withSizer(func(sz *sizer.Sizer) error {
		var err error
		snap, err = sz.Snapshot()
		return err
	})
	if err != nil {
		return nil, ListWindowsOutput{}, err
	}

	out := ListWindowsOutput{
		PrimaryScreen: rectOut(snap.Screens.Primary),
		VirtualScreen: rectOut(snap.Screens.Virtual),
		WorkArea:      rectOut(snap.Screens.WorkArea),
		Windows:       make([]WindowInfo, 0, len(snap.Windows)),
	}
	for _, w := range snap.Windows {
		out.Windows = append(out.Windows, WindowInfo{
			ID:     uint32(w.ID),
			Title:  w.Title,
			Class:  w.AppID,
			PID:    w.PID,
			Bounds: rectOut(w.Bounds),
		})
	}
	return nil, out, nil
}

func (s *Server) handleMoveWindow(ctx context.Context, _ *mcpsdk.CallToolRequest, args MoveWindowInput) (*mcpsdk.CallToolResult, MoveWindowOutput, error) {
	if strings.TrimSpace(args.Title) == "" {
		return nil, MoveWindowOutput{}, fmt.Errorf("title is required")
	}

	adjust := s.config.Adjust
	if args.Adjust != nil {
		adjust = *args.Adjust
	}

	req := sizer.Request{
		Title:  args.Title,
		Regex:  args.Regex,
		Target: bounds.TargetFromValues(args.Values),
		Adjust: adjust,
		First:  args.First,
		DryRun: args.DryRun,
	}

	var results []sizer.Result
	err := s.withSizer(func(sz *sizer.Sizer) error {
		var err error
		results, err = sz.Apply(ctx, req)
		return err
	})
	if err != nil {
		return nil, MoveWindowOutput{}, err
	}

	out := MoveWindowOutput{Results: make([]MoveResult, 0, len(results))}
	for _, r := range results {
		mr := MoveResult{
			ID:    uint32(r.Window.ID),
			Title: r.Window.Title,
			From:  rectOut(r.From),
			To:    rectOut(r.To),
			Moved: r.Moved,
		}
		if r.Resolution.Adjusted {
			mr.Taskbar = r.Resolution.Taskbar.String()
		}
		out.Results = append(out.Results, mr)
	}
	return nil, out, nil
}

func (s *Server) handleResolveBounds(_ context.Context, _ *mcpsdk.CallToolRequest, args ResolveBoundsInput) (*mcpsdk.CallToolResult, ResolveBoundsOutput, error) {
	raw := rectIn(args.Raw)
	visible := raw
	if args.Visible != nil {
		visible = rectIn(*args.Visible)
	}

	req := bounds.Request{
		Target:  bounds.TargetFromValues(args.Values),
		Raw:     raw,
		Visible: visible,
		DPI:     dpiIn(args.DPI),
	}
	if args.Layout != nil {
		req.Layout = &bounds.Layout{
			Primary:  rectIn(args.Layout.Primary),
			Virtual:  rectIn(args.Layout.Virtual),
			WorkArea: rectIn(args.Layout.WorkArea),
		}
	}

	res := bounds.Resolve(req)
	out := ResolveBoundsOutput{
		Placement: placementOut(res.Placement),
		Primary:   placementOut(res.Primary),
		Insets: Insets{
			Left:   res.Insets.Left,
			Top:    res.Insets.Top,
			Right:  res.Insets.Right,
			Bottom: res.Insets.Bottom,
		},
		Adjusted: res.Adjusted,
	}
	if res.Adjusted {
		out.Taskbar = res.Taskbar.String()
	}
	return nil, out, nil
}

func rectOut(r platform.Rect) Rect {
	return Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func rectIn(r FloatRect) bounds.Rect {
	return bounds.RectFromXYWH(r.X, r.Y, r.Width, r.Height)
}

func placementOut(p bounds.Placement) FloatRect {
	return FloatRect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
}

func dpiIn(d *DPIInput) bounds.DPI {
	if d == nil {
		return bounds.UniformDPI(bounds.DefaultDPI)
	}
	monitorY := d.MonitorY
	if monitorY <= 0 {
		monitorY = d.Monitor
	}
	window := d.Window
	if window <= 0 {
		window = d.Monitor
	}
	return bounds.DPI{MonitorX: d.Monitor, MonitorY: monitorY, Window: window}
}
