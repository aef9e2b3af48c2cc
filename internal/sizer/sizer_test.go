package sizer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Litorud/wsize/internal/bounds"
	"github.com/Litorud/wsize/internal/platform"
)

type fakeBackend struct {
	windows  []platform.Window
	geometry map[platform.WindowID]platform.Geometry
	screens  platform.Screens
	moves    map[platform.WindowID]platform.Rect

	screenCalls int
	moveErr     error
}

var _ platform.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) Windows() ([]platform.Window, error) { return f.windows, nil }

func (f *fakeBackend) Geometry(id platform.WindowID) (platform.Geometry, error) {
	g, ok := f.geometry[id]
	if !ok {
		return platform.Geometry{}, errors.New("window gone")
	}
	return g, nil
}

func (f *fakeBackend) Screens() (platform.Screens, error) {
	f.screenCalls++
	return f.screens, nil
}

func (f *fakeBackend) MoveResize(id platform.WindowID, r platform.Rect) error {
	if f.moveErr != nil {
		return f.moveErr
	}
	if f.moves == nil {
		f.moves = make(map[platform.WindowID]platform.Rect)
	}
	f.moves[id] = r
	return nil
}

func (f *fakeBackend) addWindow(id platform.WindowID, title string, raw platform.Rect, dpi int) {
	f.windows = append(f.windows, platform.Window{ID: id, Title: title, Bounds: raw})
	if f.geometry == nil {
		f.geometry = make(map[platform.WindowID]platform.Geometry)
	}
	f.geometry[id] = platform.Geometry{
		Raw:         raw,
		Visible:     raw,
		MonitorDPIX: dpi,
		MonitorDPIY: dpi,
		WindowDPI:   dpi,
	}
}

func newFake() *fakeBackend {
	f := &fakeBackend{}
	f.addWindow(1, "notes.txt - Text Editor", platform.Rect{X: 10, Y: 20, Width: 300, Height: 200}, 96)
	f.addWindow(2, "Terminal", platform.Rect{X: 0, Y: 0, Width: 640, Height: 480}, 96)
	f.addWindow(3, "todo.TXT - Text Editor", platform.Rect{X: 50, Y: 60, Width: 300, Height: 200}, 96)
	return f
}

func TestMatcher(t *testing.T) {
	m, err := NewMatcher("EDITOR", false)
	require.NoError(t, err)
	assert.True(t, m.Match("notes.txt - Text Editor"))
	assert.False(t, m.Match("Terminal"))

	m, err = NewMatcher(`^notes\.`, true)
	require.NoError(t, err)
	assert.True(t, m.Match("notes.txt - Text Editor"))
	assert.False(t, m.Match("Notes.txt - Text Editor"), "regular expressions are case-sensitive")

	_, err = NewMatcher("(", true)
	var matchErr *MatchError
	require.ErrorAs(t, err, &matchErr)
	assert.Equal(t, "(", matchErr.Pattern)
}

func TestApply_MovesEveryMatch(t *testing.T) {
	f := newFake()
	s := New(f, nil)

	results, err := s.Apply(context.Background(), Request{
		Title:  "text editor",
		Target: bounds.XY{X: 100, Y: 100},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	assert.Equal(t, platform.Rect{X: 100, Y: 100, Width: 300, Height: 200}, f.moves[1])
	assert.Equal(t, platform.Rect{X: 100, Y: 100, Width: 300, Height: 200}, f.moves[3])
	assert.NotContains(t, f.moves, platform.WindowID(2))
	assert.True(t, results[0].Moved)
	assert.Equal(t, platform.Rect{X: 10, Y: 20, Width: 300, Height: 200}, results[0].From)
	assert.Zero(t, f.screenCalls, "screens are only read when adjusting")
}

func TestApply_FirstStopsAfterOneWindow(t *testing.T) {
	f := newFake()
	results, err := New(f, nil).Apply(context.Background(), Request{
		Title:  "editor",
		Target: bounds.X{X: 0},
		First:  true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, platform.WindowID(1), results[0].Window.ID)
	assert.Len(t, f.moves, 1)
}

func TestApply_NoMatch(t *testing.T) {
	_, err := New(newFake(), nil).Apply(context.Background(), Request{Title: "browser"})
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestApply_InvalidRegex(t *testing.T) {
	_, err := New(newFake(), nil).Apply(context.Background(), Request{Title: "[", Regex: true})
	var matchErr *MatchError
	assert.ErrorAs(t, err, &matchErr)
}

func TestApply_UnchangedWindowIsNotMoved(t *testing.T) {
	f := newFake()
	results, err := New(f, nil).Apply(context.Background(), Request{
		Title:  "terminal",
		Target: bounds.XY{X: 0, Y: 0},
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Moved)
	assert.Equal(t, results[0].From, results[0].To)
	assert.Empty(t, f.moves)
}

func TestApply_DryRun(t *testing.T) {
	f := newFake()
	results, err := New(f, nil).Apply(context.Background(), Request{
		Title:  "terminal",
		Target: bounds.XYWH{X: 5, Y: 5, W: 100, H: 100},
		DryRun: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Moved)
	assert.Equal(t, platform.Rect{X: 5, Y: 5, Width: 100, Height: 100}, results[0].To)
	assert.Empty(t, f.moves)
}

func TestApply_AdjustUsesPhysicalScreensAtHighDPI(t *testing.T) {
	f := &fakeBackend{
		screens: platform.Screens{
			Primary:  platform.Rect{X: 0, Y: 0, Width: 2880, Height: 1620},
			Virtual:  platform.Rect{X: 0, Y: 0, Width: 2880, Height: 1620},
			WorkArea: platform.Rect{X: 0, Y: 0, Width: 2880, Height: 1560},
		},
	}
	f.addWindow(7, "Viewer", platform.Rect{X: 100, Y: 100, Width: 400, Height: 300}, 144)
	f.addWindow(8, "Viewer 2", platform.Rect{X: 100, Y: 100, Width: 400, Height: 300}, 144)

	results, err := New(f, nil).Apply(context.Background(), Request{
		Title:  "viewer",
		Target: bounds.XY{X: 1900, Y: 1000},
		Adjust: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// 1900,1000 logical is 2850,1500 physical. The frame is pulled back
	// inside the screen, then lifted off the 60px bottom panel.
	assert.Equal(t, platform.Rect{X: 2480, Y: 1260, Width: 400, Height: 300}, f.moves[7])
	assert.Equal(t, bounds.TaskbarBottom, results[0].Resolution.Taskbar)
	assert.True(t, results[0].Resolution.Adjusted)
	assert.Equal(t, 1, f.screenCalls)
}

func TestApply_MoveFailure(t *testing.T) {
	f := newFake()
	f.moveErr = errors.New("BadWindow")
	_, err := New(f, nil).Apply(context.Background(), Request{Title: "terminal", Target: bounds.X{X: 1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BadWindow")
}

func TestApply_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(newFake(), nil).Apply(ctx, Request{Title: "editor"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSnapshot(t *testing.T) {
	f := newFake()
	f.screens.Primary = platform.Rect{Width: 1920, Height: 1080}
	snap, err := New(f, nil).Snapshot()
	require.NoError(t, err)
	assert.Len(t, snap.Windows, 3)
	assert.Equal(t, 1920, snap.Screens.Primary.Width)
}

func TestLogicalLayout(t *testing.T) {
	sc := platform.Screens{
		Primary:  platform.Rect{X: 0, Y: 0, Width: 2880, Height: 1620},
		Virtual:  platform.Rect{X: -1440, Y: 0, Width: 4320, Height: 1620},
		WorkArea: platform.Rect{X: 0, Y: 48, Width: 2880, Height: 1572},
	}
	l := logicalLayout(sc, bounds.UniformDPI(144))
	assert.Equal(t, bounds.RectFromXYWH(0, 0, 1920, 1080), l.Primary)
	assert.Equal(t, bounds.RectFromXYWH(-960, 0, 2880, 1080), l.Virtual)
	assert.Equal(t, bounds.RectFromXYWH(0, 32, 1920, 1048), l.WorkArea)

	// Scaling back lands on the physical rects.
	scaled := l.Scale(bounds.UniformDPI(144))
	assert.Equal(t, bounds.RectFromXYWH(0, 48, 2880, 1572), scaled.WorkArea)
}

func TestApply_PassesResolvedSizeToBackend(t *testing.T) {
	f := newFake()
	target, err := bounds.ParseTarget([]string{"10", "10", "-50", "0"})
	require.NoError(t, err)

	results, err := New(f, nil).Apply(context.Background(), Request{Title: "terminal", Target: target})
	require.NoError(t, err)
	require.Len(t, results, 1)

	// The engine does not clamp; the backend raises sizes before they
	// reach the window system.
	want := platform.Rect{X: 10, Y: 10, Width: -50, Height: 0}
	assert.Equal(t, want, f.moves[2])
	assert.Equal(t, platform.Rect{X: 10, Y: 10, Width: 1, Height: 1}, f.moves[2].WithMinSize())
}

func TestApply_AdjustAtFractionalScaleKeepsWholePixels(t *testing.T) {
	// 31px left panel at 110 DPI: 31 does not survive the trip to logical
	// units and back exactly.
	f := &fakeBackend{
		screens: platform.Screens{
			Primary:  platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
			Virtual:  platform.Rect{X: 0, Y: 0, Width: 1920, Height: 1080},
			WorkArea: platform.Rect{X: 31, Y: 0, Width: 1889, Height: 1080},
		},
	}
	f.addWindow(4, "Browser", platform.Rect{X: 200, Y: 200, Width: 400, Height: 300}, 110)

	results, err := New(f, nil).Apply(context.Background(), Request{
		Title:  "browser",
		Target: bounds.XY{X: 0, Y: 0},
		Adjust: true,
	})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, bounds.TaskbarLeft, results[0].Resolution.Taskbar)
	assert.Equal(t, platform.Rect{X: 31, Y: 0, Width: 400, Height: 300}, f.moves[4])
}

func TestApply_NoTaskbarAtFractionalScale(t *testing.T) {
	screen := platform.Rect{X: 1366, Y: 37, Width: 1366, Height: 768}
	f := &fakeBackend{
		screens: platform.Screens{Primary: screen, Virtual: screen, WorkArea: screen},
	}
	f.addWindow(5, "Player", platform.Rect{X: 1500, Y: 100, Width: 400, Height: 300}, 110)

	results, err := New(f, nil).Apply(context.Background(), Request{Title: "player", Adjust: true})
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, bounds.TaskbarNone, results[0].Resolution.Taskbar)
	assert.False(t, results[0].Moved)
}

func TestPhysicalPlacement(t *testing.T) {
	p := physicalPlacement(bounds.Placement{X: 30.999999999999996, Y: 12.5, Width: 61.99999999999999, Height: -0.5})
	assert.Equal(t, bounds.Placement{X: 31, Y: 12.5, Width: 62, Height: -0.5}, p)

	x, y, w, h := p.Ints()
	assert.Equal(t, []int{31, 12, 62, 0}, []int{x, y, w, h})
}
