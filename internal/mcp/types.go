package mcp

// Rect is a window or screen rectangle in pixels.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ListWindowsInput is the input for the list_windows tool.
type ListWindowsInput struct{}

// WindowInfo describes one listed window.
type WindowInfo struct {
	ID     uint32 `json:"id"`
	Title  string `json:"title"`
	Class  string `json:"class,omitempty"`
	PID    int    `json:"pid,omitempty"`
	Bounds Rect   `json:"bounds"`
}

// ListWindowsOutput is the output for the list_windows tool.
type ListWindowsOutput struct {
	PrimaryScreen Rect         `json:"primary_screen"`
	VirtualScreen Rect         `json:"virtual_screen"`
	WorkArea      Rect         `json:"work_area"`
	Windows       []WindowInfo `json:"windows"`
}

// MoveWindowInput is the input for the move_window tool.
type MoveWindowInput struct {
	Title  string    `json:"title" jsonschema:"Window title to match. Case-insensitive substring unless regex is true."`
	Regex  bool      `json:"regex,omitempty" jsonschema:"Treat title as a regular expression (case-sensitive)."`
	Values []float64 `json:"values,omitempty" jsonschema:"Up to four numbers: x, y, width, height of the visible frame in 96-DPI units. Missing trailing values keep the current ones; extra values are ignored."`
	Adjust *bool     `json:"adjust,omitempty" jsonschema:"Keep the window on screen and off the taskbar (default: config adjust)."`
	First  bool      `json:"first,omitempty" jsonschema:"Only move the first matching window."`
	DryRun bool      `json:"dry_run,omitempty" jsonschema:"Resolve bounds without moving anything."`
}

// MoveResult describes one matched window.
type MoveResult struct {
	ID      uint32 `json:"id"`
	Title   string `json:"title"`
	From    Rect   `json:"from"`
	To      Rect   `json:"to"`
	Moved   bool   `json:"moved"`
	Taskbar string `json:"taskbar,omitempty"`
}

// MoveWindowOutput is the output for the move_window tool.
type MoveWindowOutput struct {
	Results []MoveResult `json:"results"`
}

// FloatRect is a rectangle given by origin and size.
type FloatRect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DPIInput carries the DPI values for resolve_bounds. Zero means 96.
type DPIInput struct {
	Monitor  int `json:"monitor,omitempty" jsonschema:"Effective DPI of the monitor (both axes unless monitor_y is set)."`
	MonitorY int `json:"monitor_y,omitempty" jsonschema:"Vertical monitor DPI when it differs from monitor."`
	Window   int `json:"window,omitempty" jsonschema:"DPI the window renders at (default: monitor)."`
}

// LayoutInput is the screen layout in 96-DPI units.
type LayoutInput struct {
	Primary  FloatRect `json:"primary" jsonschema:"Primary monitor."`
	Virtual  FloatRect `json:"virtual" jsonschema:"Bounding box of all monitors."`
	WorkArea FloatRect `json:"work_area" jsonschema:"Primary monitor minus the taskbar."`
}

// ResolveBoundsInput is the input for the resolve_bounds tool.
type ResolveBoundsInput struct {
	Raw     FloatRect    `json:"raw" jsonschema:"Current window rect as the platform reports it."`
	Visible *FloatRect   `json:"visible,omitempty" jsonschema:"Visible frame of the window (default: raw)."`
	DPI     *DPIInput    `json:"dpi,omitempty" jsonschema:"Monitor and window DPI (default: 96)."`
	Values  []float64    `json:"values,omitempty" jsonschema:"Up to four numbers: x, y, width, height."`
	Layout  *LayoutInput `json:"layout,omitempty" jsonschema:"Screen layout; when set the adjustment stage runs."`
}

// Insets are the invisible border thicknesses.
type Insets struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
}

// ResolveBoundsOutput is the output for the resolve_bounds tool.
type ResolveBoundsOutput struct {
	Placement FloatRect `json:"placement"`
	Primary   FloatRect `json:"primary"`
	Insets    Insets    `json:"insets"`
	Adjusted  bool      `json:"adjusted"`
	Taskbar   string    `json:"taskbar,omitempty"`
}
