package config

// RawDPI mirrors DPIConfig with presence tracking.
type RawDPI struct {
	Monitor *int `yaml:"monitor"`
	Window  *int `yaml:"window"`
}

// RawList mirrors ListConfig with presence tracking.
type RawList struct {
	Width *int `yaml:"width"`
}

// RawConfig is the file representation. Nil fields keep their defaults.
type RawConfig struct {
	Display        *string  `yaml:"display"`
	XAuthority     *string  `yaml:"xauthority"`
	LogLevel       *string  `yaml:"log_level"`
	Adjust         *bool    `yaml:"adjust"`
	Regex          *bool    `yaml:"regex"`
	FirstMatchOnly *bool    `yaml:"first_match_only"`
	DPI            *RawDPI  `yaml:"dpi"`
	List           *RawList `yaml:"list"`
}

func (r RawConfig) merge(overlay RawConfig) RawConfig {
	out := r
	if overlay.Display != nil {
		out.Display = overlay.Display
	}
	if overlay.XAuthority != nil {
		out.XAuthority = overlay.XAuthority
	}
	if overlay.LogLevel != nil {
		out.LogLevel = overlay.LogLevel
	}
	if overlay.Adjust != nil {
		out.Adjust = overlay.Adjust
	}
	if overlay.Regex != nil {
		out.Regex = overlay.Regex
	}
	if overlay.FirstMatchOnly != nil {
		out.FirstMatchOnly = overlay.FirstMatchOnly
	}
	if overlay.DPI != nil {
		dpi := RawDPI{}
		if out.DPI != nil {
			dpi = *out.DPI
		}
		if overlay.DPI.Monitor != nil {
			dpi.Monitor = overlay.DPI.Monitor
		}
		if overlay.DPI.Window != nil {
			dpi.Window = overlay.DPI.Window
		}
		out.DPI = &dpi
	}
	if overlay.List != nil {
		list := RawList{}
		if out.List != nil {
			list = *out.List
		}
		if overlay.List.Width != nil {
			list.Width = overlay.List.Width
		}
		out.List = &list
	}
	return out
}
