package x11

import (
	"bufio"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgbutil/xprop"
)

// DefaultDPI is reported when the X resource database carries no Xft.dpi.
const DefaultDPI = 96

// GetEffectiveDPI returns the Xft.dpi value from the root window's
// RESOURCE_MANAGER property, the DPI toolkits render at. X11 has a single
// value for all monitors.
func (c *Connection) GetEffectiveDPI() int {
	reply, err := xprop.GetProperty(c.XUtil, c.Root, "RESOURCE_MANAGER")
	if err != nil {
		return DefaultDPI
	}
	resources, err := xprop.PropValStr(reply, nil)
	if err != nil {
		return DefaultDPI
	}
	if dpi, ok := parseXftDPI(resources); ok {
		return dpi
	}
	return DefaultDPI
}

// parseXftDPI extracts Xft.dpi from an X resource database string.
func parseXftDPI(resources string) (int, bool) {
	scanner := bufio.NewScanner(strings.NewReader(resources))
	for scanner.Scan() {
		name, value, ok := strings.Cut(scanner.Text(), ":")
		if !ok || strings.TrimSpace(name) != "Xft.dpi" {
			continue
		}
		dpi, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil || dpi <= 0 {
			return 0, false
		}
		return int(math.Round(dpi)), true
	}
	return 0, false
}
