package bounds

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Target is the user's requested visible-frame geometry. Only the leading
// components are ever supplied, so the variants are None, X, XY, XYW and
// XYWH. Components that are not supplied keep the window's current raw
// value.
type Target interface {
	// Len reports how many components the target carries.
	Len() int
	isTarget()
}

type None struct{}

type X struct{ X float64 }

type XY struct{ X, Y float64 }

type XYW struct{ X, Y, W float64 }

type XYWH struct{ X, Y, W, H float64 }

func (None) Len() int { return 0 }
func (X) Len() int    { return 1 }
func (XY) Len() int   { return 2 }
func (XYW) Len() int  { return 3 }
func (XYWH) Len() int { return 4 }

func (None) isTarget() {}
func (X) isTarget()    {}
func (XY) isTarget()   {}
func (XYW) isTarget()  {}
func (XYWH) isTarget() {}

// TargetFromValues builds a Target from up to four values bound to
// x, y, width and height. Values are truncated to whole pixels and values
// past the fourth are ignored.
func TargetFromValues(values []float64) Target {
	v := make([]float64, len(values))
	for i, value := range values {
		v[i] = math.Trunc(value)
	}

	switch len(v) {
	case 0:
		return None{}
	case 1:
		return X{X: v[0]}
	case 2:
		return XY{X: v[0], Y: v[1]}
	case 3:
		return XYW{X: v[0], Y: v[1], W: v[2]}
	default:
		return XYWH{X: v[0], Y: v[1], W: v[2], H: v[3]}
	}
}

// Values returns the supplied components in x, y, width, height order.
func Values(t Target) []float64 {
	switch t := t.(type) {
	case X:
		return []float64{t.X}
	case XY:
		return []float64{t.X, t.Y}
	case XYW:
		return []float64{t.X, t.Y, t.W}
	case XYWH:
		return []float64{t.X, t.Y, t.W, t.H}
	default:
		return nil
	}
}

var componentNames = [...]string{"x", "y", "width", "height"}

// ParseError reports a target value that is not a number.
type ParseError struct {
	Index int
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	name := fmt.Sprintf("value %d", e.Index+1)
	if e.Index < len(componentNames) {
		name = componentNames[e.Index]
	}
	return fmt.Sprintf("invalid %s %q: %v", name, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseTarget parses command-line target values. Decimal input is
// accepted and truncated.
func ParseTarget(args []string) (Target, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return nil, &ParseError{Index: i, Value: arg, Err: err}
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ParseError{Index: i, Value: arg, Err: fmt.Errorf("not a finite number")}
		}
		values = append(values, v)
	}
	return TargetFromValues(values), nil
}
