package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	UnitAuto    Unit = iota // Size determined by content
	UnitFixed               // Absolute layout units
	UnitPercent             // Percentage of the container's main size
)

// Value represents a dimension that can be fixed, percentage, or auto.
type Value struct {
	Amount float64
	Unit   Unit
}

// Auto returns a Value that should be computed from content.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute length in layout units.
func Fixed(n float64) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// Percent returns a Value representing a percentage of available space.
// The value is on a 0-100 scale (50.0 = 50%).
func Percent(p float64) Value {
	return Value{Amount: p, Unit: UnitPercent}
}

// Resolve computes the actual length given available space.
// For UnitAuto, returns the fallback value. Negative results clamp to zero.
func (v Value) Resolve(available, fallback float64) float64 {
	var out float64
	switch v.Unit {
	case UnitFixed:
		out = v.Amount
	case UnitPercent:
		out = available * v.Amount / 100.0
	default:
		out = fallback
	}
	if out < 0 {
		return 0
	}
	return out
}

// IsAuto returns true if this value should be computed from content.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// String renders the value in the form ParseValue accepts.
func (v Value) String() string {
	switch v.Unit {
	case UnitFixed:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64)
	case UnitPercent:
		return strconv.FormatFloat(v.Amount, 'f', -1, 64) + "%"
	default:
		return "auto"
	}
}

// ParseValue parses a dimension string: "auto", a bare number of layout
// units ("120", "37.5"), or a percentage ("50%"). On a malformed input it
// returns Auto along with the error, so the result is always usable.
func ParseValue(s string) (Value, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "auto") {
		return Auto(), nil
	}
	if rest, ok := strings.CutSuffix(trimmed, "%"); ok {
		p, err := strconv.ParseFloat(strings.TrimSpace(rest), 64)
		if err != nil {
			return Auto(), fmt.Errorf("invalid percentage %q", s)
		}
		return Percent(p), nil
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Auto(), fmt.Errorf("invalid length %q", s)
	}
	return Fixed(n), nil
}
