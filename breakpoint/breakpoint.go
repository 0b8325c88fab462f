// Package breakpoint defines the width classes used for responsive layout.
//
// Widths are expressed in layout units, not device pixels or terminal
// cells. Hosts that work in coarser units (a terminal grid, for example)
// scale their native width into layout units before classifying it.
package breakpoint

import "fmt"

// Breakpoint identifies one of the five responsive width classes.
// Classes are ordered from narrowest to widest; Base is always defined.
type Breakpoint uint8

const (
	Base Breakpoint = iota // Narrowest class, lower bound 0
	SM                     // Small, from 576 units
	MD                     // Medium, from 768 units
	LG                     // Large, from 992 units
	XL                     // Extra large, from 1200 units
)

// mins holds the inclusive lower bound of each class in layout units.
var mins = [...]float64{0, 576, 768, 992, 1200}

// Min returns the inclusive lower bound of the class in layout units.
func (b Breakpoint) Min() float64 {
	if int(b) >= len(mins) {
		return mins[len(mins)-1]
	}
	return mins[b]
}

// String returns the lowercase name of the class ("base", "sm", ...).
func (b Breakpoint) String() string {
	switch b {
	case Base:
		return "base"
	case SM:
		return "sm"
	case MD:
		return "md"
	case LG:
		return "lg"
	case XL:
		return "xl"
	default:
		return fmt.Sprintf("breakpoint(%d)", uint8(b))
	}
}

// Parse converts a lowercase class name to a Breakpoint.
func Parse(s string) (Breakpoint, error) {
	switch s {
	case "base":
		return Base, nil
	case "sm":
		return SM, nil
	case "md":
		return MD, nil
	case "lg":
		return LG, nil
	case "xl":
		return XL, nil
	default:
		return Base, fmt.Errorf("unknown breakpoint %q", s)
	}
}

// Compare orders two classes: -1 when a is narrower than b, 0 when
// equal, 1 when wider.
func Compare(a, b Breakpoint) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// ForWidth classifies a width into the widest class whose lower bound
// does not exceed it. Negative widths classify as Base.
func ForWidth(w float64) Breakpoint {
	for b := XL; b > Base; b-- {
		if w >= b.Min() {
			return b
		}
	}
	return Base
}

// All returns the classes in ascending order.
func All() []Breakpoint {
	return []Breakpoint{Base, SM, MD, LG, XL}
}

// Cascade returns the probe order for mobile-first resolution at b: the
// class itself, then each narrower class down to Base, then the wider
// classes in ascending order. The first class in this order for which a
// value is defined wins.
func Cascade(b Breakpoint) []Breakpoint {
	out := make([]Breakpoint, 0, len(mins))
	for c := b; ; c-- {
		out = append(out, c)
		if c == Base {
			break
		}
	}
	for c := b + 1; c <= XL; c++ {
		out = append(out, c)
	}
	return out
}
