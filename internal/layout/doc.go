// Package layout implements a pure-Go flexbox flow engine.
//
// It supports the four flow directions, wrapping onto multiple lines,
// justify and align modes, gap, ordering, flexible growing and
// shrinking, and fixed, percentage, and auto bases. Geometry is computed
// in float64 layout units; hosts round to their own grid. Types are
// re-exported through the root polykit package for public consumption.
//
// The main entry point is [Flow], which takes a container [Config], the
// container [Size], and a slice of [Item] descriptions, and returns one
// [Placement] per item.
package layout
