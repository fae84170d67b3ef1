// Package ffi implements the Go side of the C interface exported by
// cmd/libpolylabel. Its types have the same memory layout as the C structs
// declared in polylabel.h, so the exported function can hand C values to
// this package by pointer conversion.
package ffi

import (
	"math"
	"unsafe"

	"honnef.co/go/polylabel"
)

// Array is a sequence of points, stored as Len contiguous pairs of doubles.
// It mirrors the C struct Array.
type Array struct {
	Data unsafe.Pointer
	Len  uintptr
}

// WrapperArray is a sequence of Len rings. It mirrors the C struct
// WrapperArray.
type WrapperArray struct {
	Data *Array
	Len  uintptr
}

// Position is a label position. It mirrors the C struct Position.
type Position struct {
	XPos float64
	YPos float64
}

// Label computes the label position of the polygon described by outer and
// inners. Rings that aren't closed are closed by repeating their first point.
// Any error results in a position of (NaN, NaN).
func Label(outer Array, inners WrapperArray, tolerance float64) Position {
	p := polylabel.NewPolygon(closeRing(ring(outer)))
	for _, hole := range rings(inners) {
		p.Interiors = append(p.Interiors, closeRing(hole))
	}
	pt, err := polylabel.Label(p, tolerance)
	if err != nil {
		return Position{XPos: math.NaN(), YPos: math.NaN()}
	}
	return Position{XPos: pt.X, YPos: pt.Y}
}

// ring copies the points of arr into Go memory.
func ring(arr Array) polylabel.Ring {
	if arr.Data == nil || arr.Len == 0 {
		return nil
	}
	pairs := unsafe.Slice((*[2]float64)(arr.Data), arr.Len)
	r := make(polylabel.Ring, len(pairs))
	for i, xy := range pairs {
		r[i] = polylabel.Pt(xy[0], xy[1])
	}
	return r
}

func rings(arr WrapperArray) []polylabel.Ring {
	if arr.Data == nil || arr.Len == 0 {
		return nil
	}
	arrays := unsafe.Slice(arr.Data, arr.Len)
	out := make([]polylabel.Ring, len(arrays))
	for i, a := range arrays {
		out[i] = ring(a)
	}
	return out
}

func closeRing(r polylabel.Ring) polylabel.Ring {
	if len(r) == 0 || r.IsClosed() {
		return r
	}
	return append(r, r[0])
}
