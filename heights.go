// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "iter"

// BoundKind says how one end of a HeightRange is limited.
type BoundKind uint8

const (
	Unbounded BoundKind = iota
	Included
	Excluded
)

// Bound is one end of a HeightRange. Height is ignored when Kind is
// Unbounded.
type Bound struct {
	Kind   BoundKind
	Height uint64
}

// HeightRange selects block heights for transfer queries.
type HeightRange struct {
	Start Bound
	End   Bound
}

// HeightsInclusive is from..=to.
func HeightsInclusive(from, to uint64) HeightRange {
	return HeightRange{Start: Bound{Included, from}, End: Bound{Included, to}}
}

// HeightsBetween is from..to.
func HeightsBetween(from, to uint64) HeightRange {
	return HeightRange{Start: Bound{Included, from}, End: Bound{Excluded, to}}
}

// HeightsFrom is from..
func HeightsFrom(from uint64) HeightRange {
	return HeightRange{Start: Bound{Included, from}}
}

// HeightsUntil is ..to
func HeightsUntil(to uint64) HeightRange {
	return HeightRange{End: Bound{Excluded, to}}
}

// HeightsThrough is ..=to
func HeightsThrough(to uint64) HeightRange {
	return HeightRange{End: Bound{Included, to}}
}

// AllHeights is ..
func AllHeights() HeightRange {
	return HeightRange{}
}

// MinHeight is the node's min_height for r. The node treats min_height as
// exclusive, so an included start is moved down by one.
func (r HeightRange) MinHeight() (uint64, bool) {
	switch r.Start.Kind {
	case Included:
		return saturatingPred(r.Start.Height), true
	case Excluded:
		return r.Start.Height, true
	default:
		return 0, false
	}
}

// MaxHeight is the node's max_height for r, which the node treats as
// inclusive.
func (r HeightRange) MaxHeight() (uint64, bool) {
	switch r.End.Kind {
	case Included:
		return r.End.Height, true
	case Excluded:
		return saturatingPred(r.End.Height), true
	default:
		return 0, false
	}
}

func saturatingPred(h uint64) uint64 {
	if h == 0 {
		return 0
	}
	return h - 1
}

// heightFilter yields filter_by_height, min_height and max_height for r.
// filter_by_height is sent whenever a range is given, even one with no
// bounds.
func heightFilter(r *HeightRange) iter.Seq2[string, interface{}] {
	return func(yield func(string, interface{}) bool) {
		if r == nil {
			return
		}
		if !yield("filter_by_height", true) {
			return
		}
		if h, ok := r.MinHeight(); ok {
			if !yield("min_height", h) {
				return
			}
		}
		if h, ok := r.MaxHeight(); ok {
			yield("max_height", h)
		}
	}
}
