// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package insets represents per-side screen inset values and provides
// the validation and fallback logic that turns untrusted
// platform-reported insets into bounded, usable ones.
package insets

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/floralens/safearea/base/nums"
)

// Sides contains a value for each side of a rectangular region.
type Sides[T any] struct {

	// top side value
	Top T

	// right side value
	Right T

	// bottom side value
	Bottom T

	// left side value
	Left T
}

// Set sets the sides from the given list of 0 to 4 values, following
// the CSS multi-side syntax: 0 values sets all sides to the zero value,
// 1 value sets all sides, 2 values set vertical then horizontal,
// 3 values set top, horizontal, bottom, and 4 values set top, right,
// bottom, left. More than 4 values is a programmer error and is logged.
func (s *Sides[T]) Set(vals ...T) *Sides[T] {
	switch len(vals) {
	case 0:
		var zv T
		s.SetAll(zv)
	case 1:
		s.SetAll(vals[0])
	case 2:
		s.Top, s.Bottom = vals[0], vals[0]
		s.Right, s.Left = vals[1], vals[1]
	case 3:
		s.Top = vals[0]
		s.Right, s.Left = vals[1], vals[1]
		s.Bottom = vals[2]
	default:
		s.Top = vals[0]
		s.Right = vals[1]
		s.Bottom = vals[2]
		s.Left = vals[3]
		if len(vals) > 4 {
			slog.Error("programmer error: insets.Sides.Set: expected 0 to 4 values", "numValues", len(vals))
		}
	}
	return s
}

// SetAll sets all sides to the given value.
func (s *Sides[T]) SetAll(val T) *Sides[T] {
	s.Top = val
	s.Right = val
	s.Bottom = val
	s.Left = val
	return s
}

// AreZero returns whether all sides are equal to zero.
func AreZero[T comparable](s Sides[T]) bool {
	var zv T
	return s.Top == zv && s.Right == zv && s.Bottom == zv && s.Left == zv
}

// Floats contains float32 inset values for each side of the screen.
type Floats struct {
	Sides[float32]
}

// NewFloats creates new side floats and calls Set on them with the
// given values.
func NewFloats(vals ...float32) Floats {
	sides := Sides[float32]{}
	sides.Set(vals...)
	return Floats{sides}
}

// Add adds the other side floats and returns the result.
func (sf Floats) Add(other Floats) Floats {
	return NewFloats(
		sf.Top+other.Top,
		sf.Right+other.Right,
		sf.Bottom+other.Bottom,
		sf.Left+other.Left,
	)
}

// Clamp clamps every side into the closed interval [lo, hi] and
// returns the result.
func (sf Floats) Clamp(lo, hi float32) Floats {
	return NewFloats(
		nums.Clamp(sf.Top, lo, hi),
		nums.Clamp(sf.Right, lo, hi),
		nums.Clamp(sf.Bottom, lo, hi),
		nums.Clamp(sf.Left, lo, hi),
	)
}

// Round returns the side floats with every side rounded to the
// nearest whole number.
func (sf Floats) Round() Floats {
	return NewFloats(
		math32.Round(sf.Top),
		math32.Round(sf.Right),
		math32.Round(sf.Bottom),
		math32.Round(sf.Left),
	)
}

// IsFinite returns whether every side is a finite number.
func (sf Floats) IsFinite() bool {
	for _, v := range []float32{sf.Top, sf.Right, sf.Bottom, sf.Left} {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Within returns whether every side lies in the closed interval [lo, hi].
func (sf Floats) Within(lo, hi float32) bool {
	for _, v := range []float32{sf.Top, sf.Right, sf.Bottom, sf.Left} {
		if v < lo || v > hi {
			return false
		}
	}
	return true
}
