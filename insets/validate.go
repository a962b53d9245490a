// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package insets

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/floralens/safearea/device"
)

const (
	// plausibleMaxTablet and plausibleMaxPhone bound the raw inset values
	// a platform sensor can plausibly report. Anything beyond these is a
	// bad reading, not a big bezel.
	plausibleMaxTablet = 100
	plausibleMaxPhone  = 200

	// hardBoundFracTablet and hardBoundFracPhone give the maximum inset
	// as a fraction of the longest screen dimension. Resolved insets
	// always lie within this bound.
	hardBoundFracTablet = 0.10
	hardBoundFracPhone  = 0.15
)

// Resolved is a validated, bounded set of insets. Each side lies within
// the device-class hard bound; UsingFallback reports whether the values
// came from the fallback table rather than the sensor.
type Resolved struct {
	Floats

	// UsingFallback is set when the sensed values were absent or
	// implausible and the class fallback was substituted.
	UsingFallback bool
}

// Table holds the fallback insets substituted per device class when the
// platform reading is absent or implausible.
type Table struct {
	Modern Floats
	Legacy Floats
	Tablet Floats
}

// For returns the fallback entry for the given class.
func (t Table) For(c device.Class) Floats {
	switch c {
	case device.Legacy:
		return t.Legacy
	case device.Tablet:
		return t.Tablet
	}
	return t.Modern
}

// StandardTable is the built-in fallback table: a notched status bar
// plus home indicator for modern phones, a plain status bar for legacy
// phones, and shallow symmetric bars for tablets.
var StandardTable = Table{
	Modern: NewFloats(47, 0, 34, 0),
	Legacy: NewFloats(20, 0, 0, 0),
	Tablet: NewFloats(24, 0, 20, 0),
}

// Fallback returns the standard fallback insets for the given class.
func Fallback(c device.Class) Floats {
	return StandardTable.For(c)
}

// PlausibleMax returns the largest raw inset value accepted from the
// sensor for the given class.
func PlausibleMax(c device.Class) float32 {
	if c == device.Tablet {
		return plausibleMaxTablet
	}
	return plausibleMaxPhone
}

// HardBound returns the maximum resolved inset for the given class on a
// screen whose longest dimension is screenMax.
func HardBound(c device.Class, screenMax float32) float32 {
	if c == device.Tablet {
		return screenMax * hardBoundFracTablet
	}
	return screenMax * hardBoundFracPhone
}

// Validate turns a raw sensor reading into bounded, usable insets.
// sensorErr is the error from the acquisition call, if any. Every
// failure degrades to the class fallback; Validate never returns an
// error. The hard clamp against the screen dimension runs on the
// success path as well.
func Validate(raw Floats, sensorErr error, info device.Info, screenMax float32, lg *slog.Logger) Resolved {
	if lg == nil {
		lg = slog.Default()
	}
	c := info.Class()
	if sensorErr != nil {
		lg.Warn("insets: safe area sensor unavailable, using fallback",
			"err", sensorErr, "class", c)
		return Resolved{Floats: Fallback(c), UsingFallback: true}
	}
	if !raw.IsFinite() || !raw.Within(0, PlausibleMax(c)) {
		lg.Warn("insets: implausible safe area reading, using fallback",
			"top", raw.Top, "right", raw.Right, "bottom", raw.Bottom, "left", raw.Left,
			"max", PlausibleMax(c), "class", c)
		return Resolved{Floats: Fallback(c), UsingFallback: true}
	}
	bound := HardBound(c, math32.Abs(screenMax))
	return Resolved{Floats: raw.Clamp(0, bound)}
}
