// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package safearea

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/floralens/safearea/base/nums"
	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/platform"
)

// Tab bar padding constants by device class.
const (
	tabBarBaseTablet   = 12
	tabBarBaseLegacy   = 6
	tabBarBaseStandard = 8

	// defaults used for the safe-area contribution when there is no
	// bottom inset
	tabBarSafeTablet   = 20
	tabBarSafeLegacy   = 12
	tabBarSafeStandard = 16

	tabBarPadMinLegacy = 6
	tabBarPadMin       = 8
	tabBarPadMaxTablet = 120
	tabBarPadMax       = 100
)

// Dynamic spacing constants by device class.
const (
	spacingDefaultTablet = 20
	spacingDefault       = 16

	spacingMinLegacy = 4
	spacingMaxTablet = 300
	spacingMax       = 200
)

// Metrics derives tab-bar padding and scaled spacing from one
// snapshot. The two calculations are throttled independently against
// the injected clock; within the throttle window each returns its own
// fixed filler value.
type Metrics struct {

	// Snapshot is the resolved safe area the metrics derive from.
	Snapshot Snapshot

	// Clock is the shared monotonic clock; nil means [platform.SystemClock].
	Clock platform.Clock

	// Logger receives diagnostics for invalid caller input; nil means
	// [slog.Default].
	Logger *slog.Logger

	padding throttle
	spacing throttle
}

// NewMetrics returns metrics for the given snapshot using the given
// clock.
func NewMetrics(snap Snapshot, clock platform.Clock, lg *slog.Logger) *Metrics {
	return &Metrics{Snapshot: snap, Clock: clock, Logger: lg}
}

func (m *Metrics) clock() platform.Clock {
	if m.Clock != nil {
		return m.Clock
	}
	return platform.SystemClock{}
}

func (m *Metrics) logger() *slog.Logger {
	if m.Logger != nil {
		return m.Logger
	}
	return slog.Default()
}

// TabBarPaddingFallback is the fixed padding substituted when the
// calculation cannot run for the given class, and the filler returned
// inside the throttle window.
func TabBarPaddingFallback(c device.Class) float32 {
	switch c {
	case device.Tablet:
		return 32
	case device.Legacy:
		return 18
	}
	return 24
}

// SpacingDefault is the spacing substituted for invalid caller input
// for the given class.
func SpacingDefault(c device.Class) float32 {
	if c == device.Tablet {
		return spacingDefaultTablet
	}
	return spacingDefault
}

// TabBarPadding returns the bottom padding for the tab bar: a class
// base plus the bottom inset (or a class default when there is none),
// clamped into the class range. Any internal failure yields the class
// fallback instead.
func (m *Metrics) TabBarPadding() (p float32) {
	c := m.Snapshot.Device.Class()
	fallback := TabBarPaddingFallback(c)
	defer func() {
		if r := recover(); r != nil {
			m.logger().Error("safearea: tab bar padding calculation failed", "err", r)
			p = fallback
		}
	}()
	if !m.padding.ready(m.clock().Now()) {
		return fallback
	}

	var base, safe, minPad, maxPad float32
	switch c {
	case device.Tablet:
		base, safe = tabBarBaseTablet, tabBarSafeTablet
		minPad, maxPad = tabBarPadMin, tabBarPadMaxTablet
	case device.Legacy:
		base, safe = tabBarBaseLegacy, tabBarSafeLegacy
		minPad, maxPad = tabBarPadMinLegacy, tabBarPadMax
	default:
		base, safe = tabBarBaseStandard, tabBarSafeStandard
		minPad, maxPad = tabBarPadMin, tabBarPadMax
	}
	if m.Snapshot.HasBottomInset {
		safe = m.Snapshot.Insets.Bottom
	}
	return nums.Clamp(base+safe, minPad, maxPad)
}

// DynamicSpacing scales the given base spacing by a class- and
// navigation-dependent multiplier, rounded and clamped into the class
// range. Non-finite or negative input is substituted with the class
// default and logged; the invalid value is never used. Any internal
// failure yields at least the class default.
func (m *Metrics) DynamicSpacing(base float32) (sp float32) {
	c := m.Snapshot.Device.Class()
	def := SpacingDefault(c)
	if math32.IsNaN(base) || math32.IsInf(base, 0) || base < 0 {
		m.logger().Warn("safearea: invalid base spacing, using class default",
			"base", base, "default", def, "class", c)
		base = def
	}
	defer func() {
		if r := recover(); r != nil {
			m.logger().Error("safearea: dynamic spacing calculation failed", "err", r)
			sp = math32.Max(def, base)
		}
	}()
	if !m.spacing.ready(m.clock().Now()) {
		return math32.Round(base)
	}

	var mult float32
	switch {
	case c == device.Tablet && m.Snapshot.HasBottomInset:
		mult = 1.3
	case c == device.Tablet:
		mult = 1.1
	case c == device.Legacy && m.Snapshot.HasBottomInset:
		mult = 1.1
	case c == device.Legacy:
		mult = 0.9
	case m.Snapshot.HasBottomInset:
		mult = 1.2
	default:
		mult = 1.0
	}
	var minSp, maxSp float32 = 0, spacingMax
	if c == device.Legacy {
		minSp = spacingMinLegacy
	}
	if c == device.Tablet {
		maxSp = spacingMaxTablet
	}
	return nums.Clamp(math32.Round(base*mult), minSp, maxSp)
}
