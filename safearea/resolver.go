// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package safearea resolves validated safe-area snapshots from the
// platform sensor and derives the navigation-bar-aware layout metrics
// consumed by screen components.
package safearea

import (
	"log/slog"

	"github.com/chewxy/math32"

	"github.com/floralens/safearea/device"
	"github.com/floralens/safearea/insets"
	"github.com/floralens/safearea/platform"
)

// GestureNavMaxInset is the largest bottom inset produced by a swipe
// home indicator. Larger bottom insets indicate a persistent button
// navigation bar.
const GestureNavMaxInset = 34

// Snapshot is one synchronous evaluation of the safe area. It is a
// value type owned by the evaluation that produced it; consumers never
// mutate it.
type Snapshot struct {

	// Insets are the validated, bounded safe area insets.
	Insets insets.Resolved

	// Device is the compatibility info the insets were validated against.
	Device device.Info

	// HasBottomInset reports a non-zero bottom inset.
	HasBottomInset bool

	// IsGestureNavigation reports a small home-indicator bottom inset,
	// as opposed to a large button-bar inset or none at all.
	IsGestureNavigation bool

	// NavigationBarHeight is the bottom inset when present, else 0.
	NavigationBarHeight float32
}

// Resolver produces safe-area snapshots from a platform driver. It
// performs no I/O beyond the synchronous sensor call and keeps no state
// between evaluations.
type Resolver struct {

	// App is the platform driver supplying dimensions and raw insets.
	App platform.App

	// Logger receives diagnostics for degraded readings; nil means
	// [slog.Default].
	Logger *slog.Logger
}

// NewResolver returns a resolver on the given platform driver.
func NewResolver(app platform.App, lg *slog.Logger) *Resolver {
	return &Resolver{App: app, Logger: lg}
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return slog.Default()
}

// Resolve fetches the raw insets and current dimensions and produces
// one snapshot. Identical platform state yields identical snapshots.
// Every failure degrades to the device-class fallback; Resolve never
// returns an error.
func (r *Resolver) Resolve() Snapshot {
	w, h := r.App.ScreenSize()
	info := device.Classify(w, h, r.App.Platform(), r.App.PlatformVersion())
	raw, err := r.App.SafeAreaInsets()
	res := insets.Validate(raw, err, info, math32.Max(w, h), r.logger())
	return NewSnapshot(res, info)
}

// NewSnapshot derives the navigation booleans and bar height from
// already-resolved insets. It is the pure core of [Resolver.Resolve].
func NewSnapshot(res insets.Resolved, info device.Info) Snapshot {
	hasBottom := res.Bottom > 0
	navBar := float32(0)
	if hasBottom {
		navBar = res.Bottom
	}
	return Snapshot{
		Insets:              res,
		Device:              info,
		HasBottomInset:      hasBottom,
		IsGestureNavigation: hasBottom && res.Bottom <= GestureNavMaxInset,
		NavigationBarHeight: navBar,
	}
}
