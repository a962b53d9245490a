// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package device classifies screen hardware into a compatibility
// descriptor that drives safe-area validation and layout fallbacks.
// Classification is pure arithmetic over the reported screen dimensions
// and platform version; it is recomputed whenever dimensions change and
// is never persisted.
package device

import "github.com/chewxy/math32"

const (
	// tabletAspectMax is the aspect ratio below which a screen is
	// considered a tablet regardless of its size.
	tabletAspectMax = 1.6

	// tabletShortSideMin is the short-side length (in layout points)
	// above which a screen is considered a tablet regardless of aspect.
	tabletShortSideMin = 600

	// notchAspectMin is the aspect ratio above which the screen is
	// assumed to carry a notch or camera cutout.
	notchAspectMin = 2.0

	// legacyShortSideMax marks small notchless screens as legacy.
	legacyShortSideMax = 400

	// legacyVersionMax is the highest API level (exclusive) treated as
	// legacy on platforms with comparable version numbers.
	legacyVersionMax = 28
)

// Info describes the compatibility characteristics of the current
// screen. It is a plain value; consumers copy it freely.
type Info struct {

	// Platform is the reporting platform.
	Platform Platforms

	// PlatformVersion is the platform API level (0 if unknown).
	PlatformVersion int

	// AspectRatio is the long side divided by the short side (≥ 1).
	AspectRatio float32

	// IsTablet indicates a tablet-class screen.
	IsTablet bool

	// HasNotch indicates a probable notch or camera cutout.
	HasNotch bool

	// IsLegacy indicates an old platform version or a small
	// notchless screen.
	IsLegacy bool
}

// Class is the device class used to select fallback insets and
// layout constants.
type Class int32

const (
	// Modern is a current-generation phone.
	Modern Class = iota

	// Legacy is an old or small phone.
	Legacy

	// Tablet is a tablet-class screen.
	Tablet
)

func (c Class) String() string {
	switch c {
	case Legacy:
		return "legacy"
	case Tablet:
		return "tablet"
	}
	return "modern"
}

// Class returns the device class for the info, with tablet taking
// precedence over legacy.
func (n Info) Class() Class {
	switch {
	case n.IsTablet:
		return Tablet
	case n.IsLegacy:
		return Legacy
	}
	return Modern
}

// Classify computes the compatibility info for a screen of the given
// dimensions (in layout points) on the given platform. It is
// deterministic and has no side effects. Non-positive or non-finite
// dimensions are treated as 1 so that the result is always well formed.
func Classify(width, height float32, p Platforms, version int) Info {
	long := sanitizeDim(math32.Max(width, height))
	short := sanitizeDim(math32.Min(width, height))
	aspect := long / short

	tablet := aspect < tabletAspectMax || short > tabletShortSideMin
	notch := aspect > notchAspectMin
	legacy := (p.IsVersioned() && version < legacyVersionMax) ||
		(!notch && short < legacyShortSideMax)

	return Info{
		Platform:        p,
		PlatformVersion: version,
		AspectRatio:     aspect,
		IsTablet:        tablet,
		HasNotch:        notch,
		IsLegacy:        legacy,
	}
}

func sanitizeDim(d float32) float32 {
	if math32.IsNaN(d) || math32.IsInf(d, 0) || d <= 0 {
		return 1
	}
	return d
}
