// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package device

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Platforms is the type of platform reporting screen and inset values.
type Platforms int32

const (
	// IOS is an Apple iOS or iPadOS phone or iPad.
	IOS Platforms = iota

	// Android is an Android phone or tablet.
	Android

	// Web is a mobile web browser.
	Web

	// Offscreen is the deterministic driver used for testing and tooling.
	Offscreen
)

func (p Platforms) String() string {
	switch p {
	case IOS:
		return "ios"
	case Android:
		return "android"
	case Web:
		return "web"
	case Offscreen:
		return "offscreen"
	}
	return fmt.Sprintf("Platforms(%d)", int32(p))
}

// IsVersioned returns whether the platform reports API levels that are
// comparable across devices (Android API levels). Version-based legacy
// detection only applies to such platforms.
func (p Platforms) IsVersioned() bool {
	return p == Android
}

// PlatformFromString returns the platform named by s (case-insensitive).
func PlatformFromString(s string) (Platforms, error) {
	switch strings.ToLower(s) {
	case "ios":
		return IOS, nil
	case "android":
		return Android, nil
	case "web":
		return Web, nil
	case "offscreen":
		return Offscreen, nil
	}
	return IOS, fmt.Errorf("device: unknown platform %q", s)
}

// ParseVersion extracts the major version from a dotted platform
// version string such as "17.2.1" (iOS) or "13" (Android release
// number). Malformed input yields 0, which classifies conservatively.
func ParseVersion(s string) int {
	v, err := semver.NewVersion(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return int(v.Major())
}
