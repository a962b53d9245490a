// Copyright (c) 2025, Floralens. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nums_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/floralens/safearea/base/nums"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5, nums.Clamp(5, 0, 10))
	assert.Equal(t, 0, nums.Clamp(-3, 0, 10))
	assert.Equal(t, 10, nums.Clamp(42, 0, 10))
	assert.Equal(t, float32(1.5), nums.Clamp(float32(1.5), 1.0, 2.0))
}
