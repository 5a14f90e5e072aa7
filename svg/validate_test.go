// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAttribute(t *testing.T) {
	good := [][2]string{
		{"x", "10"},
		{"x", "-3.5"},
		{"y", "1e3"},
		{"width", "100"},
		{"width", "50%"},
		{"height", "2.5em"},
		{"r", "0.5px"},
		{"opacity", "0.7"},
		{"fill", "red"},
		{"fill", "#ff0000"},
		{"fill", "none"},
		{"stroke", "rgb(1,2,3)"},
		{"stroke", "url(#grad)"},
		{"stroke-linecap", "round"},
		{"fill-rule", "evenodd"},
		{"style", "fill:red;stroke-width:2"},
		{"data-custom", "anything goes"},
	}
	for _, c := range good {
		assert.NoError(t, ValidateAttribute(c[0], c[1]), "%s=%s", c[0], c[1])
	}

	bad := [][2]string{
		{"x", "abc"},
		{"x", "10px 20px"},
		{"width", "-5"},
		{"opacity", "1.5"},
		{"opacity", "dark"},
		{"fill", "notacolor"},
		{"stroke-linecap", "pointy"},
		{"fill-rule", "zigzag"},
		{"style", "fill:notacolor"},
	}
	for _, c := range bad {
		err := ValidateAttribute(c[0], c[1])
		assert.Error(t, err, "%s=%s", c[0], c[1])
		if err != nil {
			_, ok := err.(ValidationError)
			assert.True(t, ok)
		}
	}
}
