// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package svg

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ValidationError reports a proposed attribute value failing the numeric,
// length, color, or enum rules for that attribute. It is surfaced at the
// field and never touches the document.
type ValidationError struct {
	Attr    string
	Value   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid value %q for attribute %q: %s", e.Value, e.Attr, e.Message)
}

// numberAttrs are attributes that must be a plain number.
var numberAttrs = map[string]bool{
	"x": true, "y": true, "x1": true, "y1": true, "x2": true, "y2": true,
	"cx": true, "cy": true,
}

// lengthAttrs are attributes that must be a non-negative number with an
// optional unit suffix.
var lengthAttrs = map[string]bool{
	"width": true, "height": true, "r": true, "rx": true, "ry": true,
	"stroke-width": true, "font-size": true,
}

// unitAttrs are attributes that must be a number in the unit interval.
var unitAttrs = map[string]bool{
	"opacity": true, "fill-opacity": true, "stroke-opacity": true, "stop-opacity": true,
}

// colorAttrs are attributes carrying a paint or color value.
var colorAttrs = map[string]bool{
	"fill": true, "stroke": true, "stop-color": true, "color": true,
}

// enumAttrs are attributes restricted to a fixed keyword set.
var enumAttrs = map[string][]string{
	"stroke-linecap":  {"butt", "round", "square"},
	"stroke-linejoin": {"miter", "round", "bevel", "arcs", "miter-clip"},
	"fill-rule":       {"nonzero", "evenodd"},
	"visibility":      {"visible", "hidden", "collapse"},
}

var (
	numberRe = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
	lengthRe = regexp.MustCompile(`^\+?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?(px|pt|pc|mm|cm|in|em|ex|%)?$`)
	hexRe    = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcRe   = regexp.MustCompile(`^(rgb|rgba|hsl|hsla)\([^)]*\)$`)
	urlRe    = regexp.MustCompile(`^url\(#[^)]+\)$`)
)

// namedColors is the keyword subset accepted for color values.
var namedColors = map[string]bool{
	"black": true, "silver": true, "gray": true, "grey": true, "white": true,
	"maroon": true, "red": true, "purple": true, "fuchsia": true, "green": true,
	"lime": true, "olive": true, "yellow": true, "navy": true, "blue": true,
	"teal": true, "aqua": true, "orange": true, "pink": true, "brown": true,
	"gold": true, "cyan": true, "magenta": true, "violet": true, "indigo": true,
	"lightgray": true, "lightgrey": true, "darkgray": true, "darkgrey": true,
	"lightblue": true, "darkblue": true, "lightgreen": true, "darkgreen": true,
	"darkred": true, "transparent": true, "currentcolor": true,
}

// ValidateAttribute checks a proposed attribute value against the rules
// for that attribute name, returning a [ValidationError] on failure.
// Attributes without rules are accepted. The style attribute is parsed as
// CSS declarations and each known declaration validated individually.
func ValidateAttribute(name, value string) error {
	value = strings.TrimSpace(value)
	switch {
	case name == "style":
		return validateStyle(value)
	case numberAttrs[name]:
		if !numberRe.MatchString(value) {
			return ValidationError{name, value, "must be a number"}
		}
	case lengthAttrs[name]:
		if !lengthRe.MatchString(value) {
			return ValidationError{name, value, "must be a non-negative length"}
		}
	case unitAttrs[name]:
		f, err := ParseFloat32(value)
		if err != nil || f < 0 || f > 1 {
			return ValidationError{name, value, "must be a number between 0 and 1"}
		}
	case colorAttrs[name]:
		if !validColor(value) {
			return ValidationError{name, value, "must be a color, none, or url(#id) reference"}
		}
	default:
		if allowed, has := enumAttrs[name]; has {
			for _, kw := range allowed {
				if value == kw {
					return nil
				}
			}
			return ValidationError{name, value, "must be one of " + strings.Join(allowed, ", ")}
		}
	}
	return nil
}

func validColor(value string) bool {
	v := strings.ToLower(value)
	switch {
	case v == "none" || v == "inherit":
		return true
	case namedColors[v]:
		return true
	case hexRe.MatchString(v):
		return true
	case funcRe.MatchString(v):
		return true
	case urlRe.MatchString(v):
		return true
	}
	return false
}

// validateStyle parses the css declaration list and validates each
// declaration whose property has attribute rules.
func validateStyle(value string) error {
	if value == "" {
		return nil
	}
	decls, err := parser.ParseDeclarations(value)
	if err != nil {
		return ValidationError{"style", value, "malformed css declarations"}
	}
	for _, d := range decls {
		if err := ValidateAttribute(d.Property, d.Value); err != nil {
			var ve ValidationError
			if e, ok := err.(ValidationError); ok {
				ve = e
			}
			return ValidationError{"style", value, fmt.Sprintf("%s: %s", d.Property, ve.Message)}
		}
	}
	return nil
}
