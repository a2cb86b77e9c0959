package geosvg

import "errors"

var (
	// ErrInvalidSVG is returned when the input is structurally invalid, such as path data without subpaths, an empty points attribute, or a rect element with a missing or negative dimension.
	ErrInvalidSVG = errors.New("geosvg: invalid SVG")

	// ErrUnsupportedElement is returned when the input contains no supported shape element.
	ErrUnsupportedElement = errors.New("geosvg: unsupported SVG element")

	// ErrCollection is returned when a single geometry is requested but the input resolves to several.
	ErrCollection = errors.New("geosvg: geometry is a collection")
)
