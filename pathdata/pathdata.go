// Package pathdata tokenizes the SVG path data mini-language into typed commands.
package pathdata

import (
	"errors"
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

var (
	// ErrBadNumber is returned when a coordinate cannot be parsed as a number.
	ErrBadNumber = errors.New("pathdata: bad number")

	// ErrBadCommand is returned when a command letter is not part of the path grammar.
	ErrBadCommand = errors.New("pathdata: bad command")
)

// Op is an SVG path command.
type Op uint8

const (
	MoveTo Op = iota
	LineTo
	HorizontalTo
	VerticalTo
	CurveTo
	SmoothCurveTo
	QuadTo
	SmoothQuadTo
	ArcTo
	Close
)

func (op Op) String() string {
	switch op {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case HorizontalTo:
		return "HorizontalTo"
	case VerticalTo:
		return "VerticalTo"
	case CurveTo:
		return "CurveTo"
	case SmoothCurveTo:
		return "SmoothCurveTo"
	case QuadTo:
		return "QuadTo"
	case SmoothQuadTo:
		return "SmoothQuadTo"
	case ArcTo:
		return "ArcTo"
	case Close:
		return "Close"
	}
	return "Invalid"
}

// Segment is a single path command with its coordinate payload. Coordinates are as written in the path data, ie. not yet resolved against the current position when Abs is false.
type Segment struct {
	Op  Op
	Abs bool

	X1, Y1 float64 // first control point of CurveTo and QuadTo
	X2, Y2 float64 // second control point of CurveTo and SmoothCurveTo
	X, Y   float64 // end point

	RX, RY   float64 // arc radii
	Rotation float64
	LargeArc bool
	Sweep    bool
}

// Scanner reads path data commands one at a time.
type Scanner struct {
	d       []byte
	i       int
	seg     Segment
	hasPrev bool
	err     error
}

// NewScanner returns a scanner over the given path data.
func NewScanner(d string) *Scanner {
	return &Scanner{d: []byte(d)}
}

// Scan advances to the next command, returning false at the end of the path data or on error.
func (s *Scanner) Scan() bool {
	if s.err != nil {
		return false
	}
	s.i += skipCommaWhitespace(s.d[s.i:])
	if len(s.d) <= s.i {
		return false
	}

	op, abs := s.seg.Op, s.seg.Abs
	if c := s.d[s.i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
		var ok bool
		if op, abs, ok = command(c); !ok {
			s.err = fmt.Errorf("%w %q at position %d", ErrBadCommand, c, s.i)
			return false
		}
		s.i++
	} else if !s.hasPrev || op == Close {
		s.err = fmt.Errorf("%w %q at position %d", ErrBadCommand, c, s.i)
		return false
	} else if op == MoveTo {
		// an implicit command after a move continues as a line
		op = LineTo
	}
	s.hasPrev = true

	s.seg = Segment{Op: op, Abs: abs}
	switch op {
	case MoveTo, LineTo, SmoothQuadTo:
		s.seg.X, s.seg.Y = s.number(), s.number()
	case HorizontalTo:
		s.seg.X = s.number()
	case VerticalTo:
		s.seg.Y = s.number()
	case CurveTo:
		s.seg.X1, s.seg.Y1 = s.number(), s.number()
		s.seg.X2, s.seg.Y2 = s.number(), s.number()
		s.seg.X, s.seg.Y = s.number(), s.number()
	case SmoothCurveTo:
		s.seg.X2, s.seg.Y2 = s.number(), s.number()
		s.seg.X, s.seg.Y = s.number(), s.number()
	case QuadTo:
		s.seg.X1, s.seg.Y1 = s.number(), s.number()
		s.seg.X, s.seg.Y = s.number(), s.number()
	case ArcTo:
		s.seg.RX, s.seg.RY = s.number(), s.number()
		s.seg.Rotation = s.number()
		s.seg.LargeArc, s.seg.Sweep = s.flag(), s.flag()
		s.seg.X, s.seg.Y = s.number(), s.number()
	}
	return s.err == nil
}

// Segment returns the last scanned command.
func (s *Scanner) Segment() Segment {
	return s.seg
}

// Err returns the first error encountered while scanning.
func (s *Scanner) Err() error {
	return s.err
}

func (s *Scanner) number() float64 {
	if s.err != nil {
		return 0.0
	}
	s.i += skipCommaWhitespace(s.d[s.i:])
	f, n := strconv.ParseFloat(s.d[s.i:])
	if n == 0 {
		s.err = fmt.Errorf("%w at position %d", ErrBadNumber, s.i)
		return 0.0
	}
	s.i += n
	return f
}

// flag reads an arc flag, a bare 0 or 1 that may run into the next number.
func (s *Scanner) flag() bool {
	if s.err != nil {
		return false
	}
	s.i += skipCommaWhitespace(s.d[s.i:])
	if s.i < len(s.d) && (s.d[s.i] == '0' || s.d[s.i] == '1') {
		s.i++
		return s.d[s.i-1] == '1'
	}
	s.err = fmt.Errorf("%w at position %d", ErrBadNumber, s.i)
	return false
}

func command(c byte) (Op, bool, bool) {
	abs := c < 'a'
	switch c | 0x20 {
	case 'm':
		return MoveTo, abs, true
	case 'l':
		return LineTo, abs, true
	case 'h':
		return HorizontalTo, abs, true
	case 'v':
		return VerticalTo, abs, true
	case 'c':
		return CurveTo, abs, true
	case 's':
		return SmoothCurveTo, abs, true
	case 'q':
		return QuadTo, abs, true
	case 't':
		return SmoothQuadTo, abs, true
	case 'a':
		return ArcTo, abs, true
	case 'z':
		return Close, abs, true
	}
	return 0, false, false
}

func skipCommaWhitespace(d []byte) int {
	i := 0
	for i < len(d) && (d[i] == ' ' || d[i] == ',' || d[i] == '\n' || d[i] == '\r' || d[i] == '\t') {
		i++
	}
	return i
}

// ParsePoints parses the points attribute of polygon and polyline elements into flat x,y pairs. It stops at the first token that is not a number.
func ParsePoints(v string) []float64 {
	d := []byte(v)
	points := []float64{}
	i := 0
	for {
		i += skipCommaWhitespace(d[i:])
		x, n := strconv.ParseFloat(d[i:])
		if n == 0 {
			break
		}
		i += n
		i += skipCommaWhitespace(d[i:])
		y, n := strconv.ParseFloat(d[i:])
		if n == 0 {
			break
		}
		i += n
		points = append(points, x, y)
	}
	return points
}
