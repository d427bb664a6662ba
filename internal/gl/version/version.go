// Package version models the capability level a GL driver reports.
//
// A Level is a major.minor pair ordered component-wise, so 1.10 sorts after
// 1.9. The zero Level means nothing has been negotiated yet.
package version

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// ErrInvalid is returned when a level or driver version string cannot be parsed.
var ErrInvalid = errors.New("invalid version")

// Level is a driver capability level such as 3.3 or 4.6.
type Level struct {
	Major uint16
	Minor uint16
}

// New returns the level major.minor.
func New(major, minor uint16) Level {
	return Level{Major: major, Minor: minor}
}

// Zero reports whether l is the unset level.
func (l Level) Zero() bool {
	return l == Level{}
}

// Compare returns -1, 0 or +1 when l is below, equal to or above o.
func (l Level) Compare(o Level) int {
	switch {
	case l.Major < o.Major:
		return -1
	case l.Major > o.Major:
		return 1
	case l.Minor < o.Minor:
		return -1
	case l.Minor > o.Minor:
		return 1
	}
	return 0
}

func (l Level) Less(o Level) bool { return l.Compare(o) < 0 }
func (l Level) AtLeast(o Level) bool { return l.Compare(o) >= 0 }

// Max returns the higher of l and o.
func (l Level) Max(o Level) Level {
	if l.Less(o) {
		return o
	}
	return l
}

// Pack encodes l into a single integer that preserves ordering. It is used
// to publish levels through an atomic.Uint32.
func (l Level) Pack() uint32 {
	return uint32(l.Major)<<16 | uint32(l.Minor)
}

// Unpack is the inverse of Pack.
func Unpack(v uint32) Level {
	return Level{Major: uint16(v >> 16), Minor: uint16(v)}
}

func (l Level) String() string {
	return strconv.Itoa(int(l.Major)) + "." + strconv.Itoa(int(l.Minor))
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Level) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*l = v
	return nil
}

// Parse parses a "major.minor" level. A bare major ("4") is accepted as
// major.0; a trailing release component ("4.6.0") is ignored.
func Parse(s string) (Level, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Level{}, fmt.Errorf("%w: empty level", ErrInvalid)
	}

	// semver wants the canonical "vMAJOR[.MINOR[.PATCH]]" spelling. It does
	// the numeric validation so leading zeros and stray characters are
	// rejected the same way everywhere.
	v := "v" + s
	if !semver.IsValid(v) || semver.Prerelease(v) != "" || semver.Build(v) != "" {
		return Level{}, fmt.Errorf("%w: %q", ErrInvalid, s)
	}

	parts := strings.SplitN(strings.TrimPrefix(semver.MajorMinor(v), "v"), ".", 2)
	major, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return Level{}, fmt.Errorf("%w: major in %q: %v", ErrInvalid, s, err)
	}
	minor, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return Level{}, fmt.Errorf("%w: minor in %q: %v", ErrInvalid, s, err)
	}
	return Level{Major: uint16(major), Minor: uint16(minor)}, nil
}

// MustParse is like Parse but panics on error. Intended for static tables.
func MustParse(s string) Level {
	l, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return l
}
