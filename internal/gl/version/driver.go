package version

import (
	"fmt"
	"strings"
)

// Profile distinguishes desktop GL from GL ES driver reports.
type Profile int

const (
	Desktop Profile = iota
	ES
)

func (p Profile) String() string {
	if p == ES {
		return "es"
	}
	return "desktop"
}

// Driver is a parsed GL_VERSION string.
type Driver struct {
	Level   Level
	Profile Profile
	// Vendor is the free-form vendor specific information following the
	// version number, e.g. "NVIDIA 535.54.03" or "(Core Profile) Mesa 23.2.1".
	Vendor string
}

var esPrefixes = []string{
	"OpenGL ES-CM ",
	"OpenGL ES-CL ",
	"OpenGL ES ",
}

// ParseDriver parses the string returned by glGetString(GL_VERSION).
//
// Desktop drivers report "<major>.<minor>[.<release>] [vendor info]"; GL ES
// drivers prefix it with "OpenGL ES ".
func ParseDriver(s string) (Driver, error) {
	var d Driver
	rest := strings.TrimSpace(s)
	for _, prefix := range esPrefixes {
		if strings.HasPrefix(rest, prefix) {
			d.Profile = ES
			rest = strings.TrimSpace(rest[len(prefix):])
			break
		}
	}

	token, vendor, _ := strings.Cut(rest, " ")
	if token == "" {
		return Driver{}, fmt.Errorf("%w: driver version %q", ErrInvalid, s)
	}

	lvl, err := Parse(token)
	if err != nil {
		return Driver{}, fmt.Errorf("driver version %q: %w", s, err)
	}
	d.Level = lvl
	d.Vendor = strings.TrimSpace(vendor)
	return d, nil
}
