package dispatch

import (
	"errors"
	"fmt"

	"github.com/tinyrange/glbind/internal/gl/abi"
	"github.com/tinyrange/glbind/internal/gl/version"
)

// Sentinel errors. Fatal bind errors match ErrConfiguration or
// ErrInconsistent; call-time errors match ErrUnsupported, ErrNotFound,
// ErrNotBound or ErrArgument.
var (
	ErrConfiguration = errors.New("dispatch misconfigured")
	ErrFloorNotMet   = errors.New("minimum capability not met")
	ErrInconsistent  = errors.New("driver inconsistent with reported capability")
	ErrUnsupported   = errors.New("unsupported operation")
	ErrNotFound      = errors.New("entry point not in catalog")
	ErrNotBound      = errors.New("dispatch table not bound")
	ErrArgument      = abi.ErrArgument

	ErrNoResolver error = &configError{msg: "no resolver"}
	ErrNoLinker   error = &configError{msg: "no linker"}
	ErrNoCatalog  error = &configError{msg: "no catalog"}
)

type configError struct {
	msg string
}

func (e *configError) Error() string { return e.msg }

func (e *configError) Is(target error) bool {
	return target == ErrConfiguration
}

// FloorError is returned by Bind when the reported level is below the
// catalog's lowest tier.
type FloorError struct {
	Level version.Level
	Floor version.Level
}

func (e *FloorError) Error() string {
	return fmt.Sprintf("capability %s is below the minimum %s", e.Level, e.Floor)
}

func (e *FloorError) Is(target error) bool {
	return target == ErrFloorNotMet || target == ErrConfiguration
}

// InconsistencyError reports an entry in a satisfied tier that the
// resolver could not find.
type InconsistencyError struct {
	Name       string
	Symbol     string
	Tier       version.Level
	Negotiated version.Level
}

func (e *InconsistencyError) Error() string {
	return fmt.Sprintf("%s (tier %s) not exported by a driver reporting %s", e.Symbol, e.Tier, e.Negotiated)
}

func (e *InconsistencyError) Is(target error) bool {
	return target == ErrInconsistent
}

// LinkError reports a resolved symbol the linker could not make callable.
type LinkError struct {
	Symbol string
	Addr   uintptr
	Err    error
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s at %#x: %v", e.Symbol, e.Addr, e.Err)
}

func (e *LinkError) Is(target error) bool {
	return target == ErrInconsistent
}

func (e *LinkError) Unwrap() error { return e.Err }

// UnsupportedError is returned by calls to entries whose tier is above the
// negotiated level.
type UnsupportedError struct {
	Name       string
	Required   version.Level
	Negotiated version.Level
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s requires %s, negotiated %s", e.Name, e.Required, e.Negotiated)
}

func (e *UnsupportedError) Is(target error) bool {
	return target == ErrUnsupported
}

// NotFoundError is returned for names absent from the catalog.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, ErrNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
