// Package resolution holds the fixed table of named output resolutions and
// parses user-supplied targets (a preset name or explicit WxH dimensions).
package resolution

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for target resolution failures.
var (
	ErrUnknownResolution = errors.New("unknown resolution")
	ErrInvalidDimensions = errors.New("invalid dimensions")
)

// Dimensions is a width/height pair in pixels.
type Dimensions struct {
	Width  int
	Height int
}

// String returns "WxH".
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

type preset struct {
	name string
	dims Dimensions
}

// presets is ordered from largest to smallest; Names and error messages
// follow this order.
var presets = []preset{
	{"1080p", Dimensions{1920, 1080}},
	{"720p", Dimensions{1280, 720}},
	{"480p", Dimensions{854, 480}},
	{"360p", Dimensions{640, 360}},
	{"240p", Dimensions{426, 240}},
}

var byName = func() map[string]Dimensions {
	m := make(map[string]Dimensions, len(presets))
	for _, p := range presets {
		m[p.name] = p.dims
	}
	return m
}()

// UnknownError is returned when a target names no preset in the table.
type UnknownError struct {
	Name  string
	Valid []string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown resolution: %s (use one of %s)", e.Name, strings.Join(e.Valid, ", "))
}

// Is lets callers match with errors.Is(err, ErrUnknownResolution).
func (e *UnknownError) Is(target error) bool {
	return target == ErrUnknownResolution
}

// Names returns the preset names in table order.
func Names() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.name
	}
	return names
}

// Lookup returns the dimensions for a preset name.
func Lookup(name string) (Dimensions, error) {
	d, ok := byName[name]
	if !ok {
		return Dimensions{}, &UnknownError{Name: name, Valid: Names()}
	}
	return d, nil
}

// Target is either a named preset or explicit dimensions.
type Target struct {
	Name string     // Preset name; empty when Size is explicit.
	Size Dimensions // Explicit dimensions; ignored when Name is set.
}

// Named returns a Target for a preset name. The name is not checked until
// Resolve.
func Named(name string) Target { return Target{Name: name} }

// Explicit returns a Target with fixed dimensions.
func Explicit(width, height int) Target {
	return Target{Size: Dimensions{Width: width, Height: height}}
}

// Label is the string used in derived output filenames.
func (t Target) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.Size.String()
}

// Resolve returns the concrete dimensions for t.
func (t Target) Resolve() (Dimensions, error) {
	if t.Name != "" {
		return Lookup(t.Name)
	}
	if !t.Size.Valid() {
		return Dimensions{}, fmt.Errorf("%w: %s (width and height must be positive)", ErrInvalidDimensions, t.Size)
	}
	return t.Size, nil
}

// Parse accepts a preset name ("720p") or explicit dimensions ("1280x720").
// Anything that is neither yields an *UnknownError.
func Parse(s string) (Target, error) {
	s = strings.TrimSpace(s)
	if _, ok := byName[s]; ok {
		return Named(s), nil
	}

	w, h, found := strings.Cut(strings.ToLower(s), "x")
	if !found {
		return Target{}, &UnknownError{Name: s, Valid: Names()}
	}
	width, errW := strconv.Atoi(w)
	height, errH := strconv.Atoi(h)
	if errW != nil || errH != nil {
		return Target{}, &UnknownError{Name: s, Valid: Names()}
	}
	t := Target{Size: Dimensions{Width: width, Height: height}}
	if !t.Size.Valid() {
		return Target{}, fmt.Errorf("%w: %s (width and height must be positive)", ErrInvalidDimensions, s)
	}
	return t, nil
}
