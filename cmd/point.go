package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/philipparndt/hyperdisk/pkg/geometry"
)

var (
	errPointFormat  = errors.New("point must be written as x,y")
	errOutsideDisk  = errors.New("point lies outside the open unit disk")
	errMissingPoint = errors.New("required point not set")
)

// parsePoint parses "x,y" into a disk point
func parsePoint(s string) (geometry.Vector2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geometry.Vector2{}, fmt.Errorf("%w: %q", errPointFormat, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("%w: %q: %w", errPointFormat, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geometry.Vector2{}, fmt.Errorf("%w: %q: %w", errPointFormat, s, err)
	}
	p := geometry.NewVector2(x, y)
	if !p.IsFinite() || p.LengthSquared() >= 1 {
		return geometry.Vector2{}, fmt.Errorf("%w: %q", errOutsideDisk, s)
	}
	return p, nil
}

// pointValue is a pflag.Value holding a disk point
type pointValue struct {
	p   geometry.Vector2
	set bool
}

func (v *pointValue) String() string {
	if !v.set {
		return ""
	}
	return fmt.Sprintf("%g,%g", v.p.X, v.p.Y)
}

func (v *pointValue) Set(s string) error {
	p, err := parsePoint(s)
	if err != nil {
		return err
	}
	v.p, v.set = p, true
	return nil
}

func (v *pointValue) Type() string { return "x,y" }

// get returns the point or an error naming the missing flag
func (v *pointValue) get(flag string) (geometry.Vector2, error) {
	if !v.set {
		return geometry.Vector2{}, fmt.Errorf("%w: --%s", errMissingPoint, flag)
	}
	return v.p, nil
}

// optional returns the point, or nil when the flag was not given
func (v *pointValue) optional() *geometry.Vector2 {
	if !v.set {
		return nil
	}
	p := v.p
	return &p
}

// formatPoint formats a point for display
func formatPoint(p geometry.Vector2) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
