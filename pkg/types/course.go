package types

import (
	"fmt"
	"strings"
)

// Course is the menu category a dish belongs to. The zero value means no
// course has been selected and is never valid on a stored item.
type Course uint8

// Courses, in display order.
const (
	CourseNone Course = iota
	CourseStarters
	CourseMains
	CourseDessert
)

// Courses lists every selectable course in display order.
var Courses = []Course{CourseStarters, CourseMains, CourseDessert}

var courseNames = map[Course]string{
	CourseStarters: "Starters",
	CourseMains:    "Mains",
	CourseDessert:  "Dessert",
}

// String returns the display name, or "" for CourseNone.
func (c Course) String() string {
	return courseNames[c]
}

// Valid reports whether c is one of Starters, Mains or Dessert.
func (c Course) Valid() bool {
	_, ok := courseNames[c]
	return ok
}

// ParseCourse maps a course name to its Course, ignoring case and
// surrounding whitespace. Returns ErrInvalidCourse for anything else.
func ParseCourse(s string) (Course, error) {
	s = strings.TrimSpace(s)
	for _, c := range Courses {
		if strings.EqualFold(s, courseNames[c]) {
			return c, nil
		}
	}
	return CourseNone, fmt.Errorf("%w: %q", ErrInvalidCourse, s)
}

// MarshalText encodes the course by name, which also makes Course usable
// as a JSON value and map key.
func (c Course) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, ErrInvalidCourse
	}
	return []byte(c.String()), nil
}

// UnmarshalText decodes a course name.
func (c *Course) UnmarshalText(text []byte) error {
	parsed, err := ParseCourse(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
