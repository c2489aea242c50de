package menu

import "github.com/mesh-intelligence/flavorscape/pkg/types"

// FilterByCourse returns the items whose course matches, keeping their
// order. CourseNone means no filter and returns every item.
func FilterByCourse(items []types.MenuItem, course types.Course) []types.MenuItem {
	if course == types.CourseNone {
		out := make([]types.MenuItem, len(items))
		copy(out, items)
		return out
	}
	out := make([]types.MenuItem, 0, len(items))
	for _, it := range items {
		if it.Course == course {
			out = append(out, it)
		}
	}
	return out
}

// CourseFilter is the filter view selection. Each course acts as a toggle:
// selecting the active course again clears the selection.
type CourseFilter struct {
	selected types.Course
}

// Toggle selects course, or clears the selection if it is already active.
func (f *CourseFilter) Toggle(course types.Course) {
	if f.selected == course {
		f.selected = types.CourseNone
		return
	}
	f.selected = course
}

// Selected returns the active course, CourseNone when unfiltered.
func (f *CourseFilter) Selected() types.Course {
	return f.selected
}

// Active reports whether course is the current selection.
func (f *CourseFilter) Active(course types.Course) bool {
	return course != types.CourseNone && f.selected == course
}

// Clear removes the selection.
func (f *CourseFilter) Clear() {
	f.selected = types.CourseNone
}

// Apply filters items by the current selection.
func (f *CourseFilter) Apply(items []types.MenuItem) []types.MenuItem {
	return FilterByCourse(items, f.selected)
}
