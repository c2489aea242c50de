package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

func sampleMenu() []types.MenuItem {
	return []types.MenuItem{
		{ID: "1", Name: "Soup", Course: types.CourseStarters, Price: 50},
		{ID: "2", Name: "Steak", Course: types.CourseMains, Price: 180},
		{ID: "3", Name: "Cake", Course: types.CourseDessert, Price: 45},
		{ID: "4", Name: "Pasta", Course: types.CourseMains, Price: 120},
	}
}

func TestFilterByCourse(t *testing.T) {
	items := sampleMenu()

	mains := FilterByCourse(items, types.CourseMains)
	assert.Equal(t, []types.MenuItem{items[1], items[3]}, mains)

	assert.Equal(t, items, FilterByCourse(items, types.CourseNone))
	assert.Empty(t, FilterByCourse(nil, types.CourseDessert))
}

func TestCourseFilterToggle(t *testing.T) {
	items := sampleMenu()
	var f CourseFilter

	assert.Equal(t, types.CourseNone, f.Selected())
	assert.Len(t, f.Apply(items), 4)

	f.Toggle(types.CourseMains)
	assert.True(t, f.Active(types.CourseMains))
	assert.Len(t, f.Apply(items), 2)

	f.Toggle(types.CourseMains)
	assert.Equal(t, types.CourseNone, f.Selected())
	assert.Equal(t, items, f.Apply(items), "second toggle returns the full listing")

	f.Toggle(types.CourseStarters)
	f.Toggle(types.CourseDessert)
	assert.Equal(t, types.CourseDessert, f.Selected(), "selecting another course switches")
	assert.False(t, f.Active(types.CourseStarters))

	f.Clear()
	assert.False(t, f.Active(types.CourseNone))
	assert.Equal(t, types.CourseNone, f.Selected())
}
