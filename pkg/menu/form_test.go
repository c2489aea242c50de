package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// recorder collects added items and can be told to fail.
type recorder struct {
	items []types.MenuItem
	err   error
}

func (r *recorder) Add(item types.MenuItem) error {
	if r.err != nil {
		return r.err
	}
	r.items = append(r.items, item)
	return nil
}

func TestFormSubmitSuccessResets(t *testing.T) {
	f := NewForm(NewValidator("R", WithIDGenerator(fixedIDs())))
	f.Name = "Soup"
	f.Description = "Hot"
	f.Course = types.CourseStarters
	f.Price = "R50"

	dst := &recorder{}
	item, err := f.Submit(dst)
	require.NoError(t, err)

	assert.Equal(t, "id-1", item.ID)
	assert.Equal(t, []types.MenuItem{item}, dst.items)
	assert.Equal(t, Input{}, f.Input(), "input is cleared")
	assert.Nil(t, f.Errors())
}

func TestFormSubmitFailureKeepsInput(t *testing.T) {
	f := NewForm(NewValidator("R"))
	f.Name = "Soup"
	f.Price = "abc"

	dst := &recorder{}
	_, err := f.Submit(dst)
	require.Error(t, err)

	assert.Empty(t, dst.items)
	assert.Equal(t, "Soup", f.Name)
	assert.Equal(t, "abc", f.Price)
	assert.Len(t, f.Errors(), 3)
	assert.Equal(t, "", f.ErrorFor(FieldName))
	assert.Equal(t, "Description is required.", f.ErrorFor(FieldDescription))
	assert.Equal(t, "Please select a course.", f.ErrorFor(FieldCourse))
	assert.Equal(t, "Enter an integer (e.g., 100 or R100).", f.ErrorFor(FieldPrice))

	// Fixing the input clears the errors on the next successful submit.
	f.Description = "Hot"
	f.Course = types.CourseStarters
	f.Price = "50"
	_, err = f.Submit(dst)
	require.NoError(t, err)
	assert.Nil(t, f.Errors())
	assert.Len(t, dst.items, 1)
}

func TestFormSubmitAllEmpty(t *testing.T) {
	f := NewForm(NewValidator("R"))
	dst := &recorder{}

	_, err := f.Submit(dst)
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Len(t, f.Errors(), 4)
	assert.Empty(t, dst.items)
}

func TestFormSubmitStoreFailureKeepsInput(t *testing.T) {
	f := NewForm(NewValidator("R"))
	f.Name, f.Description, f.Course, f.Price = "Soup", "Hot", types.CourseStarters, "50"

	boom := errors.New("store down")
	_, err := f.Submit(&recorder{err: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "Soup", f.Name)
	assert.Nil(t, f.Errors())
}
