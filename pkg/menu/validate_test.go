package menu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// fixedIDs returns a generator handing out "id-1", "id-2", ...
func fixedIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return "id-" + string(rune('0'+n)), nil
	}
}

func validInput() Input {
	return Input{Name: "Soup", Description: "Hot", Course: types.CourseStarters, Price: "R50"}
}

func TestValidateAllEmpty(t *testing.T) {
	v := NewValidator("R")

	item, err := v.Validate(Input{})
	require.Error(t, err)
	assert.Equal(t, types.MenuItem{}, item)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
	for _, f := range Fields {
		fe, ok := verrs[f]
		require.True(t, ok, "missing error for %s", f)
		assert.ErrorIs(t, fe, ErrRequiredField)
		assert.Equal(t, f, fe.Field)
	}
	assert.Equal(t, "Dish name is required.", verrs.Message(FieldName))
	assert.Equal(t, "Description is required.", verrs.Message(FieldDescription))
	assert.Equal(t, "Please select a course.", verrs.Message(FieldCourse))
	assert.Equal(t, "Price is required.", verrs.Message(FieldPrice))
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.NotErrorIs(t, err, ErrInvalidFormat)
}

func TestValidatePrice(t *testing.T) {
	tests := []struct {
		price    string
		want     int64
		wantKind error
	}{
		{price: "100", want: 100},
		{price: "R100", want: 100},
		{price: "R0", want: 0},
		{price: "007", want: 7},
		{price: "abc", wantKind: ErrInvalidFormat},
		{price: "R", wantKind: ErrInvalidFormat},
		{price: "12.50", wantKind: ErrInvalidFormat},
		{price: "-5", wantKind: ErrInvalidFormat},
		{price: "RR100", wantKind: ErrInvalidFormat},
		{price: "100R", wantKind: ErrInvalidFormat},
		{price: " 100", wantKind: ErrInvalidFormat},
		{price: "r100", wantKind: ErrInvalidFormat},
		{price: "99999999999999999999", wantKind: ErrInvalidFormat},
		{price: "", wantKind: ErrRequiredField},
	}

	v := NewValidator("R")
	for _, tt := range tests {
		t.Run(tt.price, func(t *testing.T) {
			in := validInput()
			in.Price = tt.price
			item, err := v.Validate(in)
			if tt.wantKind != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantKind)
				var verrs ValidationErrors
				require.True(t, errors.As(err, &verrs))
				assert.Len(t, verrs, 1)
				assert.Contains(t, verrs, FieldPrice)
				assert.Empty(t, item.ID, "no item is created")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, item.Price)
		})
	}
}

func TestValidateInvalidFormatMessage(t *testing.T) {
	v := NewValidator("R")
	in := validInput()
	in.Price = "abc"
	_, err := v.Validate(in)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "Enter an integer (e.g., 100 or R100).", verrs.Message(FieldPrice))
	assert.Equal(t, "price: Enter an integer (e.g., 100 or R100).", err.Error())
}

func TestValidateCustomCurrency(t *testing.T) {
	v := NewValidator("$")
	assert.Equal(t, "$", v.Currency())

	n, err := v.ParsePrice("$25")
	require.NoError(t, err)
	assert.Equal(t, int64(25), n)

	_, err = v.ParsePrice("R25")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	multi := NewValidator("ZAR")
	n, err = multi.ParsePrice("ZAR40")
	require.NoError(t, err)
	assert.Equal(t, int64(40), n)
}

func TestValidateBuildsItem(t *testing.T) {
	v := NewValidator("R", WithIDGenerator(fixedIDs()))

	item, err := v.Validate(validInput())
	require.NoError(t, err)
	assert.Equal(t, types.MenuItem{
		ID:          "id-1",
		Name:        "Soup",
		Description: "Hot",
		Course:      types.CourseStarters,
		Price:       50,
	}, item)

	second, err := v.Validate(validInput())
	require.NoError(t, err)
	assert.Equal(t, "id-2", second.ID)
}

func TestValidateDefaultIDsAreUnique(t *testing.T) {
	v := NewValidator("R")
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		item, err := v.Validate(validInput())
		require.NoError(t, err)
		require.False(t, seen[item.ID], "id %s reused", item.ID)
		seen[item.ID] = true
	}
}

func TestValidateReportsEveryField(t *testing.T) {
	v := NewValidator("R")
	_, err := v.Validate(Input{Name: "Soup", Price: "abc"})

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 3)
	assert.ErrorIs(t, verrs[FieldDescription], ErrRequiredField)
	assert.ErrorIs(t, verrs[FieldCourse], ErrRequiredField)
	assert.ErrorIs(t, verrs[FieldPrice], ErrInvalidFormat)
	assert.Equal(t, "", verrs.Message(FieldName))
}

func TestValidateIDGeneratorFailure(t *testing.T) {
	boom := errors.New("boom")
	v := NewValidator("R", WithIDGenerator(func() (string, error) { return "", boom }))

	_, err := v.Validate(validInput())
	assert.ErrorIs(t, err, boom)
	var verrs ValidationErrors
	assert.False(t, errors.As(err, &verrs))
}
