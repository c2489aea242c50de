package menu

import (
	"errors"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// Adder receives items that passed validation.
type Adder interface {
	Add(item types.MenuItem) error
}

// Form is the entry form state: the transient field values and the errors
// from the last submission. A successful Submit clears both; a failed one
// keeps the input so the user can correct it.
type Form struct {
	Name        string
	Description string
	Course      types.Course
	Price       string

	validator *Validator
	errs      ValidationErrors
}

// NewForm returns an empty form that validates with v.
func NewForm(v *Validator) *Form {
	return &Form{validator: v}
}

// Input returns the current field values.
func (f *Form) Input() Input {
	return Input{
		Name:        f.Name,
		Description: f.Description,
		Course:      f.Course,
		Price:       f.Price,
	}
}

// Errors returns the errors from the last submission, nil if it passed.
func (f *Form) Errors() ValidationErrors {
	return f.errs
}

// ErrorFor returns the message to show next to field, or "".
func (f *Form) ErrorFor(field Field) string {
	return f.errs.Message(field)
}

// Submit validates the input and, on success, hands the new item to dst
// and resets the form. On validation failure the returned error is the
// ValidationErrors also kept on the form.
func (f *Form) Submit(dst Adder) (types.MenuItem, error) {
	item, err := f.validator.Validate(f.Input())
	if err != nil {
		var verrs ValidationErrors
		if errors.As(err, &verrs) {
			f.errs = verrs
		}
		return types.MenuItem{}, err
	}

	if err := dst.Add(item); err != nil {
		return types.MenuItem{}, err
	}
	f.Reset()
	return item, nil
}

// Reset clears every field and error.
func (f *Form) Reset() {
	f.Name = ""
	f.Description = ""
	f.Course = types.CourseNone
	f.Price = ""
	f.errs = nil
}

// Currency returns the price prefix the form accepts.
func (f *Form) Currency() string {
	return f.validator.Currency()
}
