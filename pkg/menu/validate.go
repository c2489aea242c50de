package menu

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// Field names an entry form field.
type Field string

// Entry form fields, in display order.
const (
	FieldName        Field = "name"
	FieldDescription Field = "description"
	FieldCourse      Field = "course"
	FieldPrice       Field = "price"
)

// Fields lists the entry form fields in display order.
var Fields = []Field{FieldName, FieldDescription, FieldCourse, FieldPrice}

// Validation error kinds. Every FieldError unwraps to one of these.
var (
	ErrRequiredField = errors.New("required field")
	ErrInvalidFormat = errors.New("invalid format")
)

// FieldError is the failure of a single field.
type FieldError struct {
	Field   Field
	Kind    error
	Message string
}

func (e *FieldError) Error() string { return e.Message }
func (e *FieldError) Unwrap() error { return e.Kind }

// ValidationErrors maps each failing field to its error. Use errors.As to
// recover it from the error returned by Validator.Validate.
type ValidationErrors map[Field]*FieldError

// Error joins the messages in field display order.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, fe := range v.ordered() {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes the field errors so errors.Is can match a kind.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(v))
	for _, fe := range v.ordered() {
		errs = append(errs, fe)
	}
	return errs
}

// Message returns the message for field, or "" if it passed.
func (v ValidationErrors) Message(field Field) string {
	if fe, ok := v[field]; ok {
		return fe.Message
	}
	return ""
}

func (v ValidationErrors) ordered() []*FieldError {
	out := make([]*FieldError, 0, len(v))
	for _, f := range Fields {
		if fe, ok := v[f]; ok {
			out = append(out, fe)
		}
	}
	return out
}

// Input is the raw entry form content.
type Input struct {
	Name        string
	Description string
	Course      types.Course
	Price       string
}

// Validator checks entry form input and builds menu items from it.
type Validator struct {
	currency string
	price    *regexp.Regexp
	newID    func() (string, error)
}

// ValidatorOption customizes a Validator.
type ValidatorOption func(*Validator)

// WithIDGenerator replaces the UUID v7 generator, mainly for tests.
func WithIDGenerator(gen func() (string, error)) ValidatorOption {
	return func(v *Validator) { v.newID = gen }
}

// NewValidator returns a Validator accepting prices written as digits with
// an optional currency prefix, for example "100" or "R100".
func NewValidator(currency string, opts ...ValidatorOption) *Validator {
	v := &Validator{
		currency: currency,
		price:    regexp.MustCompile(`^(?:` + regexp.QuoteMeta(currency) + `)?([0-9]+)$`),
		newID:    newUUID,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Currency returns the accepted price prefix.
func (v *Validator) Currency() string { return v.currency }

// Validate checks every field independently. On success it returns a new
// item with a fresh ID and a nil error; otherwise the error is a
// ValidationErrors holding one entry per failing field.
func (v *Validator) Validate(in Input) (types.MenuItem, error) {
	errs := make(ValidationErrors)

	if in.Name == "" {
		errs[FieldName] = required(FieldName, "Dish name is required.")
	}
	if in.Description == "" {
		errs[FieldDescription] = required(FieldDescription, "Description is required.")
	}
	if !in.Course.Valid() {
		errs[FieldCourse] = required(FieldCourse, "Please select a course.")
	}

	price, err := v.ParsePrice(in.Price)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			errs[FieldPrice] = fe
		}
	}

	if len(errs) > 0 {
		return types.MenuItem{}, errs
	}

	id, err := v.newID()
	if err != nil {
		return types.MenuItem{}, fmt.Errorf("generating item ID: %w", err)
	}
	return types.MenuItem{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Course:      in.Course,
		Price:       price,
	}, nil
}

// ParsePrice strips the optional currency prefix and parses the digits as a
// base-10 integer. Fractions are not accepted. The error is a *FieldError.
func (v *Validator) ParsePrice(raw string) (int64, error) {
	if raw == "" {
		return 0, required(FieldPrice, "Price is required.")
	}
	m := v.price.FindStringSubmatch(raw)
	if m == nil {
		return 0, v.invalidPrice()
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, v.invalidPrice()
	}
	return n, nil
}

func (v *Validator) invalidPrice() *FieldError {
	return &FieldError{
		Field:   FieldPrice,
		Kind:    ErrInvalidFormat,
		Message: fmt.Sprintf("Enter an integer (e.g., 100 or %s100).", v.currency),
	}
}

func required(field Field, msg string) *FieldError {
	return &FieldError{Field: field, Kind: ErrRequiredField, Message: msg}
}

// newUUID generates a UUID v7, falling back to v4 if the clock source fails.
func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String(), nil
	}
	return id.String(), nil
}
