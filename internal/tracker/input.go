package tracker

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/dotcommander/uttrack/internal/course"
)

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("invalid course input")

// NewCourse is the raw input of the add-course form.
type NewCourse struct {
	Name        string `json:"name" validate:"required"`
	CreditUnits string `json:"creditUnits" validate:"required,creditunits"`
	Scheme      string `json:"scheme" validate:"required,scheme"`
}

// FieldError is used to indicate an error with a specific input field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError lists every invalid field of a NewCourse.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Error)
	}
	return fmt.Sprintf("%v: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func inputValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		// Use JSON tag names for errors instead of Go struct names.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = validate.RegisterValidation("scheme", func(fl validator.FieldLevel) bool {
			return course.Scheme(fl.Field().String()).IsKnown()
		})
		_ = validate.RegisterValidation("creditunits", func(fl validator.FieldLevel) bool {
			n, ok := course.ParseCreditUnits(fl.Field().String())
			return ok && course.ValidCreditUnits(n)
		})
	})
	return validate
}

var tagMessages = map[string]string{
	"required":    "this field is required",
	"scheme":      "unknown scheme",
	"creditunits": fmt.Sprintf("must be a whole number from 0 to %d", course.MaxCreditUnits),
}

// Build validates the input and returns the new course with empty
// sub-records.
func (in NewCourse) Build() (course.Course, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.CreditUnits = strings.TrimSpace(in.CreditUnits)
	in.Scheme = strings.TrimSpace(in.Scheme)

	if err := inputValidator().Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return course.Course{}, fmt.Errorf("validating course input: %w", err)
		}
		ve := &ValidationError{}
		for _, fe := range verrs {
			msg, ok := tagMessages[fe.Tag()]
			if !ok {
				msg = fe.Error()
			}
			ve.Fields = append(ve.Fields, FieldError{Field: fe.Field(), Error: msg})
		}
		return course.Course{}, ve
	}

	units, _ := course.ParseCreditUnits(in.CreditUnits)
	return course.New(in.Name, units, course.Scheme(in.Scheme)), nil
}
