// Package forms validates what the user typed before it reaches the
// authentication store.
package forms

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// Errors maps field names to the first problem found with each.
type Errors struct {
	fields map[string]string
	order  []string
}

func (e *Errors) add(field, msg string) {
	if e.fields == nil {
		e.fields = make(map[string]string)
	}
	if _, ok := e.fields[field]; ok {
		return
	}
	e.fields[field] = msg
	e.order = append(e.order, field)
}

// Field returns the message for field, or "".
func (e *Errors) Field(name string) string {
	return e.fields[name]
}

// Fields returns the names of the invalid fields in declaration order.
func (e *Errors) Fields() []string {
	return append([]string(nil), e.order...)
}

func (e *Errors) Error() string {
	msgs := make([]string, 0, len(e.order))
	for _, f := range e.order {
		msgs = append(msgs, e.fields[f])
	}
	return strings.Join(msgs, "; ")
}

// Validate checks a form struct. Field problems come back as *Errors.
func Validate(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	out := &Errors{}
	for _, fe := range ve {
		out.add(fe.Field(), fieldError(fe))
	}
	return out
}

func fieldError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", field, fe.Param())
	case "numeric":
		return field + " must contain digits only"
	case "eqfield":
		return "passwords do not match"
	case "datetime":
		return field + " must be a date like 1990-01-31"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
