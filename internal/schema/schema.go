// Package schema validates procedure inputs and outputs against the
// constraints declared in their struct tags.
package schema

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		switch name {
		case "-":
			return ""
		case "":
			return field.Name
		default:
			return name
		}
	})
	return v
}

// Violation describes one field that failed validation.
type Violation struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// Violations is returned by Validate when at least one field is invalid.
type Violations []Violation

func (v Violations) Error() string {
	parts := make([]string, 0, len(v))
	for _, violation := range v {
		if violation.Field == "" {
			parts = append(parts, violation.Message)
			continue
		}
		parts = append(parts, violation.Field+": "+violation.Message)
	}
	return strings.Join(parts, "; ")
}

// Fields returns the violated field paths in order.
func (v Violations) Fields() []string {
	fields := make([]string, 0, len(v))
	for _, violation := range v {
		fields = append(fields, violation.Field)
	}
	return fields
}

// Refiner is implemented by inputs with constraints spanning several fields.
type Refiner interface {
	Refine() Violations
}

// Validate checks v against its validate tags and, when v implements
// Refiner, its cross-field rules. Every violated field is reported.
func Validate(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	var violations Violations
	if err := validate.Struct(v); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate %T: %w", v, err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, Violation{Field: fieldPath(fe), Message: message(fe)})
		}
	}
	if refiner, ok := v.(Refiner); ok {
		violations = append(violations, refiner.Refine()...)
	}
	if len(violations) == 0 {
		return nil
	}
	return violations
}

// ValidateOutput validates a handler result, descending into pointers and
// slices. Values that are not structs have nothing to check.
func ValidateOutput(v any) error {
	return validateValue(reflect.ValueOf(v), "")
}

func validateValue(rv reflect.Value, prefix string) error {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Struct:
		err := Validate(rv.Interface())
		if err == nil || prefix == "" {
			return err
		}
		var violations Violations
		if !errors.As(err, &violations) {
			return err
		}
		prefixed := make(Violations, len(violations))
		for i, violation := range violations {
			prefixed[i] = Violation{Field: joinPath(prefix, violation.Field), Message: violation.Message}
		}
		return prefixed
	case reflect.Slice, reflect.Array:
		var all Violations
		for i := 0; i < rv.Len(); i++ {
			err := validateValue(rv.Index(i), fmt.Sprintf("%s[%d]", prefix, i))
			if err == nil {
				continue
			}
			var violations Violations
			if !errors.As(err, &violations) {
				return err
			}
			all = append(all, violations...)
		}
		if len(all) == 0 {
			return nil
		}
		return all
	default:
		return nil
	}
}

func joinPath(prefix, field string) string {
	if field == "" {
		return prefix
	}
	return prefix + "." + field
}

// fieldPath drops the root struct name from the validator namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func message(fe validator.FieldError) string {
	param := fe.Param()
	sized := fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map || fe.Kind() == reflect.Array

	switch fe.Tag() {
	case "required":
		return "is required"
	case "min", "gte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", param)
		}
		if sized {
			return fmt.Sprintf("must contain at least %s items", param)
		}
		return fmt.Sprintf("must be greater than or equal to %s", param)
	case "max", "lte":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", param)
		}
		if sized {
			return fmt.Sprintf("must contain at most %s items", param)
		}
		return fmt.Sprintf("must be less than or equal to %s", param)
	case "gt":
		return fmt.Sprintf("must be greater than %s", param)
	case "lt":
		return fmt.Sprintf("must be less than %s", param)
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(param), ", ")
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "unique":
		return "must not contain duplicates"
	case "eqfield":
		return "must match " + lowerFirst(param)
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
