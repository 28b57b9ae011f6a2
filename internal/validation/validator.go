// Package validation wraps go-playground/validator with the field rules used by
// the organization-structure resources and renders failures as readable text.
package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgstructure/internal/model"
	"reflect"
	"regexp"
	"strings"
)

var (
	alnumSpaceRegex = regexp.MustCompile(`^[A-Za-z0-9 ]*$`)
	alphaSpaceRegex = regexp.MustCompile(`^[A-Za-z ]*$`)
	resourceRegex   = regexp.MustCompile(`^[a-z]+(-[a-z]+)*$`)
)

// Errors lists every failing field of one value.
type Errors struct {
	Messages []string
}

func (e *Errors) Error() string {
	return strings.Join(e.Messages, ", ")
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})

	v.RegisterAlias("code", "len=4,alphanum")
	mustRegister(v, "alnumspace", matches(alnumSpaceRegex))
	mustRegister(v, "alphaspace", matches(alphaSpaceRegex))
	mustRegister(v, "resource", matches(resourceRegex))

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		d, ok := field.Interface().(model.Date)
		if !ok || d.IsZero() {
			return nil
		}
		return d.Time
	}, model.Date{})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// Struct validates s and returns *Errors describing each failing field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate")
	}

	out := &Errors{Messages: make([]string, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Messages = append(out.Messages, message(fe))
	}
	return out
}

// Code reports whether s is a well-formed four character code.
func (v *Validator) Code(s string) bool {
	return v.validate.Var(s, "code") == nil
}
