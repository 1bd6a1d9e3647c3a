package alfred

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	gofrederrors "github.com/alexisbeaulieu97/gofred/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance
// used across the output model.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

func validateStruct(v any) error {
	return convertValidationError(validatorInstance().Struct(v))
}

// convertValidationError normalizes validator errors into gofred validation
// errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := jsonishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return gofrederrors.NewValidationError(field, msg, err)
	}

	return gofrederrors.NewValidationError("output", err.Error(), err)
}

func jsonishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

// check enforces the Text invariant: both fields absent is invalid.
func (t *Text) check() error {
	if t.Copy == "" && t.LargeType == "" {
		return gofrederrors.NewValidationError("text", "at least one of copy or largetype must be set", nil)
	}
	return nil
}
