// Package validator adapts go-playground/validator to Echo's Validator hook.
package validator

import (
	"strings"

	playground "github.com/go-playground/validator/v10"

	domainerrors "interviewlog/internal/domain/errors"
	"interviewlog/internal/errors"
)

// echoValidator implements echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates a validator using struct-tag rules.
func New() *echoValidator {
	return &echoValidator{validate: playground.New(playground.WithRequiredStructEnabled())}
}

// Validate checks a bound request struct and converts tag violations into
// per-field validation errors.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var tagErrs playground.ValidationErrors
	if !errors.As(err, &tagErrs) {
		return domainerrors.ErrValidationFailed.WrapMessage("request validation failed")
	}

	violations := domainerrors.NewFieldViolations()
	for _, fieldErr := range tagErrs {
		violations.Add(fieldName(fieldErr), violationMessage(fieldErr))
	}

	return violations
}

func fieldName(fieldErr playground.FieldError) string {
	// Namespace is Struct.Field; report just the field in snake case.
	name := fieldErr.Field()

	return toSnake(name)
}

func violationMessage(fieldErr playground.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "此欄位為必填"
	case "min":
		return "長度或數值不足"
	case "max":
		return "長度或數值超過上限"
	case "email":
		return "信箱格式不正確"
	default:
		return "欄位格式不正確"
	}
}

func toSnake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
