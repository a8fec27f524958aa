// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/credstore/internal/errors"
)

var (
	// tagRegex limits tags to a safe identifier charset.
	tagRegex = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._\-]*$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// TagRule validates a secure store tag: non-empty, at most 255 characters,
// starting with an alphanumeric and limited to [a-zA-Z0-9._-].
var TagRule = []validation.Rule{
	validation.Required,
	validation.Length(1, 255),
	validation.Match(tagRegex).Error("must start with an alphanumeric and contain only letters, digits, '.', '_' or '-'"),
}

// ValidateTag applies TagRule to a standalone tag value (e.g. a URL parameter).
func ValidateTag(tag string) error {
	return WrapValidationError(validation.Validate(tag, TagRule...))
}
