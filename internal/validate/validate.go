// Package validate implements the validated write pipeline for contact
// submissions.
//
// Format rules are declared as validator struct tags and evaluated alongside
// an asynchronous name-uniqueness lookup against the contact store. All rules
// run; their results are merged into one ordered field-error list so forms
// can re-render with per-field messages.
package validate

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/louisbranch/contactbook/internal/storage"
)

// Field names reported in validation errors.
const (
	FieldName  = "name"
	FieldPhone = "phone"
	FieldEmail = "email"
)

// idMobilePattern matches Indonesian mobile numbers: an optional +62 or 62
// country prefix (or a leading 0), then an 8x operator prefix and 7-10 more
// digits.
var idMobilePattern = regexp.MustCompile(`^(\+?62|0)8[1-9][0-9]{6,9}$`)

// Payload is a candidate contact submission. OldName is empty for adds and
// carries the pre-edit name for updates.
type Payload struct {
	Name    string `validate:"required"`
	Phone   string `validate:"required,idmobile"`
	Email   string `validate:"required,email"`
	OldName string `validate:"-"`
}

// FieldError is one field-level rule violation.
type FieldError struct {
	// Field is the offending form field.
	Field string
	// Key is the localization key for the user-facing message.
	Key string
	// Message is the untranslated fallback message.
	Message string
}

// Result aggregates the outcome of one pipeline run.
type Result struct {
	Errors []FieldError
}

// OK reports whether the payload is acceptable for writing.
func (r Result) OK() bool {
	return len(r.Errors) == 0
}

// ErrorFor returns the first error attached to the named field, if any.
func (r Result) ErrorFor(field string) (FieldError, bool) {
	for _, fieldErr := range r.Errors {
		if fieldErr.Field == field {
			return fieldErr, true
		}
	}
	return FieldError{}, false
}

var formatRules = newFormatValidator()

func newFormatValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for blank tags or nil funcs; both are static here.
	_ = v.RegisterValidation("idmobile", func(fl validator.FieldLevel) bool {
		return idMobilePattern.MatchString(fl.Field().String())
	})
	return v
}

// Check runs the full pipeline for one submission.
//
// The name-uniqueness lookup runs concurrently with the synchronous format
// checks and is always awaited before the result is finalized. A store
// failure during the lookup is returned as the error value, distinct from
// field-level rule violations.
func Check(ctx context.Context, store storage.ContactStore, payload Payload) (Result, error) {
	if store == nil {
		return Result{}, fmt.Errorf("contact store is required")
	}

	type uniqueOutcome struct {
		taken bool
		err   error
	}
	uniqueCh := make(chan uniqueOutcome, 1)
	go func() {
		taken, err := nameTaken(ctx, store, payload)
		uniqueCh <- uniqueOutcome{taken: taken, err: err}
	}()

	var result Result
	result.Errors = append(result.Errors, formatErrors(payload)...)

	unique := <-uniqueCh
	if unique.err != nil {
		return Result{}, fmt.Errorf("check name uniqueness: %w", unique.err)
	}
	if unique.taken {
		result.Errors = append(result.Errors, FieldError{
			Field:   FieldName,
			Key:     "contact.error.name_taken",
			Message: "contact name is already in use",
		})
	}

	return result, nil
}

// nameTaken reports whether the submitted name collides with a different
// existing record. Keeping the same name on an edit is not a collision.
func nameTaken(ctx context.Context, store storage.ContactStore, payload Payload) (bool, error) {
	existing, err := store.FindByName(ctx, payload.Name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if payload.OldName != "" && existing.Name == payload.OldName {
		return false, nil
	}
	return true, nil
}

func formatErrors(payload Payload) []FieldError {
	err := formatRules.Struct(payload)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		// validator only returns InvalidValidationError for non-struct input.
		return []FieldError{{
			Field:   FieldName,
			Key:     "contact.error.invalid_submission",
			Message: "invalid submission",
		}}
	}

	fieldErrors := make([]FieldError, 0, len(violations))
	for _, violation := range violations {
		switch strings.ToLower(violation.Field()) {
		case FieldEmail:
			fieldErrors = append(fieldErrors, FieldError{
				Field:   FieldEmail,
				Key:     "contact.error.email_invalid",
				Message: "invalid email",
			})
		case FieldPhone:
			fieldErrors = append(fieldErrors, FieldError{
				Field:   FieldPhone,
				Key:     "contact.error.phone_invalid",
				Message: "invalid phone number",
			})
		case FieldName:
			fieldErrors = append(fieldErrors, FieldError{
				Field:   FieldName,
				Key:     "contact.error.name_required",
				Message: "name is required",
			})
		}
	}
	return fieldErrors
}
