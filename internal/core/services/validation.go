package services

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/custodia-labs/hearings-cli/internal/core/domain"
	"github.com/custodia-labs/hearings-cli/internal/core/ports/driving"
)

// Ensure HearingValidator implements the interface.
var _ driving.HearingValidator = (*HearingValidator)(nil)

// isoDate checks shape only; 2024-13-45 passes.
var isoDate = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// HearingValidator checks a record before it is saved.
type HearingValidator struct {
	validate *validator.Validate
}

// NewHearingValidator creates a validator with the isodate rule registered.
func NewHearingValidator() *HearingValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so they map straight onto domain.Field.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Only fails for an empty tag or nil func.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isoDate.MatchString(fl.Field().String())
	})

	return &HearingValidator{validate: v}
}

// Validate returns nil or a *domain.ValidationError.
// Missing fields are reported before a malformed date.
func (v *HearingValidator) Validate(h domain.Hearing) error {
	err := v.validate.Struct(h)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate hearing: %w", err)
	}

	var missing []domain.Field
	badDate := false
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			missing = append(missing, domain.Field(fe.Field()))
		case "isodate":
			badDate = true
		}
	}

	if len(missing) > 0 {
		return &domain.ValidationError{Reason: domain.ReasonMissingFields, Fields: missing}
	}
	if badDate {
		return &domain.ValidationError{Reason: domain.ReasonMalformedDate, Fields: []domain.Field{domain.FieldDate}}
	}
	return fmt.Errorf("validate hearing: %w", domain.ErrValidation)
}
