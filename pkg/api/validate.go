package api

import (
	"github.com/google/uuid"

	"github.com/cloudnetlab/lbaas/pkg/apierrors"
)

// maxFieldLength bounds name and description fields.
const maxFieldLength = 255

// ValidateUUID checks that value is a well-formed UUID. The message format is
// part of the wire contract.
func ValidateUUID(field, value string) error {
	if _, err := uuid.Parse(value); err != nil {
		return apierrors.NewValidation(
			"Invalid input for field/attribute %s. Value: '%s'. Value should be UUID format", field, value,
		)
	}
	return nil
}

// ValidateFieldLength checks the 255-character bound on free-text fields.
func ValidateFieldLength(field, value string) error {
	if len(value) > maxFieldLength {
		return apierrors.NewValidation(
			"Invalid input for field/attribute %s. Value: '%s'. Value should have a maximum character requirement of 255", field, value,
		)
	}
	return nil
}
