package donation

import (
	"fmt"
	"strings"

	"dharmachain/models"
	"dharmachain/utils"
)

const defaultCategory = "the cause"

// FieldMessages are the donation form messages per JSON field.
func FieldMessages() map[string]string {
	return map[string]string{
		"amount": fmt.Sprintf("Donation must be at least ₹%d.", models.MinDonationAmount),
		"name":   "Name is required for non-anonymous donations.",
		"email":  "A valid email is required for non-anonymous donations.",
	}
}

// Validate normalizes a donation form and checks it against the binding rules of
// models.DonationRequest. Anonymous donations drop name and email.
func Validate(req models.DonationRequest) (models.DonationRequest, error) {
	req.Category = strings.TrimSpace(req.Category)
	if req.Category == "" {
		req.Category = defaultCategory
	}
	req.Message = strings.TrimSpace(req.Message)

	if req.Anonymous {
		req.Name = ""
		req.Email = ""
	} else {
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
	}

	err := utils.ValidateStruct(req)
	if err == nil {
		return req, nil
	}
	fields, ok := utils.ValidationFields(req, err, FieldMessages())
	if !ok {
		return req, err
	}
	errs := make(ValidationErrors, 0, len(fields))
	for _, f := range fields {
		errs = append(errs, &ValidationError{Field: f.Field, Message: f.Message})
	}
	return req, errs
}
