package middleware

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Checkout-shaped struct with validation tags
type checkoutRequest struct {
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	Quantity      int    `json:"quantity" validate:"required,gte=1,lte=50"`
}

// Feature: barbershop-platform, Property 48: Required field validation works
// Validates: Requirements 18.2
func TestProperty_RequiredFieldValidationWorks(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("missing required fields are rejected", prop.ForAll(
		func(includeNameField bool, includeEmailField bool, includeQuantityField bool) bool {
			// Create request with some fields missing
			reqMap := make(map[string]interface{})

			if includeNameField {
				reqMap["customer_name"] = "Ali Ben Salah"
			}
			if includeEmailField {
				reqMap["customer_email"] = "ali@example.com"
			}
			if includeQuantityField {
				reqMap["quantity"] = 2
			}

			// If all fields are present, this should pass validation
			allFieldsPresent := includeNameField && includeEmailField && includeQuantityField

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var checkout checkoutRequest
			err := DecodeAndValidate(req, &checkout)

			if allFieldsPresent {
				// Should pass validation
				return err == nil
			} else {
				// Should fail validation
				return err != nil
			}
		},
		gen.Bool(),
		gen.Bool(),
		gen.Bool(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test that validation errors are properly formatted
func TestProperty_ValidationErrorsAreFormatted(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("validation errors include field information", prop.ForAll(
		func() bool {
			// Create request with invalid email
			reqMap := map[string]interface{}{
				"customer_name":  "Ali Ben Salah",
				"customer_email": "not-an-email", // Invalid email format
				"quantity":       2,
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var checkout checkoutRequest
			err := DecodeAndValidate(req, &checkout)

			if err == nil {
				return false // Should have validation error
			}

			// Format the errors
			validationErrors := FormatValidationErrors(err)

			// Should have at least one error
			if len(validationErrors) == 0 {
				return false
			}

			// Each error should have a field and message
			for _, ve := range validationErrors {
				if ve.Field == "" || ve.Message == "" {
					return false
				}
			}

			return true
		},
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test that valid requests pass validation
func TestProperty_ValidRequestsPassValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("valid requests pass validation", prop.ForAll(
		func(seed int) bool {
			// Use seed to generate deterministic but varied data
			names := []string{"Ali Ben Salah", "Leila Trabelsi", "Karim Jlassi", "Amine Gharbi"}
			quantities := []int{1, 2, 3, 5, 10, 25, 50}

			// Handle negative seeds
			if seed < 0 {
				seed = -seed
			}

			name := names[seed%len(names)]
			quantity := quantities[seed%len(quantities)]

			reqMap := map[string]interface{}{
				"customer_name":  name,
				"customer_email": "client@example.com",
				"quantity":       quantity,
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var checkout checkoutRequest
			err := DecodeAndValidate(req, &checkout)

			// Should pass validation
			return err == nil
		},
		gen.Int(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Test quantity range validation
func TestProperty_QuantityRangeValidation(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("quantity outside valid range is rejected", prop.ForAll(
		func(quantity int) bool {
			reqMap := map[string]interface{}{
				"customer_name":  "Ali Ben Salah",
				"customer_email": "ali@example.com",
				"quantity":       quantity,
			}

			reqBody, _ := json.Marshal(reqMap)
			req := httptest.NewRequest("POST", "/api/orders", bytes.NewReader(reqBody))
			req.Header.Set("Content-Type", "application/json")

			var checkout checkoutRequest
			err := DecodeAndValidate(req, &checkout)

			// Quantity should be between 1 and 50
			if quantity >= 1 && quantity <= 50 {
				return err == nil // Should pass
			} else {
				return err != nil // Should fail
			}
		},
		gen.IntRange(-20, 100),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
