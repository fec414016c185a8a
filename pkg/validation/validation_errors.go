package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Professional profile fields
	"Projects":   "Projects",
	"Domain":     "Domain of Interest",
	"Experience": "Experience",
	"Skills":     "Skills",
	"Interests":  "Interests",

	// Job filter fields
	"Search":   "Search",
	"Location": "Location",
}

// enumLabels maps filter values to their display text
var enumLabels = map[string]string{
	"all":           "All",
	"remote":        "Remote",
	"san-francisco": "San Francisco",
	"new-york":      "New York",
	"austin":        "Austin",
	"seattle":       "Seattle",
	"entry":         "Entry Level",
	"mid":           "Mid Level",
	"senior":        "Senior Level",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// MissingFields lists the labels of fields that failed a required check
func MissingFields(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}
	var fields []string
	for _, e := range validationErrors {
		if e.Tag() == "required" {
			fields = append(fields, getFieldLabel(e.Field()))
		}
	}
	return fields
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "max":
		return fmt.Sprintf("%s: at most %s characters", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, formatOneOfOptions(param))
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}

func formatOneOfOptions(param string) string {
	options := strings.Fields(param)
	formatted := make([]string, len(options))
	for i, opt := range options {
		if label, ok := enumLabels[opt]; ok {
			formatted[i] = label
		} else {
			formatted[i] = opt
		}
	}
	return strings.Join(formatted, ", ")
}
