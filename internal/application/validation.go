package application

import (
	"fmt"
	"regexp"
	"strings"
)

var diagramNameRegex = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "diagramName" -> "diagram name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"diagramName": "diagram name",
		"definition":  "definition",
		"assignment":  "assignment",
		"leftName":    "left diagram",
		"rightName":   "right diagram",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateDiagramName checks that a name can be used as a definition file
// name inside the workspace: no path separators, no leading dot.
func ValidateDiagramName(fieldName, name string) error {
	if err := ValidateRequired(fieldName, name); err != nil {
		return err
	}
	if !diagramNameRegex.MatchString(name) || strings.Contains(name, "..") {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("invalid %s: %s", formatFieldName(fieldName), name),
		}
	}
	return nil
}

// ValidateHex checks that an assignment looks like a hex bit pattern.
func ValidateHex(fieldName, value string) error {
	s := strings.TrimPrefix(strings.TrimPrefix(strings.TrimSpace(value), "0x"), "0X")
	for _, c := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return &ValidationError{
				Field:   fieldName,
				Message: fmt.Sprintf("%s must be hex, got: %s", formatFieldName(fieldName), value),
			}
		}
	}
	return nil
}
