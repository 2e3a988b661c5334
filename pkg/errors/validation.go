package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateActivityID validates an activity identifier for safety and
// correctness. Activity ids become SVG element ids, cache key components,
// and query parameters, so the rules are intentionally conservative:
//   - No empty ids
//   - No control characters
//   - No whitespace
//   - Maximum length of 64 characters
func ValidateActivityID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidActivity, "activity id cannot be empty")
	}

	if len(id) > 64 {
		return New(ErrCodeInvalidActivity, "activity id too long (max 64 characters)")
	}

	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidActivity, "activity id contains control characters")
		}
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidActivity, "activity id cannot contain whitespace: %q", id)
		}
	}

	return nil
}

// wbsCodeRegex matches WBS codes: numeric CSI division codes optionally
// followed by dotted sub-levels ("03", "03.1", "15.2.1").
var wbsCodeRegex = regexp.MustCompile(`^[0-9]{2}(\.[0-9]+)*$`)

// ValidateWBSCode validates a WBS code. Empty codes are allowed (they fall
// into the sentinel group); non-empty codes must match the dotted numeric
// form used by CSI MasterFormat divisions.
func ValidateWBSCode(code string) error {
	if code == "" {
		return nil
	}
	if !wbsCodeRegex.MatchString(code) {
		return New(ErrCodeInvalidInput, "invalid WBS code: %q", code)
	}
	return nil
}

// dateRegex matches calendar dates in the schedule interchange form.
var dateRegex = regexp.MustCompile(`^[0-9]{4}-[0-9]{2}-[0-9]{2}$`)

// ValidateDateString checks the shape of a date string before parsing.
// The engine itself parses with time.Parse; this helper gives decoders a
// cheap pre-flight with a clearer error message.
func ValidateDateString(raw string) error {
	if raw == "" {
		return New(ErrCodeInvalidDate, "date cannot be empty")
	}
	if !dateRegex.MatchString(raw) {
		return New(ErrCodeInvalidDate, "date must be YYYY-MM-DD: %q", raw)
	}
	return nil
}

// ValidateSchedulePath validates a schedule file path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No path traversal sequences (..)
func ValidateSchedulePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidInput, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "path contains invalid characters")
		}
	}

	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidInput, "path cannot contain path traversal sequences (..)")
	}

	return nil
}
