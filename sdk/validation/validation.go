// Package validation contains small helpers for working with optional
// values in request payloads and store models.
package validation

import "time"

func StringPtr(s string) *string {
	return &s
}

// StringPtrIfNotEmpty returns a pointer to the string if not empty, otherwise nil.
func StringPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func TimePtr(t time.Time) *time.Time {
	return &t
}

func BoolPtr(b bool) *bool {
	return &b
}

func IntPtr(i int) *int {
	return &i
}

// GetStringOrEmpty returns the string value or an empty string if nil.
func GetStringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// GetStringOrDefault returns the string value or a default value if nil.
func GetStringOrDefault(s *string, defaultValue string) string {
	if s == nil {
		return defaultValue
	}
	return *s
}

// GetTimeOrEmpty returns the time value or the zero time if nil.
func GetTimeOrEmpty(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

// GetBoolOrFalse returns the bool value or false if nil.
func GetBoolOrFalse(b *bool) bool {
	if b == nil {
		return false
	}
	return *b
}

// FormatTimePtrToString renders an optional time as RFC3339, or "" if nil.
func FormatTimePtrToString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
