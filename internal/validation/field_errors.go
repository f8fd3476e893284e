// Package validation implements the field-level validation contract the
// clinic front end relies on: each validator is a pure function of the
// request returning a map from field name to messages, or nil when valid.
// Use cases apply these before touching any repository, so an invalid
// request never produces a partial write.
package validation

import "strings"

// FieldErrors maps a request field name to its validation messages.
// It implements error so use cases can return it directly.
type FieldErrors map[string][]string

func (e FieldErrors) Error() string {
	var sb strings.Builder
	sb.WriteString("erro de validação:")
	for field, msgs := range e {
		sb.WriteString(" ")
		sb.WriteString(field)
		sb.WriteString("=[")
		sb.WriteString(strings.Join(msgs, "; "))
		sb.WriteString("]")
	}
	return sb.String()
}

// Add appends a message to a field's error list
func (e FieldErrors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// OrNil returns nil when no error was recorded, so callers can use the
// map-or-null contract directly.
func (e FieldErrors) OrNil() FieldErrors {
	if len(e) == 0 {
		return nil
	}
	return e
}
