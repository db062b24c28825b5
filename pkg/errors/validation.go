package errors

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldErrors maps field names to violation messages. Fields keep the order
// in which they were first added, and that order survives JSON encoding.
type FieldErrors struct {
	keys   []string
	fields map[string][]string
}

// NewFieldErrors returns an empty FieldErrors.
func NewFieldErrors() *FieldErrors {
	return &FieldErrors{fields: make(map[string][]string)}
}

// Add appends message to field. Duplicate messages for a field are ignored.
func (f *FieldErrors) Add(field, message string) {
	if f.fields == nil {
		f.fields = make(map[string][]string)
	}
	msgs, ok := f.fields[field]
	if !ok {
		f.keys = append(f.keys, field)
	}
	for _, m := range msgs {
		if m == message {
			return
		}
	}
	f.fields[field] = append(msgs, message)
}

// Merge adds every message of other into f.
func (f *FieldErrors) Merge(other *FieldErrors) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		for _, m := range other.fields[k] {
			f.Add(k, m)
		}
	}
}

// Empty reports whether no violation was recorded.
func (f *FieldErrors) Empty() bool {
	return f == nil || len(f.keys) == 0
}

// Has reports whether field has at least one violation.
func (f *FieldErrors) Has(field string) bool {
	if f == nil {
		return false
	}
	_, ok := f.fields[field]
	return ok
}

// Get returns the messages recorded for field.
func (f *FieldErrors) Get(field string) []string {
	if f == nil {
		return nil
	}
	return f.fields[field]
}

// Fields returns field names in insertion order.
func (f *FieldErrors) Fields() []string {
	if f == nil {
		return nil
	}
	out := make([]string, len(f.keys))
	copy(out, f.keys)
	return out
}

// MarshalJSON renders the object with keys in insertion order.
func (f *FieldErrors) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if f != nil {
		for i, k := range f.keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(k)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(f.fields[k])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ValidationError is the invalid outcome of a validation run.
type ValidationError struct {
	Fields *FieldErrors
}

// NewValidationError wraps fields. Callers check fields.Empty() first.
func NewValidationError(fields *FieldErrors) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if e.Fields.Empty() {
		return "validation failed"
	}
	var parts []string
	for _, k := range e.Fields.keys {
		parts = append(parts, k+": "+strings.Join(e.Fields.fields[k], ", "))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
