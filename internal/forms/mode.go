// Package forms holds the add/edit dialog logic shared by the HTTP and CLI
// surfaces: blank numeric fields become zero, an empty primary field rejects
// the save, and each accepted save makes exactly one store call.
package forms

// Mode says whether a form creates a new record or edits an existing one.
type Mode[T any] struct {
	existing *T
}

// Create returns the add-mode value.
func Create[T any]() Mode[T] {
	return Mode[T]{}
}

// Edit returns the edit-mode value for existing.
func Edit[T any](existing T) Mode[T] {
	return Mode[T]{existing: &existing}
}

// Existing returns the record being edited, if any.
func (m Mode[T]) Existing() (T, bool) {
	if m.existing == nil {
		var zero T
		return zero, false
	}
	return *m.existing, true
}

func (m Mode[T]) IsEdit() bool {
	return m.existing != nil
}

// Title is the dialog heading, e.g. "Add Director" or "Edit Director".
func (m Mode[T]) Title(noun string) string {
	if m.IsEdit() {
		return "Edit " + noun
	}
	return "Add " + noun
}
