package validator

// Validator validates structs against their declared rules.
type Validator interface {
	// Validate returns nil when the value passes all rules, or an error
	// describing the failed fields.
	Validate(value any) error
}

// ValidationError exposes per-field validation messages.
type ValidationError interface {
	error
	Values() map[string]string
}
