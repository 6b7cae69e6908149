package styling

// InvalidInputError is returned when the engine is invoked with input it
// cannot style, such as an empty garment list. The orchestrator prevents this
// structurally by substituting a fallback garment, so hitting it indicates a
// programming defect rather than a user-facing condition.
type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string {
	return "invalid styling input: " + e.Message
}
