package splitutils

// Validatable is accepted by DebugValidate, which acts on any type
// carrying a Validate method
type Validatable interface {
	Validate() error
}
