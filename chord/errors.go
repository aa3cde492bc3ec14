package chord

// UnknownTypeError reports a chord-type lookup miss. The UI vocabulary
// is closed so this indicates a contract violation by the caller; it is
// raised rather than silently ignored.
type UnknownTypeError struct {
	Name string
}

func (e *UnknownTypeError) Error() string {
	return "unknown chord type: " + e.Name
}

// UnknownModifierError reports a modifier lookup miss.
type UnknownModifierError struct {
	Name string
}

func (e *UnknownModifierError) Error() string {
	return "unknown chord modifier: " + e.Name
}
