package trip

// InputError reports a request the caller can fix. Handlers map it to a 400;
// anything else surfaced by the service is a server fault.
type InputError struct {
	Code    string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

func NewInputError(code, message string) *InputError {
	return &InputError{Code: code, Message: message}
}
