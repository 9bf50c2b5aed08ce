package shared

// DomainError represents a domain-level error tagged with a stable code
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is matches by code so wrapped errors with specific messages still
// compare equal to the package sentinels under errors.Is.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes understood by the HTTP layer
const (
	CodeNotFound     = "NOT_FOUND"
	CodeInvalidInput = "INVALID_INPUT"
	CodeStoreFailure = "STORE_FAILURE"
	CodeInternal     = "INTERNAL"
)

// Common domain errors
var (
	ErrNotFound     = NewDomainError(CodeNotFound, "Resource not found")
	ErrInvalidInput = NewDomainError(CodeInvalidInput, "Invalid input provided")
	ErrStoreFailure = NewDomainError(CodeStoreFailure, "Data store operation failed")
	ErrInternal     = NewDomainError(CodeInternal, "Internal error")
)

// NewNotFound creates a NOT_FOUND error with a specific message
func NewNotFound(message string) *DomainError {
	return NewDomainError(CodeNotFound, message)
}

// NewInvalidInput creates an INVALID_INPUT error with a specific message
func NewInvalidInput(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}

// NewStoreFailure creates a STORE_FAILURE error with a specific message
func NewStoreFailure(message string) *DomainError {
	return NewDomainError(CodeStoreFailure, message)
}

// NewInternal creates an INTERNAL error with a specific message
func NewInternal(message string) *DomainError {
	return NewDomainError(CodeInternal, message)
}
