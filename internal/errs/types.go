package errs

import "fmt"

type ErrorMessage struct {
	Message string
}

func (e *ErrorMessage) Error() string { return e.Message }

// NotFoundError is returned when no bank matches the requested account number.
type NotFoundError struct {
	ErrorMessage
}

// AlreadyExistsError is returned when a bank with the same account number is already stored.
type AlreadyExistsError struct {
	ErrorMessage
}

type ValidationError struct {
	ErrorMessage
}

// DatabaseError wraps a failure of a persistent backend.
type DatabaseError struct {
	ErrorMessage
	Operation string
	Err       error
}

func (e *DatabaseError) Unwrap() error { return e.Err }

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewAlreadyExistsError(message string) *AlreadyExistsError {
	return &AlreadyExistsError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewValidationError(message string) *ValidationError {
	return &ValidationError{
		ErrorMessage: ErrorMessage{Message: message},
	}
}

func NewDatabaseError(operation string, err error) *DatabaseError {
	return &DatabaseError{
		ErrorMessage: ErrorMessage{Message: fmt.Sprintf("%s: %v", operation, err)},
		Operation:    operation,
		Err:          err,
	}
}

func BankNotFound(accountNumber string) *NotFoundError {
	return NewNotFoundError(fmt.Sprintf("could not find a bank with account number %s", accountNumber))
}

func BankAlreadyExists(accountNumber string) *AlreadyExistsError {
	return NewAlreadyExistsError(fmt.Sprintf("bank with account number %s already exists", accountNumber))
}
