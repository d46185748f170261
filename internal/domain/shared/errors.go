package shared

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// NewValidationError creates a validation error for bad generation inputs
func NewValidationError(format string, args ...any) *DomainError {
	return NewDomainError("VALIDATION_ERROR", fmt.Sprintf(format, args...))
}

// NewStorageError creates a storage error for schema or insert failures
func NewStorageError(format string, args ...any) *DomainError {
	return NewDomainError("STORAGE_ERROR", fmt.Sprintf(format, args...))
}

// NewQueryError creates a query error for failing ad-hoc queries
func NewQueryError(format string, args ...any) *DomainError {
	return NewDomainError("QUERY_ERROR", fmt.Sprintf(format, args...))
}

// IsValidationError reports whether err is a validation DomainError
func IsValidationError(err error) bool {
	return hasCode(err, "VALIDATION_ERROR")
}

// IsStorageError reports whether err is a storage DomainError
func IsStorageError(err error) bool {
	return hasCode(err, "STORAGE_ERROR")
}

// IsQueryError reports whether err is a query DomainError
func IsQueryError(err error) bool {
	return hasCode(err, "QUERY_ERROR")
}

func hasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}
