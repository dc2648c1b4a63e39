// Package error defines domain-specific errors for the MoneyDiary application.
package error

import "errors"

// Account type domain errors.
var (
	// ErrAccountTypeNotFound is returned when an account type is not found in the system.
	ErrAccountTypeNotFound = errors.New("account type not found")

	// ErrSystemAccountTypeReadOnly is returned when attempting to modify or delete a system account type.
	ErrSystemAccountTypeReadOnly = errors.New("system account types cannot be modified or deleted")

	// ErrInvalidAccountTypeCategory is returned when the account type category is invalid.
	ErrInvalidAccountTypeCategory = errors.New("account type category must be 'asset', 'liability' or 'equity'")

	// ErrInvalidAccountTypeRole is returned when the account type role is invalid.
	ErrInvalidAccountTypeRole = errors.New("invalid account type role")

	// ErrAccountTypeInUse is returned when deleting an account type that still has accounts.
	ErrAccountTypeInUse = errors.New("account type has accounts and cannot be deleted")

	// ErrNotAuthorizedToModifyAccountType is returned when user is not authorized to modify an account type.
	ErrNotAuthorizedToModifyAccountType = errors.New("not authorized to modify account type")

	// ErrAccountTypeNameExists is returned when attempting to create an account type with an existing name.
	ErrAccountTypeNameExists = errors.New("account type name already exists")
)

// AccountTypeErrorCode defines error codes for account type errors.
// Format: ACT-XXYYYY where XX is category and YYYY is specific error.
type AccountTypeErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountTypeNotFound        AccountTypeErrorCode = "ACT-010001"
	ErrCodeInvalidAccountTypeCategory AccountTypeErrorCode = "ACT-010002"
	ErrCodeInvalidAccountTypeRole     AccountTypeErrorCode = "ACT-010003"
	ErrCodeMissingAccountTypeFields   AccountTypeErrorCode = "ACT-010004"
	ErrCodeNotAuthorizedAccountType   AccountTypeErrorCode = "ACT-010005"
	ErrCodeAccountTypeNameExists      AccountTypeErrorCode = "ACT-010006"

	// Lifecycle errors (02XXXX)
	ErrCodeSystemAccountTypeReadOnly AccountTypeErrorCode = "ACT-020001"
	ErrCodeAccountTypeInUse          AccountTypeErrorCode = "ACT-020002"
)

// AccountTypeError represents an account type error with code and message.
type AccountTypeError struct {
	Code    AccountTypeErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountTypeError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountTypeError) Unwrap() error {
	return e.Err
}

// NewAccountTypeError creates a new AccountTypeError with the given code and message.
func NewAccountTypeError(code AccountTypeErrorCode, message string, err error) *AccountTypeError {
	return &AccountTypeError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
