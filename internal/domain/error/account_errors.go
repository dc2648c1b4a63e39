// Package error defines domain-specific errors for the MoneyDiary application.
package error

import "errors"

// Account and transfer domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInactive is returned when an operation targets a soft-deleted account.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrNotAuthorizedToModifyAccount is returned when user is not authorized to modify an account.
	ErrNotAuthorizedToModifyAccount = errors.New("not authorized to modify account")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")

	// ErrSameTransferAccounts is returned when a transfer names the same account twice.
	ErrSameTransferAccounts = errors.New("transfer source and destination must differ")

	// ErrInvalidTransferAmount is returned when a transfer amount is not positive.
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeAccountNotFound      AccountErrorCode = "ACC-010001"
	ErrCodeAccountInactive      AccountErrorCode = "ACC-010002"
	ErrCodeNotAuthorizedAccount AccountErrorCode = "ACC-010003"
	ErrCodeAccountNameTooLong   AccountErrorCode = "ACC-010004"
	ErrCodeMissingAccountFields AccountErrorCode = "ACC-010005"

	// Transfer errors (02XXXX)
	ErrCodeSameTransferAccounts  AccountErrorCode = "ACC-020001"
	ErrCodeInvalidTransferAmount AccountErrorCode = "ACC-020002"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
