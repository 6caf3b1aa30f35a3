package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the target account exists but has been deactivated.
var ErrForbidden = errors.New("account is not active")

// ErrInsufficientBalance indicates that a decrement would have driven a balance
// negative. The batch carrying the offending request is rolled back in full.
var ErrInsufficientBalance = errors.New("insufficient account balance")
