package services

import "errors"

// Business failures callers can match on.
var (
	ErrEmptyInvoice       = errors.New("add at least one item")
	ErrMissingMeta        = errors.New("set contractor and tax details before submitting")
	ErrDraftNotFound      = errors.New("draft not found or expired")
	ErrNotDraftOwner      = errors.New("draft belongs to another session")
	ErrItemNotFound       = errors.New("line item not found")
	ErrInvalidTransition  = errors.New("invalid task transition")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInactiveUser       = errors.New("user account is inactive")
	ErrInsufficientRole   = errors.New("insufficient permissions")
)
