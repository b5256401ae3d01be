package payment

import "errors"

var (
	ErrMissingSignature   = errors.New("missing stripe signature")
	ErrInvalidSignature   = errors.New("invalid stripe signature")
	ErrSubmissionNotFound = errors.New("submission not found for reference")
)
