package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrRequiredField     = errors.New("field is required")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrTooLong           = errors.New("value is too long")
	ErrLengthMismatch    = errors.New("beneficiaries and shares differ in length")
	ErrTooManyRecipients = errors.New("too many beneficiaries")
	ErrInvalidStatus     = errors.New("invalid vault status")
)
