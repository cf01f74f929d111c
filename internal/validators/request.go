package validators

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-lock-keeper/internal/vault"
	"github.com/MKhiriev/go-lock-keeper/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldName          = "name"
	FieldOwner         = "owner"
	FieldAsset         = "asset"
	FieldBeneficiaries = "beneficiaries"
	FieldShares        = "shares"
	FieldDeposit       = "deposit"
	FieldSalt          = "salt"
	FieldTokenAddress  = "token_address"
	FieldTotalAmount   = "total_amount"
	FieldReleaseRate   = "release_rate_per_period"
	FieldBeneficiary   = "beneficiary"
	FieldStatus        = "status"
)

const (
	MaxNameLength    = 128
	MaxSaltLength    = 128
	MaxBeneficiaries = 256
)

var (
	fixedLockFields = []string{FieldName, FieldOwner, FieldAsset, FieldBeneficiaries, FieldShares, FieldDeposit, FieldSalt}
	vestingFields   = []string{FieldName, FieldOwner, FieldTokenAddress, FieldTotalAmount, FieldReleaseRate, FieldBeneficiary, FieldSalt}
	filterFields    = []string{FieldOwner, FieldBeneficiary, FieldStatus}
)

// RequestValidator validates [models.FixedLockRequest], [models.VestingRequest]
// and [models.VaultFilter], by value or pointer.
type RequestValidator struct{}

func NewRequestValidator() Validator {
	return &RequestValidator{}
}

func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FixedLockRequest:
		return validateFields(fieldsOrAll(fields, fixedLockFields), func(f string) error { return v.fixedLockField(value, f) })
	case *models.FixedLockRequest:
		return v.Validate(ctx, *value, fields...)

	case models.VestingRequest:
		return validateFields(fieldsOrAll(fields, vestingFields), func(f string) error { return v.vestingField(value, f) })
	case *models.VestingRequest:
		return v.Validate(ctx, *value, fields...)

	case models.VaultFilter:
		return validateFields(fieldsOrAll(fields, filterFields), func(f string) error { return v.filterField(value, f) })
	case *models.VaultFilter:
		return v.Validate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) fixedLockField(r models.FixedLockRequest, field string) error {
	switch field {
	case FieldName:
		return maxLength(r.Name, MaxNameLength)
	case FieldOwner:
		return optionalAddress(r.Owner)
	case FieldAsset:
		if _, err := vault.ParseAsset(r.Asset); err != nil {
			return ErrInvalidAddress
		}
		return nil
	case FieldBeneficiaries:
		if len(r.Beneficiaries) == 0 {
			return ErrRequiredField
		}
		if len(r.Beneficiaries) > MaxBeneficiaries {
			return ErrTooManyRecipients
		}
		for i, b := range r.Beneficiaries {
			if !common.IsHexAddress(b) {
				return fmt.Errorf("[%d]: %w", i, ErrInvalidAddress)
			}
		}
		return nil
	case FieldShares:
		if len(r.Shares) != len(r.Beneficiaries) {
			return ErrLengthMismatch
		}
		for i, s := range r.Shares {
			if err := amount(s); err != nil {
				return fmt.Errorf("[%d]: %w", i, err)
			}
		}
		return nil
	case FieldDeposit:
		if r.Deposit == "" {
			return nil
		}
		return amount(r.Deposit)
	case FieldSalt:
		return maxLength(r.Salt, MaxSaltLength)
	default:
		return ErrUnknownField
	}
}

func (v *RequestValidator) vestingField(r models.VestingRequest, field string) error {
	switch field {
	case FieldName:
		return maxLength(r.Name, MaxNameLength)
	case FieldOwner:
		return optionalAddress(r.Owner)
	case FieldTokenAddress:
		if r.TokenAddress == "" {
			return ErrRequiredField
		}
		return optionalAddress(r.TokenAddress)
	case FieldTotalAmount:
		if r.TotalAmount == "" {
			return ErrRequiredField
		}
		return amount(r.TotalAmount)
	case FieldReleaseRate:
		if r.ReleaseRatePerPeriod == "" {
			return nil
		}
		return amount(r.ReleaseRatePerPeriod)
	case FieldBeneficiary:
		return optionalAddress(r.Beneficiary)
	case FieldSalt:
		return maxLength(r.Salt, MaxSaltLength)
	default:
		return ErrUnknownField
	}
}

func (v *RequestValidator) filterField(f models.VaultFilter, field string) error {
	switch field {
	case FieldOwner:
		return optionalAddress(f.Owner)
	case FieldBeneficiary:
		return optionalAddress(f.Beneficiary)
	case FieldStatus:
		if f.Status == "" {
			return nil
		}
		if _, err := vault.ParseStatus(strings.ToLower(strings.TrimSpace(f.Status))); err != nil {
			return ErrInvalidStatus
		}
		return nil
	default:
		return ErrUnknownField
	}
}

func fieldsOrAll(fields, all []string) []string {
	if len(fields) == 0 {
		return all
	}
	return fields
}

func validateFields(fields []string, check func(string) error) error {
	for _, f := range fields {
		if err := check(f); err != nil {
			return fmt.Errorf("%s: %w", f, err)
		}
	}
	return nil
}

func optionalAddress(s string) error {
	if s != "" && !common.IsHexAddress(s) {
		return ErrInvalidAddress
	}
	return nil
}

func amount(s string) error {
	if _, err := vault.ParseAmount(s); err != nil {
		return ErrInvalidAmount
	}
	return nil
}

func maxLength(s string, n int) error {
	if utf8.RuneCountInString(s) > n {
		return ErrTooLong
	}
	return nil
}
