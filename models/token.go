package models

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token whose "sub" claim is the caller's account
// address.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides the standard claim set (sub, exp, iat, iss).
	jwt.RegisteredClaims

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`

	// Address is the parsed "sub" claim.
	Address common.Address `json:"-"`
}

// GetAddress parses the "sub" claim as a hex account address.
func (t *Token) GetAddress() (common.Address, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return common.Address{}, fmt.Errorf("error extracting subject from token: %w", err)
	}

	addr, err := ParseAddress(sub)
	if err != nil {
		return common.Address{}, fmt.Errorf("error converting token subject to address: %w", err)
	}

	return addr, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

// TokenResponse is returned when a token is minted.
type TokenResponse struct {
	Token     string `json:"token"`
	Subject   string `json:"subject"`
	ExpiresAt int64  `json:"expires_at"`
}

// NewTokenResponse renders t for the command line.
func NewTokenResponse(t Token) TokenResponse {
	resp := TokenResponse{
		Token:   t.SignedString,
		Subject: t.Address.Hex(),
	}
	if t.ExpiresAt != nil {
		resp.ExpiresAt = t.ExpiresAt.Unix()
	}
	return resp
}
