package utils

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSubject = common.HexToAddress("0x00000000000000000000000000000000000000a1")

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken("test-issuer", testSubject, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	require.NotNil(t, token.Token)
	assert.Equal(t, testSubject, token.Address)

	claims, ok := token.Token.Claims.(jwt.RegisteredClaims)
	require.True(t, ok)
	assert.Equal(t, "test-issuer", claims.Issuer)
	assert.Equal(t, testSubject.Hex(), claims.Subject)
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		subject  common.Address
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", testSubject, time.Hour, "key"},
		{"zero duration", "iss", testSubject, 0, "key"},
		{"empty key", "iss", testSubject, time.Hour, ""},
		{"zero subject", "iss", common.Address{}, time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, tt.subject, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	generated, err := GenerateJWTToken("test-issuer", testSubject, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseJWTToken(generated.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, testSubject, parsed.Address)
	assert.Equal(t, generated.SignedString, parsed.String())
}

func TestValidateAndParseJWTToken_Failures(t *testing.T) {
	valid, err := GenerateJWTToken("test-issuer", testSubject, time.Minute, "secret-key")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   testSubject.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	badSubjectString, err := badSubject.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "test-issuer"},
		{"wrong issuer", valid.SignedString, "secret-key", "other-issuer"},
		{"expired", expiredString, "secret-key", "test-issuer"},
		{"subject is not an address", badSubjectString, "secret-key", "test-issuer"},
		{"garbage", "not.a.token", "secret-key", "test-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	token, err := ParseBearerToken("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = ParseBearerToken("  bearer   abc ")
	require.NoError(t, err)
	assert.Equal(t, "abc", token)

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer a b"} {
		_, err = ParseBearerToken(header)
		assert.Error(t, err, header)
	}
}

func TestParseAddressFromJWT(t *testing.T) {
	token, err := GenerateJWTToken("iss", testSubject, time.Minute, "key")
	require.NoError(t, err)

	addr, err := ParseAddressFromJWT(token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, testSubject, addr)

	_, err = ParseAddressFromJWT("garbage")
	assert.Error(t, err)
}
