package vault

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// AssetKind tells native currency apart from fungible tokens.
type AssetKind uint8

const (
	// AssetNative is the chain's native currency.
	AssetNative AssetKind = iota
	// AssetFungible is a fungible token identified by its contract address.
	AssetFungible
)

// NativeSentinel is the well-known pseudo address used by deployment tooling
// to reference the native currency where a token address is expected.
var NativeSentinel = common.HexToAddress("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

var assetKindStrings = map[AssetKind]string{
	AssetNative:   "native",
	AssetFungible: "fungible",
}

func (k AssetKind) String() string {
	s, ok := assetKindStrings[k]
	if !ok {
		return fmt.Sprintf("unknownAssetKind(%d)", k)
	}
	return s
}

// Asset references the value held by a vault. It is immutable once the vault
// is constructed.
type Asset struct {
	Kind  AssetKind
	Token common.Address
}

// NativeAsset returns the native currency asset.
func NativeAsset() Asset {
	return Asset{Kind: AssetNative}
}

// TokenAsset returns a fungible asset for the token at addr. The native
// sentinel and the zero address map to the native asset.
func TokenAsset(addr common.Address) Asset {
	if addr == NativeSentinel || addr == (common.Address{}) {
		return NativeAsset()
	}
	return Asset{Kind: AssetFungible, Token: addr}
}

// ParseAsset accepts "", "native", the native sentinel or a token address.
func ParseAsset(s string) (Asset, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "native") {
		return NativeAsset(), nil
	}

	if !common.IsHexAddress(s) {
		return Asset{}, fmt.Errorf("%w: %q", ErrInvalidAsset, s)
	}

	return TokenAsset(common.HexToAddress(s)), nil
}

// IsNative reports whether the asset is the native currency.
func (a Asset) IsNative() bool {
	return a.Kind == AssetNative
}

// Address returns the token address, or the native sentinel for native assets.
func (a Asset) Address() common.Address {
	if a.IsNative() {
		return NativeSentinel
	}
	return a.Token
}

// String returns "native" or the checksummed token address.
func (a Asset) String() string {
	if a.IsNative() {
		return AssetNative.String()
	}
	return a.Token.Hex()
}
