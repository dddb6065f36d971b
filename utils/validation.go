package utils

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// MistPerSui is the fixed base-unit multiplier of the native coin: 1 SUI =
// 10^9 MIST.
const MistPerSui = 1_000_000_000

// SuiDecimals is the native coin's base-unit exponent.
const SuiDecimals = 9

var hexRe = regexp.MustCompile("^[0-9a-fA-F]+$")

// IsSuiAddress reports whether s is syntactically address-shaped: the 0x
// prefix followed by at least ten hex characters. Full addresses are 32
// bytes, but shortened forms with leading zeros trimmed are accepted.
func IsSuiAddress(s string) bool {
	if !strings.HasPrefix(s, "0x") {
		return false
	}
	body := s[2:]
	if len(body) < 10 || len(body) > 64 {
		return false
	}
	return hexRe.MatchString(body)
}

// ValidateDigest checks a transaction digest: base58, 32 bytes encoded,
// typically 43-44 characters.
func ValidateDigest(digest string) error {
	if digest == "" {
		return fmt.Errorf("transaction digest cannot be empty")
	}
	if len(digest) < 40 || len(digest) > 48 {
		return fmt.Errorf("transaction digest has invalid length")
	}
	if !isBase58String(digest) {
		return fmt.Errorf("transaction digest must be valid base58")
	}
	return nil
}

// ValidateAmount checks that an amount string is a valid, non-negative
// decimal.
func ValidateAmount(amount string) (*decimal.Decimal, error) {
	if amount == "" {
		return nil, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	if dec.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	return &dec, nil
}

// ToBaseUnits converts a human-readable amount to base units at the given
// exponent using exact decimal arithmetic, rounding half-up to the nearest
// base unit.
func ToBaseUnits(amount decimal.Decimal, decimals int32) *big.Int {
	return amount.Shift(decimals).Round(0).BigInt()
}

// FromBaseUnits converts a base-unit value back to human-readable units.
func FromBaseUnits(base *big.Int, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(base, -decimals)
}

func isBase58String(s string) bool {
	for _, c := range s {
		switch {
		case c >= '1' && c <= '9':
		case c >= 'A' && c <= 'H':
		case c >= 'J' && c <= 'N':
		case c >= 'P' && c <= 'Z':
		case c >= 'a' && c <= 'k':
		case c >= 'm' && c <= 'z':
		default:
			return false
		}
	}
	return len(s) > 0
}
