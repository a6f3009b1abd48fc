package types

import (
	"math/big"
	"strings"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
	"github.com/holiman/uint256"
)

// maxFormatDecimals is the precision limit of sdkmath.LegacyDec.
const maxFormatDecimals = 18

// ParseAmount parses a base-unit token amount given in decimal or 0x-prefixed hex.
func ParseAmount(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errorsmod.Wrap(ErrInvalidAmount, "amount is empty")
	}

	var (
		v   *uint256.Int
		err error
	)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		digits := strings.TrimLeft(s[2:], "0")
		if digits == "" && len(s) > 2 {
			digits = "0"
		}
		v, err = uint256.FromHex("0x" + digits)
	} else {
		v, err = uint256.FromDecimal(s)
	}
	if err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidAmount, "%q: %s", s, err)
	}
	return v.ToBig(), nil
}

// FormatUnits renders a base-unit amount in whole tokens, e.g. 1500 with 3 decimals is "1.5".
func FormatUnits(amount *big.Int, decimals uint8) string {
	if amount == nil {
		return "0"
	}
	if decimals == 0 || decimals > maxFormatDecimals || amount.Sign() < 0 {
		return amount.String()
	}

	s := sdkmath.LegacyNewDecFromBigIntWithPrec(amount, int64(decimals)).String()
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
