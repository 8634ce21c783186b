package protocol

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// ToByte parses an address or data token.
//
// Tokens starting with HexPrefix are read as base 16, anything else as
// base 10. The result is masked to 8 bits, so out-of-range values wrap
// instead of failing, however many digits they have. Callers uppercase input
// first; a lowercase "0x" prefix is not recognised.
func ToByte(s string) (byte, error) {
	base := 10
	digits := s
	if strings.HasPrefix(s, HexPrefix) {
		base = 16
		digits = s[len(HexPrefix):]
		// ParseInt would accept a sign after the prefix.
		if strings.HasPrefix(digits, "-") || strings.HasPrefix(digits, "+") {
			return 0, &ParseError{Token: s, Base: base, Err: strconv.ErrSyntax}
		}
	}

	v, err := strconv.ParseInt(digits, base, 64)
	if err == nil {
		return byte(v & ByteMask), nil
	}
	if !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Token: s, Base: base, Err: err}
	}

	// Syntactically valid but wider than 64 bits.
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return 0, &ParseError{Token: s, Base: base, Err: strconv.ErrSyntax}
	}
	return byte(new(big.Int).And(n, big.NewInt(ByteMask)).Int64()), nil
}
