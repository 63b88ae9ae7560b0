package types

import (
	"strings"
	"unicode"
)

const (
	ibcPrefix   = "ibc"
	ibcHashSize = 64
	ibcHashTake = 4
)

// IsIBCToken reports whether denom has the form ibc/<hash>, with a hash of
// exactly 64 alphanumeric characters. Hex is not enforced.
func IsIBCToken(denom string) bool {
	_, ok := ibcHash(denom)
	return ok
}

// IBCTokenLabel shortens an IBC denom to ibc/XXXX...YYYY using the first and
// last four characters of the hash. ok is false when denom is not an IBC denom.
func IBCTokenLabel(denom string) (label string, ok bool) {
	hash, ok := ibcHash(denom)
	if !ok {
		return "", false
	}

	return ibcPrefix + "/" + string(hash[:ibcHashTake]) + "..." + string(hash[len(hash)-ibcHashTake:]), true
}

func ibcHash(denom string) ([]rune, bool) {
	prefix, rest, found := strings.Cut(denom, "/")
	if !found || prefix != ibcPrefix {
		return nil, false
	}

	hash := []rune(rest)
	if len(hash) != ibcHashSize {
		return nil, false
	}
	for _, r := range hash {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return nil, false
		}
	}
	return hash, true
}
