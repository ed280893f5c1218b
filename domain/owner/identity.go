package owner

import "strings"

// NormalizeName canonicalizes a free-text owner name for identity-key
// comparison: surrounding whitespace is trimmed and the result upper-cased.
// Empty input stays empty.
func NormalizeName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NormalizeAddress canonicalizes a free-text mailing address the same way as
// NormalizeName. The two share semantics so that the (name, address) identity
// pair is case- and whitespace-insensitive.
func NormalizeAddress(addr string) string {
	return strings.ToUpper(strings.TrimSpace(addr))
}
