package id

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// idLen is the number of hex characters kept from the hash.
const idLen = 16

// Key returns the dedup key for a transaction: the exact
// (date, description, amount) triple joined with a separator that cannot
// appear in an ISO date or a decimal amount.
func Key(date, description, amount string) string {
	return strings.Join([]string{date, description, amount}, "|")
}

// Transaction returns a stable transaction ID derived from the dedup key,
// so identity and dedup key always coincide across re-imports.
func Transaction(date, description, amount string) string {
	sum := sha256.Sum256([]byte(Key(date, description, amount)))
	return hex.EncodeToString(sum[:])[:idLen]
}
