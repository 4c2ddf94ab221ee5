// Package identifier issues the unique codes that name user ledgers.
package identifier

import "github.com/google/uuid"

// Generate returns a new random (version 4) identifier.
func Generate() string {
	return uuid.New().String()
}

// Valid reports whether s is a canonical identifier. Anything else can never
// name a stored ledger.
func Valid(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}
