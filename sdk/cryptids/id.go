// Package cryptids generates short random identifiers from a URL-safe
// alphabet, used for request trace IDs.
package cryptids

import (
	"crypto/rand"
	"fmt"
)

var (
	IDAlphabet = "bcdfghjklmnpqrstvwxyZBCDFGHJKLMNPQRSTVWXYZ0123456789"
	IDLength   = 18
)

// GenerateID creates a random string from defaults.
func GenerateID() (string, error) {
	return generateID(IDAlphabet, IDLength)
}

// GenerateCustomID creates a random string with the given alphabet and length.
func GenerateCustomID(alphabet string, size int) (string, error) {
	return generateID(alphabet, size)
}

// generateID creates a random string ID with the given alphabet and length.
func generateID(alphabet string, size int) (string, error) {
	if len(alphabet) < 2 {
		return "", fmt.Errorf("alphabet must contain at least 2 characters")
	}
	if size < 1 {
		return "", fmt.Errorf("size must be at least 1")
	}

	// Mask to the closest power of 2 above the alphabet length so the
	// modulo step stays uniformly distributed.
	mask := 1
	for mask < len(alphabet) {
		mask = (mask << 1) | 1
	}

	// Over-allocate the random buffer to avoid repeated RNG calls.
	step := int(float64(size) * 1.6)
	if step < size {
		step = size
	}

	id := make([]byte, size)
	bytes := make([]byte, step)

	idIndex := 0
	for idIndex < size {
		if _, err := rand.Read(bytes); err != nil {
			return "", err
		}

		for i := 0; i < len(bytes) && idIndex < size; i++ {
			alphabetIndex := int(bytes[i]) & mask
			if alphabetIndex >= len(alphabet) {
				continue
			}
			id[idIndex] = alphabet[alphabetIndex]
			idIndex++
		}
	}

	return string(id), nil
}
