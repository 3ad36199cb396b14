package nanoid

import (
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	// PrimaryKeyAlphabet is the alphabet used for generated record ids.
	PrimaryKeyAlphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	// PrimaryKeySize is the length of generated record ids.
	PrimaryKeySize = 16
)

// Must generates a NanoID with optional length using default alphabet
func Must(l ...int) string {
	size := PrimaryKeySize
	if len(l) > 0 {
		size = l[0]
	}
	return gonanoid.Must(size)
}

// PrimaryKey returns a function that generates primary keys with specified length
func PrimaryKey(l ...int) func() string {
	size := PrimaryKeySize
	if len(l) > 0 {
		size = l[0]
	}
	return func() string {
		return gonanoid.MustGenerate(PrimaryKeyAlphabet, size)
	}
}

// IsPrimaryKey verifies if a string is a valid primary key
func IsPrimaryKey(id string) bool {
	if len(id) != PrimaryKeySize {
		return false
	}
	for _, c := range id {
		if !strings.ContainsRune(PrimaryKeyAlphabet, c) {
			return false
		}
	}
	return true
}
