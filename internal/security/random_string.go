package security

import (
	"crypto/rand"
	"errors"
)

var ErrEmptyAlphabet = errors.New("alphabet must not be empty")

// RandomString draws an unbiased random string of the requested length from
// the alphabet, using rejection sampling over crypto/rand bytes.
func RandomString(length int, alphabet string) (string, error) {
	if length <= 0 {
		return "", nil
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", ErrEmptyAlphabet
	}

	// Largest multiple of len(alphabet) that fits a byte; values above it
	// would skew the distribution and are redrawn.
	limit := byte(256 - 256%len(alphabet))

	out := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(out) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, value := range buffer {
			if limit != 0 && value >= limit {
				continue
			}
			out = append(out, alphabet[int(value)%len(alphabet)])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
