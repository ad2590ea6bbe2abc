package secrets

import (
	"crypto/rand"
	"fmt"
	"math/big"

	kerrors "github.com/PolarWolf314/yap/internal/errors"
)

const (
	// DefaultPasswordLength is used by generate when no length is given.
	DefaultPasswordLength = 24

	// MinPasswordLength is the shortest password generate will produce.
	MinPasswordLength = 8

	// MaxPasswordLength is the longest password generate will produce.
	MaxPasswordLength = 256
)

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	"!#$%&*+-=?@^_~"

// GeneratePassword returns a random password of the given length drawn
// uniformly from a printable alphabet.
func GeneratePassword(length int) (string, error) {
	if length < MinPasswordLength || length > MaxPasswordLength {
		return "", fmt.Errorf("%w: must be between %d and %d, got %d",
			kerrors.ErrInvalidLength, MinPasswordLength, MaxPasswordLength, length)
	}

	max := big.NewInt(int64(len(passwordAlphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("%w: %v", kerrors.ErrEntropyFailure, err)
		}
		buf[i] = passwordAlphabet[n.Int64()]
	}

	return string(buf), nil
}
