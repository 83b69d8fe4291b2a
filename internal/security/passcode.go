package security

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const passcodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789"

// MinPasscodeLength applies to typed and generated passcodes.
const MinPasscodeLength = 6

var (
	ErrPasscodeTooShort = errors.New("passcode too short")
	ErrPasscodeMismatch = errors.New("passcode mismatch")
	errNegativeLength   = errors.New("length must be non-negative")
	errEmptyAlphabet    = errors.New("alphabet must not be empty")
)

// RandomString returns a cryptographically secure, unbiased string of the requested length.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if len(alphabet) == 0 {
		return "", errEmptyAlphabet
	}

	limit := big.NewInt(int64(len(alphabet)))
	value := make([]byte, length)
	for index := range value {
		position, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		value[index] = alphabet[position.Int64()]
	}
	return string(value), nil
}

// GeneratePasscode returns a random passcode of at least MinPasscodeLength characters.
func GeneratePasscode(length int) (string, error) {
	if length < MinPasscodeLength {
		length = MinPasscodeLength
	}
	return RandomString(length, passcodeAlphabet)
}

func HashPasscode(passcode string) (string, error) {
	if len(strings.TrimSpace(passcode)) < MinPasscodeLength {
		return "", ErrPasscodeTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPasscode compares passcode against a bcrypt hash.
func CheckPasscode(hash string, passcode string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
		return ErrPasscodeMismatch
	}
	return nil
}

// ValidPasscodeHash reports whether hash looks like a bcrypt hash.
func ValidPasscodeHash(hash string) bool {
	_, err := bcrypt.Cost([]byte(hash))
	return err == nil
}
