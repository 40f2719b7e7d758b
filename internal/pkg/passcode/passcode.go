package passcode

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrHashingFailed    = errors.New("passcode hashing failed")
	ErrComparisonFailed = errors.New("passcode comparison failed")
	ErrInvalidPasscode  = errors.New("invalid passcode")
)

const DefaultCost = bcrypt.DefaultCost

func Hash(passcode string) (string, error) {
	if passcode == "" {
		return "", ErrInvalidPasscode
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(passcode), DefaultCost)
	if err != nil {
		return "", ErrHashingFailed
	}

	return string(hashedBytes), nil
}

func Compare(hashedPasscode, passcode string) error {
	if hashedPasscode == "" || passcode == "" {
		return ErrInvalidPasscode
	}

	err := bcrypt.CompareHashAndPassword([]byte(hashedPasscode), []byte(passcode))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrComparisonFailed
		}
		return err
	}

	return nil
}

// Resolve returns the configured hash, hashing the plain passcode when no hash was supplied.
func Resolve(plain, hash string) (string, error) {
	if hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return "", ErrInvalidPasscode
		}
		return hash, nil
	}
	return Hash(plain)
}
