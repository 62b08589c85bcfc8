// Package keyring stores the optional admin PIN in the OS keyring. The
// PIN gates sync configuration and data wipe; it is a convenience lock,
// not a security boundary, but it is still stored as a salted one-way
// hash so the plaintext never lands anywhere.
package keyring

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/habitflow/internal/constants"
	"github.com/zalando/go-keyring"
)

var (
	// ErrNotSet is returned when no PIN has been stored.
	ErrNotSet = errors.New("no PIN set")
	// ErrKeyringUnavailable is returned when the OS keyring is not available.
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

// HashPIN derives a salted SHA-256 digest of the PIN. The result is
// "hex(salt):hex(digest)".
func HashPIN(pin string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}
	return encode(salt, pin), nil
}

// VerifyPIN checks a PIN attempt against a stored salted hash in
// constant time.
func VerifyPIN(pin, stored string) bool {
	parts := strings.SplitN(stored, ":", 2)
	if len(parts) != 2 {
		return false
	}
	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(encode(salt, pin)), []byte(stored)) == 1
}

func encode(salt []byte, pin string) string {
	sum := sha256.Sum256(append(salt, []byte(pin)...))
	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(sum[:])
}

// SetPIN hashes and stores the PIN in the OS keyring.
func SetPIN(pin string) error {
	if pin == "" {
		return errors.New("PIN cannot be empty")
	}
	hash, err := HashPIN(pin)
	if err != nil {
		return err
	}
	if err := keyring.Set(constants.AppName, constants.KeyringPINUser, hash); err != nil {
		return fmt.Errorf("failed to store PIN in keyring: %w", err)
	}
	return nil
}

// CheckPIN verifies a PIN attempt against the stored hash. Returns
// ErrNotSet when no PIN has been stored.
func CheckPIN(pin string) (bool, error) {
	stored, err := keyring.Get(constants.AppName, constants.KeyringPINUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return false, ErrNotSet
		}
		return false, fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return VerifyPIN(pin, stored), nil
}

// ClearPIN removes the stored PIN.
func ClearPIN() error {
	err := keyring.Delete(constants.AppName, constants.KeyringPINUser)
	if err != nil {
		if err == keyring.ErrNotFound {
			return ErrNotSet
		}
		return fmt.Errorf("failed to delete PIN from keyring: %w", err)
	}
	return nil
}

// HasPIN reports whether a PIN is stored.
func HasPIN() bool {
	_, err := keyring.Get(constants.AppName, constants.KeyringPINUser)
	return err == nil
}
