package password

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultCost is the default cost for bcrypt hashing
	DefaultCost = bcrypt.DefaultCost

	saltBytes     = 16
	sha256HexSize = sha256.Size * 2
	bcryptPrefix  = "$2"
	saltSeparator = ":"
)

var (
	ErrInvalidPassword   = errors.New("invalid password")
	ErrEmptyPassword     = errors.New("password cannot be empty")
	ErrHashingPassword   = errors.New("error hashing password")
	ErrVerifyingPassword = errors.New("error verifying password")
)

// Kind identifies how a stored credential was produced.
type Kind int

const (
	KindPlain Kind = iota
	KindSalted
	KindBcrypt
)

// Hash generates a bcrypt hash of the password
func Hash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	return string(bytes), nil
}

// SaltedHash produces the legacy "salt:sha256(salt+password)" credential.
func SaltedHash(password string) (string, error) {
	if password == "" {
		return "", ErrEmptyPassword
	}

	salt := make([]byte, saltBytes)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	saltHex := hex.EncodeToString(salt)

	return saltHex + saltSeparator + digest(saltHex, password), nil
}

// KindOf reports which verification rule applies to a stored credential.
func KindOf(credential string) Kind {
	if strings.HasPrefix(credential, bcryptPrefix) {
		if _, err := bcrypt.Cost([]byte(credential)); err == nil {
			return KindBcrypt
		}
	}

	salt, sum, ok := strings.Cut(credential, saltSeparator)
	if ok && salt != "" && len(sum) == sha256HexSize {
		if _, err := hex.DecodeString(sum); err == nil {
			return KindSalted
		}
	}

	return KindPlain
}

// Verify checks the password against a stored credential of any supported kind.
func Verify(password, credential string) error {
	if password == "" || credential == "" {
		return ErrInvalidPassword
	}

	switch KindOf(credential) {
	case KindBcrypt:
		err := bcrypt.CompareHashAndPassword([]byte(credential), []byte(password))
		if err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return ErrInvalidPassword
			}

			return fmt.Errorf("%w: %w", ErrVerifyingPassword, err)
		}

		return nil
	case KindSalted:
		salt, sum, _ := strings.Cut(credential, saltSeparator)

		if !equal(digest(salt, password), strings.ToLower(sum)) {
			return ErrInvalidPassword
		}

		return nil
	default:
		if !equal(password, credential) {
			return ErrInvalidPassword
		}

		return nil
	}
}

func digest(salt, password string) string {
	sum := sha256.Sum256([]byte(salt + password))

	return hex.EncodeToString(sum[:])
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
