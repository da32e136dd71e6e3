// Package hash provides one-way password hashing and verification.
//
// New digests are always bcrypt. Verification resolves the scheme embedded
// in the digest itself, so records hashed under the legacy
// pbkdf2_sha256$<iterations>$<salt>$<base64 key> format keep verifying
// after the bcrypt migration.
package hash

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/crypto/pbkdf2"
)

const pbkdf2Prefix = "pbkdf2_sha256$"

var ErrMalformedDigest = errors.New("malformed password digest")

// Hash produces a randomly salted, self-describing bcrypt digest.
func Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches digest. A wrong password is
// (false, nil); only a digest that cannot be parsed at all yields an error.
func Verify(plaintext, digest string) (bool, error) {
	switch {
	case strings.HasPrefix(digest, "$2"):
		err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
		if err == nil {
			return true, nil
		}
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, ErrMalformedDigest
	case strings.HasPrefix(digest, pbkdf2Prefix):
		return verifyPBKDF2(plaintext, digest)
	}
	return false, ErrMalformedDigest
}

func verifyPBKDF2(plaintext, digest string) (bool, error) {
	parts := strings.Split(digest, "$")
	if len(parts) != 4 {
		return false, ErrMalformedDigest
	}
	iterations, err := strconv.Atoi(parts[1])
	if err != nil || iterations <= 0 {
		return false, ErrMalformedDigest
	}
	want, err := base64.StdEncoding.DecodeString(parts[3])
	if err != nil || len(want) == 0 {
		return false, ErrMalformedDigest
	}

	got := pbkdf2.Key([]byte(plaintext), []byte(parts[2]), iterations, len(want), sha256.New)
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
