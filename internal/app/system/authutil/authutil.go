// internal/app/system/authutil/authutil.go

// Package authutil holds password-strength rules and credential hashing
// for the sign-up form. Note that WanderNext's identity layer is a mock:
// the hash is stored but never verified on login.
package authutil

import (
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var (
	hasLetterRe = regexp.MustCompile(`[A-Za-z]`)
	hasNumberRe = regexp.MustCompile(`[0-9]`)
	hasSymbolRe = regexp.MustCompile(`[^A-Za-z0-9]`)
	validChars  = regexp.MustCompile("^[A-Za-z0-9!@#$%^&*()_+\\-=\\[\\]{};':\"\\\\|,.<>/?~`]+$")
)

// PasswordRules returns the rules text shown next to the sign-up form.
func PasswordRules() string {
	return fmt.Sprintf("At least %d characters, with a letter, a number, and a symbol (!@#$%%^&*).", minPasswordLength)
}

// ValidatePassword checks a candidate password against the sign-up rules.
// It returns a user-facing message when the password is rejected.
func ValidatePassword(pw string) (ok bool, message string) {
	if len(pw) < minPasswordLength {
		return false, fmt.Sprintf("Password must be at least %d characters long.", minPasswordLength)
	}
	if !hasLetterRe.MatchString(pw) {
		return false, "Password must contain at least one letter."
	}
	if !hasNumberRe.MatchString(pw) {
		return false, "Password must contain at least one number."
	}
	if !hasSymbolRe.MatchString(pw) {
		return false, "Password must contain at least one symbol (!@#$%^&*)."
	}
	if !validChars.MatchString(pw) {
		return false, "Password contains invalid characters."
	}
	return true, ""
}

// HashCredential hashes the opaque credential for storage at rest.
func HashCredential(credential string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(credential), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
