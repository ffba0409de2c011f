package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidatePassword requires at least 8 characters with one letter and one
// digit. Returns the reason when the password is rejected.
func ValidatePassword(password string) (bool, string) {
	if len(password) < 8 {
		return false, "Password must be at least 8 characters long"
	}
	var hasLetter, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	if !hasLetter {
		return false, "Password must contain at least one letter"
	}
	if !hasDigit {
		return false, "Password must contain at least one digit"
	}
	return true, ""
}

// GeneratePolicyNumber produces POL-YYYYMMDD-XXXXXXXX where the suffix is
// the first uuid segment uppercased.
func GeneratePolicyNumber() string {
	suffix := strings.ToUpper(strings.SplitN(uuid.New().String(), "-", 2)[0])
	return fmt.Sprintf("POL-%s-%s", time.Now().Format("20060102"), suffix)
}
