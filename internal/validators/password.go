package validators

import "strings"

const minPasswordLength = 8

// IsPasswordStrong requires at least 8 characters with one lowercase,
// one uppercase, one digit and one special character.
func IsPasswordStrong(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&#.-_", r):
			special = true
		}
	}

	return lower && upper && digit && special
}
