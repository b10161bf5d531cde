package util

import (
	"strings"
)

// IsValidVietnamesePhoneNumber checks the format of a Vietnamese phone number.
func IsValidVietnamesePhoneNumber(phone string) bool {
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, "-", "")
	phone = strings.ReplaceAll(phone, " ", "")

	if len(phone) < 10 || len(phone) > 11 {
		return false
	}

	validPrefixes := []string{"03", "05", "07", "08", "09", "84"}
	hasValidPrefix := false
	for _, prefix := range validPrefixes {
		if strings.HasPrefix(phone, prefix) {
			hasValidPrefix = true
			break
		}
	}
	if !hasValidPrefix {
		return false
	}

	for _, c := range phone {
		if c < '0' || c > '9' {
			return false
		}
	}

	return true
}
