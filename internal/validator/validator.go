package validator

import (
	"fmt"
	"net/mail"
	"unicode"

	"github.com/katatrina/dentcare-BE/internal/util"
)

func ValidateString(value string, minLength int, maxLength int) error {
	n := len(value)
	if n < minLength || n > maxLength {
		return fmt.Errorf("must contain from %d to %d characters", minLength, maxLength)
	}

	return nil
}

func ValidateEmail(value string) error {
	if err := ValidateString(value, 6, 200); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(value); err != nil {
		return fmt.Errorf("is not a valid email address")
	}

	return nil
}

func ValidateFullName(value string) error {
	if err := ValidateString(value, 3, 100); err != nil {
		return err
	}

	for _, r := range value {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return fmt.Errorf("must contain only letters or spaces")
		}
	}

	return nil
}

func ValidatePhoneNumber(value string) error {
	if !util.IsValidVietnamesePhoneNumber(value) {
		return fmt.Errorf("is not a valid Vietnamese phone number")
	}

	return nil
}
