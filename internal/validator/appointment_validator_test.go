package validator_test

import (
	"testing"

	"github.com/katatrina/dentcare-BE/internal/validator"
)

func TestValidateAppointmentSlot(t *testing.T) {
	valid := []string{"08:00", "09:30", "14:00", "19:30"}
	for _, slot := range valid {
		if err := validator.ValidateAppointmentSlot(slot); err != nil {
			t.Fatalf("slot %s should be valid: %v", slot, err)
		}
	}

	invalid := []string{"8am", "09:15", "07:30", "20:00", "23:00", ""}
	for _, slot := range invalid {
		if err := validator.ValidateAppointmentSlot(slot); err == nil {
			t.Fatalf("slot %q should be rejected", slot)
		}
	}
}

func TestValidateAppointmentDate(t *testing.T) {
	if err := validator.ValidateAppointmentDate("2020-01-01"); err == nil {
		t.Fatal("past dates must be rejected")
	}
	if err := validator.ValidateAppointmentDate("2099-12-31"); err == nil {
		t.Fatal("dates beyond the booking horizon must be rejected")
	}
	if err := validator.ValidateAppointmentDate("31/12/2026"); err == nil {
		t.Fatal("wrong date format must be rejected")
	}
}

func TestValidatePhoneNumber(t *testing.T) {
	valid := []string{"0912345678", "0387654321"}
	for _, phone := range valid {
		if err := validator.ValidatePhoneNumber(phone); err != nil {
			t.Fatalf("phone %s should be valid: %v", phone, err)
		}
	}

	invalid := []string{"12345", "091234567890", "abcdefghij"}
	for _, phone := range invalid {
		if err := validator.ValidatePhoneNumber(phone); err == nil {
			t.Fatalf("phone %q should be rejected", phone)
		}
	}
}

func TestValidateFullName(t *testing.T) {
	if err := validator.ValidateFullName("Nguyễn Văn An"); err != nil {
		t.Fatalf("accented names must be accepted: %v", err)
	}
	if err := validator.ValidateFullName("An123"); err == nil {
		t.Fatal("digits in names must be rejected")
	}
	if err := validator.ValidateFullName("A"); err == nil {
		t.Fatal("too-short names must be rejected")
	}
}
