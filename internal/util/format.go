package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatVND renders an amount as a VND display string.
// Example: 1000000 -> "1.000.000 ₫".
func FormatVND(amount int64) string {
	formatted := fmt.Sprintf("%d", amount)

	length := len(formatted)
	if length <= 3 {
		return formatted + " ₫"
	}

	var result strings.Builder
	for i, char := range formatted {
		result.WriteRune(char)
		if (length-i-1)%3 == 0 && i < length-1 {
			result.WriteRune('.')
		}
	}

	result.WriteString(" ₫")

	return result.String()
}

// TruncateContent shortens a display string to maxLength characters.
func TruncateContent(title string, maxLength int) string {
	if len(title) <= maxLength {
		return title
	}
	return title[:maxLength] + "..."
}

// FormatAppointmentSlot renders a date and time slot for display in
// notification messages, e.g. "09:30 24/12/2026".
func FormatAppointmentSlot(date, slot string) string {
	if parsed, err := time.Parse("2006-01-02", date); err == nil {
		date = parsed.Format("02/01/2006")
	}
	if slot == "" {
		return date
	}
	return fmt.Sprintf("%s %s", slot, date)
}

func BoolPointer(b bool) *bool {
	return &b
}

func StringPointer(s string) *string {
	return &s
}

func TimePointer(t time.Time) *time.Time {
	return &t
}
