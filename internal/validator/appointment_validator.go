// internal/validator/appointment_validator.go
package validator

import (
	"fmt"
	"time"
)

const (
	clinicOpeningHour = 8
	clinicClosingHour = 20
	maxBookingAhead   = 90 // days
)

func vietnamLocation() *time.Location {
	loc, _ := time.LoadLocation("Asia/Ho_Chi_Minh")
	if loc == nil {
		loc = time.FixedZone("Asia/Ho_Chi_Minh", 7*60*60)
	}
	return loc
}

// ValidateAppointmentDate checks the booking date: "2006-01-02", today or
// later, at most 90 days ahead.
func ValidateAppointmentDate(value string) error {
	loc := vietnamLocation()

	date, err := time.ParseInLocation("2006-01-02", value, loc)
	if err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format, provided: %s", value)
	}

	now := time.Now().In(loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if date.Before(today) {
		return fmt.Errorf("date is in the past, provided: %s", value)
	}

	if date.After(today.AddDate(0, 0, maxBookingAhead)) {
		return fmt.Errorf("date cannot be more than %d days ahead, provided: %s", maxBookingAhead, value)
	}

	return nil
}

// ValidateAppointmentSlot checks the time slot: "15:04", on the half-hour
// grid, within clinic hours (08:00 - 20:00).
func ValidateAppointmentSlot(value string) error {
	slot, err := time.Parse("15:04", value)
	if err != nil {
		return fmt.Errorf("time must be in HH:MM format, provided: %s", value)
	}

	if slot.Minute()%30 != 0 {
		return fmt.Errorf("time must fall on a 30-minute slot, provided: %s", value)
	}

	hour := slot.Hour()
	if hour < clinicOpeningHour || hour >= clinicClosingHour {
		return fmt.Errorf("time must be between %02d:00 and %02d:00, provided: %s",
			clinicOpeningHour, clinicClosingHour, value)
	}

	return nil
}

// ValidateAppointmentSlotInFuture rejects slots that have already passed on
// the given date.
func ValidateAppointmentSlotInFuture(date, slot string) error {
	loc := vietnamLocation()

	startsAt, err := time.ParseInLocation("2006-01-02 15:04", date+" "+slot, loc)
	if err != nil {
		return fmt.Errorf("invalid date/time pair: %s %s", date, slot)
	}

	if startsAt.Before(time.Now().In(loc)) {
		return fmt.Errorf("slot is in the past, provided: %s",
			startsAt.Format("15:04 02/01/2006"))
	}

	return nil
}
