package util

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/lithammer/shortuuid/v4"
)

const (
	// Alphabet without easily-confused characters (0/O, 1/I).
	alphabet = "23456789ABCDEFGHJKLMNPQRSTUVWXYZ"
)

// GenerateServiceSlug builds a URL slug for a treatment service,
// e.g. "Trám răng" -> "tram-rang-a1b2c3d4".
func GenerateServiceSlug(name string) string {
	baseSlug := slug.Make(name)
	shortID := shortuuid.New()[:8]

	return fmt.Sprintf("%s-%s", baseSlug, shortID)
}

// GenerateAppointmentCode generates a unique appointment code in the
// format "APT-XXXXXXXXXX". The code is what reception reads back to a
// patient over the phone, hence the restricted alphabet.
func GenerateAppointmentCode() string {
	uuid := shortuuid.NewWithAlphabet(alphabet)

	return fmt.Sprintf("APT-%s", uuid[:10])
}
