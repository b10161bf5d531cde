package util_test

import (
	"strings"
	"testing"

	"github.com/katatrina/dentcare-BE/internal/util"
)

func TestFormatVND(t *testing.T) {
	cases := []struct {
		amount int64
		want   string
	}{
		{500, "500 ₫"},
		{1000, "1.000 ₫"},
		{1500000, "1.500.000 ₫"},
	}

	for _, tc := range cases {
		if got := util.FormatVND(tc.amount); got != tc.want {
			t.Fatalf("FormatVND(%d) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestTruncateContent(t *testing.T) {
	if got := util.TruncateContent("short", 10); got != "short" {
		t.Fatalf("short strings must pass through, got %q", got)
	}
	if got := util.TruncateContent("a very long notification message", 10); got != "a very lon..." {
		t.Fatalf("unexpected truncation: %q", got)
	}
}

func TestFormatAppointmentSlot(t *testing.T) {
	if got := util.FormatAppointmentSlot("2026-12-24", "09:30"); got != "09:30 24/12/2026" {
		t.Fatalf("unexpected slot format: %q", got)
	}
	if got := util.FormatAppointmentSlot("2026-12-24", ""); got != "24/12/2026" {
		t.Fatalf("missing slot should fall back to the date: %q", got)
	}
}

func TestGenerateAppointmentCode(t *testing.T) {
	code := util.GenerateAppointmentCode()
	if !strings.HasPrefix(code, "APT-") {
		t.Fatalf("code must carry the APT- prefix: %q", code)
	}
	if len(code) != len("APT-")+10 {
		t.Fatalf("unexpected code length: %q", code)
	}
	for _, c := range code[4:] {
		if strings.ContainsRune("01OIl", c) {
			t.Fatalf("code contains an ambiguous character: %q", code)
		}
	}
}
