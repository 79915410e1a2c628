package mod

import (
	"testing"
	"time"
)

// TestParseDuration verifies the accepted duration formats
func TestParseDuration(t *testing.T) {
	cases := []struct {
		in   string
		want time.Duration
	}{
		{"30m", 30 * time.Minute},
		{"2h", 2 * time.Hour},
		{"1h30m", 90 * time.Minute},
		{"1d", 24 * time.Hour},
		{"2d", 48 * time.Hour},
		{"45s", 45 * time.Second},
		{" 10M ", 10 * time.Minute},
	}

	for _, c := range cases {
		got, err := ParseDuration(c.in)
		if err != nil {
			t.Errorf("ParseDuration(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseDuration(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

// TestParseDurationInvalid verifies that malformed input is rejected
func TestParseDurationInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "10", "d", "--5m"} {
		if _, err := ParseDuration(in); err == nil {
			t.Errorf("ParseDuration(%q) should fail", in)
		}
	}
}

// TestFormatDuration verifies the compact rendering
func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{30 * time.Minute, "30m"},
		{90 * time.Minute, "1h30m"},
		{24 * time.Hour, "1d"},
		{25 * time.Hour, "1d1h"},
		{45 * time.Second, "45s"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.in); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}
