package utils

import "testing"

func TestTo24Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2:30 PM", "14:30"},
		{"02:30 PM", "14:30"},
		{"12:00 AM", "00:00"},
		{"12:00 PM", "12:00"},
		{"12:30 AM", "00:30"},
		{"1:05 am", "01:05"},
		{"11:59 PM", "23:59"},
		{"9:00AM", "09:00"},
	}
	for _, c := range cases {
		got, err := To24Hour(c.in)
		if err != nil {
			t.Errorf("To24Hour(%q): unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("To24Hour(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTo24HourInvalid(t *testing.T) {
	cases := []string{
		"",
		"13:00 PM",
		"0:30 AM",
		"2:3 PM",
		"2:60 PM",
		"14:30",
		"2:30",
		"noon",
	}
	for _, in := range cases {
		if got, err := To24Hour(in); err == nil {
			t.Errorf("To24Hour(%q) = %q, want error", in, got)
		}
	}
}
