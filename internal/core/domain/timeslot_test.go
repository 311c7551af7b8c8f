package domain

import "testing"

func TestNormalizeClock(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"23:59", "23:59", false},
		{"00:00", "00:00", false},
		{"09:00:00", "09:00", false}, // seconds are dropped
		{"9:00", "09:00", false},     // single-digit hour gets padded
		{"24:00", "", true},
		{"09:60", "", true},
		{"", "", true},
		{"abcde", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizeClock(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("NormalizeClock(%q): expected error, got %q", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("NormalizeClock(%q): unexpected error %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("NormalizeClock(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	if !ValidDate("2024-06-01") {
		t.Errorf("expected 2024-06-01 to be valid")
	}
	for _, bad := range []string{"2024-13-01", "01-06-2024", "2024-6-1", ""} {
		if ValidDate(bad) {
			t.Errorf("expected %q to be invalid", bad)
		}
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"partial overlap", "10:00", "11:00", "10:30", "11:30", true},
		{"contained", "10:00", "12:00", "10:30", "11:00", true},
		{"identical", "10:00", "11:00", "10:00", "11:00", true},
		{"back to back before", "09:00", "10:00", "10:00", "11:00", false},
		{"back to back after", "11:00", "12:00", "10:00", "11:00", false},
		{"disjoint", "08:00", "09:00", "10:00", "11:00", false},
	}

	for _, tc := range cases {
		if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
			t.Errorf("%s: Overlaps(%s-%s, %s-%s) = %v, want %v",
				tc.name, tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
		}
		// Overlap is symmetric.
		if got := Overlaps(tc.s2, tc.e2, tc.s1, tc.e1); got != tc.want {
			t.Errorf("%s: symmetry broken", tc.name)
		}
	}
}
