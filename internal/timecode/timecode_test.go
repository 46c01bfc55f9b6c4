package timecode

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    int
		wantErr bool
	}{
		{"one minute five seconds", "00:01:05", 65, false},
		{"zero", "00:00:00", 0, false},
		{"hours minutes seconds", "01:02:03", 3723, false},
		{"large hour field", "10:00:00", 36000, false},
		{"unpadded fields", "1:2:3", 3723, false},
		{"missing field", "01:05", 0, true},
		{"too many fields", "00:00:01:05", 0, true},
		{"empty string", "", 0, true},
		{"empty field", "00::05", 0, true},
		{"non-numeric field", "00:ab:05", 0, true},
		{"negative field", "00:-1:05", 0, true},
		{"minutes out of range", "00:60:00", 0, true},
		{"seconds out of range", "00:00:61", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Parse(%q) = %d, want error", tc.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if got != tc.want {
				t.Errorf("Parse(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{65, "00:01:05"},
		{3723, "01:02:03"},
		{36000, "10:00:00"},
		{-5, "00:00:00"},
	}

	for _, tc := range tests {
		if got := Format(tc.seconds); got != tc.want {
			t.Errorf("Format(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, s := range []string{"00:00:01", "00:59:59", "02:30:15"} {
		secs, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", s, err)
		}
		if got := Format(secs); got != s {
			t.Errorf("Format(Parse(%q)) = %q", s, got)
		}
	}
}
