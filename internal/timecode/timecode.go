// Package timecode converts between HH:MM:SS timestamps and playback offsets.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse converts an "HH:MM:SS" timestamp into a total offset in seconds.
// Malformed input is rejected with an error rather than propagating
// garbage into player seeks.
func Parse(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("timecode: %q is not in HH:MM:SS form", s)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		if part == "" {
			return 0, fmt.Errorf("timecode: %q has an empty field", s)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("timecode: %q has a non-numeric field: %w", s, err)
		}
		if n < 0 {
			return 0, fmt.Errorf("timecode: %q has a negative field", s)
		}
		fields[i] = n
	}

	if fields[1] > 59 || fields[2] > 59 {
		return 0, fmt.Errorf("timecode: %q has minutes or seconds out of range", s)
	}

	return fields[0]*3600 + fields[1]*60 + fields[2], nil
}

// Format renders a playback offset in seconds as "HH:MM:SS".
func Format(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, seconds/60%60, seconds%60)
}
