// Package convert parses the textual duration and size tags the site
// renders into result cards ("1:43:21", "1,2 GB") into numeric values.
package convert

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	colonRe = regexp.MustCompile(`^(?:(\d+):)?(\d{1,2}):(\d{2})$`)
	unitRe  = regexp.MustCompile(`^(\d+)\s*(h|hod|m|min|s)$`)
	sizeRe  = regexp.MustCompile(`^([\d.,]+)\s*(B|KB|MB|GB|TB)$`)
)

// TimeToSeconds converts a duration tag into seconds.
// Accepts "1:43:21" and "43:21" colon forms, "1h 20m" unit forms,
// and a bare number of seconds.
func TimeToSeconds(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if m := colonRe.FindStringSubmatch(s); m != nil {
		hours := 0
		if m[1] != "" {
			hours, _ = strconv.Atoi(m[1])
		}
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		if seconds > 59 || (m[1] != "" && minutes > 59) {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return hours*3600 + minutes*60 + seconds, nil
	}

	// Unit form: every whitespace-separated field carries its own unit.
	if fields := strings.Fields(s); len(fields) > 0 && unitRe.MatchString(fields[0]) {
		total := 0
		for _, f := range fields {
			m := unitRe.FindStringSubmatch(f)
			if m == nil {
				return 0, fmt.Errorf("invalid duration %q", s)
			}
			n, _ := strconv.Atoi(m[1])
			switch m[2] {
			case "h", "hod":
				total += n * 3600
			case "m", "min":
				total += n * 60
			case "s":
				total += n
			}
		}
		return total, nil
	}

	if n, err := strconv.Atoi(s); err == nil && n >= 0 {
		return n, nil
	}

	return 0, fmt.Errorf("invalid duration %q", s)
}

// SizeToBytes converts a size tag like "1.2 GB" into bytes.
// The site uses comma decimal separators ("1,2 GB"); both forms are
// accepted. The input is expected to be uppercased already.
func SizeToBytes(s string) (int64, error) {
	s = strings.TrimSpace(s)
	m := sizeRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid size %q", s)
	}

	value, err := strconv.ParseFloat(strings.Replace(m[1], ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid size %q: %w", s, err)
	}

	mult := float64(1)
	switch m[2] {
	case "KB":
		mult = 1 << 10
	case "MB":
		mult = 1 << 20
	case "GB":
		mult = 1 << 30
	case "TB":
		mult = 1 << 40
	}

	return int64(value * mult), nil
}
