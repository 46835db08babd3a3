package ocr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	clockPattern  = regexp.MustCompile(`^(\d+):(\d{1,2})(?::(\d{1,2}))?$`)
	unitPattern   = regexp.MustCompile(`^(?:(\d+(?:\.\d+)?)h)?\s*(?:(\d+(?:\.\d+)?)m)?\s*(?:(\d+(?:\.\d+)?)s)?$`)
	numberPattern = regexp.MustCompile(`^\d+(?:\.\d+)?$`)
)

// ParseStamp converts recognized stamp text into minutes. Accepted
// forms, as produced by common acquisition software:
//
//	"02:30"      -> 150 (HH:MM)
//	"1:05:30"    -> 65.5 (H:MM:SS)
//	"2h30m"      -> 150
//	"90s"        -> 1.5
//	"135.5"      -> 135.5 (already minutes)
func ParseStamp(text string) (float64, error) {
	s := strings.ToLower(strings.Join(strings.Fields(text), ""))
	if s == "" {
		return 0, fmt.Errorf("empty timestamp")
	}

	if m := clockPattern.FindStringSubmatch(s); m != nil {
		hours, _ := strconv.ParseFloat(m[1], 64)
		mins, _ := strconv.ParseFloat(m[2], 64)
		var secs float64
		if m[3] != "" {
			secs, _ = strconv.ParseFloat(m[3], 64)
		}
		if mins >= 60 || secs >= 60 {
			return 0, fmt.Errorf("invalid clock stamp %q", text)
		}
		return hours*60 + mins + secs/60, nil
	}

	if numberPattern.MatchString(s) {
		v, _ := strconv.ParseFloat(s, 64)
		return v, nil
	}

	if m := unitPattern.FindStringSubmatch(s); m != nil && (m[1] != "" || m[2] != "" || m[3] != "") {
		var total float64
		if m[1] != "" {
			v, _ := strconv.ParseFloat(m[1], 64)
			total += v * 60
		}
		if m[2] != "" {
			v, _ := strconv.ParseFloat(m[2], 64)
			total += v
		}
		if m[3] != "" {
			v, _ := strconv.ParseFloat(m[3], 64)
			total += v / 60
		}
		return total, nil
	}

	return 0, fmt.Errorf("unrecognized timestamp %q", text)
}
