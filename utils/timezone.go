package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var gmtOffsetPattern = regexp.MustCompile(`^GMT([+-])(\d{1,2})(?::(\d{2}))?$`)

// GetLocation returns a fixed location for a timezone written as GMT+H,
// GMT-H or GMT±H:MM. Unknown formats and offsets beyond ±14 hours give nil.
func GetLocation(timezone string) *time.Location {
	name := strings.ToUpper(strings.TrimSpace(timezone))
	m := gmtOffsetPattern.FindStringSubmatch(name)
	if m == nil {
		return nil
	}

	hours, _ := strconv.Atoi(m[2])
	minutes := 0
	if m[3] != "" {
		minutes, _ = strconv.Atoi(m[3])
	}
	if hours > 14 || minutes >= 60 || (hours == 14 && minutes > 0) {
		return nil
	}

	offset := hours*60*60 + minutes*60
	if m[1] == "-" {
		offset = -offset
	}

	if minutes == 0 {
		name = fmt.Sprintf("GMT%s%d", m[1], hours)
	}
	return time.FixedZone(name, offset)
}
