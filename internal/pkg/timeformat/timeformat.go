// Package timeformat converts between the 24-hour storage format (HH:MM)
// and the 12-hour display format (HH:MM + AM/PM period).
package timeformat

import (
	"fmt"
	"strconv"
	"strings"
)

// Period is the 12-hour clock period flag
type Period string

const (
	AM Period = "AM"
	PM Period = "PM"
)

// To12Hour converts a 24-hour "HH:MM" value to its 12-hour form and period.
// An empty input yields an empty output with period AM.
//
// Hour 0 maps to "12" AM, 1-11 stay AM, 12 stays "12" PM, 13-23 map to
// hour-12 PM. Minutes pass through unchanged.
func To12Hour(value string) (string, Period, error) {
	if value == "" {
		return "", AM, nil
	}

	hour, minute, err := split(value)
	if err != nil {
		return "", AM, err
	}
	if hour < 0 || hour > 23 {
		return "", AM, fmt.Errorf("hour out of range: %q", value)
	}

	period := AM
	switch {
	case hour == 0:
		hour = 12
	case hour == 12:
		period = PM
	case hour > 12:
		hour -= 12
		period = PM
	}

	return fmt.Sprintf("%02d:%s", hour, minute), period, nil
}

// To24Hour converts a 12-hour "HH:MM" value plus period back to 24-hour form.
// An empty input yields an empty output.
//
// 12 AM maps to 0, PM hours below 12 gain 12, everything else passes through.
func To24Hour(value string, period Period) (string, error) {
	if value == "" {
		return "", nil
	}

	hour, minute, err := split(value)
	if err != nil {
		return "", err
	}
	if hour < 1 || hour > 12 {
		return "", fmt.Errorf("hour out of range for 12-hour clock: %q", value)
	}

	switch {
	case period == AM && hour == 12:
		hour = 0
	case period == PM && hour < 12:
		hour += 12
	}

	return fmt.Sprintf("%02d:%s", hour, minute), nil
}

// Valid24 reports whether value is a well-formed 24-hour HH:MM time
func Valid24(value string) bool {
	hour, minute, err := split(value)
	if err != nil {
		return false
	}
	if hour < 0 || hour > 23 {
		return false
	}
	m, err := strconv.Atoi(minute)
	if err != nil || len(minute) != 2 || m < 0 || m > 59 {
		return false
	}
	return true
}

// split parses "HH:MM" into the numeric hour and the raw minute component.
// Minutes are kept as a string so they pass through conversion untouched.
func split(value string) (int, string, error) {
	parts := strings.SplitN(value, ":", 2)
	if len(parts) != 2 {
		return 0, "", fmt.Errorf("invalid time format: %q", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid hour in %q", value)
	}

	return hour, parts[1], nil
}
