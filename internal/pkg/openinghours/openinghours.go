// Package openinghours parses the free-text opening-hours field stored on
// doctor documents ("8:00 am - 5:00 pm") and answers whether a practice is
// open at a given local hour. Minutes are parsed but discarded: availability
// is decided at hour granularity only.
package openinghours

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrMalformed is returned when the opening-hours text does not follow the
// "<H>:<MM> am|pm - <H>:<MM> am|pm" pattern. Callers are expected to treat
// the doctor as closed rather than fail the whole request.
var ErrMalformed = errors.New("malformed opening hours")

// TimeRange is the normalized same-day open/close pair on a 24-hour clock.
// A range with CloseHour <= OpenHour is never open; overnight schedules are
// not supported by the source format.
type TimeRange struct {
	OpenHour  int
	CloseHour int
}

var timeOfDayPattern = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)$`)

// Parse splits the text on the single "-" separator and normalizes both
// sides into 24-hour values. "12 pm" stays 12. "12 am" also stays 12, which
// mirrors the behavior the mobile clients were built against.
func Parse(text string) (TimeRange, error) {
	parts := strings.Split(text, "-")
	if len(parts) != 2 {
		return TimeRange{}, fmt.Errorf("%w: expected one '-' separator in %q", ErrMalformed, text)
	}

	openHour, err := parseTimeOfDay(parts[0])
	if err != nil {
		return TimeRange{}, err
	}
	closeHour, err := parseTimeOfDay(parts[1])
	if err != nil {
		return TimeRange{}, err
	}

	return TimeRange{OpenHour: openHour, CloseHour: closeHour}, nil
}

// IsOpenAt reports whether nowHour (0-23, caller's local wall clock) falls
// inside the range. Closing hour is exclusive: "8:00 am - 5:00 pm" is closed
// at 17.
func (tr TimeRange) IsOpenAt(nowHour int) bool {
	if tr.CloseHour <= tr.OpenHour {
		return false
	}
	return nowHour >= tr.OpenHour && nowHour < tr.CloseHour
}

func parseTimeOfDay(expr string) (int, error) {
	matches := timeOfDayPattern.FindStringSubmatch(strings.TrimSpace(expr))
	if matches == nil {
		return 0, fmt.Errorf("%w: %q is not a H:MM am/pm time", ErrMalformed, strings.TrimSpace(expr))
	}

	hour, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformed, expr)
	}

	if strings.EqualFold(matches[3], "pm") && hour >= 1 && hour <= 11 {
		hour += 12
	}

	if hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: hour %d out of range", ErrMalformed, hour)
	}

	return hour, nil
}
