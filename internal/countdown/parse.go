package countdown

import (
	"errors"
	"strconv"
	"strings"
)

// Custom input limits, in minutes.
const (
	MinMinutes = MinSeconds / 60
	MaxMinutes = MaxSeconds / 60
)

// Errors returned by ParseMinutes. Their text is shown to the user.
var (
	ErrNotANumber        = errors.New("enter a number")
	ErrMinutesOutOfRange = errors.New("enter 1 to 600 minutes")
)

// ParseMinutes validates custom dialog input and returns the duration in
// seconds.
func ParseMinutes(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, ErrNotANumber
	}
	minutes, err := strconv.Atoi(trimmed)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return 0, ErrMinutesOutOfRange
		}
		return 0, ErrNotANumber
	}
	if minutes < MinMinutes || minutes > MaxMinutes {
		return 0, ErrMinutesOutOfRange
	}
	return minutes * 60, nil
}
