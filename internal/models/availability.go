package models

import (
	"fmt"
	"strings"
	"time"
)

// Availability maps a lowercase weekday to "HH:MM-HH:MM" ranges.
type Availability map[string][]string

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// Normalize lowercases weekday keys, trims ranges and checks that every range
// is a valid clock interval with start before end.
func (a Availability) Normalize() (Availability, error) {
	out := make(Availability, len(a))
	for day, ranges := range a {
		key := strings.ToLower(strings.TrimSpace(day))
		if !weekdays[key] {
			return nil, fmt.Errorf("unknown weekday %q", day)
		}
		for _, r := range ranges {
			r = strings.TrimSpace(r)
			if err := validateRange(r); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			out[key] = append(out[key], r)
		}
	}
	return out, nil
}

func validateRange(r string) error {
	parts := strings.Split(r, "-")
	if len(parts) != 2 {
		return fmt.Errorf("range %q must look like HH:MM-HH:MM", r)
	}
	start, err := time.Parse("15:04", parts[0])
	if err != nil {
		return fmt.Errorf("invalid start time in %q", r)
	}
	end, err := time.Parse("15:04", parts[1])
	if err != nil {
		return fmt.Errorf("invalid end time in %q", r)
	}
	if !start.Before(end) {
		return fmt.Errorf("range %q must end after it starts", r)
	}
	return nil
}
